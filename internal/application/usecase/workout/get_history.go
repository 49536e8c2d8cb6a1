package workout

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/fittrack/backend/internal/domain/entity"
	domainerror "github.com/fittrack/backend/internal/domain/error"
)

// defaultHistoryLimit is the page size when the client sends none.
const defaultHistoryLimit = 5

// GetHistoryInput represents the input for the workout history. Limit 0
// means the default page size.
type GetHistoryInput struct {
	UserID uuid.UUID
	Limit  int
	Offset int
}

// HistoryItem is one formatted history entry.
type HistoryItem struct {
	ID         uuid.UUID `json:"id"`
	Date       string    `json:"date"`
	Title      string    `json:"title"`
	Highlights string    `json:"highlights"`
	Exercises  int       `json:"exercises"`
}

// GetHistoryOutput represents the output of the workout history.
type GetHistoryOutput struct {
	Items []HistoryItem
}

// GetHistoryUseCase handles the paginated workout history listing.
type GetHistoryUseCase struct {
	workoutRepo WorkoutRepository
}

// NewGetHistoryUseCase creates a new GetHistoryUseCase instance.
func NewGetHistoryUseCase(workoutRepo WorkoutRepository) *GetHistoryUseCase {
	return &GetHistoryUseCase{
		workoutRepo: workoutRepo,
	}
}

// Execute lists the user's sessions newest first, decorated with summary
// highlights. A failed summary read degrades to entries without highlights.
func (uc *GetHistoryUseCase) Execute(
	ctx context.Context,
	input GetHistoryInput,
) (*GetHistoryOutput, error) {
	if input.Limit < 0 {
		return nil, domainerror.NewWorkoutError(
			domainerror.ErrCodeInvalidHistoryLimit,
			"limit must be a positive integer",
			domainerror.ErrInvalidHistoryLimit,
		)
	}
	limit := input.Limit
	if limit == 0 {
		limit = defaultHistoryLimit
	}
	offset := input.Offset
	if offset < 0 {
		offset = 0
	}

	sessions, err := uc.workoutRepo.ListSessions(ctx, input.UserID, limit, offset)
	if err != nil {
		return nil, domainerror.NewWorkoutError(
			domainerror.ErrCodeWorkoutInternalError,
			"failed to list sessions",
			err,
		)
	}
	if len(sessions) == 0 {
		return &GetHistoryOutput{Items: []HistoryItem{}}, nil
	}

	sessionIDs := make([]uuid.UUID, 0, len(sessions))
	for _, session := range sessions {
		sessionIDs = append(sessionIDs, session.ID)
	}

	summaries, err := uc.workoutRepo.SummariesBySessionIDs(ctx, sessionIDs)
	if err != nil {
		slog.WarnContext(ctx, "could not fetch session summaries for history",
			slog.String("error", err.Error()))
		summaries = nil
	}

	items := make([]HistoryItem, 0, len(sessions))
	for _, session := range sessions {
		summary, hasSummary := summaries[session.ID]

		item := HistoryItem{
			ID:         session.ID,
			Date:       session.StartTime.Format("2006/01/02"),
			Title:      fmt.Sprintf("トレーニング (%s)", formatHistoryDuration(session.Duration)),
			Highlights: "記録なし",
		}
		if hasSummary {
			item.Highlights = highlights(summary)
			item.Exercises = summary.TotalDistinctExercises
		}
		items = append(items, item)
	}

	return &GetHistoryOutput{Items: items}, nil
}

// highlights renders the summary's top set; bodyweight sets show reps only.
func highlights(summary entity.SessionSummary) string {
	switch {
	case summary.TopExerciseName == "":
		return "記録なし"
	case summary.TopExerciseWeight.IsPositive() && summary.TopExerciseReps > 0:
		return fmt.Sprintf("%s %skg x %d回", summary.TopExerciseName, summary.TopExerciseWeight, summary.TopExerciseReps)
	case summary.TopExerciseReps > 0:
		return fmt.Sprintf("%s %d回", summary.TopExerciseName, summary.TopExerciseReps)
	default:
		return summary.TopExerciseName
	}
}
