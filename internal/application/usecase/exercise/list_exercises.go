package exercise

import (
	"context"

	"github.com/google/uuid"

	domainerror "github.com/fittrack/backend/internal/domain/error"
)

// Pagination and mobile-formatting defaults.
const (
	defaultPage  = 1
	defaultLimit = 20

	placeholderImageURL    = "https://via.placeholder.com/90x90?text=No+Image"
	placeholderDescription = "説明はありません。"
	defaultDifficulty      = "beginner"
)

// ListExercisesInput represents the input for the catalog listing. Page and
// Limit 0 mean the defaults.
type ListExercisesInput struct {
	Category string
	Search   string
	Page     int
	Limit    int
}

// ExerciseItem is one catalog entry formatted for the mobile client.
type ExerciseItem struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	Type          string    `json:"type"`
	ImageURL      string    `json:"imageUrl"`
	Description   string    `json:"description"`
	TargetMuscles []string  `json:"targetMuscles"`
	Difficulty    string    `json:"difficulty"`
	Equipment     string    `json:"equipment"`
}

// ListExercisesOutput represents the output of the catalog listing. Total is
// the number of matching rows regardless of pagination.
type ListExercisesOutput struct {
	Exercises []ExerciseItem
	Total     int
}

// ListExercisesUseCase handles the paginated exercise catalog listing.
type ListExercisesUseCase struct {
	exerciseRepo ExerciseRepository
}

// NewListExercisesUseCase creates a new ListExercisesUseCase instance.
func NewListExercisesUseCase(exerciseRepo ExerciseRepository) *ListExercisesUseCase {
	return &ListExercisesUseCase{
		exerciseRepo: exerciseRepo,
	}
}

// Execute lists the catalog page, filling placeholder image and description
// for entries that never got one.
func (uc *ListExercisesUseCase) Execute(
	ctx context.Context,
	input ListExercisesInput,
) (*ListExercisesOutput, error) {
	page := input.Page
	if page < 1 {
		page = defaultPage
	}
	limit := input.Limit
	if limit < 1 {
		limit = defaultLimit
	}

	exercises, total, err := uc.exerciseRepo.ListExercises(ctx, ExerciseFilter{
		Category: input.Category,
		Search:   input.Search,
		Limit:    limit,
		Offset:   (page - 1) * limit,
	})
	if err != nil {
		return nil, domainerror.NewExerciseError(
			domainerror.ErrCodeExerciseInternalError,
			"failed to list exercises",
			err,
		)
	}

	items := make([]ExerciseItem, 0, len(exercises))
	for _, exercise := range exercises {
		item := ExerciseItem{
			ID:            exercise.ID,
			Name:          exercise.Name,
			Type:          exercise.Type,
			ImageURL:      exercise.ImageURL,
			Description:   exercise.Description,
			TargetMuscles: exercise.TargetMuscles,
			Difficulty:    exercise.Difficulty,
			Equipment:     exercise.Equipment,
		}
		if item.ImageURL == "" {
			item.ImageURL = placeholderImageURL
		}
		if item.Description == "" {
			item.Description = placeholderDescription
		}
		if item.Difficulty == "" {
			item.Difficulty = defaultDifficulty
		}
		if item.TargetMuscles == nil {
			item.TargetMuscles = []string{}
		}
		items = append(items, item)
	}

	return &ListExercisesOutput{Exercises: items, Total: total}, nil
}
