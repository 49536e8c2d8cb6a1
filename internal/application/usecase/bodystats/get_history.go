package bodystats

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/fittrack/backend/internal/domain/entity"
	domainerror "github.com/fittrack/backend/internal/domain/error"
	"github.com/fittrack/backend/internal/application/usecase/progress"
)

// HistoryPeriod selects the body-stat history window.
type HistoryPeriod string

const (
	HistoryLatest HistoryPeriod = "latest"
	HistoryWeek   HistoryPeriod = "week"
	HistoryMonth  HistoryPeriod = "month"
	HistoryYear   HistoryPeriod = "year"
)

// defaultLatestLimit is the row count for "latest" when no limit is given:
// the current and the previous measurement.
const defaultLatestLimit = 2

// GetHistoryInput represents the input for the body-stat history.
// Limit 0 means no explicit limit.
type GetHistoryInput struct {
	UserID uuid.UUID
	Period HistoryPeriod
	Limit  int
}

// HistoryStats summarizes the returned range; nil fields mean no data.
type HistoryStats struct {
	Current *float64 `json:"current"`
	Start   *float64 `json:"start"`
	Change  *float64 `json:"change"`
}

// GetHistoryOutput represents the output of the body-stat history.
type GetHistoryOutput struct {
	History   []entity.BodyStat
	Stats     HistoryStats
	ChartData progress.ChartData
}

// GetHistoryUseCase handles reading the body-stat history with summary
// statistics and a per-entry chart.
type GetHistoryUseCase struct {
	bodyStatsRepo BodyStatsRepository
	now           func() time.Time
}

// NewGetHistoryUseCase creates a new GetHistoryUseCase instance. now is the
// clock used for window calculation; nil means time.Now.
func NewGetHistoryUseCase(bodyStatsRepo BodyStatsRepository, now func() time.Time) *GetHistoryUseCase {
	if now == nil {
		now = time.Now
	}
	return &GetHistoryUseCase{
		bodyStatsRepo: bodyStatsRepo,
		now:           now,
	}
}

// Execute returns the user's body stats for the requested period, newest
// first, with range statistics and chart entries.
func (uc *GetHistoryUseCase) Execute(
	ctx context.Context,
	input GetHistoryInput,
) (*GetHistoryOutput, error) {
	history, err := uc.listHistory(ctx, input)
	if err != nil {
		return nil, err
	}

	// history is descending: newest first, oldest last.
	var stats HistoryStats
	if len(history) > 0 {
		current := history[0].Weight.InexactFloat64()
		start := history[len(history)-1].Weight.InexactFloat64()
		change := history[0].Weight.Sub(history[len(history)-1].Weight).InexactFloat64()
		stats = HistoryStats{Current: &current, Start: &start, Change: &change}
	}

	return &GetHistoryOutput{
		History:   history,
		Stats:     stats,
		ChartData: buildChartEntries(history, input.Period),
	}, nil
}

func (uc *GetHistoryUseCase) listHistory(ctx context.Context, input GetHistoryInput) ([]entity.BodyStat, error) {
	if input.Period == HistoryLatest {
		limit := input.Limit
		if limit <= 0 {
			limit = defaultLatestLimit
		}
		history, err := uc.bodyStatsRepo.ListRecent(ctx, input.UserID, limit)
		if err != nil {
			return nil, domainerror.NewBodyStatsError(
				domainerror.ErrCodeBodyStatsInternalError,
				"failed to get body stat history",
				err,
			)
		}
		return history, nil
	}

	now := uc.now()
	var from time.Time
	switch input.Period {
	case HistoryWeek:
		from = now.AddDate(0, 0, -7)
	case HistoryMonth:
		from = now.AddDate(0, -1, 0)
	case HistoryYear:
		from = now.AddDate(-1, 0, 0)
	default:
		return nil, domainerror.NewBodyStatsError(
			domainerror.ErrCodeInvalidHistoryPeriod,
			"period must be: latest, week, month, or year",
			domainerror.ErrInvalidHistoryPeriod,
		)
	}

	history, err := uc.bodyStatsRepo.ListBetween(ctx, input.UserID, from, now, input.Limit)
	if err != nil {
		return nil, domainerror.NewBodyStatsError(
			domainerror.ErrCodeBodyStatsInternalError,
			"failed to get body stat history",
			err,
		)
	}
	return history, nil
}
