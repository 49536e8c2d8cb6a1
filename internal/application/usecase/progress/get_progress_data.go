package progress

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	domainerror "github.com/fittrack/backend/internal/domain/error"
)

// DataType selects which progress series is requested.
type DataType string

const (
	DataTypeWeight   DataType = "weight"
	DataTypeStrength DataType = "strength"
	DataTypeWorkouts DataType = "workouts"
)

// ReferenceExercise is the fixed exercise the strength chart tracks.
const ReferenceExercise = "ベンチプレス"

// WeeklySessionTarget is the fixed weekly workout goal.
const WeeklySessionTarget = 5

// GetProgressDataInput represents the input for the progress chart.
type GetProgressDataInput struct {
	UserID   uuid.UUID
	DataType DataType
	Period   Period
}

// Dataset is one chart series.
type Dataset struct {
	Data []float64 `json:"data"`
}

// ChartData is the chart payload shape the mobile client renders.
type ChartData struct {
	Labels   []string  `json:"labels"`
	Datasets []Dataset `json:"datasets"`
}

// Stats is the per-data-type statistics payload, discriminated by the
// concrete type: WeightStats, StrengthStats, or WorkoutStats.
type Stats interface {
	progressStats()
}

// WeightStats carries the weight delta against the previous window.
type WeightStats struct {
	Change float64 `json:"change"`
}

// MaxWeight is one personal-best entry.
type MaxWeight struct {
	Name   string  `json:"name"`
	Weight float64 `json:"weight"`
}

// StrengthStats carries the in-window personal best for the reference
// exercise.
type StrengthStats struct {
	MaxWeights []MaxWeight `json:"maxWeights"`
}

// WorkoutStats carries the current-week session count against the fixed
// target.
type WorkoutStats struct {
	Total  int `json:"total"`
	Target int `json:"target"`
}

func (WeightStats) progressStats()   {}
func (StrengthStats) progressStats() {}
func (WorkoutStats) progressStats()  {}

// GetProgressDataOutput represents the output of the progress chart.
type GetProgressDataOutput struct {
	ChartData ChartData
	Stats     Stats
}

// GetProgressDataUseCase assembles the progress chart for one data type and
// period.
type GetProgressDataUseCase struct {
	progressRepo ProgressRepository
	now          func() time.Time
}

// NewGetProgressDataUseCase creates a new GetProgressDataUseCase instance.
// now is the clock used for window calculation; nil means time.Now.
func NewGetProgressDataUseCase(progressRepo ProgressRepository, now func() time.Time) *GetProgressDataUseCase {
	if now == nil {
		now = time.Now
	}
	return &GetProgressDataUseCase{
		progressRepo: progressRepo,
		now:          now,
	}
}

// Execute computes the chart series and statistics for the requested data
// type over the requested period.
func (uc *GetProgressDataUseCase) Execute(
	ctx context.Context,
	input GetProgressDataInput,
) (*GetProgressDataOutput, error) {
	switch input.Period {
	case PeriodWeek, PeriodMonth, PeriodYear:
	default:
		return nil, domainerror.NewProgressError(
			domainerror.ErrCodeInvalidPeriod,
			"period must be: week, month, or year",
			domainerror.ErrInvalidPeriod,
		)
	}

	dateRange := CalculateDateRange(input.Period, uc.now())
	labels := GenerateChartLabels(dateRange.Start, dateRange.End, input.Period)

	switch input.DataType {
	case DataTypeWeight:
		return uc.weightProgress(ctx, input.UserID, dateRange, labels)
	case DataTypeStrength:
		return uc.strengthProgress(ctx, input.UserID, dateRange, labels)
	case DataTypeWorkouts:
		return uc.workoutProgress(ctx, input.UserID, dateRange, labels)
	default:
		return nil, domainerror.NewProgressError(
			domainerror.ErrCodeInvalidDataType,
			"dataType must be: weight, strength, or workouts",
			domainerror.ErrInvalidDataType,
		)
	}
}

func (uc *GetProgressDataUseCase) weightProgress(
	ctx context.Context,
	userID uuid.UUID,
	dateRange DateRange,
	labels ChartLabels,
) (*GetProgressDataOutput, error) {
	samples, err := uc.progressRepo.ListBodyStatSamples(ctx, userID, dateRange.Start, dateRange.End)
	if err != nil {
		return nil, domainerror.NewProgressError(
			domainerror.ErrCodeProgressInternalError,
			"failed to get body stats",
			err,
		)
	}

	series := AggregateSeries(samples, labels, ReduceLast)

	// Change compares the latest in-window weight against the most recent
	// weight in the previous window; either side missing means 0. A failed
	// previous-window read degrades to 0 rather than failing the request.
	change := 0.0
	previous, err := uc.progressRepo.LatestWeightBetween(ctx, userID, dateRange.PreviousStart, dateRange.PreviousEnd)
	if err != nil {
		slog.WarnContext(ctx, "could not fetch previous weight for change stat, defaulting to 0",
			slog.String("error", err.Error()))
		previous = decimal.NullDecimal{}
	}
	latest := latestValidWeight(samples)
	if latest.Valid && previous.Valid {
		change = latest.Decimal.Sub(previous.Decimal).Round(1).InexactFloat64()
	}

	return &GetProgressDataOutput{
		ChartData: ChartData{Labels: labels.Labels, Datasets: []Dataset{{Data: series}}},
		Stats:     WeightStats{Change: change},
	}, nil
}

func (uc *GetProgressDataUseCase) strengthProgress(
	ctx context.Context,
	userID uuid.UUID,
	dateRange DateRange,
	labels ChartLabels,
) (*GetProgressDataOutput, error) {
	sessionIDs, err := uc.progressRepo.ListSessionIDs(ctx, userID, dateRange.Start, dateRange.End)
	if err != nil {
		return nil, domainerror.NewProgressError(
			domainerror.ErrCodeProgressInternalError,
			"failed to get sessions",
			err,
		)
	}

	// No sessions in the window: skip the set query entirely.
	if len(sessionIDs) == 0 {
		return &GetProgressDataOutput{
			ChartData: ChartData{Labels: labels.Labels, Datasets: []Dataset{{Data: make([]float64, len(labels.Labels))}}},
			Stats:     StrengthStats{MaxWeights: []MaxWeight{{Name: ReferenceExercise, Weight: 0}}},
		}, nil
	}

	sets, err := uc.progressRepo.ListExerciseSetSamples(ctx, sessionIDs, ReferenceExercise)
	if err != nil {
		return nil, domainerror.NewProgressError(
			domainerror.ErrCodeProgressInternalError,
			"failed to get exercise sets",
			err,
		)
	}

	series := AggregateSeries(sets, labels, ReduceMax)

	best := decimal.Zero
	for _, set := range sets {
		if set.Value.Valid && set.Value.Decimal.GreaterThan(best) {
			best = set.Value.Decimal
		}
	}

	return &GetProgressDataOutput{
		ChartData: ChartData{Labels: labels.Labels, Datasets: []Dataset{{Data: series}}},
		Stats:     StrengthStats{MaxWeights: []MaxWeight{{Name: ReferenceExercise, Weight: best.InexactFloat64()}}},
	}, nil
}

func (uc *GetProgressDataUseCase) workoutProgress(
	ctx context.Context,
	userID uuid.UUID,
	dateRange DateRange,
	labels ChartLabels,
) (*GetProgressDataOutput, error) {
	startTimes, err := uc.progressRepo.ListSessionStartTimes(ctx, userID, dateRange.Start, dateRange.End)
	if err != nil {
		return nil, domainerror.NewProgressError(
			domainerror.ErrCodeProgressInternalError,
			"failed to get session start times",
			err,
		)
	}

	series := AggregateCounts(startTimes, labels)

	// The "this week" count always uses the Monday-start calendar week
	// containing now, independent of the requested period window.
	now := uc.now()
	weekStart := startOfWeek(now)
	weekEnd := endOfWeek(now)
	total := 0
	for _, startTime := range startTimes {
		if !startTime.Before(weekStart) && !startTime.After(weekEnd) {
			total++
		}
	}

	return &GetProgressDataOutput{
		ChartData: ChartData{Labels: labels.Labels, Datasets: []Dataset{{Data: series}}},
		Stats:     WorkoutStats{Total: total, Target: WeeklySessionTarget},
	}, nil
}

// latestValidWeight returns the last non-null sample, assuming ascending
// input order.
func latestValidWeight(samples []Sample) decimal.NullDecimal {
	for i := len(samples) - 1; i >= 0; i-- {
		if samples[i].Value.Valid {
			return samples[i].Value
		}
	}
	return decimal.NullDecimal{}
}
