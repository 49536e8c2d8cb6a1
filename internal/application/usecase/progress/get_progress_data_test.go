package progress

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	domainerror "github.com/fittrack/backend/internal/domain/error"
)

// fakeProgressRepo is an in-memory ProgressRepository for use case tests.
type fakeProgressRepo struct {
	bodyStats      []Sample
	previousWeight decimal.NullDecimal
	previousErr    error
	sessionIDs     []uuid.UUID
	startTimes     []time.Time
	sets           []Sample
	setsQueried    bool
	failWith       error
}

func (f *fakeProgressRepo) ListBodyStatSamples(_ context.Context, _ uuid.UUID, _, _ time.Time) ([]Sample, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	return f.bodyStats, nil
}

func (f *fakeProgressRepo) LatestWeightBetween(_ context.Context, _ uuid.UUID, _, _ time.Time) (decimal.NullDecimal, error) {
	if f.previousErr != nil {
		return decimal.NullDecimal{}, f.previousErr
	}
	return f.previousWeight, nil
}

func (f *fakeProgressRepo) ListSessionIDs(_ context.Context, _ uuid.UUID, _, _ time.Time) ([]uuid.UUID, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	return f.sessionIDs, nil
}

func (f *fakeProgressRepo) ListSessionStartTimes(_ context.Context, _ uuid.UUID, _, _ time.Time) ([]time.Time, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	return f.startTimes, nil
}

func (f *fakeProgressRepo) ListExerciseSetSamples(_ context.Context, _ []uuid.UUID, _ string) ([]Sample, error) {
	f.setsQueried = true
	if f.failWith != nil {
		return nil, f.failWith
	}
	return f.sets, nil
}

// Wednesday 2025-06-18; the current Monday-start week is 6/16 - 6/22.
var testNow = time.Date(2025, 6, 18, 15, 0, 0, 0, time.UTC)

func fixedNow() time.Time { return testNow }

func TestGetProgressDataUseCase_Weight(t *testing.T) {
	userID := uuid.New()

	t.Run("change is latest minus previous rounded to 1 decimal", func(t *testing.T) {
		repo := &fakeProgressRepo{
			bodyStats: []Sample{
				sampleAt(time.Date(2025, 6, 16, 8, 0, 0, 0, time.UTC), 69.2),
				sampleAt(time.Date(2025, 6, 18, 8, 0, 0, 0, time.UTC), 68.0),
			},
			previousWeight: decimal.NewNullDecimal(decimal.NewFromFloat(70.0)),
		}
		uc := NewGetProgressDataUseCase(repo, fixedNow)

		output, err := uc.Execute(context.Background(), GetProgressDataInput{
			UserID: userID, DataType: DataTypeWeight, Period: PeriodWeek,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		stats, ok := output.Stats.(WeightStats)
		if !ok {
			t.Fatalf("expected WeightStats, got %T", output.Stats)
		}
		if stats.Change != -2.0 {
			t.Errorf("expected change -2.0, got %v", stats.Change)
		}
	})

	t.Run("change is 0 when the previous window has no record", func(t *testing.T) {
		repo := &fakeProgressRepo{
			bodyStats: []Sample{sampleAt(time.Date(2025, 6, 17, 8, 0, 0, 0, time.UTC), 68.0)},
		}
		uc := NewGetProgressDataUseCase(repo, fixedNow)

		output, err := uc.Execute(context.Background(), GetProgressDataInput{
			UserID: userID, DataType: DataTypeWeight, Period: PeriodWeek,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if stats := output.Stats.(WeightStats); stats.Change != 0 {
			t.Errorf("expected change 0, got %v", stats.Change)
		}
	})

	t.Run("a failed previous-window read degrades to change 0", func(t *testing.T) {
		repo := &fakeProgressRepo{
			bodyStats:   []Sample{sampleAt(time.Date(2025, 6, 17, 8, 0, 0, 0, time.UTC), 68.0)},
			previousErr: errors.New("connection reset"),
		}
		uc := NewGetProgressDataUseCase(repo, fixedNow)

		output, err := uc.Execute(context.Background(), GetProgressDataInput{
			UserID: userID, DataType: DataTypeWeight, Period: PeriodWeek,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if stats := output.Stats.(WeightStats); stats.Change != 0 {
			t.Errorf("expected change 0, got %v", stats.Change)
		}
	})

	t.Run("series uses last value per day and labels match the window", func(t *testing.T) {
		repo := &fakeProgressRepo{
			bodyStats: []Sample{
				sampleAt(time.Date(2025, 6, 16, 8, 0, 0, 0, time.UTC), 70.0),
				sampleAt(time.Date(2025, 6, 16, 20, 0, 0, 0, time.UTC), 69.5),
			},
		}
		uc := NewGetProgressDataUseCase(repo, fixedNow)

		output, err := uc.Execute(context.Background(), GetProgressDataInput{
			UserID: userID, DataType: DataTypeWeight, Period: PeriodWeek,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		// Monday 6/16 through Wednesday 6/18.
		if len(output.ChartData.Labels) != 3 {
			t.Fatalf("expected 3 labels, got %v", output.ChartData.Labels)
		}
		data := output.ChartData.Datasets[0].Data
		if data[0] != 69.5 {
			t.Errorf("expected last value 69.5 for Monday, got %v", data[0])
		}
		if data[1] != 0 || data[2] != 0 {
			t.Errorf("expected empty days to be 0, got %v", data)
		}
	})

	t.Run("query failure returns a coded internal error", func(t *testing.T) {
		repo := &fakeProgressRepo{failWith: errors.New("db down")}
		uc := NewGetProgressDataUseCase(repo, fixedNow)

		_, err := uc.Execute(context.Background(), GetProgressDataInput{
			UserID: userID, DataType: DataTypeWeight, Period: PeriodWeek,
		})
		var progressErr *domainerror.ProgressError
		if !errors.As(err, &progressErr) {
			t.Fatalf("expected ProgressError, got %v", err)
		}
		if progressErr.Code != domainerror.ErrCodeProgressInternalError {
			t.Errorf("expected code %s, got %s", domainerror.ErrCodeProgressInternalError, progressErr.Code)
		}
	})
}

func TestGetProgressDataUseCase_Strength(t *testing.T) {
	userID := uuid.New()

	t.Run("zero sessions short-circuits without querying sets", func(t *testing.T) {
		repo := &fakeProgressRepo{}
		uc := NewGetProgressDataUseCase(repo, fixedNow)

		output, err := uc.Execute(context.Background(), GetProgressDataInput{
			UserID: userID, DataType: DataTypeStrength, Period: PeriodWeek,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if repo.setsQueried {
			t.Error("expected set query to be skipped when no sessions exist")
		}

		data := output.ChartData.Datasets[0].Data
		if len(data) != len(output.ChartData.Labels) {
			t.Fatalf("expected %d values, got %d", len(output.ChartData.Labels), len(data))
		}
		for i, v := range data {
			if v != 0 {
				t.Errorf("bucket %d: expected 0, got %v", i, v)
			}
		}

		stats := output.Stats.(StrengthStats)
		if len(stats.MaxWeights) != 1 {
			t.Fatalf("expected one max-weight entry, got %d", len(stats.MaxWeights))
		}
		if stats.MaxWeights[0].Name != ReferenceExercise || stats.MaxWeights[0].Weight != 0 {
			t.Errorf("expected %s at 0, got %+v", ReferenceExercise, stats.MaxWeights[0])
		}
	})

	t.Run("series uses max per day and stats carry the window personal best", func(t *testing.T) {
		repo := &fakeProgressRepo{
			sessionIDs: []uuid.UUID{uuid.New()},
			sets: []Sample{
				sampleAt(time.Date(2025, 6, 16, 10, 0, 0, 0, time.UTC), 80),
				sampleAt(time.Date(2025, 6, 16, 10, 10, 0, 0, time.UTC), 85),
				sampleAt(time.Date(2025, 6, 18, 10, 0, 0, 0, time.UTC), 82.5),
			},
		}
		uc := NewGetProgressDataUseCase(repo, fixedNow)

		output, err := uc.Execute(context.Background(), GetProgressDataInput{
			UserID: userID, DataType: DataTypeStrength, Period: PeriodWeek,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		data := output.ChartData.Datasets[0].Data
		if data[0] != 85 {
			t.Errorf("expected max 85 for Monday, got %v", data[0])
		}
		if data[2] != 82.5 {
			t.Errorf("expected 82.5 for Wednesday, got %v", data[2])
		}

		stats := output.Stats.(StrengthStats)
		if stats.MaxWeights[0].Weight != 85 {
			t.Errorf("expected personal best 85, got %v", stats.MaxWeights[0].Weight)
		}
	})
}

func TestGetProgressDataUseCase_Workouts(t *testing.T) {
	userID := uuid.New()

	t.Run("total counts only sessions in the current Monday-start week", func(t *testing.T) {
		repo := &fakeProgressRepo{
			startTimes: []time.Time{
				time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC),  // earlier in month
				time.Date(2025, 6, 16, 10, 0, 0, 0, time.UTC), // this week
				time.Date(2025, 6, 17, 10, 0, 0, 0, time.UTC), // this week
			},
		}
		uc := NewGetProgressDataUseCase(repo, fixedNow)

		output, err := uc.Execute(context.Background(), GetProgressDataInput{
			UserID: userID, DataType: DataTypeWorkouts, Period: PeriodMonth,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		stats := output.Stats.(WorkoutStats)
		if stats.Total != 2 {
			t.Errorf("expected 2 sessions this week, got %d", stats.Total)
		}
		if stats.Target != WeeklySessionTarget {
			t.Errorf("expected target %d, got %d", WeeklySessionTarget, stats.Target)
		}
	})

	t.Run("series counts sessions per day", func(t *testing.T) {
		repo := &fakeProgressRepo{
			startTimes: []time.Time{
				time.Date(2025, 6, 2, 7, 0, 0, 0, time.UTC),
				time.Date(2025, 6, 2, 19, 0, 0, 0, time.UTC),
			},
		}
		uc := NewGetProgressDataUseCase(repo, fixedNow)

		output, err := uc.Execute(context.Background(), GetProgressDataInput{
			UserID: userID, DataType: DataTypeWorkouts, Period: PeriodMonth,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		// June 2: second label in a month window starting June 1.
		data := output.ChartData.Datasets[0].Data
		if data[1] != 2 {
			t.Errorf("expected 2 sessions on June 2, got %v", data[1])
		}
	})
}

func TestGetProgressDataUseCase_InvalidDataType(t *testing.T) {
	uc := NewGetProgressDataUseCase(&fakeProgressRepo{}, fixedNow)

	_, err := uc.Execute(context.Background(), GetProgressDataInput{
		UserID: uuid.New(), DataType: DataType("cardio"), Period: PeriodWeek,
	})

	var progressErr *domainerror.ProgressError
	if !errors.As(err, &progressErr) {
		t.Fatalf("expected ProgressError, got %v", err)
	}
	if progressErr.Code != domainerror.ErrCodeInvalidDataType {
		t.Errorf("expected code %s, got %s", domainerror.ErrCodeInvalidDataType, progressErr.Code)
	}
	if !errors.Is(err, domainerror.ErrInvalidDataType) {
		t.Error("expected error to unwrap to ErrInvalidDataType")
	}
}

func TestGetProgressDataUseCase_InvalidPeriod(t *testing.T) {
	uc := NewGetProgressDataUseCase(&fakeProgressRepo{}, fixedNow)

	_, err := uc.Execute(context.Background(), GetProgressDataInput{
		UserID: uuid.New(), DataType: DataTypeWeight, Period: Period("decade"),
	})

	var progressErr *domainerror.ProgressError
	if !errors.As(err, &progressErr) {
		t.Fatalf("expected ProgressError, got %v", err)
	}
	if progressErr.Code != domainerror.ErrCodeInvalidPeriod {
		t.Errorf("expected code %s, got %s", domainerror.ErrCodeInvalidPeriod, progressErr.Code)
	}
	if !errors.Is(err, domainerror.ErrInvalidPeriod) {
		t.Error("expected error to unwrap to ErrInvalidPeriod")
	}
}
