package bodystats

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/fittrack/backend/internal/domain/entity"
	domainerror "github.com/fittrack/backend/internal/domain/error"
)

type fakeBodyStatsRepo struct {
	upserted    *entity.BodyStat
	history     []entity.BodyStat
	recentLimit int
	listedFrom  time.Time
	listedTo    time.Time
	failWith    error
}

func (f *fakeBodyStatsRepo) Upsert(_ context.Context, stat entity.BodyStat) (*entity.BodyStat, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	f.upserted = &stat
	return &stat, nil
}

func (f *fakeBodyStatsRepo) ListRecent(_ context.Context, _ uuid.UUID, limit int) ([]entity.BodyStat, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	f.recentLimit = limit
	return f.history, nil
}

func (f *fakeBodyStatsRepo) ListBetween(_ context.Context, _ uuid.UUID, from, to time.Time, _ int) ([]entity.BodyStat, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	f.listedFrom = from
	f.listedTo = to
	return f.history, nil
}

var testNow = time.Date(2025, 6, 18, 15, 0, 0, 0, time.UTC)

func fixedNow() time.Time { return testNow }

func statOn(day time.Time, weight float64) entity.BodyStat {
	return entity.BodyStat{
		ID:         uuid.New(),
		UserID:     uuid.New(),
		Weight:     decimal.NewFromFloat(weight),
		RecordedAt: day,
	}
}

func TestRecordBodyStatUseCase_Execute(t *testing.T) {
	userID := uuid.New()

	t.Run("records a valid stat", func(t *testing.T) {
		repo := &fakeBodyStatsRepo{}
		uc := NewRecordBodyStatUseCase(repo)

		output, err := uc.Execute(context.Background(), RecordBodyStatInput{
			UserID:  userID,
			Weight:  decimal.NewFromFloat(68.5),
			BodyFat: decimal.NewNullDecimal(decimal.NewFromFloat(18.2)),
			Date:    "2025-06-18",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if repo.upserted == nil {
			t.Fatal("expected a row to be upserted")
		}
		if !output.Stat.Weight.Equal(decimal.NewFromFloat(68.5)) {
			t.Errorf("expected weight 68.5, got %s", output.Stat.Weight)
		}
		if output.Stat.RecordedAt.Format("2006-01-02") != "2025-06-18" {
			t.Errorf("expected recorded_at 2025-06-18, got %v", output.Stat.RecordedAt)
		}
	})

	tests := []struct {
		name     string
		input    RecordBodyStatInput
		wantCode domainerror.BodyStatsErrorCode
	}{
		{
			name:     "missing weight",
			input:    RecordBodyStatInput{UserID: userID, Date: "2025-06-18"},
			wantCode: domainerror.ErrCodeMissingBodyStatFields,
		},
		{
			name:     "missing date",
			input:    RecordBodyStatInput{UserID: userID, Weight: decimal.NewFromFloat(68.5)},
			wantCode: domainerror.ErrCodeMissingBodyStatFields,
		},
		{
			name: "negative weight",
			input: RecordBodyStatInput{
				UserID: userID, Weight: decimal.NewFromFloat(-1), Date: "2025-06-18",
			},
			wantCode: domainerror.ErrCodeInvalidWeight,
		},
		{
			name: "unparseable date",
			input: RecordBodyStatInput{
				UserID: userID, Weight: decimal.NewFromFloat(68.5), Date: "18/06/2025",
			},
			wantCode: domainerror.ErrCodeInvalidBodyStatDate,
		},
		{
			name: "body fat above 100",
			input: RecordBodyStatInput{
				UserID:  userID,
				Weight:  decimal.NewFromFloat(68.5),
				BodyFat: decimal.NewNullDecimal(decimal.NewFromInt(101)),
				Date:    "2025-06-18",
			},
			wantCode: domainerror.ErrCodeInvalidBodyFat,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := NewRecordBodyStatUseCase(&fakeBodyStatsRepo{})
			_, err := uc.Execute(context.Background(), tt.input)

			var bodyStatsErr *domainerror.BodyStatsError
			if !errors.As(err, &bodyStatsErr) {
				t.Fatalf("expected BodyStatsError, got %v", err)
			}
			if bodyStatsErr.Code != tt.wantCode {
				t.Errorf("expected code %s, got %s", tt.wantCode, bodyStatsErr.Code)
			}
		})
	}
}

func TestGetHistoryUseCase_Latest(t *testing.T) {
	t.Run("defaults to the two most recent rows", func(t *testing.T) {
		repo := &fakeBodyStatsRepo{history: []entity.BodyStat{
			statOn(testNow, 68.0),
			statOn(testNow.AddDate(0, 0, -1), 68.4),
		}}
		uc := NewGetHistoryUseCase(repo, fixedNow)

		_, err := uc.Execute(context.Background(), GetHistoryInput{UserID: uuid.New(), Period: HistoryLatest})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if repo.recentLimit != 2 {
			t.Errorf("expected default limit 2, got %d", repo.recentLimit)
		}
	})

	t.Run("honors an explicit limit", func(t *testing.T) {
		repo := &fakeBodyStatsRepo{}
		uc := NewGetHistoryUseCase(repo, fixedNow)

		_, err := uc.Execute(context.Background(), GetHistoryInput{
			UserID: uuid.New(), Period: HistoryLatest, Limit: 10,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if repo.recentLimit != 10 {
			t.Errorf("expected limit 10, got %d", repo.recentLimit)
		}
	})
}

func TestGetHistoryUseCase_RollingWindows(t *testing.T) {
	tests := []struct {
		name     string
		period   HistoryPeriod
		wantFrom time.Time
	}{
		{"week is 7 days back", HistoryWeek, testNow.AddDate(0, 0, -7)},
		{"month is one calendar month back", HistoryMonth, testNow.AddDate(0, -1, 0)},
		{"year is one calendar year back", HistoryYear, testNow.AddDate(-1, 0, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeBodyStatsRepo{}
			uc := NewGetHistoryUseCase(repo, fixedNow)

			_, err := uc.Execute(context.Background(), GetHistoryInput{UserID: uuid.New(), Period: tt.period})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !repo.listedFrom.Equal(tt.wantFrom) {
				t.Errorf("expected from %v, got %v", tt.wantFrom, repo.listedFrom)
			}
			if !repo.listedTo.Equal(testNow) {
				t.Errorf("expected to %v, got %v", testNow, repo.listedTo)
			}
		})
	}
}

func TestGetHistoryUseCase_Stats(t *testing.T) {
	t.Run("stats derive from newest and oldest rows", func(t *testing.T) {
		repo := &fakeBodyStatsRepo{history: []entity.BodyStat{
			statOn(testNow, 68.0),
			statOn(testNow.AddDate(0, 0, -3), 69.1),
			statOn(testNow.AddDate(0, 0, -6), 70.0),
		}}
		uc := NewGetHistoryUseCase(repo, fixedNow)

		output, err := uc.Execute(context.Background(), GetHistoryInput{UserID: uuid.New(), Period: HistoryWeek})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if output.Stats.Current == nil || *output.Stats.Current != 68.0 {
			t.Errorf("expected current 68.0, got %v", output.Stats.Current)
		}
		if output.Stats.Start == nil || *output.Stats.Start != 70.0 {
			t.Errorf("expected start 70.0, got %v", output.Stats.Start)
		}
		if output.Stats.Change == nil || *output.Stats.Change != -2.0 {
			t.Errorf("expected change -2.0, got %v", output.Stats.Change)
		}
	})

	t.Run("empty history yields nil stats and an empty chart", func(t *testing.T) {
		uc := NewGetHistoryUseCase(&fakeBodyStatsRepo{}, fixedNow)

		output, err := uc.Execute(context.Background(), GetHistoryInput{UserID: uuid.New(), Period: HistoryWeek})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.Stats.Current != nil || output.Stats.Start != nil || output.Stats.Change != nil {
			t.Errorf("expected nil stats, got %+v", output.Stats)
		}
		if len(output.ChartData.Labels) != 0 {
			t.Errorf("expected no chart labels, got %v", output.ChartData.Labels)
		}
	})
}

func TestGetHistoryUseCase_ChartEntries(t *testing.T) {
	// Rows arrive descending; the chart must be ascending with one point
	// per entry.
	repo := &fakeBodyStatsRepo{history: []entity.BodyStat{
		statOn(time.Date(2025, 6, 18, 0, 0, 0, 0, time.UTC), 68.0),
		statOn(time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC), 69.1),
	}}

	t.Run("month history labels entries as M/d", func(t *testing.T) {
		uc := NewGetHistoryUseCase(repo, fixedNow)
		output, err := uc.Execute(context.Background(), GetHistoryInput{UserID: uuid.New(), Period: HistoryMonth})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(output.ChartData.Labels) != 2 {
			t.Fatalf("expected 2 labels, got %v", output.ChartData.Labels)
		}
		if output.ChartData.Labels[0] != "6/15" || output.ChartData.Labels[1] != "6/18" {
			t.Errorf("expected ascending M/d labels, got %v", output.ChartData.Labels)
		}
		if output.ChartData.Datasets[0].Data[0] != 69.1 {
			t.Errorf("expected first value 69.1, got %v", output.ChartData.Datasets[0].Data[0])
		}
	})

	t.Run("week history labels entries by weekday", func(t *testing.T) {
		uc := NewGetHistoryUseCase(repo, fixedNow)
		output, err := uc.Execute(context.Background(), GetHistoryInput{UserID: uuid.New(), Period: HistoryWeek})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		// 6/15 is a Sunday, 6/18 a Wednesday.
		if output.ChartData.Labels[0] != "日" || output.ChartData.Labels[1] != "水" {
			t.Errorf("expected weekday labels, got %v", output.ChartData.Labels)
		}
	})

	t.Run("year history labels entries as M月", func(t *testing.T) {
		uc := NewGetHistoryUseCase(repo, fixedNow)
		output, err := uc.Execute(context.Background(), GetHistoryInput{UserID: uuid.New(), Period: HistoryYear})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.ChartData.Labels[0] != "6月" {
			t.Errorf("expected 6月, got %v", output.ChartData.Labels)
		}
	})
}

func TestGetHistoryUseCase_InvalidPeriod(t *testing.T) {
	uc := NewGetHistoryUseCase(&fakeBodyStatsRepo{}, fixedNow)

	_, err := uc.Execute(context.Background(), GetHistoryInput{
		UserID: uuid.New(), Period: HistoryPeriod("decade"),
	})

	var bodyStatsErr *domainerror.BodyStatsError
	if !errors.As(err, &bodyStatsErr) {
		t.Fatalf("expected BodyStatsError, got %v", err)
	}
	if bodyStatsErr.Code != domainerror.ErrCodeInvalidHistoryPeriod {
		t.Errorf("expected code %s, got %s", domainerror.ErrCodeInvalidHistoryPeriod, bodyStatsErr.Code)
	}
}
