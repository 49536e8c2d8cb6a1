package progress

import (
	"testing"
	"time"
)

func TestCalculateDateRange_Week(t *testing.T) {
	// Wednesday 2025-06-18 15:30 local time.
	now := time.Date(2025, 6, 18, 15, 30, 0, 0, time.UTC)

	dateRange := CalculateDateRange(PeriodWeek, now)

	t.Run("start is the most recent Monday at midnight", func(t *testing.T) {
		wantStart := time.Date(2025, 6, 16, 0, 0, 0, 0, time.UTC)
		if !dateRange.Start.Equal(wantStart) {
			t.Errorf("expected start %v, got %v", wantStart, dateRange.Start)
		}
	})

	t.Run("end is now", func(t *testing.T) {
		if !dateRange.End.Equal(now) {
			t.Errorf("expected end %v, got %v", now, dateRange.End)
		}
	})

	t.Run("previous window is the full Monday-to-Sunday week before", func(t *testing.T) {
		wantPrevStart := time.Date(2025, 6, 9, 0, 0, 0, 0, time.UTC)
		if !dateRange.PreviousStart.Equal(wantPrevStart) {
			t.Errorf("expected previous start %v, got %v", wantPrevStart, dateRange.PreviousStart)
		}
		if dateRange.PreviousEnd.Day() != 15 || dateRange.PreviousEnd.Hour() != 23 {
			t.Errorf("expected previous end on Sunday the 15th at end of day, got %v", dateRange.PreviousEnd)
		}
	})

	t.Run("Sunday belongs to the week started the previous Monday", func(t *testing.T) {
		sunday := time.Date(2025, 6, 22, 10, 0, 0, 0, time.UTC)
		sundayRange := CalculateDateRange(PeriodWeek, sunday)
		wantStart := time.Date(2025, 6, 16, 0, 0, 0, 0, time.UTC)
		if !sundayRange.Start.Equal(wantStart) {
			t.Errorf("expected start %v, got %v", wantStart, sundayRange.Start)
		}
	})
}

func TestCalculateDateRange_Month(t *testing.T) {
	now := time.Date(2025, 3, 15, 12, 0, 0, 0, time.UTC)

	dateRange := CalculateDateRange(PeriodMonth, now)

	t.Run("start is the first of the current month", func(t *testing.T) {
		wantStart := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
		if !dateRange.Start.Equal(wantStart) {
			t.Errorf("expected start %v, got %v", wantStart, dateRange.Start)
		}
	})

	t.Run("previous window is the calendar month 30 days back", func(t *testing.T) {
		// 2025-03-15 minus 30 days is 2025-02-13, so the previous window
		// covers February.
		wantPrevStart := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)
		if !dateRange.PreviousStart.Equal(wantPrevStart) {
			t.Errorf("expected previous start %v, got %v", wantPrevStart, dateRange.PreviousStart)
		}
		if dateRange.PreviousEnd.Month() != time.February || dateRange.PreviousEnd.Day() != 28 {
			t.Errorf("expected previous end on Feb 28, got %v", dateRange.PreviousEnd)
		}
	})

	t.Run("fixed 30-day anchor can land inside the same month", func(t *testing.T) {
		// Late in a 31-day month the anchor stays in that month, so the
		// previous window equals the current month.
		lateInMonth := time.Date(2025, 7, 31, 12, 0, 0, 0, time.UTC)
		r := CalculateDateRange(PeriodMonth, lateInMonth)
		if r.PreviousStart.Month() != time.July {
			t.Errorf("expected previous window anchored in July, got %v", r.PreviousStart)
		}
	})
}

func TestCalculateDateRange_Year(t *testing.T) {
	now := time.Date(2025, 6, 18, 12, 0, 0, 0, time.UTC)

	dateRange := CalculateDateRange(PeriodYear, now)

	wantStart := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	if !dateRange.Start.Equal(wantStart) {
		t.Errorf("expected start %v, got %v", wantStart, dateRange.Start)
	}

	wantPrevStart := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	if !dateRange.PreviousStart.Equal(wantPrevStart) {
		t.Errorf("expected previous start %v, got %v", wantPrevStart, dateRange.PreviousStart)
	}
	if dateRange.PreviousEnd.Year() != 2024 || dateRange.PreviousEnd.Month() != time.December {
		t.Errorf("expected previous end in December 2024, got %v", dateRange.PreviousEnd)
	}
}

func TestCalculateDateRange_UnknownPeriodFallsBackToMonth(t *testing.T) {
	now := time.Date(2025, 3, 15, 12, 0, 0, 0, time.UTC)

	got := CalculateDateRange(Period("quarter"), now)
	want := CalculateDateRange(PeriodMonth, now)

	if !got.Start.Equal(want.Start) || !got.PreviousStart.Equal(want.PreviousStart) {
		t.Errorf("expected month fallback %+v, got %+v", want, got)
	}
}
