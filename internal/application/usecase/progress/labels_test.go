package progress

import (
	"testing"
	"time"
)

func TestGenerateChartLabels_Week(t *testing.T) {
	start := time.Date(2025, 6, 16, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 6, 18, 15, 30, 0, 0, time.UTC)

	labels := GenerateChartLabels(start, end, PeriodWeek)

	if labels.Format != FormatMonthDay {
		t.Errorf("expected format FormatMonthDay, got %v", labels.Format)
	}

	want := []string{"6/16", "6/17", "6/18"}
	if len(labels.Labels) != len(want) {
		t.Fatalf("expected %d labels, got %d: %v", len(want), len(labels.Labels), labels.Labels)
	}
	for i := range want {
		if labels.Labels[i] != want[i] {
			t.Errorf("label %d: expected %q, got %q", i, want[i], labels.Labels[i])
		}
	}
}

func TestGenerateChartLabels_Month(t *testing.T) {
	start := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 3, 15, 12, 0, 0, 0, time.UTC)

	labels := GenerateChartLabels(start, end, PeriodMonth)

	if labels.Format != FormatDayOfMonth {
		t.Errorf("expected format FormatDayOfMonth, got %v", labels.Format)
	}

	if len(labels.Labels) != 15 {
		t.Fatalf("expected 15 labels, got %d: %v", len(labels.Labels), labels.Labels)
	}
	if labels.Labels[0] != "1" {
		t.Errorf("expected first label \"1\", got %q", labels.Labels[0])
	}
	if labels.Labels[14] != "15" {
		t.Errorf("expected last label \"15\", got %q", labels.Labels[14])
	}
}

func TestGenerateChartLabels_Year(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 6, 18, 12, 0, 0, 0, time.UTC)

	labels := GenerateChartLabels(start, end, PeriodYear)

	if labels.Format != FormatMonthOnly {
		t.Errorf("expected format FormatMonthOnly, got %v", labels.Format)
	}

	want := []string{"1月", "2月", "3月", "4月", "5月", "6月"}
	if len(labels.Labels) != len(want) {
		t.Fatalf("expected %d labels, got %d: %v", len(want), len(labels.Labels), labels.Labels)
	}
	for i := range want {
		if labels.Labels[i] != want[i] {
			t.Errorf("label %d: expected %q, got %q", i, want[i], labels.Labels[i])
		}
	}
}

func TestGenerateChartLabels_CoversWholeWindow(t *testing.T) {
	tests := []struct {
		name   string
		period Period
		start  time.Time
		end    time.Time
		want   int
	}{
		{
			name:   "full week",
			period: PeriodWeek,
			start:  time.Date(2025, 6, 9, 0, 0, 0, 0, time.UTC),
			end:    time.Date(2025, 6, 15, 23, 0, 0, 0, time.UTC),
			want:   7,
		},
		{
			name:   "window crossing a month boundary",
			period: PeriodWeek,
			start:  time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC),
			end:    time.Date(2025, 7, 2, 10, 0, 0, 0, time.UTC),
			want:   3,
		},
		{
			name:   "full year",
			period: PeriodYear,
			start:  time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
			end:    time.Date(2025, 12, 31, 23, 0, 0, 0, time.UTC),
			want:   12,
		},
		{
			name:   "single day",
			period: PeriodMonth,
			start:  time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
			end:    time.Date(2025, 3, 1, 8, 0, 0, 0, time.UTC),
			want:   1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			labels := GenerateChartLabels(tt.start, tt.end, tt.period)
			if len(labels.Labels) != tt.want {
				t.Errorf("expected %d labels, got %d: %v", tt.want, len(labels.Labels), labels.Labels)
			}
			seen := make(map[string]bool, len(labels.Labels))
			for _, label := range labels.Labels {
				if seen[label] {
					t.Errorf("duplicate label %q within a single window", label)
				}
				seen[label] = true
			}
		})
	}
}

func TestGenerateChartLabels_UnknownPeriodFallsBackToMonth(t *testing.T) {
	start := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC)

	labels := GenerateChartLabels(start, end, Period("quarter"))

	if labels.Format != FormatDayOfMonth {
		t.Errorf("expected format FormatDayOfMonth, got %v", labels.Format)
	}
	if len(labels.Labels) != 3 || labels.Labels[0] != "1" {
		t.Errorf("expected day-number labels, got %v", labels.Labels)
	}
}

func TestLabelFormat_BucketKey(t *testing.T) {
	date := time.Date(2025, 6, 5, 14, 0, 0, 0, time.UTC) // Thursday

	tests := []struct {
		name   string
		format LabelFormat
		want   string
	}{
		{"day of month has no leading zero", FormatDayOfMonth, "5"},
		{"month/day has no leading zeros", FormatMonthDay, "6/5"},
		{"month only", FormatMonthOnly, "6月"},
		{"weekday", FormatWeekday, "木"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.format.BucketKey(date); got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}
