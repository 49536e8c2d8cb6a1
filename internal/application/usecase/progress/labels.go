package progress

import (
	"fmt"
	"strconv"
	"time"
)

// LabelFormat identifies the date formatting convention a label sequence was
// generated with. The format travels with the labels so the aggregator can
// assign a raw timestamp to a bucket without inspecting label strings.
type LabelFormat int

const (
	// FormatDayOfMonth formats as the bare day number, "5". Labels are not
	// globally unique across months; callers rely on the explicit date
	// window to keep buckets unambiguous.
	FormatDayOfMonth LabelFormat = iota

	// FormatMonthDay formats as "M/d" without leading zeros, "5/1".
	FormatMonthDay

	// FormatMonthOnly formats as "M月", "5月".
	FormatMonthOnly

	// FormatWeekday formats as the Japanese single-character weekday, "月".
	FormatWeekday
)

var japaneseWeekdays = [7]string{"日", "月", "火", "水", "木", "金", "土"}

// BucketKey formats a timestamp with the same convention the labels were
// generated with.
func (f LabelFormat) BucketKey(t time.Time) string {
	switch f {
	case FormatMonthDay:
		return fmt.Sprintf("%d/%d", int(t.Month()), t.Day())
	case FormatMonthOnly:
		return fmt.Sprintf("%d月", int(t.Month()))
	case FormatWeekday:
		return japaneseWeekdays[int(t.Weekday())]
	default:
		return strconv.Itoa(t.Day())
	}
}

// ChartLabels is an ordered bucket label sequence plus the format that maps a
// timestamp into one of those buckets.
type ChartLabels struct {
	Labels []string
	Format LabelFormat
}

// GenerateChartLabels produces one label per calendar day (week and month
// periods) or per calendar month (year period) covering [start, end],
// chronologically ascending with no gaps. week labels are "M/d", month labels
// bare day numbers, year labels "M月". Unrecognized periods fall back to
// month semantics.
func GenerateChartLabels(start, end time.Time, period Period) ChartLabels {
	switch period {
	case PeriodWeek:
		return ChartLabels{Labels: eachDayLabels(start, end, FormatMonthDay), Format: FormatMonthDay}
	case PeriodYear:
		return ChartLabels{Labels: eachMonthLabels(start, end), Format: FormatMonthOnly}
	default:
		return ChartLabels{Labels: eachDayLabels(start, end, FormatDayOfMonth), Format: FormatDayOfMonth}
	}
}

// eachDayLabels formats every calendar day in [start, end].
func eachDayLabels(start, end time.Time, format LabelFormat) []string {
	var labels []string
	current := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, start.Location())
	for !current.After(end) {
		labels = append(labels, format.BucketKey(current))
		current = current.AddDate(0, 0, 1)
	}
	return labels
}

// eachMonthLabels formats every calendar month in [start, end].
func eachMonthLabels(start, end time.Time) []string {
	var labels []string
	current := time.Date(start.Year(), start.Month(), 1, 0, 0, 0, 0, start.Location())
	for !current.After(end) {
		labels = append(labels, FormatMonthOnly.BucketKey(current))
		current = current.AddDate(0, 1, 0)
	}
	return labels
}
