// Package progress contains the progress analytics use cases: date-range
// calculation, chart-label generation, and time-series aggregation shared by
// the progress chart, the home summary, and the body-stats history.
package progress

import "time"

// Period is the requested overall time window granularity.
type Period string

const (
	PeriodWeek  Period = "week"
	PeriodMonth Period = "month"
	PeriodYear  Period = "year"
)

// DateRange holds the current window and the equivalent prior window used for
// delta comparisons. End is always "now"; the prior window covers the full
// prior calendar period.
type DateRange struct {
	Start         time.Time
	End           time.Time
	PreviousStart time.Time
	PreviousEnd   time.Time
}

// CalculateDateRange computes the current and previous windows for a period.
// week: Start = most recent Monday; the previous window is the full
// Monday-to-Sunday week 7 days earlier. month: Start = first of the current
// month; the previous window is the calendar month containing now minus
// 30 days. year: Start = January 1; the previous window is the calendar year
// containing now minus 365 days. The month/year previous windows use fixed
// 30/365-day anchors rather than calendar-exact arithmetic, so a 31-day month
// can be compared against a window anchored inside the same month.
// Unrecognized periods fall back to month semantics.
func CalculateDateRange(period Period, now time.Time) DateRange {
	switch period {
	case PeriodWeek:
		anchor := now.AddDate(0, 0, -7)
		return DateRange{
			Start:         startOfWeek(now),
			End:           now,
			PreviousStart: startOfWeek(anchor),
			PreviousEnd:   endOfWeek(anchor),
		}
	case PeriodYear:
		anchor := now.AddDate(0, 0, -365)
		return DateRange{
			Start:         startOfYear(now),
			End:           now,
			PreviousStart: startOfYear(anchor),
			PreviousEnd:   endOfYear(anchor),
		}
	default:
		anchor := now.AddDate(0, 0, -30)
		return DateRange{
			Start:         startOfMonth(now),
			End:           now,
			PreviousStart: startOfMonth(anchor),
			PreviousEnd:   endOfMonth(anchor),
		}
	}
}

// startOfWeek returns the Monday 00:00 of the week containing date.
func startOfWeek(date time.Time) time.Time {
	weekday := int(date.Weekday())
	if weekday == 0 {
		weekday = 7 // Sunday is 7
	}
	return time.Date(date.Year(), date.Month(), date.Day()-(weekday-1), 0, 0, 0, 0, date.Location())
}

// endOfWeek returns the last instant of the Sunday of the week containing date.
func endOfWeek(date time.Time) time.Time {
	return endOfDay(startOfWeek(date).AddDate(0, 0, 6))
}

func startOfMonth(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), 1, 0, 0, 0, 0, date.Location())
}

func endOfMonth(date time.Time) time.Time {
	return endOfDay(startOfMonth(date).AddDate(0, 1, -1))
}

func startOfYear(date time.Time) time.Time {
	return time.Date(date.Year(), time.January, 1, 0, 0, 0, 0, date.Location())
}

func endOfYear(date time.Time) time.Time {
	return endOfDay(time.Date(date.Year(), time.December, 31, 0, 0, 0, 0, date.Location()))
}

func endOfDay(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), 23, 59, 59, int(time.Second-time.Nanosecond), date.Location())
}
