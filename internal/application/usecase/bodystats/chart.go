package bodystats

import (
	"sort"

	"github.com/fittrack/backend/internal/domain/entity"
	"github.com/fittrack/backend/internal/application/usecase/progress"
)

// buildChartEntries renders one chart point per history entry, ascending by
// recorded_at. Unlike the progress chart there is no bucket fill; days
// without a measurement simply have no point. Week histories label entries
// by weekday, month by "M/d", everything else by "M月".
func buildChartEntries(history []entity.BodyStat, period HistoryPeriod) progress.ChartData {
	if len(history) == 0 {
		return progress.ChartData{Labels: []string{}, Datasets: []progress.Dataset{{Data: []float64{}}}}
	}

	ascending := make([]entity.BodyStat, len(history))
	copy(ascending, history)
	sort.Slice(ascending, func(i, j int) bool {
		return ascending[i].RecordedAt.Before(ascending[j].RecordedAt)
	})

	var format progress.LabelFormat
	switch period {
	case HistoryWeek:
		format = progress.FormatWeekday
	case HistoryMonth:
		format = progress.FormatMonthDay
	default:
		format = progress.FormatMonthOnly
	}

	labels := make([]string, 0, len(ascending))
	values := make([]float64, 0, len(ascending))
	for _, stat := range ascending {
		labels = append(labels, format.BucketKey(stat.RecordedAt))
		values = append(values, stat.Weight.InexactFloat64())
	}

	return progress.ChartData{Labels: labels, Datasets: []progress.Dataset{{Data: values}}}
}
