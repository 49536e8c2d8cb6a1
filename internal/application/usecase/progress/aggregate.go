package progress

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sample is one raw row for series aggregation: a timestamp plus an optional
// numeric value. Samples with a null value are discarded during aggregation.
type Sample struct {
	At    time.Time
	Value decimal.NullDecimal
}

// ReduceMode is the rule used to collapse multiple samples falling in the
// same bucket into one chart value.
type ReduceMode int

const (
	// ReduceLast takes the chronologically last valid sample in the bucket.
	// Input is assumed pre-sorted ascending and is not re-sorted.
	ReduceLast ReduceMode = iota

	// ReduceMax takes the maximum valid sample in the bucket.
	ReduceMax
)

// AggregateSeries maps samples into one float64 per label, in label order.
// Buckets with no valid samples resolve to 0.
func AggregateSeries(samples []Sample, labels ChartLabels, mode ReduceMode) []float64 {
	reduced := make(map[string]decimal.Decimal, len(labels.Labels))
	for _, sample := range samples {
		if !sample.Value.Valid {
			continue
		}
		key := labels.Format.BucketKey(sample.At)
		current, ok := reduced[key]
		switch {
		case !ok:
			reduced[key] = sample.Value.Decimal
		case mode == ReduceMax:
			if sample.Value.Decimal.GreaterThan(current) {
				reduced[key] = sample.Value.Decimal
			}
		default: // ReduceLast
			reduced[key] = sample.Value.Decimal
		}
	}

	series := make([]float64, len(labels.Labels))
	for i, label := range labels.Labels {
		if value, ok := reduced[label]; ok {
			series[i] = value.InexactFloat64()
		}
	}
	return series
}

// AggregateCounts counts rows per bucket instead of reducing a value, one
// count per label in label order. Empty buckets count 0.
func AggregateCounts(points []time.Time, labels ChartLabels) []float64 {
	counts := make(map[string]int, len(labels.Labels))
	for _, point := range points {
		counts[labels.Format.BucketKey(point)]++
	}

	series := make([]float64, len(labels.Labels))
	for i, label := range labels.Labels {
		series[i] = float64(counts[label])
	}
	return series
}
