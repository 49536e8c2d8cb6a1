package progress

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func sampleAt(t time.Time, value float64) Sample {
	return Sample{At: t, Value: decimal.NewNullDecimal(decimal.NewFromFloat(value))}
}

func nullSampleAt(t time.Time) Sample {
	return Sample{At: t}
}

func TestAggregateSeries(t *testing.T) {
	labels := ChartLabels{Labels: []string{"5/1", "5/2", "5/3"}, Format: FormatMonthDay}
	day1 := time.Date(2025, 5, 1, 8, 0, 0, 0, time.UTC)
	day1Later := time.Date(2025, 5, 1, 18, 0, 0, 0, time.UTC)
	day3 := time.Date(2025, 5, 3, 9, 0, 0, 0, time.UTC)

	t.Run("output length always equals label count", func(t *testing.T) {
		got := AggregateSeries(nil, labels, ReduceLast)
		if len(got) != 3 {
			t.Fatalf("expected 3 values, got %d", len(got))
		}
		for i, v := range got {
			if v != 0 {
				t.Errorf("bucket %d: expected 0 for empty input, got %v", i, v)
			}
		}
	})

	t.Run("max takes the largest value in the bucket", func(t *testing.T) {
		samples := []Sample{sampleAt(day1, 10), sampleAt(day1Later, 20)}
		got := AggregateSeries(samples, labels, ReduceMax)
		if got[0] != 20 {
			t.Errorf("expected 20 in first bucket, got %v", got[0])
		}
	})

	t.Run("max keeps the larger earlier value", func(t *testing.T) {
		samples := []Sample{sampleAt(day1, 30), sampleAt(day1Later, 20)}
		got := AggregateSeries(samples, labels, ReduceMax)
		if got[0] != 30 {
			t.Errorf("expected 30 in first bucket, got %v", got[0])
		}
	})

	t.Run("last takes the chronologically last value regardless of magnitude", func(t *testing.T) {
		samples := []Sample{sampleAt(day1, 70), sampleAt(day1Later, 20)}
		got := AggregateSeries(samples, labels, ReduceLast)
		if got[0] != 20 {
			t.Errorf("expected 20 in first bucket, got %v", got[0])
		}
	})

	t.Run("null values are discarded", func(t *testing.T) {
		samples := []Sample{sampleAt(day1, 15), nullSampleAt(day1Later)}
		got := AggregateSeries(samples, labels, ReduceLast)
		if got[0] != 15 {
			t.Errorf("expected 15 in first bucket, got %v", got[0])
		}
	})

	t.Run("bucket with only null values resolves to 0", func(t *testing.T) {
		samples := []Sample{nullSampleAt(day1)}
		got := AggregateSeries(samples, labels, ReduceLast)
		if got[0] != 0 {
			t.Errorf("expected 0 in first bucket, got %v", got[0])
		}
	})

	t.Run("empty buckets between filled ones resolve to 0", func(t *testing.T) {
		samples := []Sample{sampleAt(day1, 10), sampleAt(day3, 12)}
		got := AggregateSeries(samples, labels, ReduceLast)
		if got[0] != 10 || got[1] != 0 || got[2] != 12 {
			t.Errorf("expected [10 0 12], got %v", got)
		}
	})

	t.Run("samples outside the label window are ignored", func(t *testing.T) {
		outside := time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC) // "6/1"
		got := AggregateSeries([]Sample{sampleAt(outside, 99)}, labels, ReduceMax)
		for i, v := range got {
			if v != 0 {
				t.Errorf("bucket %d: expected 0, got %v", i, v)
			}
		}
	})
}

func TestAggregateCounts(t *testing.T) {
	labels := ChartLabels{Labels: []string{"5/1", "5/2"}, Format: FormatMonthDay}

	t.Run("counts rows per bucket", func(t *testing.T) {
		points := []time.Time{
			time.Date(2025, 5, 1, 7, 0, 0, 0, time.UTC),
			time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC),
			time.Date(2025, 5, 1, 19, 0, 0, 0, time.UTC),
		}
		got := AggregateCounts(points, labels)
		if got[0] != 3 || got[1] != 0 {
			t.Errorf("expected [3 0], got %v", got)
		}
	})

	t.Run("empty input yields all zeros of label length", func(t *testing.T) {
		got := AggregateCounts(nil, labels)
		if len(got) != 2 || got[0] != 0 || got[1] != 0 {
			t.Errorf("expected [0 0], got %v", got)
		}
	})
}
