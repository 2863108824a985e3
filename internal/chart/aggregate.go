package chart

import (
	"iter"
	"slices"

	"dexBoard/internal/model"
)

// Aggregate reduces an ordered daily series to one bucket per window. The
// returned sequence is lazy and can be ranged over any number of times,
// yielding the same buckets each time. Windows without samples are
// omitted, so window starts are strictly increasing.
//
// Day granularity groups by UTC calendar day, so a daily series passes
// through unchanged. The input is copied and put in time order up front;
// later changes to the caller's slice do not affect the sequence.
func Aggregate(samples []model.Sample, g Granularity, strategy Strategy) iter.Seq[model.WindowBucket] {
	ordered := inTimeOrder(samples)

	return func(yield func(model.WindowBucket) bool) {
		var acc *accumulator
		for _, sample := range ordered {
			start := g.WindowStart(sample.Time)
			if acc != nil && !acc.windowStart.Equal(start) {
				if !yield(acc.bucket()) {
					return
				}
				acc = nil
			}
			if acc == nil {
				acc = newAccumulator(strategy, start)
			}
			acc.add(sample)
		}
		if acc != nil {
			yield(acc.bucket())
		}
	}
}

// Collect is Aggregate materialized into a slice.
func Collect(samples []model.Sample, g Granularity, strategy Strategy) []model.WindowBucket {
	buckets := slices.Collect(Aggregate(samples, g, strategy))
	if buckets == nil {
		return []model.WindowBucket{}
	}
	return buckets
}

func inTimeOrder(samples []model.Sample) []model.Sample {
	ordered := slices.Clone(samples)
	if !slices.IsSortedFunc(ordered, compareSampleTime) {
		slices.SortStableFunc(ordered, compareSampleTime)
	}
	return ordered
}

func compareSampleTime(a, b model.Sample) int {
	return a.Time.Compare(b.Time)
}
