package chart

import (
	"math"
	"time"

	"github.com/shopspring/decimal"

	"dexBoard/internal/model"
)

// accumulator holds the running value of one open window.
type accumulator struct {
	strategy    Strategy
	windowStart time.Time
	sum         decimal.Decimal
	last        float64
	samples     int
}

func newAccumulator(strategy Strategy, windowStart time.Time) *accumulator {
	return &accumulator{
		strategy:    strategy,
		windowStart: windowStart,
		sum:         decimal.Zero,
	}
}

// add folds one sample in. Samples arrive in time order, so the latest
// one added is the window's last value. Non-finite values do not
// contribute to the sum.
func (a *accumulator) add(sample model.Sample) {
	if !math.IsNaN(sample.Value) && !math.IsInf(sample.Value, 0) {
		a.sum = a.sum.Add(decimal.NewFromFloat(sample.Value))
	}
	a.last = sample.Value
	a.samples++
}

func (a *accumulator) bucket() model.WindowBucket {
	value := a.last
	if a.strategy == Sum {
		value = a.sum.InexactFloat64()
	}
	return model.WindowBucket{
		WindowStart: a.windowStart,
		Value:       value,
		Samples:     a.samples,
	}
}
