package chart

import (
	"fmt"
	"strings"
	"time"

	"dexBoard/internal/model"
)

// Metric names a protocol series on the overview charts.
type Metric string

const (
	MetricTVL    Metric = "tvl"
	MetricVolume Metric = "volume"
	MetricFees   Metric = "fees"
)

func ParseMetric(input string) (Metric, error) {
	switch strings.ToLower(strings.TrimSpace(input)) {
	case "tvl", "liquidity":
		return MetricTVL, nil
	case "volume":
		return MetricVolume, nil
	case "fees", "fee":
		return MetricFees, nil
	default:
		return "", fmt.Errorf("unknown metric: %s", input)
	}
}

// Strategy is the natural reduction for the metric: TVL is a level, volume
// and fees are flows.
func (m Metric) Strategy() Strategy {
	if m == MetricTVL {
		return Last
	}
	return Sum
}

// Series extracts one metric from daily chart rows.
func Series(days []model.ChartDay, metric Metric) []model.Sample {
	samples := make([]model.Sample, 0, len(days))
	for _, day := range days {
		var value float64
		switch metric {
		case MetricTVL:
			value = day.TVLUSD
		case MetricVolume:
			value = day.VolumeUSD
		case MetricFees:
			value = day.FeesUSD
		}
		samples = append(samples, model.Sample{Time: day.Day(), Value: value})
	}
	return samples
}

// Range keeps samples whose date falls in [from, to]. A zero bound is
// open.
func Range(samples []model.Sample, from, to time.Time) []model.Sample {
	if from.IsZero() && to.IsZero() {
		return samples
	}
	out := make([]model.Sample, 0, len(samples))
	for _, sample := range samples {
		if !from.IsZero() && sample.Time.Before(from) {
			continue
		}
		if !to.IsZero() && sample.Time.After(to) {
			continue
		}
		out = append(out, sample)
	}
	return out
}
