package model

import "time"

// ChartDay is one day of protocol-wide chart data.
type ChartDay struct {
	Date      int64   `json:"date"`
	TVLUSD    float64 `json:"tvlUSD"`
	VolumeUSD float64 `json:"volumeUSD"`
	FeesUSD   float64 `json:"feesUSD"`
}

// Day returns the UTC calendar date of the row.
func (d ChartDay) Day() time.Time {
	return time.Unix(d.Date, 0).UTC().Truncate(24 * time.Hour)
}
