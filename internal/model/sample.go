package model

import "time"

// Sample is one daily point of a time series.
type Sample struct {
	Time  time.Time `json:"time"`
	Value float64   `json:"value"`
}

// WindowBucket is one aggregated chart point.
type WindowBucket struct {
	WindowStart time.Time `json:"windowStart"`
	Value       float64   `json:"value"`
	Samples     int       `json:"samples"`
}
