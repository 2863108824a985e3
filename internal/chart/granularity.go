package chart

import (
	"fmt"
	"strings"
	"time"
)

// Granularity is the calendar span one chart point covers.
type Granularity string

const (
	Day   Granularity = "day"
	Week  Granularity = "week"
	Month Granularity = "month"
)

// ParseGranularity accepts "day", "week", "month" and the "daily",
// "weekly", "monthly" window names.
func ParseGranularity(input string) (Granularity, error) {
	switch strings.ToLower(strings.TrimSpace(input)) {
	case "day", "daily":
		return Day, nil
	case "week", "weekly":
		return Week, nil
	case "month", "monthly":
		return Month, nil
	default:
		return "", fmt.Errorf("unknown granularity: %s", input)
	}
}

// WindowStart returns the UTC start of the window containing t. Weeks
// start on Monday, months on the 1st.
func (g Granularity) WindowStart(t time.Time) time.Time {
	t = t.UTC()
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	switch g {
	case Week:
		offset := (int(day.Weekday()) + 6) % 7
		return day.AddDate(0, 0, -offset)
	case Month:
		return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
	default:
		return day
	}
}

// Label formats a window start the way the chart axis shows it.
func (g Granularity) Label(start time.Time) string {
	if g == Month {
		return start.Format("Jan 2006")
	}
	return start.Format("2006-01-02")
}
