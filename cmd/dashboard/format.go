package main

import (
	"fmt"
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

var compactUnits = []struct {
	threshold float64
	suffix    string
}{
	{1e12, "t"},
	{1e9, "b"},
	{1e6, "m"},
	{1e3, "k"},
}

// formatDollar renders a USD value as "$1.23m". Tiny non-zero values show
// as "<$0.01"; missing values as "-".
func formatDollar(value float64) string {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return "-"
	}
	if value == 0 {
		return "$0.00"
	}
	if math.Abs(value) < 0.01 {
		return "<$0.01"
	}
	sign := ""
	if value < 0 {
		sign = "-"
	}
	return sign + "$" + compact(math.Abs(value), 2)
}

// formatAmount renders a token amount with up to four decimals.
func formatAmount(value float64) string {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return "-"
	}
	abs := math.Abs(value)
	if abs > 0 && abs < 0.0001 {
		return "<0.0001"
	}
	return compact(abs, 4)
}

// formatPercent renders a change in percent with two decimals.
func formatPercent(value float64) string {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return "-"
	}
	d := decimal.NewFromFloat(value).Round(2)
	if d.IsPositive() {
		return "+" + d.StringFixed(2) + "%"
	}
	return d.StringFixed(2) + "%"
}

// formatFeeTier renders a fee tier in hundredths of a bip as a percent.
func formatFeeTier(feeTier uint32) string {
	pct := decimal.New(int64(feeTier), -4)
	return pct.String() + "%"
}

func compact(abs float64, places int32) string {
	for _, unit := range compactUnits {
		if abs >= unit.threshold {
			return decimal.NewFromFloat(abs/unit.threshold).StringFixed(2) + unit.suffix
		}
	}
	return trimZeros(decimal.NewFromFloat(abs).StringFixed(places), places > 2)
}

func trimZeros(s string, trim bool) string {
	if !trim || !strings.Contains(s, ".") {
		return s
	}
	s = strings.TrimRight(s, "0")
	return strings.TrimSuffix(s, ".")
}

func shortenAddress(address string) string {
	if len(address) <= 10 {
		return address
	}
	return fmt.Sprintf("%s...%s", address[:6], address[len(address)-4:])
}
