package chart

import (
	"fmt"
	"strings"
)

// Strategy reduces the samples of one window to a single value.
type Strategy string

const (
	// Sum adds every sample; used for flow metrics such as volume and fees.
	Sum Strategy = "sum"
	// Last keeps the chronologically last sample; used for level metrics
	// such as TVL.
	Last Strategy = "last"
)

func ParseStrategy(input string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(input)) {
	case "sum":
		return Sum, nil
	case "last":
		return Last, nil
	default:
		return "", fmt.Errorf("unknown strategy: %s", input)
	}
}
