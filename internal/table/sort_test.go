package table

import "testing"

func TestSortSpecToggle(t *testing.T) {
	spec := SortSpec{Field: TokenTVLUSD}

	spec = spec.Toggle(TokenTVLUSD)
	if spec != (SortSpec{Field: TokenTVLUSD, Ascending: true}) {
		t.Fatalf("same field should flip direction: %+v", spec)
	}

	spec = spec.Toggle(TokenVolumeUSD)
	if spec != (SortSpec{Field: TokenVolumeUSD}) {
		t.Fatalf("new field should reset to descending: %+v", spec)
	}

	spec = spec.Toggle(TokenVolumeUSD).Toggle(TokenVolumeUSD)
	if spec.Ascending {
		t.Fatalf("double toggle should restore descending: %+v", spec)
	}
}

func TestSortSpecArrow(t *testing.T) {
	spec := SortSpec{Field: TxTimestamp}
	if got := spec.Arrow(TxTimestamp); got != "↓" {
		t.Fatalf("arrow mismatch: %q", got)
	}
	if got := spec.Arrow(TxAmountUSD); got != "" {
		t.Fatalf("inactive arrow mismatch: %q", got)
	}
	spec.Ascending = true
	if got := spec.Arrow(TxTimestamp); got != "↑" {
		t.Fatalf("arrow mismatch: %q", got)
	}
	if spec.String() != "timestamp asc" {
		t.Fatalf("string mismatch: %s", spec.String())
	}
}

func TestCompare(t *testing.T) {
	cases := []struct {
		a, b Value
		want int
	}{
		{Number(1), Number(2), -1},
		{Number(2), Number(2), 0},
		{Number(-1), Number(-3), 1},
		{String("a"), String("b"), -1},
		{String("b"), String("b"), 0},
		{Bool(false), Bool(true), -1},
		{Bool(true), Bool(true), 0},
		{Number(100), String("1"), -1},
		{String("z"), Bool(false), -1},
	}
	for _, tc := range cases {
		if got := Compare(tc.a, tc.b); got != tc.want {
			t.Fatalf("compare(%+v, %+v) = %d, want %d", tc.a, tc.b, got, tc.want)
		}
	}
}

func TestNaNIsMissing(t *testing.T) {
	nan := 0.0
	nan = nan / nan
	if !Number(nan).IsMissing() {
		t.Fatalf("NaN should be missing")
	}
	if Number(0).IsMissing() {
		t.Fatalf("zero should not be missing")
	}
}
