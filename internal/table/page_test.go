package table

import "testing"

func TestTotalPages(t *testing.T) {
	cases := []struct {
		total, size, want int
	}{
		{0, 10, 1},
		{1, 10, 1},
		{10, 10, 1},
		{11, 10, 2},
		{3, 2, 2},
		{20, 10, 2},
	}
	for _, tc := range cases {
		if got := TotalPages(tc.total, tc.size); got != tc.want {
			t.Fatalf("TotalPages(%d, %d) = %d, want %d", tc.total, tc.size, got, tc.want)
		}
	}
}

func TestPageResultRank(t *testing.T) {
	page := PageResult[row]{Number: 3, Size: 10, TotalPages: 3}
	if page.Rank(0) != 21 || page.Rank(9) != 30 {
		t.Fatalf("rank mismatch: %d %d", page.Rank(0), page.Rank(9))
	}
	if !page.HasPrev() || page.HasNext() {
		t.Fatalf("navigation mismatch: %+v", page)
	}
}

func TestPageBounds(t *testing.T) {
	cases := []struct {
		total      int
		page       PageRequest
		start, end int
	}{
		{25, PageRequest{Size: 10, Number: 1}, 0, 10},
		{25, PageRequest{Size: 10, Number: 3}, 20, 25},
		{25, PageRequest{Size: 10, Number: 4}, 25, 25},
		{0, PageRequest{Size: 10, Number: 1}, 0, 0},
	}
	for _, tc := range cases {
		start, end := pageBounds(tc.total, tc.page)
		if start != tc.start || end != tc.end {
			t.Fatalf("bounds mismatch for %+v: [%d,%d) != [%d,%d)", tc.page, start, end, tc.start, tc.end)
		}
	}
}
