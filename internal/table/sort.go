package table

import (
	"fmt"
	"slices"
)

// SortSpec selects the sort field and direction of a table.
type SortSpec struct {
	Field     string `json:"field"`
	Ascending bool   `json:"ascending"`
}

// Toggle applies a click on the header of field. Clicking the active field
// flips the direction; clicking another field selects it descending.
func (s SortSpec) Toggle(field string) SortSpec {
	if field == s.Field {
		return SortSpec{Field: field, Ascending: !s.Ascending}
	}
	return SortSpec{Field: field}
}

// Arrow is the header marker for field: "↓" descending, "↑" ascending.
func (s SortSpec) Arrow(field string) string {
	if field != s.Field {
		return ""
	}
	if s.Ascending {
		return "↑"
	}
	return "↓"
}

func (s SortSpec) String() string {
	if s.Ascending {
		return fmt.Sprintf("%s asc", s.Field)
	}
	return fmt.Sprintf("%s desc", s.Field)
}

// sortRecords stable-sorts rows in place by get. Missing values go last in
// both directions; equal keys keep their input order.
func sortRecords[T any](rows []*T, get Accessor[T], ascending bool) {
	slices.SortStableFunc(rows, func(a, b *T) int {
		va, vb := get(a), get(b)
		switch {
		case va.IsMissing() && vb.IsMissing():
			return 0
		case va.IsMissing():
			return 1
		case vb.IsMissing():
			return -1
		}
		c := Compare(va, vb)
		if !ascending {
			c = -c
		}
		return c
	})
}
