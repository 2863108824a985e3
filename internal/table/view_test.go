package table

import (
	"errors"
	"math"
	"reflect"
	"strconv"
	"testing"
)

type row struct {
	id   int
	tvl  float64
	name string
}

func testSchema() Schema[row] {
	return Schema[row]{
		Name: "rows",
		ID:   func(r *row) string { return strconv.Itoa(r.id) },
		Fields: map[string]Accessor[row]{
			"tvl":  func(r *row) Value { return Number(r.tvl) },
			"name": func(r *row) Value { return text(r.name) },
		},
		DefaultSort: SortSpec{Field: "tvl"},
	}
}

func ids(items []*row) []int {
	out := make([]int, 0, len(items))
	for _, item := range items {
		out = append(out, item.id)
	}
	return out
}

func TestViewTieKeepsInputOrder(t *testing.T) {
	records := []*row{{id: 1, tvl: 100}, {id: 2, tvl: 300}, {id: 3, tvl: 300}}

	got, err := View(testSchema(), records, nil, Filter[row]{}, SortSpec{Field: "tvl"}, PageRequest{Size: 2, Number: 1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if want := []int{2, 3}; !reflect.DeepEqual(ids(got.Items), want) {
		t.Fatalf("items mismatch: %v != %v", ids(got.Items), want)
	}
	if got.TotalPages != 2 || got.Total != 3 || got.Number != 1 {
		t.Fatalf("page meta mismatch: %+v", got)
	}
}

func TestViewStableBothDirections(t *testing.T) {
	records := []*row{
		{id: 1, tvl: 5}, {id: 2, tvl: 1}, {id: 3, tvl: 5},
		{id: 4, tvl: 1}, {id: 5, tvl: 5}, {id: 6, tvl: 3},
	}

	cases := []struct {
		ascending bool
		want      []int
	}{
		{ascending: false, want: []int{1, 3, 5, 6, 2, 4}},
		{ascending: true, want: []int{2, 4, 6, 1, 3, 5}},
	}
	for _, tc := range cases {
		got, err := View(testSchema(), records, nil, Filter[row]{}, SortSpec{Field: "tvl", Ascending: tc.ascending}, FirstPage(10))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !reflect.DeepEqual(ids(got.Items), tc.want) {
			t.Fatalf("ascending=%v order mismatch: %v != %v", tc.ascending, ids(got.Items), tc.want)
		}
	}
}

func TestViewStringOrder(t *testing.T) {
	records := []*row{{id: 1, name: "beta"}, {id: 2, name: "alpha"}, {id: 3, name: "gamma"}}

	got, err := View(testSchema(), records, nil, Filter[row]{}, SortSpec{Field: "name", Ascending: true}, FirstPage(10))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := []int{2, 1, 3}; !reflect.DeepEqual(ids(got.Items), want) {
		t.Fatalf("order mismatch: %v != %v", ids(got.Items), want)
	}

	got, err = View(testSchema(), records, nil, Filter[row]{}, SortSpec{Field: "name"}, FirstPage(10))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := []int{3, 1, 2}; !reflect.DeepEqual(ids(got.Items), want) {
		t.Fatalf("order mismatch: %v != %v", ids(got.Items), want)
	}
}

func TestViewMissingValuesSortLast(t *testing.T) {
	records := []*row{
		{id: 1, tvl: math.NaN(), name: ""},
		{id: 2, tvl: 10, name: "b"},
		{id: 3, tvl: 20, name: "a"},
	}

	for _, ascending := range []bool{true, false} {
		got, err := View(testSchema(), records, nil, Filter[row]{}, SortSpec{Field: "tvl", Ascending: ascending}, FirstPage(10))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if last := got.Items[len(got.Items)-1].id; last != 1 {
			t.Fatalf("ascending=%v: missing value not last, got %v", ascending, ids(got.Items))
		}

		got, err = View(testSchema(), records, nil, Filter[row]{}, SortSpec{Field: "name", Ascending: ascending}, FirstPage(10))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if last := got.Items[len(got.Items)-1].id; last != 1 {
			t.Fatalf("ascending=%v: empty name not last, got %v", ascending, ids(got.Items))
		}
	}
}

func TestViewPaginationCoverage(t *testing.T) {
	records := make([]*row, 0, 23)
	for i := 0; i < 23; i++ {
		records = append(records, &row{id: i, tvl: float64(i % 4)})
	}
	schema := testSchema()
	sort := SortSpec{Field: "tvl"}

	all, err := Arrange(schema, records, nil, Filter[row]{}, sort)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	first, err := View(schema, records, nil, Filter[row]{}, sort, FirstPage(5))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first.TotalPages != 5 {
		t.Fatalf("total pages mismatch: %d", first.TotalPages)
	}

	var joined []*row
	for n := 1; n <= first.TotalPages; n++ {
		page, err := View(schema, records, nil, Filter[row]{}, sort, PageRequest{Size: 5, Number: n})
		if err != nil {
			t.Fatalf("page %d: %v", n, err)
		}
		joined = append(joined, page.Items...)
	}

	if !reflect.DeepEqual(ids(joined), ids(all)) {
		t.Fatalf("pages do not cover the table: %v != %v", ids(joined), ids(all))
	}
}

func TestViewIdempotent(t *testing.T) {
	records := []*row{{id: 1, tvl: 2}, {id: 2, tvl: 2}, {id: 3, tvl: 1}}
	sort := SortSpec{Field: "tvl", Ascending: true}

	a, err := View(testSchema(), records, nil, Filter[row]{}, sort, FirstPage(2))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, err := View(testSchema(), records, nil, Filter[row]{}, sort, FirstPage(2))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(a, b) {
		t.Fatalf("results differ: %+v != %+v", a, b)
	}
}

func TestViewDoesNotMutateInput(t *testing.T) {
	records := []*row{{id: 1, tvl: 1}, {id: 2, tvl: 3}, {id: 3, tvl: 2}}
	if _, err := View(testSchema(), records, nil, Filter[row]{}, SortSpec{Field: "tvl"}, FirstPage(10)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := []int{1, 2, 3}; !reflect.DeepEqual(ids(records), want) {
		t.Fatalf("input reordered: %v", ids(records))
	}
}

func TestViewEmpty(t *testing.T) {
	got, err := View(testSchema(), nil, nil, Filter[row]{}, SortSpec{Field: "tvl"}, FirstPage(10))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got.Items) != 0 || got.Number != 1 || got.TotalPages != 1 {
		t.Fatalf("empty page mismatch: %+v", got)
	}
}

func TestViewPagePastEnd(t *testing.T) {
	records := []*row{{id: 1}, {id: 2}, {id: 3}}

	got, err := View(testSchema(), records, nil, Filter[row]{}, SortSpec{Field: "tvl"}, PageRequest{Size: 2, Number: 9})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got.Items) != 0 || got.TotalPages != 2 || got.Number != 9 {
		t.Fatalf("out of range page mismatch: %+v", got)
	}
}

func TestViewInvalidRequests(t *testing.T) {
	records := []*row{{id: 1}}

	_, err := View(testSchema(), records, nil, Filter[row]{}, SortSpec{Field: "tvl"}, PageRequest{Size: 0, Number: 1})
	if !errors.Is(err, ErrInvalidPageSize) {
		t.Fatalf("expected ErrInvalidPageSize, got %v", err)
	}
	_, err = View(testSchema(), records, nil, Filter[row]{}, SortSpec{Field: "tvl"}, PageRequest{Size: 10, Number: 0})
	if !errors.Is(err, ErrInvalidPageNumber) {
		t.Fatalf("expected ErrInvalidPageNumber, got %v", err)
	}
	_, err = View(testSchema(), records, nil, Filter[row]{}, SortSpec{Field: "volume"}, FirstPage(10))
	if !errors.Is(err, ErrUnknownField) {
		t.Fatalf("expected ErrUnknownField, got %v", err)
	}
}

func TestViewExclusionAndFilter(t *testing.T) {
	records := []*row{
		{id: 1, tvl: 10}, nil, {id: 2, tvl: 20}, {id: 3, tvl: 30}, {id: 4, tvl: 40}, {id: 5, tvl: 50},
	}
	deny := NewDenylist("4")
	even := Filter[row]{Name: "even", Match: func(r *row) bool { return r.id%2 == 0 }}

	got, err := View(testSchema(), records, deny, Filter[row]{}, SortSpec{Field: "tvl"}, FirstPage(10))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := []int{5, 3, 2, 1}; !reflect.DeepEqual(ids(got.Items), want) {
		t.Fatalf("denylist mismatch: %v != %v", ids(got.Items), want)
	}

	got, err = View(testSchema(), records, deny, even, SortSpec{Field: "tvl"}, FirstPage(1))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := []int{2}; !reflect.DeepEqual(ids(got.Items), want) {
		t.Fatalf("filter mismatch: %v != %v", ids(got.Items), want)
	}
	if got.Total != 1 || got.TotalPages != 1 {
		t.Fatalf("filtered count mismatch: %+v", got)
	}
}
