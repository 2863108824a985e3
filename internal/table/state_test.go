package table

import "testing"

func TestStateFilterResetsPage(t *testing.T) {
	state := NewState(Transactions().DefaultSort, 10)
	state.Page = 4

	state.SetFilter("")
	if state.Page != 4 {
		t.Fatalf("same filter should keep page: %d", state.Page)
	}

	state.SetFilter("swap")
	if state.Page != 1 || state.Filter != "swap" {
		t.Fatalf("filter change should reset page: %+v", state)
	}
}

func TestStateObserve(t *testing.T) {
	state := NewState(Tokens().DefaultSort, 10)
	state.Page = 3

	if state.Observe(50) {
		t.Fatalf("first observation should not reset")
	}
	if state.Page != 3 {
		t.Fatalf("page changed on first observation: %d", state.Page)
	}

	if state.Observe(50) {
		t.Fatalf("same total should not reset")
	}

	if !state.Observe(12) {
		t.Fatalf("size change should reset")
	}
	if state.Page != 1 || state.Observed != 12 {
		t.Fatalf("state mismatch after reset: %+v", state)
	}
}

func TestStateNavigation(t *testing.T) {
	state := NewState(Pools().DefaultSort, 0)
	if state.PageSize != MaxItems {
		t.Fatalf("default page size mismatch: %d", state.PageSize)
	}

	state.Prev()
	if state.Page != 1 {
		t.Fatalf("prev on first page should stay: %d", state.Page)
	}

	state.Next(2)
	state.Next(2)
	if state.Page != 2 {
		t.Fatalf("next past last page should stay: %d", state.Page)
	}

	state.Goto(7, 3)
	if state.Page != 3 {
		t.Fatalf("goto should clamp: %d", state.Page)
	}

	state.SetPageSize(25)
	if state.Page != 1 || state.Request() != (PageRequest{Size: 25, Number: 1}) {
		t.Fatalf("page size change mismatch: %+v", state)
	}
}

func TestStateSortBy(t *testing.T) {
	state := NewState(Tokens().DefaultSort, 10)
	state.SortBy(TokenTVLUSD)
	if !state.Sort.Ascending {
		t.Fatalf("expected ascending after clicking active field")
	}
	state.SortBy(TokenName)
	if state.Sort != (SortSpec{Field: TokenName}) {
		t.Fatalf("sort mismatch: %+v", state.Sort)
	}
}
