package table

// State is the caller-held parameter set of one table. The engine never
// changes it; callers apply user actions through its methods and must call
// Observe after every data refresh so a stale page number cannot outlive a
// shrinking table.
type State struct {
	Sort     SortSpec `json:"sort"`
	Page     int      `json:"page"`
	PageSize int      `json:"page_size"`
	Filter   string   `json:"filter,omitempty"`
	Observed int      `json:"observed"`
	Seen     bool     `json:"seen"`
}

// NewState starts a table on page 1 with its default sort.
func NewState(sort SortSpec, pageSize int) State {
	if pageSize <= 0 {
		pageSize = MaxItems
	}
	return State{Sort: sort, Page: 1, PageSize: pageSize}
}

// SortBy applies a header click on field.
func (s *State) SortBy(field string) {
	s.Sort = s.Sort.Toggle(field)
}

// SetFilter selects a filter by name. A different filter resets to page 1.
func (s *State) SetFilter(name string) {
	if name == s.Filter {
		return
	}
	s.Filter = name
	s.Page = 1
}

// SetPageSize changes the page size and resets to page 1.
func (s *State) SetPageSize(size int) {
	if size <= 0 || size == s.PageSize {
		return
	}
	s.PageSize = size
	s.Page = 1
}

// Observe records the filtered row count of the latest snapshot and resets
// to page 1 when it changed. It reports whether the page was reset.
func (s *State) Observe(total int) bool {
	changed := s.Seen && total != s.Observed
	s.Observed = total
	s.Seen = true
	if changed && s.Page != 1 {
		s.Page = 1
		return true
	}
	return false
}

// Goto jumps to page n, clamped to [1, totalPages].
func (s *State) Goto(n, totalPages int) {
	if totalPages < 1 {
		totalPages = 1
	}
	switch {
	case n < 1:
		s.Page = 1
	case n > totalPages:
		s.Page = totalPages
	default:
		s.Page = n
	}
}

// Next advances one page, staying on the last page.
func (s *State) Next(totalPages int) {
	s.Goto(s.Page+1, totalPages)
}

// Prev goes back one page, staying on page 1.
func (s *State) Prev() {
	if s.Page > 1 {
		s.Page--
	}
}

// Request is the page request for the current state.
func (s State) Request() PageRequest {
	return PageRequest{Size: s.PageSize, Number: s.Page}
}
