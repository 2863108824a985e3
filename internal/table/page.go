package table

import "fmt"

// MaxItems is the page size every dashboard table uses.
const MaxItems = 10

// PageRequest selects one page of a sorted table.
type PageRequest struct {
	Size   int `json:"size"`
	Number int `json:"number"`
}

// FirstPage requests page 1 of the given size.
func FirstPage(size int) PageRequest {
	return PageRequest{Size: size, Number: 1}
}

// Validate rejects requests the engine will not silently correct.
func (p PageRequest) Validate() error {
	if p.Size <= 0 {
		return fmt.Errorf("page size %d: %w", p.Size, ErrInvalidPageSize)
	}
	if p.Number < 1 {
		return fmt.Errorf("page number %d: %w", p.Number, ErrInvalidPageNumber)
	}
	return nil
}

// PageResult is one page of a filtered and sorted table.
type PageResult[T any] struct {
	Items      []*T
	Number     int
	Size       int
	Total      int
	TotalPages int
}

// Rank is the 1-based row number of the i-th item on the page.
func (r PageResult[T]) Rank(i int) int {
	return (r.Number-1)*r.Size + i + 1
}

// HasPrev reports whether a previous page exists.
func (r PageResult[T]) HasPrev() bool {
	return r.Number > 1
}

// HasNext reports whether a following page exists.
func (r PageResult[T]) HasNext() bool {
	return r.Number < r.TotalPages
}

// TotalPages is ceil(total/size), never less than 1.
func TotalPages(total, size int) int {
	if size <= 0 || total <= 0 {
		return 1
	}
	return (total + size - 1) / size
}

// pageBounds returns the half-open slice range of a page. Pages past the
// end collapse to an empty range at total.
func pageBounds(total int, page PageRequest) (int, int) {
	start := (page.Number - 1) * page.Size
	if start >= total {
		return total, total
	}
	end := start + page.Size
	if end > total {
		end = total
	}
	return start, end
}

// Paginate slices an already filtered and sorted sequence.
func Paginate[T any](rows []*T, page PageRequest) (PageResult[T], error) {
	if err := page.Validate(); err != nil {
		return PageResult[T]{}, err
	}

	start, end := pageBounds(len(rows), page)
	items := make([]*T, end-start)
	copy(items, rows[start:end])

	return PageResult[T]{
		Items:      items,
		Number:     page.Number,
		Size:       page.Size,
		Total:      len(rows),
		TotalPages: TotalPages(len(rows), page.Size),
	}, nil
}
