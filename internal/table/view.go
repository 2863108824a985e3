package table

import "errors"

var (
	ErrInvalidPageSize   = errors.New("page size must be greater than zero")
	ErrInvalidPageNumber = errors.New("page number must be at least 1")
	ErrUnknownField      = errors.New("unknown sort field")
	ErrUnnamedFilter     = errors.New("filter with a predicate needs a name")
)

// Filter is a named row predicate. The zero Filter keeps every row. The
// name identifies the predicate in memo keys and persisted state, so a
// filter with a Match func must be named.
type Filter[T any] struct {
	Name  string
	Match func(*T) bool
}

func (f Filter[T]) keep(row *T) bool {
	return f.Match == nil || f.Match(row)
}

// Key is the filter name, "all" for the zero filter.
func (f Filter[T]) Key() string {
	if f.Name == "" {
		return "all"
	}
	return f.Name
}

// View filters, sorts and paginates records. The input slice is not
// modified.
func View[T any](schema Schema[T], records []*T, deny Denylist, filter Filter[T], sort SortSpec, page PageRequest) (PageResult[T], error) {
	if err := page.Validate(); err != nil {
		return PageResult[T]{}, err
	}
	rows, err := Arrange(schema, records, deny, filter, sort)
	if err != nil {
		return PageResult[T]{}, err
	}
	return Paginate(rows, page)
}

// Arrange returns the filtered and sorted rows of records, before
// pagination.
func Arrange[T any](schema Schema[T], records []*T, deny Denylist, filter Filter[T], sort SortSpec) ([]*T, error) {
	get, err := schema.Field(sort.Field)
	if err != nil {
		return nil, err
	}

	rows := make([]*T, 0, len(records))
	for _, record := range records {
		if record == nil {
			continue
		}
		if schema.ID != nil && deny.Contains(schema.ID(record)) {
			continue
		}
		if !filter.keep(record) {
			continue
		}
		rows = append(rows, record)
	}

	sortRecords(rows, get, sort.Ascending)
	return rows, nil
}
