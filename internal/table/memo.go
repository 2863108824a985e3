package table

import (
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"
)

type memoKey struct {
	version uint64
	filter  string
	sort    SortSpec
}

// Memo caches arranged rows of one table keyed by snapshot version, filter
// name and sort spec, so paging through a snapshot sorts it once. Results
// are identical to View. Callers must bump the version whenever the record
// set changes.
type Memo[T any] struct {
	schema Schema[T]
	deny   Denylist
	cache  *lru.Cache[memoKey, []*T]
}

func NewMemo[T any](schema Schema[T], deny Denylist, size int) (*Memo[T], error) {
	if size <= 0 {
		size = 16
	}
	cache, err := lru.New[memoKey, []*T](size)
	if err != nil {
		return nil, fmt.Errorf("create memo cache: %w", err)
	}
	return &Memo[T]{schema: schema, deny: deny, cache: cache}, nil
}

// View is View with the arranged rows served from the cache when possible.
func (m *Memo[T]) View(version uint64, records []*T, filter Filter[T], sort SortSpec, page PageRequest) (PageResult[T], error) {
	if err := page.Validate(); err != nil {
		return PageResult[T]{}, err
	}
	if filter.Match != nil && filter.Name == "" {
		return PageResult[T]{}, ErrUnnamedFilter
	}

	key := memoKey{version: version, filter: filter.Key(), sort: sort}
	rows, ok := m.cache.Get(key)
	if !ok {
		var err error
		rows, err = Arrange(m.schema, records, m.deny, filter, sort)
		if err != nil {
			return PageResult[T]{}, err
		}
		m.cache.Add(key, rows)
	}
	return Paginate(rows, page)
}

// Len reports how many arranged views are cached.
func (m *Memo[T]) Len() int {
	return m.cache.Len()
}
