package viewstate

import (
	"context"

	"dexBoard/internal/table"
)

// Record is the persisted view state of one dashboard surface. Tables keep
// their sort, filter and page; the chart keeps its selected window.
type Record struct {
	Table  *table.State `json:"table,omitempty"`
	Window string       `json:"window,omitempty"`
}

// Store persists view state records by name.
type Store interface {
	Load(ctx context.Context, name string) (Record, bool, error)
	Save(ctx context.Context, name string, rec Record) error
}

// Nop keeps nothing; every load misses.
type Nop struct{}

func (Nop) Load(context.Context, string) (Record, bool, error) { return Record{}, false, nil }

func (Nop) Save(context.Context, string, Record) error { return nil }
