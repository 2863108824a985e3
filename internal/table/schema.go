package table

import (
	"fmt"
	"sort"
)

// Accessor reads one sortable field from a record.
type Accessor[T any] func(*T) Value

// Schema describes a record type to the engine: how to identify a record
// and which fields may be sorted on.
type Schema[T any] struct {
	Name        string
	ID          func(*T) string
	Fields      map[string]Accessor[T]
	DefaultSort SortSpec
}

// Field returns the accessor for a sort field.
func (s Schema[T]) Field(name string) (Accessor[T], error) {
	get, ok := s.Fields[name]
	if !ok || get == nil {
		return nil, fmt.Errorf("%s table field %q: %w", s.Name, name, ErrUnknownField)
	}
	return get, nil
}

// FieldNames lists the sort vocabulary in alphabetical order.
func (s Schema[T]) FieldNames() []string {
	names := make([]string, 0, len(s.Fields))
	for name := range s.Fields {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Row returns the record's id and sort fields keyed by name, for machine
// readable output.
func (s Schema[T]) Row(record *T) map[string]any {
	row := make(map[string]any, len(s.Fields)+1)
	if s.ID != nil {
		row["id"] = s.ID(record)
	}
	for name, get := range s.Fields {
		row[name] = get(record).Interface()
	}
	return row
}
