package viewstate

import (
	"context"
	"encoding/json"
	"fmt"

	"dexBoard/internal/storage/postgres"
)

// DBStore keeps records in the dashboard_state table.
type DBStore struct {
	Store *postgres.Store
}

func (s *DBStore) Load(ctx context.Context, name string) (Record, bool, error) {
	if s == nil || s.Store == nil {
		return Record{}, false, nil
	}
	payload, ok, err := s.Store.LoadState(ctx, name)
	if err != nil || !ok {
		return Record{}, false, err
	}
	var rec Record
	if err := json.Unmarshal(payload, &rec); err != nil {
		return Record{}, false, fmt.Errorf("parse state %s: %w", name, err)
	}
	return rec, true, nil
}

func (s *DBStore) Save(ctx context.Context, name string, rec Record) error {
	if s == nil || s.Store == nil {
		return nil
	}
	payload, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("marshal state: %w", err)
	}
	return s.Store.SaveState(ctx, name, payload)
}
