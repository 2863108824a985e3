package main

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"dexBoard/internal/storage"
	"dexBoard/internal/storage/postgres"
	"dexBoard/internal/viewstate"
)

// backend bundles the data provider and view state store of one command.
type backend struct {
	provider storage.Provider
	pg       *postgres.Store
	state    viewstate.Store
	closers  []func()
}

type backendConfig struct {
	PGDSN         string
	Paths         storage.JSONLPaths
	StateFile     string
	StateDB       bool
	RedisAddr     string
	RedisPassword string
	RedisDB       int
}

func openBackend(ctx context.Context, cfg backendConfig, logger *zap.Logger) (*backend, error) {
	b := &backend{state: viewstate.Nop{}}

	if cfg.PGDSN != "" {
		store, err := postgres.NewStore(ctx, cfg.PGDSN, logger)
		if err != nil {
			return nil, fmt.Errorf("connect postgres: %w", err)
		}
		b.pg = store
		b.provider = store
		b.closers = append(b.closers, store.Close)
	} else {
		b.provider = storage.NewJSONLProvider(cfg.Paths, logger)
	}

	switch {
	case cfg.RedisAddr != "":
		redisStore := viewstate.NewRedisStore(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		b.state = redisStore
		b.closers = append(b.closers, func() { _ = redisStore.Close() })
	case cfg.StateDB:
		if b.pg == nil {
			b.Close()
			return nil, fmt.Errorf("pg dsn is required for state-db")
		}
		b.state = &viewstate.DBStore{Store: b.pg}
	case cfg.StateFile != "":
		b.state = &viewstate.FileStore{Path: cfg.StateFile}
	}

	return b, nil
}

func (b *backend) Close() {
	for i := len(b.closers) - 1; i >= 0; i-- {
		b.closers[i]()
	}
}
