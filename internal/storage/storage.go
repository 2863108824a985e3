package storage

import (
	"context"

	"dexBoard/internal/model"
)

// Snapshot is one loaded record collection. Version changes whenever the
// content changes and keys cached views of it.
type Snapshot[T any] struct {
	Records []*T
	Version uint64
}

// Provider supplies the dashboard's record collections and chart data.
type Provider interface {
	LoadTokens(ctx context.Context) (Snapshot[model.Token], error)
	LoadPools(ctx context.Context) (Snapshot[model.Pool], error)
	LoadTransactions(ctx context.Context) (Snapshot[model.Transaction], error)
	LoadChartDays(ctx context.Context) ([]model.ChartDay, error)
}

// BucketSink receives aggregated chart buckets.
type BucketSink interface {
	PutBuckets(buckets []model.WindowBucket) error
	Close() error
}
