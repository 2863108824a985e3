package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"

	"dexBoard/internal/model"
)

// UpsertChartBuckets inserts or updates aggregated chart buckets of one
// series at one granularity.
func (s *Store) UpsertChartBuckets(ctx context.Context, series, granularity string, buckets []model.WindowBucket) error {
	if len(buckets) == 0 {
		return nil
	}
	batch := &pgx.Batch{}
	for _, bucket := range buckets {
		batch.Queue(`
			INSERT INTO chart_buckets (
				series, granularity, window_start, value, samples, created_at, updated_at
			) VALUES ($1, $2, $3, $4::numeric, $5, now(), now())
			ON CONFLICT (series, granularity, window_start)
			DO UPDATE SET
				value = EXCLUDED.value,
				samples = EXCLUDED.samples,
				updated_at = now()
		`,
			series,
			granularity,
			bucket.WindowStart.UTC(),
			formatNumeric(bucket.Value),
			int64(bucket.Samples),
		)
	}

	br := s.pool.SendBatch(ctx, batch)
	defer br.Close()

	for range buckets {
		if _, err := br.Exec(); err != nil {
			return err
		}
	}
	return nil
}

// BucketWriter adapts the store to a bucket sink for one series.
type BucketWriter struct {
	Store       *Store
	Ctx         context.Context
	Series      string
	Granularity string
	BatchSize   int
}

func (w *BucketWriter) PutBuckets(buckets []model.WindowBucket) error {
	size := w.BatchSize
	if size <= 0 {
		size = len(buckets)
	}
	for start := 0; start < len(buckets); start += size {
		end := min(start+size, len(buckets))
		if err := w.Store.UpsertChartBuckets(w.Ctx, w.Series, w.Granularity, buckets[start:end]); err != nil {
			return err
		}
	}
	return nil
}

func (w *BucketWriter) Close() error { return nil }
