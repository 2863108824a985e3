package storage

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/parquet-go/parquet-go"

	"dexBoard/internal/model"
)

// BucketRow is the Parquet layout of a chart bucket.
type BucketRow struct {
	Series        string  `parquet:"series"`
	Granularity   string  `parquet:"granularity"`
	WindowStartMs int64   `parquet:"window_start_ms"`
	Value         float64 `parquet:"value"`
	Samples       int64   `parquet:"samples"`
}

// ParquetSink writes all buckets it receives to one Parquet file.
type ParquetSink struct {
	path        string
	series      string
	granularity string
}

func NewParquetSink(path, series, granularity string) *ParquetSink {
	return &ParquetSink{path: path, series: series, granularity: granularity}
}

func (s *ParquetSink) PutBuckets(buckets []model.WindowBucket) error {
	dir := filepath.Dir(s.path)
	if dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output dir: %w", err)
		}
	}

	rows := make([]BucketRow, 0, len(buckets))
	for _, bucket := range buckets {
		rows = append(rows, BucketRow{
			Series:        s.series,
			Granularity:   s.granularity,
			WindowStartMs: bucket.WindowStart.UnixMilli(),
			Value:         bucket.Value,
			Samples:       int64(bucket.Samples),
		})
	}

	if err := parquet.WriteFile(s.path, rows); err != nil {
		return fmt.Errorf("write parquet: %w", err)
	}
	return nil
}

// ReadBucketRows loads a Parquet file written by ParquetSink.
func ReadBucketRows(path string) ([]BucketRow, error) {
	rows, err := parquet.ReadFile[BucketRow](path)
	if err != nil {
		return nil, fmt.Errorf("read parquet: %w", err)
	}
	return rows, nil
}

func (s *ParquetSink) Close() error {
	return nil
}
