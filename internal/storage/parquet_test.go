package storage

import (
	"path/filepath"
	"testing"
	"time"

	"dexBoard/internal/model"
)

func TestParquetSinkRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tvl.parquet")
	sink, err := OpenSink(path, "tvl", "month")
	if err != nil {
		t.Fatalf("open sink: %v", err)
	}

	start := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	buckets := []model.WindowBucket{
		{WindowStart: start, Value: 1200.5, Samples: 31},
		{WindowStart: start.AddDate(0, 1, 0), Value: 1300, Samples: 29},
	}
	if err := sink.PutBuckets(buckets); err != nil {
		t.Fatalf("put buckets: %v", err)
	}
	if err := sink.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	rows, err := ReadBucketRows(path)
	if err != nil {
		t.Fatalf("read rows: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("row count mismatch: %d", len(rows))
	}
	if rows[0].Series != "tvl" || rows[0].Granularity != "month" || rows[0].WindowStartMs != start.UnixMilli() {
		t.Fatalf("row mismatch: %+v", rows[0])
	}
	if rows[1].Value != 1300 || rows[1].Samples != 29 {
		t.Fatalf("row mismatch: %+v", rows[1])
	}
}
