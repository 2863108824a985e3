package storage

import (
	"fmt"
	"path/filepath"
	"strings"
)

// OpenSink picks a bucket sink from the output file extension: .parquet
// or .jsonl/.json.
func OpenSink(path, series, granularity string) (BucketSink, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".parquet":
		return NewParquetSink(path, series, granularity), nil
	case ".jsonl", ".json", ".ndjson":
		writer, err := CreateJSONL(path)
		if err != nil {
			return nil, err
		}
		return writer, nil
	default:
		return nil, fmt.Errorf("unsupported output format: %s", path)
	}
}
