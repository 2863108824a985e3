package storage

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/cespare/xxhash/v2"
	"go.uber.org/zap"

	"dexBoard/internal/model"
)

// JSONLPaths locates one JSONL file per collection. Empty paths load as
// empty collections.
type JSONLPaths struct {
	Tokens       string
	Pools        string
	Transactions string
	ChartDays    string
}

// JSONLProvider reads collections from JSONL snapshot files.
type JSONLProvider struct {
	paths  JSONLPaths
	logger *zap.Logger
}

func NewJSONLProvider(paths JSONLPaths, logger *zap.Logger) *JSONLProvider {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &JSONLProvider{paths: paths, logger: logger}
}

func (p *JSONLProvider) LoadTokens(ctx context.Context) (Snapshot[model.Token], error) {
	return ReadJSONL[model.Token](ctx, p.paths.Tokens, p.logger)
}

func (p *JSONLProvider) LoadPools(ctx context.Context) (Snapshot[model.Pool], error) {
	return ReadJSONL[model.Pool](ctx, p.paths.Pools, p.logger)
}

func (p *JSONLProvider) LoadTransactions(ctx context.Context) (Snapshot[model.Transaction], error) {
	return ReadJSONL[model.Transaction](ctx, p.paths.Transactions, p.logger)
}

func (p *JSONLProvider) LoadChartDays(ctx context.Context) ([]model.ChartDay, error) {
	snap, err := ReadJSONL[model.ChartDay](ctx, p.paths.ChartDays, p.logger)
	if err != nil {
		return nil, err
	}
	days := make([]model.ChartDay, 0, len(snap.Records))
	for _, day := range snap.Records {
		days = append(days, *day)
	}
	return days, nil
}

// ReadJSONL decodes one record per line. Blank lines are skipped and
// malformed lines are logged and dropped. The snapshot version is the
// xxhash of the file bytes.
func ReadJSONL[T any](ctx context.Context, path string, logger *zap.Logger) (Snapshot[T], error) {
	if path == "" {
		return Snapshot[T]{}, nil
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	file, err := os.Open(path)
	if err != nil {
		return Snapshot[T]{}, fmt.Errorf("open input: %w", err)
	}
	defer file.Close()

	digest := xxhash.New()
	scanner := bufio.NewScanner(io.TeeReader(file, digest))
	buf := make([]byte, 0, 64*1024)
	scanner.Buffer(buf, 10*1024*1024)

	records := make([]*T, 0, 256)
	var lineNo, failed int
	for scanner.Scan() {
		lineNo++
		if lineNo%1024 == 0 {
			if err := ctx.Err(); err != nil {
				return Snapshot[T]{}, err
			}
		}

		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}

		record := new(T)
		if err := json.Unmarshal(line, record); err != nil {
			failed++
			logger.Warn("decode record", zap.String("path", path), zap.Int("line", lineNo), zap.Error(err))
			continue
		}
		records = append(records, record)
	}

	if err := scanner.Err(); err != nil {
		return Snapshot[T]{}, fmt.Errorf("scan input: %w", err)
	}

	logger.Debug("jsonl loaded",
		zap.String("path", path),
		zap.Int("records", len(records)),
		zap.Int("failed", failed),
	)

	return Snapshot[T]{Records: records, Version: digest.Sum64()}, nil
}

// JSONLWriter writes one JSON value per line.
type JSONLWriter struct {
	mu     sync.Mutex
	file   *os.File
	writer *bufio.Writer
}

// CreateJSONL truncates or creates path and returns a writer for it.
func CreateJSONL(path string) (*JSONLWriter, error) {
	dir := filepath.Dir(path)
	if dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create output dir: %w", err)
		}
	}

	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open output file: %w", err)
	}
	return &JSONLWriter{file: file, writer: bufio.NewWriter(file)}, nil
}

// NewJSONLWriter wraps an already open stream such as stdout.
func NewJSONLWriter(w io.Writer) *JSONLWriter {
	return &JSONLWriter{writer: bufio.NewWriter(w)}
}

func (w *JSONLWriter) Write(value interface{}) error {
	line, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("marshal: %w", err)
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	if _, err := w.writer.Write(line); err != nil {
		return fmt.Errorf("write: %w", err)
	}
	if err := w.writer.WriteByte('\n'); err != nil {
		return fmt.Errorf("write newline: %w", err)
	}
	return nil
}

// PutBuckets writes each bucket as a line.
func (w *JSONLWriter) PutBuckets(buckets []model.WindowBucket) error {
	for _, bucket := range buckets {
		if err := w.Write(bucket); err != nil {
			return err
		}
	}
	return nil
}

func (w *JSONLWriter) Close() error {
	if w == nil {
		return nil
	}
	w.mu.Lock()
	defer w.mu.Unlock()

	if err := w.writer.Flush(); err != nil {
		if w.file != nil {
			w.file.Close()
		}
		return fmt.Errorf("flush output: %w", err)
	}
	if w.file == nil {
		return nil
	}
	return w.file.Close()
}
