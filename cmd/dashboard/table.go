package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"dexBoard/internal/config"
	"dexBoard/internal/model"
	"dexBoard/internal/storage"
	"dexBoard/internal/table"
	"dexBoard/internal/viewstate"
)

// tableSpec wires one record type into the shared table command flow.
type tableSpec[T any] struct {
	schema  table.Schema[T]
	columns []column[T]
	paths   func(input string) storage.JSONLPaths
	load    func(ctx context.Context, p storage.Provider) (storage.Snapshot[T], error)
	deny    func(cfg config.TableConfig) table.Denylist
	filter  func(name string) (table.Filter[T], error)
}

func runTokens(cmd *cobra.Command, _ []string) error {
	return runTable(cmd, tableSpec[model.Token]{
		schema:  table.Tokens(),
		columns: tokenColumns,
		paths:   func(in string) storage.JSONLPaths { return storage.JSONLPaths{Tokens: in} },
		load: func(ctx context.Context, p storage.Provider) (storage.Snapshot[model.Token], error) {
			return p.LoadTokens(ctx)
		},
		deny: func(cfg config.TableConfig) table.Denylist { return table.NewDenylist(cfg.TokenHide...) },
	})
}

func runPools(cmd *cobra.Command, _ []string) error {
	return runTable(cmd, tableSpec[model.Pool]{
		schema:  table.Pools(),
		columns: poolColumns,
		paths:   func(in string) storage.JSONLPaths { return storage.JSONLPaths{Pools: in} },
		load: func(ctx context.Context, p storage.Provider) (storage.Snapshot[model.Pool], error) {
			return p.LoadPools(ctx)
		},
		deny: func(cfg config.TableConfig) table.Denylist { return table.NewDenylist(cfg.PoolHide...) },
	})
}

func runTransactions(cmd *cobra.Command, _ []string) error {
	return runTable(cmd, tableSpec[model.Transaction]{
		schema:  table.Transactions(),
		columns: transactionColumns,
		paths:   func(in string) storage.JSONLPaths { return storage.JSONLPaths{Transactions: in} },
		load: func(ctx context.Context, p storage.Provider) (storage.Snapshot[model.Transaction], error) {
			return p.LoadTransactions(ctx)
		},
		filter: table.TransactionFilter,
	})
}

func runTable[T any](cmd *cobra.Command, spec tableSpec[T]) error {
	cfgFile, _ := cmd.Flags().GetString("config")
	cfg, err := config.LoadTable(cfgFile, cmd.Flags())
	if err != nil {
		return err
	}

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer logger.Sync()

	if cfg.Input == "" && cfg.PGDSN == "" {
		return fmt.Errorf("input path or pg dsn is required")
	}
	if cfg.Format != "text" && cfg.Format != "jsonl" {
		return fmt.Errorf("unsupported format: %s", cfg.Format)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	b, err := openBackend(ctx, backendConfig{
		PGDSN:         cfg.PGDSN,
		Paths:         spec.paths(cfg.Input),
		StateFile:     cfg.StateFile,
		StateDB:       cfg.StateDB,
		RedisAddr:     cfg.RedisAddr,
		RedisPassword: cfg.RedisPassword,
		RedisDB:       cfg.RedisDB,
	}, logger)
	if err != nil {
		return err
	}
	defer b.Close()

	name := spec.schema.Name
	rec, ok, err := b.state.Load(ctx, name)
	if err != nil {
		return fmt.Errorf("load view state: %w", err)
	}
	state := table.NewState(spec.schema.DefaultSort, cfg.PageSize)
	restored := ok && rec.Table != nil
	if restored {
		state = *rec.Table
	}

	resize := !restored || cmd.Flags().Changed("page-size")
	filter, err := applyActions(&state, spec, cfg, resize)
	if err != nil {
		return err
	}

	snap, err := spec.load(ctx, b.provider)
	if err != nil {
		return fmt.Errorf("load %s: %w", name, err)
	}

	var deny table.Denylist
	if spec.deny != nil {
		deny = spec.deny(cfg)
	}
	memo, err := table.NewMemo(spec.schema, deny, cfg.MemoSize)
	if err != nil {
		return err
	}

	pages, err := paginate(memo, snap, filter, &state, cfg)
	if err != nil {
		return err
	}

	logger.Info("table view",
		zap.String("table", name),
		zap.Int("records", len(snap.Records)),
		zap.Int("total", state.Observed),
		zap.String("sort", state.Sort.String()),
		zap.String("filter", filter.Key()),
		zap.Int("page", state.Page),
		zap.Uint64("version", snap.Version),
	)

	if err := render(os.Stdout, cfg.Format, spec.schema, spec.columns, state.Sort, pages); err != nil {
		return err
	}

	if err := b.state.Save(ctx, name, viewstate.Record{Table: &state}); err != nil {
		return fmt.Errorf("save view state: %w", err)
	}
	return nil
}

// applyActions applies the sort, filter and page size flags to state and
// resolves the active filter.
func applyActions[T any](state *table.State, spec tableSpec[T], cfg config.TableConfig, resize bool) (table.Filter[T], error) {
	if cfg.Sort != "" {
		if _, err := spec.schema.Field(cfg.Sort); err != nil {
			return table.Filter[T]{}, fmt.Errorf("%w (fields: %v)", err, spec.schema.FieldNames())
		}
		state.SortBy(cfg.Sort)
	}
	if resize && cfg.PageSize != state.PageSize {
		if cfg.PageSize <= 0 {
			return table.Filter[T]{}, fmt.Errorf("page size %d: %w", cfg.PageSize, table.ErrInvalidPageSize)
		}
		state.SetPageSize(cfg.PageSize)
	}

	if spec.filter == nil {
		return table.Filter[T]{}, nil
	}
	name := state.Filter
	if cfg.Filter != "" {
		name = cfg.Filter
	}
	filter, err := spec.filter(name)
	if err != nil {
		return table.Filter[T]{}, err
	}
	state.SetFilter(filter.Name)
	return filter, nil
}

// paginate observes the snapshot's filtered size, applies the page
// navigation flags, and returns the pages to render.
func paginate[T any](memo *table.Memo[T], snap storage.Snapshot[T], filter table.Filter[T], state *table.State, cfg config.TableConfig) ([]table.PageResult[T], error) {
	first, err := memo.View(snap.Version, snap.Records, filter, state.Sort, table.FirstPage(state.PageSize))
	if err != nil {
		return nil, err
	}
	state.Observe(first.Total)

	switch {
	case cfg.Page > 0:
		state.Goto(cfg.Page, first.TotalPages)
	case cfg.Next:
		state.Next(first.TotalPages)
	case cfg.Prev:
		state.Prev()
	}

	if !cfg.AllPages {
		page, err := memo.View(snap.Version, snap.Records, filter, state.Sort, state.Request())
		if err != nil {
			return nil, err
		}
		return []table.PageResult[T]{page}, nil
	}

	pages := make([]table.PageResult[T], 0, first.TotalPages)
	for n := 1; n <= first.TotalPages; n++ {
		page, err := memo.View(snap.Version, snap.Records, filter, state.Sort, table.PageRequest{Size: state.PageSize, Number: n})
		if err != nil {
			return nil, err
		}
		pages = append(pages, page)
	}
	return pages, nil
}

// render prints pages as aligned text, or as one JSON object per row
// holding its rank, id and sort fields.
func render[T any](w io.Writer, format string, schema table.Schema[T], columns []column[T], sort table.SortSpec, pages []table.PageResult[T]) error {
	if format == "jsonl" {
		writer := storage.NewJSONLWriter(w)
		for _, page := range pages {
			for i, item := range page.Items {
				row := schema.Row(item)
				row["rank"] = page.Rank(i)
				if err := writer.Write(row); err != nil {
					writer.Close()
					return err
				}
			}
		}
		return writer.Close()
	}

	for i, page := range pages {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		if err := renderPage(w, columns, sort, page); err != nil {
			return err
		}
	}
	return nil
}
