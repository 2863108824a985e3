package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"dexBoard/internal/chart"
	"dexBoard/internal/config"
	"dexBoard/internal/model"
	"dexBoard/internal/storage"
	"dexBoard/internal/storage/postgres"
	"dexBoard/internal/viewstate"
)

// chartStateName keys the saved window by metric.
func chartStateName(metric chart.Metric) string {
	return "chart:" + string(metric)
}

func runChart(cmd *cobra.Command, _ []string) error {
	cfgFile, _ := cmd.Flags().GetString("config")
	cfg, err := config.LoadChart(cfgFile, cmd.Flags())
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
	if cfg.Persist && cfg.PGDSN == "" {
		return fmt.Errorf("pg dsn is required for persist")
	}
	if cfg.Format != "text" && cfg.Format != "jsonl" {
		return fmt.Errorf("unsupported format: %s", cfg.Format)
	}

	metric, err := chart.ParseMetric(cfg.Metric)
	if err != nil {
		return err
	}
	strategy := metric.Strategy()
	if cfg.Strategy != "" {
		if strategy, err = chart.ParseStrategy(cfg.Strategy); err != nil {
			return err
		}
	}

	from, err := config.ParseDate(cfg.From)
	if err != nil {
		return fmt.Errorf("parse from: %w", err)
	}
	to, err := config.ParseDate(cfg.To)
	if err != nil {
		return fmt.Errorf("parse to: %w", err)
	}
	if !from.IsZero() && !to.IsZero() && to.Before(from) {
		return fmt.Errorf("to must not be before from")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	b, err := openBackend(ctx, backendConfig{
		PGDSN:         cfg.PGDSN,
		Paths:         storage.JSONLPaths{ChartDays: cfg.Input},
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

	granularity, err := resolveWindow(ctx, b.state, chartStateName(metric), cfg.Window)
	if err != nil {
		return err
	}

	days, err := b.provider.LoadChartDays(ctx)
	if err != nil {
		return fmt.Errorf("load chart days: %w", err)
	}

	samples := chart.Range(chart.Series(days, metric), from, to)
	buckets := chart.Collect(samples, granularity, strategy)

	logger.Info("chart aggregated",
		zap.String("metric", string(metric)),
		zap.String("window", string(granularity)),
		zap.String("strategy", string(strategy)),
		zap.Int("days", len(days)),
		zap.Int("samples", len(samples)),
		zap.Int("buckets", len(buckets)),
	)

	if cfg.Out != "" {
		sink, err := storage.OpenSink(cfg.Out, string(metric), string(granularity))
		if err != nil {
			return err
		}
		if err := writeBuckets(sink, buckets); err != nil {
			return fmt.Errorf("export buckets: %w", err)
		}
		logger.Info("chart exported", zap.String("out", cfg.Out), zap.Int("buckets", len(buckets)))
	}

	if cfg.Persist {
		writer := &postgres.BucketWriter{
			Store:       b.pg,
			Ctx:         ctx,
			Series:      string(metric),
			Granularity: string(granularity),
			BatchSize:   cfg.BatchSize,
		}
		if err := writeBuckets(writer, buckets); err != nil {
			return fmt.Errorf("persist buckets: %w", err)
		}
		logger.Info("chart persisted", zap.Int("buckets", len(buckets)))
	}

	if err := renderBuckets(os.Stdout, cfg.Format, granularity, buckets); err != nil {
		return err
	}

	if err := b.state.Save(ctx, chartStateName(metric), viewstate.Record{Window: string(granularity)}); err != nil {
		return fmt.Errorf("save view state: %w", err)
	}
	return nil
}

// resolveWindow picks the window flag, then the saved window, then daily.
func resolveWindow(ctx context.Context, store viewstate.Store, name, flag string) (chart.Granularity, error) {
	if flag != "" {
		return chart.ParseGranularity(flag)
	}
	rec, ok, err := store.Load(ctx, name)
	if err != nil {
		return "", fmt.Errorf("load view state: %w", err)
	}
	if ok && rec.Window != "" {
		return chart.ParseGranularity(rec.Window)
	}
	return chart.Day, nil
}

func writeBuckets(sink storage.BucketSink, buckets []model.WindowBucket) error {
	if err := sink.PutBuckets(buckets); err != nil {
		sink.Close()
		return err
	}
	return sink.Close()
}

func renderBuckets(w io.Writer, format string, g chart.Granularity, buckets []model.WindowBucket) error {
	if format == "jsonl" {
		writer := storage.NewJSONLWriter(w)
		if err := writer.PutBuckets(buckets); err != nil {
			writer.Close()
			return err
		}
		return writer.Close()
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "Window\tValue\tDays")
	for _, bucket := range buckets {
		fmt.Fprintf(tw, "%s\t%s\t%d\n", g.Label(bucket.WindowStart), formatDollar(bucket.Value), bucket.Samples)
	}
	return tw.Flush()
}
