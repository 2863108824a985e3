package main

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func main() {
	root := &cobra.Command{
		Use:          "dashboard",
		Short:        "DEX analytics tables and charts",
		SilenceUsage: true,
	}

	root.PersistentFlags().String("config", "", "config file path")

	tokensCmd := &cobra.Command{
		Use:   "tokens",
		Short: "Show the token table",
		RunE:  runTokens,
	}
	addTableFlags(tokensCmd.Flags(), "tokens JSONL snapshot")
	root.AddCommand(tokensCmd)

	poolsCmd := &cobra.Command{
		Use:   "pools",
		Short: "Show the pool table",
		RunE:  runPools,
	}
	addTableFlags(poolsCmd.Flags(), "pools JSONL snapshot")
	root.AddCommand(poolsCmd)

	txsCmd := &cobra.Command{
		Use:   "txs",
		Short: "Show the transaction table",
		RunE:  runTransactions,
	}
	addTableFlags(txsCmd.Flags(), "transactions JSONL snapshot")
	txsCmd.Flags().String("filter", "", "transaction type filter (all, swap, add, remove)")
	root.AddCommand(txsCmd)

	chartCmd := &cobra.Command{
		Use:   "chart",
		Short: "Aggregate a protocol series into day, week or month buckets",
		RunE:  runChart,
	}
	chartCmd.Flags().String("in", "", "protocol day data JSONL snapshot")
	chartCmd.Flags().String("pg-dsn", "", "Postgres DSN")
	chartCmd.Flags().String("metric", "volume", "series to chart (tvl, volume, fees)")
	chartCmd.Flags().String("window", "", "bucket granularity (day, week, month); defaults to the saved window")
	chartCmd.Flags().String("strategy", "", "bucket reduction (sum, last); defaults to the metric's")
	chartCmd.Flags().String("from", "", "first date (YYYY-MM-DD, RFC3339 or unix seconds)")
	chartCmd.Flags().String("to", "", "last date (YYYY-MM-DD, RFC3339 or unix seconds)")
	chartCmd.Flags().String("out", "", "export buckets to a .jsonl or .parquet file")
	chartCmd.Flags().Bool("persist", false, "upsert buckets into Postgres chart_buckets")
	chartCmd.Flags().Int("batch-size", 1000, "batch size for DB writes")
	chartCmd.Flags().String("format", "text", "output format (text, jsonl)")
	addStateFlags(chartCmd.Flags())
	chartCmd.Flags().String("log-level", "info", "log level (debug, info, warn, error)")
	root.AddCommand(chartCmd)

	migrateCmd := &cobra.Command{
		Use:   "migrate",
		Short: "Create the dashboard tables in Postgres",
		RunE:  runMigrate,
	}
	migrateCmd.Flags().String("pg-dsn", "", "Postgres DSN")
	migrateCmd.Flags().String("log-level", "info", "log level (debug, info, warn, error)")
	root.AddCommand(migrateCmd)

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func addTableFlags(flags *pflag.FlagSet, input string) {
	flags.String("in", "", "input "+input)
	flags.String("pg-dsn", "", "Postgres DSN")
	flags.String("sort", "", "click a column header: sort by field, again to flip direction")
	flags.Int("page", 0, "jump to page")
	flags.Bool("next", false, "go to the next page")
	flags.Bool("prev", false, "go to the previous page")
	flags.Int("page-size", 10, "rows per page")
	flags.Bool("all-pages", false, "print every page")
	flags.String("format", "text", "output format (text, jsonl)")
	flags.StringSlice("token-hide", nil, "token addresses hidden from tables (comma-separated)")
	flags.StringSlice("pool-hide", nil, "pool addresses hidden from tables (comma-separated)")
	flags.Int("memo-size", 16, "cached arranged views")
	addStateFlags(flags)
	flags.String("log-level", "info", "log level (debug, info, warn, error)")
}

func addStateFlags(flags *pflag.FlagSet) {
	flags.String("state-file", "", "local view state file")
	flags.Bool("state-db", false, "keep view state in Postgres dashboard_state")
	flags.String("redis-addr", "", "keep view state in Redis")
	flags.String("redis-password", "", "Redis password")
	flags.Int("redis-db", 0, "Redis database")
}

func newLogger(level string) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevel()
	if err := cfg.Level.UnmarshalText([]byte(level)); err != nil {
		return nil, err
	}

	cfg.EncoderConfig.TimeKey = "ts"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	return cfg.Build()
}
