package config

import (
	"strconv"
	"strings"
	"time"

	"github.com/spf13/pflag"
)

// ChartConfig holds configuration for the chart command.
type ChartConfig struct {
	Input         string
	PGDSN         string
	Metric        string
	Window        string
	Strategy      string
	From          string
	To            string
	Out           string
	Persist       bool
	Format        string
	BatchSize     int
	StateFile     string
	StateDB       bool
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	LogLevel      string
}

// LoadChart merges .env, config file, environment variables, and flags into
// ChartConfig.
func LoadChart(cfgFile string, flags *pflag.FlagSet) (ChartConfig, error) {
	v, err := newViper(cfgFile, flags, map[string]interface{}{
		"metric":     "volume",
		"format":     "text",
		"batch-size": 1000,
		"log-level":  "info",
	})
	if err != nil {
		return ChartConfig{}, err
	}

	cfg := ChartConfig{
		Input:         v.GetString("in"),
		PGDSN:         v.GetString("pg-dsn"),
		Metric:        v.GetString("metric"),
		Window:        v.GetString("window"),
		Strategy:      v.GetString("strategy"),
		From:          v.GetString("from"),
		To:            v.GetString("to"),
		Out:           v.GetString("out"),
		Persist:       v.GetBool("persist"),
		Format:        v.GetString("format"),
		BatchSize:     v.GetInt("batch-size"),
		StateFile:     v.GetString("state-file"),
		StateDB:       v.GetBool("state-db"),
		RedisAddr:     v.GetString("redis-addr"),
		RedisPassword: v.GetString("redis-password"),
		RedisDB:       v.GetInt("redis-db"),
		LogLevel:      v.GetString("log-level"),
	}

	return cfg, nil
}

// ParseDate parses a date bound (YYYY-MM-DD, RFC3339 or unix seconds) into
// a UTC time. Empty input is the zero time.
func ParseDate(input string) (time.Time, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return time.Time{}, nil
	}

	if isNumeric(input) {
		val, err := strconv.ParseInt(input, 10, 64)
		if err != nil {
			return time.Time{}, err
		}
		return time.Unix(val, 0).UTC(), nil
	}

	if tm, err := time.Parse(time.DateOnly, input); err == nil {
		return tm.UTC(), nil
	}

	tm, err := time.Parse(time.RFC3339, input)
	if err != nil {
		return time.Time{}, err
	}
	return tm.UTC(), nil
}

func isNumeric(input string) bool {
	for _, r := range input {
		if r < '0' || r > '9' {
			return false
		}
	}
	return input != ""
}

// DBConfig holds configuration for the migrate command.
type DBConfig struct {
	PGDSN    string
	LogLevel string
}

func LoadDB(cfgFile string, flags *pflag.FlagSet) (DBConfig, error) {
	v, err := newViper(cfgFile, flags, map[string]interface{}{
		"log-level": "info",
	})
	if err != nil {
		return DBConfig{}, err
	}
	return DBConfig{PGDSN: v.GetString("pg-dsn"), LogLevel: v.GetString("log-level")}, nil
}
