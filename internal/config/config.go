package config

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// TableConfig holds configuration for the tokens, pools and txs commands.
type TableConfig struct {
	Input         string
	PGDSN         string
	Sort          string
	Page          int
	Next          bool
	Prev          bool
	PageSize      int
	Filter        string
	AllPages      bool
	Format        string
	StateFile     string
	StateDB       bool
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	TokenHide     []string
	PoolHide      []string
	MemoSize      int
	LogLevel      string
}

// LoadTable merges .env, config file, environment variables, and flags into
// TableConfig.
func LoadTable(cfgFile string, flags *pflag.FlagSet) (TableConfig, error) {
	v, err := newViper(cfgFile, flags, map[string]interface{}{
		"page-size": 10,
		"format":    "text",
		"memo-size": 16,
		"log-level": "info",
	})
	if err != nil {
		return TableConfig{}, err
	}

	cfg := TableConfig{
		Input:         v.GetString("in"),
		PGDSN:         v.GetString("pg-dsn"),
		Sort:          v.GetString("sort"),
		Page:          v.GetInt("page"),
		Next:          v.GetBool("next"),
		Prev:          v.GetBool("prev"),
		PageSize:      v.GetInt("page-size"),
		Filter:        v.GetString("filter"),
		AllPages:      v.GetBool("all-pages"),
		Format:        v.GetString("format"),
		StateFile:     v.GetString("state-file"),
		StateDB:       v.GetBool("state-db"),
		RedisAddr:     v.GetString("redis-addr"),
		RedisPassword: v.GetString("redis-password"),
		RedisDB:       v.GetInt("redis-db"),
		TokenHide:     getStringSlice(v, "token-hide"),
		PoolHide:      getStringSlice(v, "pool-hide"),
		MemoSize:      v.GetInt("memo-size"),
		LogLevel:      v.GetString("log-level"),
	}

	return cfg, nil
}

func newViper(cfgFile string, flags *pflag.FlagSet, defaults map[string]interface{}) (*viper.Viper, error) {
	if err := LoadDotEnv(".env"); err != nil {
		return nil, err
	}

	v := viper.New()
	v.SetEnvPrefix("DASHBOARD")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	if flags != nil {
		if err := v.BindPFlags(flags); err != nil {
			return nil, fmt.Errorf("bind flags: %w", err)
		}
	}

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return nil, fmt.Errorf("read config: %w", err)
			}
		}
	}

	return v, nil
}

func getStringSlice(v *viper.Viper, key string) []string {
	if !v.IsSet(key) {
		return nil
	}

	val := v.Get(key)
	switch typed := val.(type) {
	case []string:
		return splitAndClean(strings.Join(typed, ","))
	case string:
		return splitAndClean(typed)
	case []interface{}:
		items := make([]string, 0, len(typed))
		for _, item := range typed {
			items = append(items, fmt.Sprintf("%v", item))
		}
		return cleanStrings(items)
	default:
		return nil
	}
}

func splitAndClean(input string) []string {
	if input == "" {
		return nil
	}
	parts := strings.Split(input, ",")
	return cleanStrings(parts)
}

func cleanStrings(items []string) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		out = append(out, item)
	}
	return out
}
