package config

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
)

const (
	defaultWorkers              = 4
	defaultLocalCacheMB         = 32
	defaultRangeRateLimitPerMin = 6
)

type Config struct {
	Environment string `toml:"environment"`
	// http api
	Host                  string `toml:"host"`
	Port                  int    `toml:"port"`
	PrometheusMetricsHost string `toml:"prometheus_metrics_host"`
	PrometheusMetricsPort string `toml:"prometheus_metrics_port"`
	RangeRateLimitPerMin  int    `toml:"range_rate_limit_per_min"`
	// logging
	LogLevel      string `toml:"log_level"`
	LogsPath      string `toml:"logs_path"`
	LogToStdout   bool   `toml:"log_to_stdout"`
	SentryEnabled bool   `toml:"sentry_enabled"`
	// postgres
	PostgresHost   string `toml:"postgres_host"`
	PostgresPort   string `toml:"postgres_port"`
	PostgresDBName string `toml:"postgres_db_name"`
	// redis
	RedisHost string `toml:"redis_host"`
	RedisPort string `toml:"redis_port"`
	// result cache
	LocalCacheMB  int `toml:"local_cache_mb"`
	CacheTTLHours int `toml:"cache_ttl_hours"`
	// recompute
	UserID         int  `toml:"user_id"`
	Workers        int  `toml:"workers"`
	DeriveHRBounds bool `toml:"derive_hr_bounds"`
	TracingEnabled bool `toml:"tracing_enabled"`
}

type Toml struct {
	Development *Config
	Production  *Config
}

func (t *Toml) Get(env string) (*Config, error) {
	switch strings.ToLower(env) {
	case "dev", "development":
		return t.Development, nil
	case "prod", "production":
		return t.Production, nil
	default:
		return nil, fmt.Errorf("unknown env: %s", env)
	}
}

// Load reads the TOML file at path and returns the section for env.
func Load(env, path string) (*Config, error) {
	var t Toml
	if _, err := toml.DecodeFile(path, &t); err != nil {
		return nil, fmt.Errorf("decode config %s: %w", path, err)
	}

	cfg, err := t.Get(env)
	if err != nil {
		return nil, err
	}
	if cfg == nil {
		return nil, fmt.Errorf("config %s has no section for env: %s", path, env)
	}

	if cfg.Workers <= 0 {
		cfg.Workers = defaultWorkers
	}
	if cfg.LocalCacheMB <= 0 {
		cfg.LocalCacheMB = defaultLocalCacheMB
	}
	if cfg.RangeRateLimitPerMin <= 0 {
		cfg.RangeRateLimitPerMin = defaultRangeRateLimitPerMin
	}
	if cfg.Environment == "" {
		cfg.Environment = strings.ToLower(env)
	}

	return cfg, nil
}
