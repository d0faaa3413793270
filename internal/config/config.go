package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

const (
	DefaultPort                 = 3000
	DefaultMetricsPort          = "2112"
	DefaultStatsCacheSizeMB     = 8
	DefaultStatsCacheTTLSeconds = 60
	DateLayout                  = "2006-01-02"
)

type Config struct {
	Environment string `toml:"-"`

	Host string `toml:"host"`
	Port int    `toml:"port"`

	// logging
	LogLevel      string `toml:"log_level"`
	LogsPath      string `toml:"logs_path"`
	LogToStdout   bool   `toml:"log_to_stdout"`
	LogFormatJSON bool   `toml:"log_format_json"`
	SentryEnabled bool   `toml:"sentry_enabled"`

	// postgres
	PostgresHost   string `toml:"postgres_host"`
	PostgresPort   string `toml:"postgres_port"`
	PostgresDBName string `toml:"postgres_db_name"`
	PostgresUser   string `toml:"postgres_user"`
	// MigrateOnStart runs the idempotent schema bootstrap before serving.
	MigrateOnStart bool `toml:"migrate_on_start"`

	// redis, optional: empty host disables write rate limiting
	RedisHost            string `toml:"redis_host"`
	RedisPort            string `toml:"redis_port"`
	WriteRateLimitPerMin int    `toml:"write_rate_limit_per_min"`

	// metrics
	PrometheusMetricsHost string `toml:"prometheus_metrics_host"`
	PrometheusMetricsPort string `toml:"prometheus_metrics_port"`

	// stats cache
	StatsCacheSizeMB     int `toml:"stats_cache_size_mb"`
	StatsCacheTTLSeconds int `toml:"stats_cache_ttl_seconds"`

	MCPEnabled bool `toml:"mcp_enabled"`

	Profile Profile `toml:"profile"`
}

// Profile is the initial user profile, written to the profile table on first start.
type Profile struct {
	Name        string  `toml:"name"`
	HeightCm    float64 `toml:"height_cm"`
	DateOfBirth string  `toml:"date_of_birth"`
}

func (p Profile) DOB() (time.Time, error) {
	dob, err := time.Parse(DateLayout, p.DateOfBirth)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse profile date of birth [%s]: %w", p.DateOfBirth, err)
	}
	return dob, nil
}

type Toml struct {
	Development *Config
	Production  *Config
	DockerDev   *Config `toml:"dockerdev"`
}

func (t *Toml) Get(env string) (*Config, error) {
	var cfg *Config
	switch strings.ToLower(env) {
	case "dev", "development":
		cfg = t.Development
	case "prod", "production":
		cfg = t.Production
	case "ddev", "dockerdev":
		cfg = t.DockerDev
	default:
		return nil, fmt.Errorf("unknown env: %s", env)
	}
	if cfg == nil {
		return nil, fmt.Errorf("no config section for env: %s", env)
	}
	return cfg, nil
}

func Load(env, path string) (*Config, error) {
	var t Toml
	if _, err := toml.DecodeFile(path, &t); err != nil {
		return nil, fmt.Errorf("decode config file [%s]: %w", path, err)
	}
	return fromToml(env, &t)
}

// Parse is like Load, but reads the TOML document from a string.
func Parse(env, data string) (*Config, error) {
	var t Toml
	if _, err := toml.Decode(data, &t); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	return fromToml(env, &t)
}

func fromToml(env string, t *Toml) (*Config, error) {
	cfg, err := t.Get(env)
	if err != nil {
		return nil, err
	}
	cfg.Environment = strings.ToLower(env)
	cfg.setDefaults()

	if cfg.Profile.HeightCm <= 0 {
		return nil, fmt.Errorf("profile height must be positive, got %v", cfg.Profile.HeightCm)
	}
	if _, err := cfg.Profile.DOB(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) setDefaults() {
	if c.Port == 0 {
		c.Port = DefaultPort
	}
	if c.PostgresPort == "" {
		c.PostgresPort = "5432"
	}
	if c.PostgresUser == "" {
		c.PostgresUser = "postgres"
	}
	if c.PrometheusMetricsPort == "" {
		c.PrometheusMetricsPort = DefaultMetricsPort
	}
	if c.RedisPort == "" {
		c.RedisPort = "6379"
	}
	if c.StatsCacheSizeMB <= 0 {
		c.StatsCacheSizeMB = DefaultStatsCacheSizeMB
	}
	if c.StatsCacheTTLSeconds <= 0 {
		c.StatsCacheTTLSeconds = DefaultStatsCacheTTLSeconds
	}
}
