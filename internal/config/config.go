package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

type Config struct {
	Environment string `toml:"environment"`
	Host        string `toml:"host"`
	Port        int    `toml:"port"`

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

	// redis
	RedisHost string `toml:"redis_host"`
	RedisPort string `toml:"redis_port"`

	// metrics
	PrometheusMetricsHost string `toml:"prometheus_metrics_host"`
	PrometheusMetricsPort string `toml:"prometheus_metrics_port"`

	// auth
	FrontendURL                 string   `toml:"frontend_url"`
	GoogleCallbackURL           string   `toml:"google_callback_url"`
	AllowedOrigins              []string `toml:"allowed_origins"`
	LoginRateLimitAllowedPerMin int      `toml:"login_rate_limit_allowed_per_min"`
	SessionTTL                  Duration `toml:"session_ttl"`
	TokenTTL                    Duration `toml:"token_ttl"`
	SecureCookies               bool     `toml:"secure_cookies"`
	// only set when the service sits behind a proxy that overwrites X-Forwarded-For / X-Real-Ip
	TrustProxyHeaders bool `toml:"trust_proxy_headers"`

	// exercise catalog cache
	ExerciseCacheSizeMB int      `toml:"exercise_cache_size_mb"`
	ExerciseCacheTTL    Duration `toml:"exercise_cache_ttl"`
}

// Duration lets TOML values like "24h" or "720h" decode into a time.Duration.
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	parsed, err := time.ParseDuration(string(text))
	if err != nil {
		return fmt.Errorf("parse duration [%s]: %w", text, err)
	}
	d.Duration = parsed
	return nil
}

type Toml struct {
	Development *Config
	Production  *Config
}

func (t *Toml) Get(env string) (*Config, error) {
	var cfg *Config
	switch strings.ToLower(env) {
	case "dev", "development":
		cfg = t.Development
	case "prod", "production":
		cfg = t.Production
	default:
		return nil, fmt.Errorf("unknown env: %s", env)
	}
	if cfg == nil {
		return nil, fmt.Errorf("config section for env [%s] missing", env)
	}
	if cfg.Environment == "" {
		cfg.Environment = strings.ToLower(env)
	}
	cfg.setDefaults()
	return cfg, cfg.validate()
}

// Load reads the TOML file at path and returns the section for env.
func Load(env, path string) (*Config, error) {
	var t Toml
	if _, err := toml.DecodeFile(path, &t); err != nil {
		return nil, fmt.Errorf("decode config file %s: %w", path, err)
	}
	return t.Get(env)
}

func (c *Config) setDefaults() {
	if c.Host == "" {
		c.Host = "localhost"
	}
	if c.LoginRateLimitAllowedPerMin <= 0 {
		c.LoginRateLimitAllowedPerMin = 10
	}
	if c.SessionTTL.Duration <= 0 {
		c.SessionTTL.Duration = 24 * time.Hour
	}
	if c.TokenTTL.Duration <= 0 {
		c.TokenTTL.Duration = 30 * 24 * time.Hour
	}
	if c.ExerciseCacheSizeMB <= 0 {
		c.ExerciseCacheSizeMB = 4
	}
	if c.ExerciseCacheTTL.Duration <= 0 {
		c.ExerciseCacheTTL.Duration = 10 * time.Minute
	}
	if c.PostgresUser == "" {
		c.PostgresUser = "postgres"
	}
}

func (c *Config) validate() error {
	if c.Port <= 0 {
		return errors.New("config: port must be set")
	}
	if c.FrontendURL == "" {
		return errors.New("config: frontend_url must be set")
	}
	if c.GoogleCallbackURL == "" {
		return errors.New("config: google_callback_url must be set")
	}
	return nil
}
