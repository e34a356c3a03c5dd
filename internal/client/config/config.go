package config

import (
	"context"
	"time"

	"github.com/sethvargo/go-envconfig"
)

// Config holds runtime settings for the linkdash terminal client.
//
// Fields:
//   - APIBaseURL: root of the link-tracking REST API, including the /api prefix.
//   - SessionDBPath: SQLite file holding the persisted session.
//   - HealthCheckInterval: how often the client probes GET /health.
//   - RequestTimeout: per-request timeout; zero means none.
//   - LogLevel, LogFormat: see logging.New.
type Config struct {
	APIBaseURL          string
	SessionDBPath       string
	HealthCheckInterval time.Duration
	RequestTimeout      time.Duration
	LogLevel            string
	LogFormat           string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://localhost:5000/api"
	c.SessionDBPath = "session.db"
	c.HealthCheckInterval = 3 * time.Second
	c.RequestTimeout = 0
	c.LogLevel = "info"
	c.LogFormat = "text"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present), the process environment and command-line flags. Later
// sources take precedence over earlier ones.
func LoadConfig(ctx context.Context) *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	if err := parseEnv(ctx, cfg, envconfig.OsLookuper()); err != nil {
		panic(err)
	}
	parseFlags(cfg)
	return cfg
}
