package config

import (
	"context"
	"time"

	"github.com/sethvargo/go-envconfig"
)

// envConfig mirrors Config with pointer fields so unset variables can be told
// apart from zero values.
type envConfig struct {
	APIBaseURL          *string        `env:"LINKDASH_API_URL, noinit"`
	SessionDBPath       *string        `env:"LINKDASH_SESSION_DB, noinit"`
	HealthCheckInterval *time.Duration `env:"LINKDASH_HEALTH_INTERVAL, noinit"`
	RequestTimeout      *time.Duration `env:"LINKDASH_REQUEST_TIMEOUT, noinit"`
	LogLevel            *string        `env:"LINKDASH_LOG_LEVEL, noinit"`
	LogFormat           *string        `env:"LINKDASH_LOG_FORMAT, noinit"`
}

// parseEnv overlays cfg with LINKDASH_* variables resolved through l.
// Durations use time.ParseDuration syntax ("5s").
func parseEnv(ctx context.Context, cfg *Config, l envconfig.Lookuper) error {
	var ec envConfig
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{
		Target:   &ec,
		Lookuper: l,
	}); err != nil {
		return err
	}

	if ec.APIBaseURL != nil {
		cfg.APIBaseURL = *ec.APIBaseURL
	}
	if ec.SessionDBPath != nil {
		cfg.SessionDBPath = *ec.SessionDBPath
	}
	if ec.HealthCheckInterval != nil {
		cfg.HealthCheckInterval = *ec.HealthCheckInterval
	}
	if ec.RequestTimeout != nil {
		cfg.RequestTimeout = *ec.RequestTimeout
	}
	if ec.LogLevel != nil {
		cfg.LogLevel = *ec.LogLevel
	}
	if ec.LogFormat != nil {
		cfg.LogFormat = *ec.LogFormat
	}
	return nil
}
