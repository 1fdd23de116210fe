// Package config loads the wallet's runtime settings from the environment.
package config

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/chris/upi-wallet/pkg/ledger"
	"github.com/spf13/viper"
)

// EnvPrefix namespaces every variable, e.g. WALLET_HTTP_PORT=9000.
const EnvPrefix = "WALLET"

type Config struct {
	HTTPPort         int           `mapstructure:"http_port"`
	LatencyMin       time.Duration `mapstructure:"latency_min"`
	LatencyMax       time.Duration `mapstructure:"latency_max"`
	DailyResetPolicy string        `mapstructure:"daily_reset_policy"`
	Timezone         string        `mapstructure:"timezone"`
	SQSQueueURL      string        `mapstructure:"sqs_queue_url"`
	LogLevel         string        `mapstructure:"log_level"`
	FixturesPath     string        `mapstructure:"fixtures_path"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("http_port", 8080)
	v.SetDefault("latency_min", 200*time.Millisecond)
	v.SetDefault("latency_max", 500*time.Millisecond)
	v.SetDefault("daily_reset_policy", string(ledger.ResetCalendar))
	v.SetDefault("timezone", "Asia/Kolkata")
	v.SetDefault("sqs_queue_url", "")
	v.SetDefault("log_level", "info")
	v.SetDefault("fixtures_path", "")
}

// Load reads the configuration from WALLET_* environment variables over the defaults.
func Load() (*Config, error) {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := c.validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

func (c *Config) validate() error {
	if c.HTTPPort <= 0 || c.HTTPPort > 65535 {
		return fmt.Errorf("invalid http port %d", c.HTTPPort)
	}
	if c.LatencyMin < 0 || c.LatencyMax < c.LatencyMin {
		return fmt.Errorf("invalid latency range [%s, %s]", c.LatencyMin, c.LatencyMax)
	}
	if _, err := c.ResetPolicy(); err != nil {
		return err
	}
	if _, err := c.Location(); err != nil {
		return err
	}
	return nil
}

// Addr is the HTTP listen address.
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.HTTPPort)
}

func (c *Config) ResetPolicy() (ledger.ResetPolicy, error) {
	return ledger.ParseResetPolicy(c.DailyResetPolicy)
}

// Location resolves the time zone calendar days are counted in.
func (c *Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("load timezone %q: %w", c.Timezone, err)
	}
	return loc, nil
}

// Level maps LogLevel onto slog, defaulting to info.
func (c *Config) Level() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
