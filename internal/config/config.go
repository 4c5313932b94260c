// Package config loads and validates generator configuration via Viper.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config captures the tunable knobs loaded from defaults, an optional YAML
// file, and PORTALGEN_* environment variables. The CLI flag surface maps
// onto pipeline options, not onto this struct; Config only carries behavior
// knobs with sensible fixed defaults.
type Config struct {
	Logging LoggingConfig `mapstructure:"logging"`
	HTTP    HTTPConfig    `mapstructure:"http"`
	Capture CaptureConfig `mapstructure:"capture"`
}

// LoggingConfig toggles zap development features.
type LoggingConfig struct {
	Development bool `mapstructure:"development"`
}

// HTTPConfig controls remote image downloads.
type HTTPConfig struct {
	TimeoutSeconds int    `mapstructure:"timeout_seconds"`
	UserAgent      string `mapstructure:"user_agent"`
}

// CaptureConfig controls the screenshot renderer.
type CaptureConfig struct {
	NavTimeoutSeconds int `mapstructure:"nav_timeout_seconds"`
	SettleDelayMs     int `mapstructure:"settle_delay_ms"`
	ViewportWidth     int `mapstructure:"viewport_width"`
	ViewportHeight    int `mapstructure:"viewport_height"`
}

// Load builds a Config from disk/environment.
func Load(path string) (Config, error) {
	v := viper.New()
	v.SetEnvPrefix("PORTALGEN")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("logging.development", true)
	v.SetDefault("http.timeout_seconds", 15)
	v.SetDefault("http.user_agent", "portalgen/0.1")
	v.SetDefault("capture.nav_timeout_seconds", 20)
	v.SetDefault("capture.settle_delay_ms", 800)
	v.SetDefault("capture.viewport_width", 1280)
	v.SetDefault("capture.viewport_height", 800)
}

// Validate enforces required values and reasonable limits.
func (c Config) Validate() error {
	if c.HTTP.TimeoutSeconds <= 0 {
		return fmt.Errorf("http.timeout_seconds must be > 0")
	}
	if c.Capture.NavTimeoutSeconds <= 0 {
		return fmt.Errorf("capture.nav_timeout_seconds must be > 0")
	}
	if c.Capture.SettleDelayMs < 0 {
		return fmt.Errorf("capture.settle_delay_ms must be >= 0")
	}
	if c.Capture.ViewportWidth <= 0 || c.Capture.ViewportHeight <= 0 {
		return fmt.Errorf("capture.viewport dimensions must be > 0")
	}
	return nil
}

// FetchTimeout converts the HTTP timeout into a duration.
func (c Config) FetchTimeout() time.Duration {
	return time.Duration(c.HTTP.TimeoutSeconds) * time.Second
}

// NavTimeout converts the capture navigation timeout into a duration.
func (c Config) NavTimeout() time.Duration {
	return time.Duration(c.Capture.NavTimeoutSeconds) * time.Second
}

// SettleDelay converts the post-navigation settle delay into a duration.
func (c Config) SettleDelay() time.Duration {
	return time.Duration(c.Capture.SettleDelayMs) * time.Millisecond
}
