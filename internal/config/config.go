package config

import (
	"fmt"
	"time"

	"github.com/BurntSushi/toml"
)

// Config holds the tunable settings of the analytics service. Connection
// endpoints and secrets come from the environment (see cmd/main.go); this
// file covers behavior.
type Config struct {
	Analytics AnalyticsConfig `toml:"analytics"`
	Reports   ReportsConfig   `toml:"reports"`
}

// AnalyticsConfig controls the cached sales summary
type AnalyticsConfig struct {
	SummaryTTLSeconds      int `toml:"summary_ttl_seconds"`
	RefreshIntervalSeconds int `toml:"refresh_interval_seconds"`
	TopProducts            int `toml:"top_products"`
}

// ReportsConfig controls CSV report export
type ReportsConfig struct {
	Bucket string `toml:"bucket"`
}

// Default returns the configuration used when no file is provided.
func Default() *Config {
	return &Config{
		Analytics: AnalyticsConfig{
			SummaryTTLSeconds:      300,
			RefreshIntervalSeconds: 300,
			TopProducts:            3,
		},
		Reports: ReportsConfig{
			Bucket: "shopmetrics-reports",
		},
	}
}

// Load reads configuration from a TOML file, filling gaps with defaults.
func Load(filename string) (*Config, error) {
	config := Default()
	_, err := toml.DecodeFile(filename, config)
	if err != nil {
		return nil, fmt.Errorf("failed to load config file: %w", err)
	}
	if config.Analytics.SummaryTTLSeconds <= 0 {
		config.Analytics.SummaryTTLSeconds = 300
	}
	if config.Analytics.RefreshIntervalSeconds <= 0 {
		config.Analytics.RefreshIntervalSeconds = 300
	}
	if config.Analytics.TopProducts <= 0 {
		config.Analytics.TopProducts = 3
	}
	if config.Reports.Bucket == "" {
		config.Reports.Bucket = "shopmetrics-reports"
	}
	return config, nil
}

// SummaryTTL returns the summary cache lifetime as a duration.
func (c *Config) SummaryTTL() time.Duration {
	return time.Duration(c.Analytics.SummaryTTLSeconds) * time.Second
}

// RefreshInterval returns the background refresh cadence as a duration.
func (c *Config) RefreshInterval() time.Duration {
	return time.Duration(c.Analytics.RefreshIntervalSeconds) * time.Second
}
