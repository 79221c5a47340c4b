package cmd

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Asset is one watchlist entry: the provider ticker and the display label.
type Asset struct {
	Ticker string `yaml:"ticker"`
	Label  string `yaml:"label"`
}

// Config holds the watchlist and the data-layer settings. The core packages
// take all of this as explicit parameters; only the CLI reads it.
type Config struct {
	Assets       []Asset `yaml:"assets"`
	CacheDir     string  `yaml:"cache_dir"`
	CacheDays    int     `yaml:"cache_days"`
	InflationCSV string  `yaml:"inflation_csv"`
	SQLitePath   string  `yaml:"sqlite_path"`
	EndYear      int     `yaml:"end_year"` // last year of inflation data to use
}

// LoadConfig reads the YAML config file, then applies environment variable
// overrides and defaults. A missing file yields the default watchlist.
func LoadConfig(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("CORRMAT_CACHE_DIR"); v != "" {
		cfg.CacheDir = v
	}
	if v := os.Getenv("CORRMAT_CACHE_DAYS"); v != "" {
		days, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid CORRMAT_CACHE_DAYS %q: %w", v, err)
		}
		cfg.CacheDays = days
	}
	if v := os.Getenv("CORRMAT_INFLATION_CSV"); v != "" {
		cfg.InflationCSV = v
	}
	if v := os.Getenv("CORRMAT_SQLITE_PATH"); v != "" {
		cfg.SQLitePath = v
	}

	// Defaults
	if len(cfg.Assets) == 0 {
		cfg.Assets = []Asset{
			{Ticker: "^GSPC", Label: "S&P 500"},
			{Ticker: "URTH", Label: "MSCI World"},
			{Ticker: "GC=F", Label: "Gold"},
			{Ticker: "BTC-USD", Label: "Bitcoin"},
		}
	}
	if cfg.CacheDir == "" {
		cfg.CacheDir = "asset_stats_cache"
	}
	if cfg.CacheDays == 0 {
		cfg.CacheDays = 7
	}
	if cfg.InflationCSV == "" {
		cfg.InflationCSV = "inflation.csv"
	}
	if cfg.SQLitePath == "" {
		cfg.SQLitePath = "quotes.db"
	}
	if cfg.EndYear == 0 {
		cfg.EndYear = 2024
	}
	return cfg, nil
}
