package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"MetalWatch/internal/model"
)

// SupportedLookbacks are the history windows the dashboard offers.
var SupportedLookbacks = []int{30, 90, 180, 365, 730}

// Config holds all application configuration.
type Config struct {
	Telegram struct {
		BotToken string `yaml:"bot_token"`
		ChatID   string `yaml:"chat_id"`
	} `yaml:"telegram"`
	Server struct {
		Addr string `yaml:"addr"`
	} `yaml:"server"`
	Market struct {
		LookbackDays    int                `yaml:"lookback_days"`
		CacheTTLMinutes int                `yaml:"cache_ttl_minutes"`
		Instruments     []model.Instrument `yaml:"instruments"`
		Indices         []model.Index      `yaml:"indices"`
	} `yaml:"market"`
	Schedule struct {
		RefreshCron string `yaml:"refresh_cron"`
		ReportCron  string `yaml:"report_cron"`
	} `yaml:"schedule"`
	Database struct {
		SQLitePath string `yaml:"sqlite_path"`
	} `yaml:"database"`
	Proxy string `yaml:"proxy"`
}

// Load reads config from a YAML file, then applies environment variable overrides.
func Load(path string) (*Config, error) {
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
	if v := os.Getenv("TELEGRAM_BOT_TOKEN"); v != "" {
		cfg.Telegram.BotToken = v
	}
	if v := os.Getenv("TELEGRAM_CHAT_ID"); v != "" {
		cfg.Telegram.ChatID = v
	}
	if v := os.Getenv("SERVER_ADDR"); v != "" {
		cfg.Server.Addr = v
	}
	if v := os.Getenv("LOOKBACK_DAYS"); v != "" {
		var days int
		if _, err := fmt.Sscanf(v, "%d", &days); err == nil {
			cfg.Market.LookbackDays = days
		}
	}
	if v := os.Getenv("CRON_REFRESH"); v != "" {
		cfg.Schedule.RefreshCron = v
	}
	if v := os.Getenv("CRON_REPORT"); v != "" {
		cfg.Schedule.ReportCron = v
	}
	if v := os.Getenv("SQLITE_PATH"); v != "" {
		cfg.Database.SQLitePath = v
	}
	if v := os.Getenv("HTTPS_PROXY"); v != "" {
		cfg.Proxy = v
	}

	// Defaults
	if cfg.Server.Addr == "" {
		cfg.Server.Addr = ":8080"
	}
	if cfg.Market.LookbackDays == 0 {
		cfg.Market.LookbackDays = 365
	}
	if cfg.Market.CacheTTLMinutes == 0 {
		cfg.Market.CacheTTLMinutes = 5
	}
	if len(cfg.Market.Instruments) == 0 {
		cfg.Market.Instruments = DefaultInstruments()
	}
	if len(cfg.Market.Indices) == 0 {
		cfg.Market.Indices = DefaultIndices()
	}
	if cfg.Schedule.RefreshCron == "" {
		cfg.Schedule.RefreshCron = "0 */15 * * * *"
	}
	if cfg.Schedule.ReportCron == "" {
		cfg.Schedule.ReportCron = "0 0 8 * * 1-5"
	}

	return cfg, nil
}

// DefaultInstruments returns the standard metal ETF/futures pairs.
func DefaultInstruments() []model.Instrument {
	return []model.Instrument{
		{Key: "gold", Name: "Gold", ETF: "GLD", Futures: "GC=F", Color: "#FFD700"},
		{Key: "silver", Name: "Silver", ETF: "SLV", Futures: "SI=F", Color: "#C0C0C0"},
		{Key: "copper", Name: "Copper", ETF: "COPX", Futures: "HG=F", Color: "#B87333"},
	}
}

// DefaultIndices returns the standard macro reference indices.
func DefaultIndices() []model.Index {
	return []model.Index{
		{Key: "dxy", Name: "Dollar Index", Symbol: "DX-Y.NYB"},
		{Key: "us10y", Name: "US 10Y Yield", Symbol: "^TNX"},
		{Key: "spx", Name: "S&P 500", Symbol: "^GSPC"},
		{Key: "vix", Name: "VIX", Symbol: "^VIX"},
	}
}

// Validate checks that all required fields are set and consistent.
func (c *Config) Validate() error {
	validLookback := false
	for _, d := range SupportedLookbacks {
		if c.Market.LookbackDays == d {
			validLookback = true
			break
		}
	}
	if !validLookback {
		return fmt.Errorf("market.lookback_days must be one of %v, got %d", SupportedLookbacks, c.Market.LookbackDays)
	}
	if len(c.Market.Instruments) == 0 {
		return fmt.Errorf("market.instruments must not be empty")
	}
	seen := make(map[string]bool)
	for _, inst := range c.Market.Instruments {
		if inst.Key == "" || inst.ETF == "" || inst.Futures == "" {
			return fmt.Errorf("instrument %q: key, etf and futures are required", inst.Key)
		}
		if seen[inst.Key] {
			return fmt.Errorf("duplicate instrument key %q", inst.Key)
		}
		seen[inst.Key] = true
	}
	if c.Telegram.BotToken != "" && c.Telegram.ChatID == "" {
		return fmt.Errorf("telegram.chat_id is required when telegram.bot_token is set")
	}
	return nil
}
