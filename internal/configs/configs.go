package configs

import (
	"os"
	"time"
)

type Config struct {
	// HTTP server settings
	Server ServerConfig `json:"server" yaml:"server"`

	Database Database `json:"database" yaml:"database"`

	// Catalog data sources
	Catalog CatalogConfig `json:"catalog" yaml:"catalog"`

	// AI valuation settings
	AIConfig AIConfig `json:"ai_config" yaml:"ai_config"`

	// Rent claim settlement
	Claims ClaimsConfig `json:"claims" yaml:"claims"`
}

type ServerConfig struct {
	Addr string `json:"addr" yaml:"addr"` // listen address, e.g. ":8080"
}

type Database struct {
	ConnStr string `json:"conn_str" yaml:"conn_str"` // empty runs fully in-memory
}

type CatalogConfig struct {
	ListingsURL string `json:"listings_url" yaml:"listings_url"` // optional remote listings endpoint
}

type AIConfig struct {
	APIKey          string `json:"api_key" yaml:"api_key"`                   // empty selects the mock provider
	ModelType       string `json:"model_type" yaml:"model_type"`             // chat model name
	ValuateLatency  string `json:"valuate_latency" yaml:"valuate_latency"`   // mock provider artificial latency
	DocumentLatency string `json:"document_latency" yaml:"document_latency"` // mock provider artificial latency
}

type ClaimsConfig struct {
	SettleDelay string `json:"settle_delay" yaml:"settle_delay"` // simulated settlement round trip
}

// Default returns the configuration the demo runs with when no config file
// is present: in-memory, mock AI, the original settlement timings.
func Default() *Config {
	return &Config{
		Server: ServerConfig{Addr: ":8080"},
		AIConfig: AIConfig{
			ValuateLatency:  "1.5s",
			DocumentLatency: "2.5s",
		},
		Claims: ClaimsConfig{SettleDelay: "1.5s"},
	}
}

// OverrideFromEnv applies environment overrides on top of the file config.
// Environment wins; that keeps secrets out of the config file.
func (c *Config) OverrideFromEnv() {
	if v := os.Getenv("ADDR"); v != "" {
		c.Server.Addr = v
	}
	if v := os.Getenv("DATABASE_URL"); v != "" {
		c.Database.ConnStr = v
	}
	if v := os.Getenv("LISTINGS_URL"); v != "" {
		c.Catalog.ListingsURL = v
	}
	if v := os.Getenv("OPENAI_API_KEY"); v != "" {
		c.AIConfig.APIKey = v
	}
}

// Duration parses a duration field, falling back when unset or invalid.
func Duration(value string, fallback time.Duration) time.Duration {
	d, err := time.ParseDuration(value)
	if err != nil {
		return fallback
	}
	return d
}
