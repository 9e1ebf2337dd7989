package model

import "time"

// Config holds the complete application configuration
type Config struct {
	Language     string             `yaml:"language"`     // Default answer language
	Advisor      AdvisorConfig      `yaml:"advisor"`      // Remote advisor settings
	Connectivity ConnectivityConfig `yaml:"connectivity"` // Online/offline probe settings
	Cache        CacheConfig        `yaml:"cache"`        // Discovery response cache
	Verify       VerifyConfig       `yaml:"verify"`       // Apply-link checker
	Output       OutputConfig       `yaml:"output"`
}

// AdvisorConfig configures the remote advisor provider
type AdvisorConfig struct {
	// Provider name: "gemini", "openai", "" (disabled)
	Provider string `yaml:"provider"`

	// Model name (provider-specific)
	Model string `yaml:"model"`

	// APIKey for the provider (usually set via environment instead)
	APIKey string `yaml:"api_key,omitempty"`

	// BaseURL for custom endpoints
	BaseURL string `yaml:"base_url,omitempty"`

	// Timeout for API requests, seconds
	Timeout int `yaml:"timeout"`

	// MaxTokens limits the response length
	MaxTokens int `yaml:"max_tokens"`

	// HistoryWindow bounds how many recent turns are sent upstream
	HistoryWindow int `yaml:"history_window"`
}

// ConnectivityConfig configures the connectivity probe
type ConnectivityConfig struct {
	ProbeURL string        `yaml:"probe_url"`
	Interval time.Duration `yaml:"interval"`
	Timeout  time.Duration `yaml:"timeout"`
}

// CacheConfig configures the discovery response cache
type CacheConfig struct {
	Enabled   bool          `yaml:"enabled"`
	Dir       string        `yaml:"dir"` // Disk cache directory ("" = memory only)
	MemoryTTL time.Duration `yaml:"memory_ttl"`
	DiskTTL   time.Duration `yaml:"disk_ttl"`
}

// VerifyConfig configures the apply-link checker
type VerifyConfig struct {
	Timeout     time.Duration `yaml:"timeout"`
	Workers     int           `yaml:"workers"`
	RatePerHost float64       `yaml:"rate_per_host"` // Requests per second per domain
	Burst       int           `yaml:"burst"`
	UserAgent   string        `yaml:"user_agent"`
}

// OutputConfig controls CLI output behavior
type OutputConfig struct {
	Verbose bool `yaml:"verbose"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Language: LangEnglish,
		Advisor: AdvisorConfig{
			Provider:      "", // Disabled until a provider and key are configured
			Timeout:       30,
			MaxTokens:     1500,
			HistoryWindow: 6,
		},
		Connectivity: ConnectivityConfig{
			ProbeURL: "http://connectivitycheck.gstatic.com/generate_204",
			Interval: 30 * time.Second,
			Timeout:  5 * time.Second,
		},
		Cache: CacheConfig{
			Enabled:   true,
			MemoryTTL: 15 * time.Minute,
			DiskTTL:   6 * time.Hour,
		},
		Verify: VerifyConfig{
			Timeout:     10 * time.Second,
			Workers:     8,
			RatePerHost: 1,
			Burst:       3,
			UserAgent:   "Yojana/0.1 (+https://github.com/ppiankov/yojana)",
		},
	}
}
