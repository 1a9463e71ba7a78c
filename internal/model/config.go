package model

import (
	"os"
	"path/filepath"
	"time"
)

// Config holds the full runtime configuration. Values are layered by
// the CLI: flags over FORAGE_* environment variables over the config
// file over these defaults.
type Config struct {
	HTTP        HTTPConfig        `yaml:"http" mapstructure:"http"`
	Cache       CacheConfig       `yaml:"cache" mapstructure:"cache"`
	Concurrency ConcurrencyConfig `yaml:"concurrency" mapstructure:"concurrency"`
	RateLimit   RateLimitConfig   `yaml:"rate_limit" mapstructure:"rate_limit"`
	LLM         LLMConfig         `yaml:"llm" mapstructure:"llm"`
	Output      OutputConfig      `yaml:"output" mapstructure:"output"`
}

// HTTPConfig controls page fetching.
type HTTPConfig struct {
	Timeout       time.Duration `yaml:"timeout" mapstructure:"timeout"`
	UserAgent     string        `yaml:"user_agent" mapstructure:"user_agent"`
	MaxBodyBytes  int64         `yaml:"max_body_bytes" mapstructure:"max_body_bytes"`
	RespectRobots bool          `yaml:"respect_robots" mapstructure:"respect_robots"`
}

// CacheConfig controls the layered page cache.
type CacheConfig struct {
	Enabled   bool          `yaml:"enabled" mapstructure:"enabled"`
	Dir       string        `yaml:"dir" mapstructure:"dir"`
	MemoryTTL time.Duration `yaml:"memory_ttl" mapstructure:"memory_ttl"`
	DiskTTL   time.Duration `yaml:"disk_ttl" mapstructure:"disk_ttl"`
}

// ConcurrencyConfig controls batch import and image checking.
type ConcurrencyConfig struct {
	ImportWorkers int `yaml:"import_workers" mapstructure:"import_workers"`
	ImageWorkers  int `yaml:"image_workers" mapstructure:"image_workers"`
}

// RateLimitConfig controls per-domain request pacing during batch runs.
type RateLimitConfig struct {
	RequestsPerSecond float64 `yaml:"requests_per_second" mapstructure:"requests_per_second"`
	Burst             int     `yaml:"burst" mapstructure:"burst"`
}

// LLMConfig configures the optional ingredient parser. Disabled unless
// Provider is set.
type LLMConfig struct {
	Provider       string `yaml:"provider" mapstructure:"provider"` // "openai" or ""
	Model          string `yaml:"model" mapstructure:"model"`
	APIKey         string `yaml:"api_key" mapstructure:"api_key"`
	BaseURL        string `yaml:"base_url" mapstructure:"base_url"`
	TimeoutSeconds int    `yaml:"timeout_seconds" mapstructure:"timeout_seconds"`
	MaxTokens      int    `yaml:"max_tokens" mapstructure:"max_tokens"`
}

// OutputConfig controls rendering.
type OutputConfig struct {
	Verbose       bool `yaml:"verbose" mapstructure:"verbose"`
	IncludeSource bool `yaml:"include_source" mapstructure:"include_source"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	cacheDir := ".forage-cache"
	if home, err := os.UserHomeDir(); err == nil {
		cacheDir = filepath.Join(home, ".forage", "cache")
	}

	return &Config{
		HTTP: HTTPConfig{
			Timeout:       30 * time.Second,
			UserAgent:     "Forage/0.1 (+https://github.com/forageapp/forage)",
			MaxBodyBytes:  2_000_000,
			RespectRobots: true,
		},
		Cache: CacheConfig{
			Enabled:   true,
			Dir:       cacheDir,
			MemoryTTL: 15 * time.Minute,
			DiskTTL:   24 * time.Hour,
		},
		Concurrency: ConcurrencyConfig{
			ImportWorkers: 4,
			ImageWorkers:  10,
		},
		RateLimit: RateLimitConfig{
			RequestsPerSecond: 2,
			Burst:             4,
		},
		LLM: LLMConfig{
			Provider:       "",
			Model:          "",
			TimeoutSeconds: 30,
			MaxTokens:      500,
		},
		Output: OutputConfig{
			Verbose:       false,
			IncludeSource: true,
		},
	}
}
