// ABOUTME: Configuration management for the application backed by viper
// ABOUTME: Resolves defaults, an optional .env file and the process environment

package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration
type Config struct {
	// Server contains HTTP server configuration
	Server ServerConfig

	// Gemini contains the model service settings
	Gemini GeminiConfig

	// View contains dashboard view store configuration
	View ViewConfig

	// RateLimit contains per-client request limits
	RateLimit RateLimitConfig

	// Log contains logger configuration
	Log LogConfig
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	// Port is the HTTP server port
	Port string
}

// GeminiConfig holds the model service settings
type GeminiConfig struct {
	// APIKey is the credential sent with every model request. May be empty.
	APIKey string

	Model          string
	BaseURL        string
	ThinkingBudget int
}

// ViewConfig holds view store configuration
type ViewConfig struct {
	// Store selects the backend (redis/memory)
	Store string

	// TTL is how long a client's current view is kept
	TTL time.Duration

	// Redis contains Redis-specific configuration
	Redis RedisConfig
}

// RedisConfig holds Redis-specific configuration
type RedisConfig struct {
	// Address is the Redis server address
	Address string

	// Password is the Redis authentication password
	Password string

	// DB is the Redis database number
	DB int
}

// RateLimitConfig holds the per-client request budget
type RateLimitConfig struct {
	Requests int
	Window   time.Duration
}

// LogConfig holds logger configuration
type LogConfig struct {
	Level      string
	Format     string
	File       string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
}

// Option describes one configuration key and its default
type Option struct {
	Key     string
	Default any
	Comment string
}

// Options returns every known key with its default and meaning
func Options() []Option {
	return []Option{
		{Key: "port", Default: "8000", Comment: "HTTP listen port"},
		{Key: "api_key", Default: "", Comment: "Model service credential (GEMINI_API_KEY is also accepted)"},
		{Key: "gemini_model", Default: "gemini-2.5-flash", Comment: "Model name used for generateContent"},
		{Key: "gemini_base_url", Default: "https://generativelanguage.googleapis.com/v1beta", Comment: "Model service base URL"},
		{Key: "gemini_thinking_budget", Default: 0, Comment: "Thinking token budget; 0 disables thinking"},
		{Key: "view_store", Default: "memory", Comment: "Where current views live: memory or redis"},
		{Key: "view_ttl_seconds", Default: 3600, Comment: "Lifetime of a client's current view"},
		{Key: "redis_address", Default: "localhost:6379", Comment: "Redis address when view_store=redis"},
		{Key: "redis_password", Default: "", Comment: "Redis password"},
		{Key: "redis_db", Default: 0, Comment: "Redis database number"},
		{Key: "rate_limit", Default: 60, Comment: "Requests allowed per client per window"},
		{Key: "rate_window_seconds", Default: 60, Comment: "Rate limit window"},
		{Key: "log_level", Default: "info", Comment: "trace, debug, info, warn or error"},
		{Key: "log_format", Default: "text", Comment: "text or json"},
		{Key: "log_file", Default: "", Comment: "Rotating log file; stdout when empty"},
		{Key: "log_max_size_mb", Default: 100, Comment: "Rotate after this many megabytes"},
		{Key: "log_max_backups", Default: 3, Comment: "Rotated files to keep"},
		{Key: "log_max_age_days", Default: 28, Comment: "Days to keep rotated files"},
	}
}

// Load resolves configuration with precedence: defaults < envFile < env.
// A missing envFile is not an error; pass "" to skip it.
func Load(envFile string) (*Config, error) {
	v := viper.New()
	for _, o := range Options() {
		v.SetDefault(o.Key, o.Default)
	}

	if envFile != "" {
		if _, err := os.Stat(envFile); err == nil {
			v.SetConfigFile(envFile)
			v.SetConfigType("env")
			if err := v.ReadInConfig(); err != nil {
				return nil, fmt.Errorf("reading %s: %w", envFile, err)
			}
		}
	}

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return fromViper(v), nil
}

func fromViper(v *viper.Viper) *Config {
	apiKey := strings.TrimSpace(v.GetString("api_key"))
	if apiKey == "" {
		apiKey = strings.TrimSpace(v.GetString("gemini_api_key"))
	}

	return &Config{
		Server: ServerConfig{
			Port: v.GetString("port"),
		},
		Gemini: GeminiConfig{
			APIKey:         apiKey,
			Model:          v.GetString("gemini_model"),
			BaseURL:        v.GetString("gemini_base_url"),
			ThinkingBudget: v.GetInt("gemini_thinking_budget"),
		},
		View: ViewConfig{
			Store: strings.ToLower(v.GetString("view_store")),
			TTL:   time.Duration(v.GetInt("view_ttl_seconds")) * time.Second,
			Redis: RedisConfig{
				Address:  v.GetString("redis_address"),
				Password: v.GetString("redis_password"),
				DB:       v.GetInt("redis_db"),
			},
		},
		RateLimit: RateLimitConfig{
			Requests: v.GetInt("rate_limit"),
			Window:   time.Duration(v.GetInt("rate_window_seconds")) * time.Second,
		},
		Log: LogConfig{
			Level:      v.GetString("log_level"),
			Format:     v.GetString("log_format"),
			File:       v.GetString("log_file"),
			MaxSizeMB:  v.GetInt("log_max_size_mb"),
			MaxBackups: v.GetInt("log_max_backups"),
			MaxAgeDays: v.GetInt("log_max_age_days"),
		},
	}
}

// Validate checks if the configuration is valid. A missing API key is
// allowed: report requests fail individually instead.
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return errors.New("port cannot be empty")
	}

	if c.View.Store != "redis" && c.View.Store != "memory" {
		return errors.New("view store must be 'redis' or 'memory'")
	}

	if c.View.Store == "redis" && c.View.Redis.Address == "" {
		return errors.New("redis address cannot be empty when using redis view store")
	}

	if c.View.TTL < time.Second {
		return errors.New("view ttl must be at least 1 second")
	}

	if c.RateLimit.Requests < 1 {
		return errors.New("rate limit must be at least 1 request")
	}

	if c.RateLimit.Window < time.Second {
		return errors.New("rate window must be at least 1 second")
	}

	if c.Gemini.Model == "" {
		return errors.New("gemini model cannot be empty")
	}

	if c.Gemini.ThinkingBudget < 0 {
		return errors.New("thinking budget cannot be negative")
	}

	return nil
}

// HasAPIKey reports whether a model credential is configured
func (c *Config) HasAPIKey() bool {
	return c.Gemini.APIKey != ""
}
