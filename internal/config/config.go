package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	// DefaultCacheTTL is how long a drafted prompt stays memoized.
	DefaultCacheTTL = time.Hour

	// DefaultCacheCleanupInterval is how often expired cache entries are purged.
	DefaultCacheCleanupInterval = 10 * time.Minute

	// DefaultBatchConcurrency is the number of prompts drafted in parallel.
	DefaultBatchConcurrency = 4

	envPrefix = "AGENTIC_CALENDAR"
)

// Config holds all configuration for agentic-calendar.
type Config struct {
	Logging  LoggingConfig  `mapstructure:"logging"`
	Calendar CalendarConfig `mapstructure:"calendar"`
	Cache    CacheConfig    `mapstructure:"cache"`
	Batch    BatchConfig    `mapstructure:"batch"`
	MCP      MCPConfig      `mapstructure:"mcp"`
}

// LoggingConfig holds structured logging settings.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// CalendarConfig controls how reference instants and exports are produced.
type CalendarConfig struct {
	// Timezone is an IANA zone name, or "Local" for the process zone.
	Timezone  string `mapstructure:"timezone"`
	ProductID string `mapstructure:"product_id"`
}

// Location resolves Timezone.
func (c CalendarConfig) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("loading timezone %q: %w", c.Timezone, err)
	}
	return loc, nil
}

// CacheConfig holds draft memoization settings.
type CacheConfig struct {
	Enabled         bool          `mapstructure:"enabled"`
	TTL             time.Duration `mapstructure:"ttl"`
	CleanupInterval time.Duration `mapstructure:"cleanup_interval"`
}

// BatchConfig holds batch extraction settings.
type BatchConfig struct {
	Concurrency int `mapstructure:"concurrency"`
}

// MCPConfig identifies the MCP server to clients.
type MCPConfig struct {
	Name    string `mapstructure:"name"`
	Version string `mapstructure:"version"`
}

// Load reads configuration from defaults, an optional config file and
// environment variables, in increasing order of precedence. An empty
// configFile searches $HOME/.agentic-calendar and the working directory.
func Load(configFile string) (*Config, error) {
	v := viper.New()

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "text")

	v.SetDefault("calendar.timezone", "Local")
	v.SetDefault("calendar.product_id", "-//agentic-calendar//EN")

	v.SetDefault("cache.enabled", true)
	v.SetDefault("cache.ttl", DefaultCacheTTL)
	v.SetDefault("cache.cleanup_interval", DefaultCacheCleanupInterval)

	v.SetDefault("batch.concurrency", DefaultBatchConcurrency)

	v.SetDefault("mcp.name", "agentic-calendar")
	v.SetDefault("mcp.version", "1.0.0")

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(filepath.Join(homeDir(), ".agentic-calendar"))
		v.AddConfigPath(".")
	}

	// AGENTIC_CALENDAR_CACHE_TTL overrides cache.ttl, and so on.
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return &cfg, nil
}

// Validate checks that configuration fields are set and consistent.
func (c *Config) Validate() error {
	switch strings.ToLower(c.Logging.Format) {
	case "text", "json":
	default:
		return fmt.Errorf("logging.format must be text or json, got %q", c.Logging.Format)
	}
	if c.Calendar.Timezone == "" {
		return fmt.Errorf("calendar.timezone must not be empty")
	}
	if _, err := c.Calendar.Location(); err != nil {
		return fmt.Errorf("calendar.timezone: %w", err)
	}
	if c.Calendar.ProductID == "" {
		return fmt.Errorf("calendar.product_id must not be empty")
	}
	if c.Cache.Enabled {
		if c.Cache.TTL <= 0 {
			return fmt.Errorf("cache.ttl must be greater than 0")
		}
		if c.Cache.CleanupInterval <= 0 {
			return fmt.Errorf("cache.cleanup_interval must be greater than 0")
		}
	}
	if c.Batch.Concurrency < 1 {
		return fmt.Errorf("batch.concurrency must be at least 1")
	}
	if c.MCP.Name == "" {
		return fmt.Errorf("mcp.name must not be empty")
	}
	return nil
}

func homeDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return home
}
