// Package config loads mygene-mcp configuration from a TOML file with
// defaults and environment overrides.
package config

import (
	"os"
	"strconv"
	"time"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/biothings/mygene-mcp/api"
	"github.com/morikuni/failure/v2"
)

// ErrorCode defines error types for configuration loading
type ErrorCode string

const (
	// ErrInvalidConfig represents an unreadable or unparsable config file
	ErrInvalidConfig ErrorCode = "InvalidConfig"
)

func (c ErrorCode) ErrorCode() string {
	return string(c)
}

// APIConfig holds upstream MyGene.info settings
type APIConfig struct {
	BaseURL        string `toml:"base_url"`
	TimeoutSeconds int    `toml:"timeout_seconds"`
}

// ServerConfig holds MCP server settings
type ServerConfig struct {
	Name string `toml:"name"`
	HTTP string `toml:"http"`
}

// CacheConfig holds CLI metadata cache settings
type CacheConfig struct {
	Dir      string `toml:"dir"`
	TTLHours int    `toml:"ttl_hours"`
}

// Config holds all mygene-mcp configuration
type Config struct {
	Server ServerConfig `toml:"server"`
	API    APIConfig    `toml:"api"`
	Cache  CacheConfig  `toml:"cache"`
}

// Default returns the built-in configuration
func Default() Config {
	return Config{
		Server: ServerConfig{
			Name: "mygene-mcp",
		},
		API: APIConfig{
			BaseURL:        api.DefaultBaseURL,
			TimeoutSeconds: int(api.DefaultTimeout / time.Second),
		},
		Cache: CacheConfig{
			TTLHours: 24,
		},
	}
}

// Load reads configuration from a TOML file, falling back to defaults when
// the file does not exist, then applies environment overrides
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case os.IsNotExist(err):
			// File not found, defaults apply
		case err != nil:
			return cfg, failure.New(ErrInvalidConfig,
				failure.Message("Failed to read config file"),
				failure.Context{"path": path, "cause": err.Error()},
			)
		default:
			if err := toml.Unmarshal(data, &cfg); err != nil {
				return cfg, failure.New(ErrInvalidConfig,
					failure.Message("Failed to parse config file"),
					failure.Context{"path": path, "cause": err.Error()},
				)
			}
		}
	}

	applyEnv(&cfg)
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("MYGENE_BASE_URL"); v != "" {
		cfg.API.BaseURL = v
	}
	if v := os.Getenv("MYGENE_TIMEOUT_SECONDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.API.TimeoutSeconds = n
		}
	}
	if v := os.Getenv("MYGENE_MCP_HTTP"); v != "" {
		cfg.Server.HTTP = v
	}
	if v := os.Getenv("MYGENE_CACHE_DIR"); v != "" {
		cfg.Cache.Dir = v
	}
}

// Timeout returns the configured API timeout as a duration
func (c Config) Timeout() time.Duration {
	return time.Duration(c.API.TimeoutSeconds) * time.Second
}
