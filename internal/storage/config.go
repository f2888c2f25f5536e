// Manages the server configuration stored in config.toml.

package storage

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// RateLimits defines rate limiting configuration (requests per minute).
// 0 means unlimited.
type RateLimits struct {
	WriteRatePerMin int `toml:"write_rate_per_min"`
	ReadRatePerMin  int `toml:"read_rate_per_min"`
}

// Validate checks that rate limit values are non-negative.
func (r *RateLimits) Validate() error {
	if r.WriteRatePerMin < 0 {
		return errors.New("write_rate_per_min must be non-negative")
	}
	if r.ReadRatePerMin < 0 {
		return errors.New("read_rate_per_min must be non-negative")
	}
	return nil
}

// Config stores all server-wide configuration.
// Loaded from config.toml in the data directory, created with defaults if
// missing.
type Config struct {
	// HTTPAddr is the address the API server listens on.
	HTTPAddr string `toml:"http_addr"`

	// UploadDir is where uploaded images land. Relative paths are resolved
	// against the data directory.
	UploadDir string `toml:"upload_dir"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `toml:"log_level"`

	// MaxRequestBodyBytes limits the size of any single JSON request body.
	MaxRequestBodyBytes int64 `toml:"max_request_body_bytes"`

	// MaxUploadBytes limits the size of a single image upload.
	MaxUploadBytes int64 `toml:"max_upload_bytes"`

	RateLimits RateLimits `toml:"rate_limits"`
}

// DefaultConfig returns the configuration used on first run.
func DefaultConfig() Config {
	return Config{
		HTTPAddr:            "localhost:8080",
		UploadDir:           "uploads",
		LogLevel:            "info",
		MaxRequestBodyBytes: 1 << 20,  // 1 MiB of JSON is plenty for a wiki record
		MaxUploadBytes:      10 << 20, // 10 MiB
		RateLimits: RateLimits{
			WriteRatePerMin: 120,
			ReadRatePerMin:  0,
		},
	}
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if c.HTTPAddr == "" {
		return errors.New("http_addr is required")
	}
	if c.UploadDir == "" {
		return errors.New("upload_dir is required")
	}
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log_level %q", c.LogLevel)
	}
	if c.MaxRequestBodyBytes < 0 {
		return errors.New("max_request_body_bytes must be non-negative")
	}
	if c.MaxUploadBytes <= 0 {
		return errors.New("max_upload_bytes must be positive")
	}
	if err := c.RateLimits.Validate(); err != nil {
		return fmt.Errorf("rate_limits: %w", err)
	}
	return nil
}

// SlogLevel converts LogLevel into a slog.Level.
func (c *Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// ResolveUploadDir returns the absolute upload directory for a data dir.
func (c *Config) ResolveUploadDir(dataDir string) string {
	if filepath.IsAbs(c.UploadDir) {
		return c.UploadDir
	}
	return filepath.Join(dataDir, c.UploadDir)
}

// LoadConfig loads configuration from dataDir/config.toml.
// Creates the file with defaults if it doesn't exist.
func LoadConfig(dataDir string) (*Config, error) {
	path := filepath.Join(dataDir, "config.toml")

	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read config.toml: %w", err)
		}
		if err := cfg.Save(dataDir); err != nil {
			return nil, err
		}
	} else if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config.toml: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config.toml: %w", err)
	}
	return &cfg, nil
}

// Save writes the configuration to dataDir/config.toml.
func (c *Config) Save(dataDir string) error {
	if err := c.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	data, err := toml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(filepath.Join(dataDir, "config.toml"), data, 0o644); err != nil {
		return fmt.Errorf("failed to write config.toml: %w", err)
	}
	return nil
}
