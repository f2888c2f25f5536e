package storage

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigCreatesDefaults(t *testing.T) {
	dir := t.TempDir()
	cfg, err := LoadConfig(dir)
	if err != nil {
		t.Fatalf("LoadConfig() failed: %v", err)
	}
	if cfg.HTTPAddr != "localhost:8080" {
		t.Errorf("HTTPAddr = %q", cfg.HTTPAddr)
	}
	if _, err := os.Stat(filepath.Join(dir, "config.toml")); err != nil {
		t.Errorf("config.toml not created: %v", err)
	}

	// A second load reads the file back unchanged.
	again, err := LoadConfig(dir)
	if err != nil {
		t.Fatal(err)
	}
	if *again != *cfg {
		t.Errorf("reloaded config differs: %+v vs %+v", again, cfg)
	}
}

func TestLoadConfigReadsOverrides(t *testing.T) {
	dir := t.TempDir()
	contents := "http_addr = \"0.0.0.0:9999\"\nlog_level = \"debug\"\n"
	if err := os.WriteFile(filepath.Join(dir, "config.toml"), []byte(contents), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadConfig(dir)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.HTTPAddr != "0.0.0.0:9999" {
		t.Errorf("HTTPAddr = %q", cfg.HTTPAddr)
	}
	if cfg.SlogLevel() != slog.LevelDebug {
		t.Errorf("SlogLevel() = %v", cfg.SlogLevel())
	}
	// Unset keys keep their defaults.
	if cfg.MaxUploadBytes != 10<<20 {
		t.Errorf("MaxUploadBytes = %d", cfg.MaxUploadBytes)
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"empty addr", func(c *Config) { c.HTTPAddr = "" }},
		{"empty upload dir", func(c *Config) { c.UploadDir = "" }},
		{"bad log level", func(c *Config) { c.LogLevel = "loud" }},
		{"negative body limit", func(c *Config) { c.MaxRequestBodyBytes = -1 }},
		{"zero upload limit", func(c *Config) { c.MaxUploadBytes = 0 }},
		{"negative write rate", func(c *Config) { c.RateLimits.WriteRatePerMin = -1 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("Validate() accepted an invalid config")
			}
		})
	}
}

func TestResolveUploadDir(t *testing.T) {
	cfg := DefaultConfig()
	if got := cfg.ResolveUploadDir("/data"); got != filepath.Join("/data", "uploads") {
		t.Errorf("ResolveUploadDir() = %q", got)
	}
	cfg.UploadDir = "/var/uploads"
	if got := cfg.ResolveUploadDir("/data"); got != "/var/uploads" {
		t.Errorf("ResolveUploadDir() absolute = %q", got)
	}
}
