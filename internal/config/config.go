// Package config loads taxotree configuration from an optional YAML
// file, a .env file, and environment variables, in increasing order of
// precedence.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds all taxotree configuration.
type Config struct {
	Lookup LookupConfig `yaml:"lookup"`
	Input  InputConfig  `yaml:"input"`
	Output OutputConfig `yaml:"output"`
	Log    LogConfig    `yaml:"log"`
}

// LookupConfig holds taxonomy lookup settings.
type LookupConfig struct {
	// Provider selects the lookup service ("worms", "gbif"); empty
	// disables enrichment.
	Provider       string `yaml:"provider"`
	Endpoint       string `yaml:"endpoint"`
	CacheSize      int    `yaml:"cache_size"`
	Concurrency    int    `yaml:"concurrency"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
}

// Timeout returns the lookup HTTP timeout (0 = client default).
func (l LookupConfig) Timeout() time.Duration {
	return time.Duration(l.TimeoutSeconds) * time.Second
}

// InputConfig holds record source settings.
type InputConfig struct {
	Path string `yaml:"path"` // occurrence CSV
}

// OutputConfig holds output destination settings.
type OutputConfig struct {
	Format     string `yaml:"format"` // "stdout", "file", "webhook"
	Path       string `yaml:"path"`   // for "file"
	WebhookURL string `yaml:"webhook_url"`
	Pretty     bool   `yaml:"pretty"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string `yaml:"level"`
}

// Load reads configuration: a YAML file (TAXOTREE_CONFIG, or
// taxotree.yaml when present), then .env, then environment variables.
// Env vars override file values.
func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		Lookup: LookupConfig{CacheSize: 1024, Concurrency: 4, TimeoutSeconds: 30},
		Output: OutputConfig{Format: "stdout"},
		Log:    LogConfig{Level: "info"},
	}

	path := os.Getenv("TAXOTREE_CONFIG")
	if path == "" {
		path = "taxotree.yaml"
	}
	if data, err := os.ReadFile(path); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
		}
	} else if os.Getenv("TAXOTREE_CONFIG") != "" {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	cfg.Lookup.Provider = getenv("TAXOTREE_LOOKUP", cfg.Lookup.Provider)
	cfg.Lookup.Endpoint = getenv("TAXOTREE_LOOKUP_ENDPOINT", cfg.Lookup.Endpoint)
	cfg.Lookup.CacheSize = getenvInt("TAXOTREE_LOOKUP_CACHE", cfg.Lookup.CacheSize)
	cfg.Lookup.Concurrency = getenvInt("TAXOTREE_LOOKUP_CONCURRENCY", cfg.Lookup.Concurrency)
	cfg.Lookup.TimeoutSeconds = getenvInt("TAXOTREE_LOOKUP_TIMEOUT", cfg.Lookup.TimeoutSeconds)
	cfg.Input.Path = getenv("TAXOTREE_INPUT", cfg.Input.Path)
	cfg.Output.Format = getenv("TAXOTREE_OUTPUT", cfg.Output.Format)
	cfg.Output.Path = getenv("TAXOTREE_OUTPUT_PATH", cfg.Output.Path)
	cfg.Output.WebhookURL = getenv("TAXOTREE_WEBHOOK_URL", cfg.Output.WebhookURL)
	cfg.Output.Pretty = getenvBool("TAXOTREE_OUTPUT_PRETTY", cfg.Output.Pretty)
	cfg.Log.Level = getenv("TAXOTREE_LOG_LEVEL", cfg.Log.Level)

	return cfg, nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getenvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func getenvBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}
