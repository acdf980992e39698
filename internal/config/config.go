package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds user settings read from config.yaml.
type Config struct {
	DataFile    string   `yaml:"data_file"`
	LogLevel    string   `yaml:"log_level"`
	Color       *bool    `yaml:"color"`
	Prompt      *string  `yaml:"prompt"`
	DateLayouts []string `yaml:"date_layouts"`
}

// Load reads a YAML config file, applies env overrides and fills in defaults.
// A missing file is not an error.
func Load(path string) (*Config, error) {
	var cfg Config

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("unmarshal config %s: %w", path, err)
		}
	case errors.Is(err, os.ErrNotExist):
		slog.Debug("no config file, using defaults", "path", path)
	default:
		return nil, fmt.Errorf("read config: %w", err)
	}

	applyEnv(&cfg)
	applyDefaults(&cfg)

	if _, err := cfg.SlogLevel(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// applyEnv lets environment variables override file values.
func applyEnv(cfg *Config) {
	if v := os.Getenv("AILFRED_DATA_FILE"); v != "" {
		cfg.DataFile = v
	}
	if v := os.Getenv("AILFRED_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		off := false
		cfg.Color = &off
	}
}

// applyDefaults fills in zero-value fields with sensible defaults.
func applyDefaults(cfg *Config) {
	if cfg.DataFile == "" {
		cfg.DataFile = DataFilePath()
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	if cfg.Color == nil {
		on := true
		cfg.Color = &on
	}
	if cfg.Prompt == nil {
		p := "> "
		cfg.Prompt = &p
	}
}

// ColorEnabled reports whether output may be coloured.
func (c *Config) ColorEnabled() bool {
	return c.Color == nil || *c.Color
}

// PromptText returns the input prompt; empty disables it.
func (c *Config) PromptText() string {
	if c.Prompt == nil {
		return ""
	}
	return *c.Prompt
}

// SlogLevel maps LogLevel to a slog level.
func (c *Config) SlogLevel() (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(c.LogLevel)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log_level %q", c.LogLevel)
	}
}
