package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"a11yscan/fetch"
)

// config is the serve configuration, loadable from a YAML file with env
// fallbacks.
type config struct {
	Addr           string `yaml:"addr"`
	LogLevel       string `yaml:"log_level"`
	UserAgent      string `yaml:"user_agent"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
	MaxBytes       int64  `yaml:"max_bytes"`
	DelaySeconds   int    `yaml:"delay_seconds"`
}

func (c *config) defaults() {
	if c.Addr == "" {
		c.Addr = env("A11Y_ADDR", ":8080")
	}
	if c.LogLevel == "" {
		c.LogLevel = env("A11Y_LOG_LEVEL", "info")
	}
}

// loadConfig reads the YAML file at path when given; an empty path yields
// the defaults.
func loadConfig(path string) (config, error) {
	var c config
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return c, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, &c); err != nil {
			return c, fmt.Errorf("parse config: %w", err)
		}
	}
	c.defaults()
	return c, nil
}

// fetchConfig maps the file-level settings onto the gate configuration.
// Zero values defer to the gate's own defaults.
func (c config) fetchConfig(logger *slog.Logger) fetch.Config {
	return fetch.Config{
		Timeout:   time.Duration(c.TimeoutSeconds) * time.Second,
		MaxBytes:  c.MaxBytes,
		UserAgent: c.UserAgent,
		Delay:     time.Duration(c.DelaySeconds) * time.Second,
		Logger:    logger,
	}
}

func (c config) slogLevel() slog.Level {
	switch c.LogLevel {
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

func env(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
