package config

import (
	"fmt"
	"path/filepath"
	"strings"
)

const (
	DefaultLogFile    = "logfile.json"
	DefaultQuotesFile = "quotes.csv"
	DefaultLogLevel   = "warn"
)

type Config struct {
	DataDir    string
	LogPath    string
	QuotesPath string
	DBPath     string
	LogLevel   string
}

type Option func(*Config)

// WithLogPath overrides the session log location. Empty values are ignored.
func WithLogPath(path string) Option {
	return func(c *Config) {
		if strings.TrimSpace(path) != "" {
			c.LogPath = path
		}
	}
}

// WithQuotesPath overrides the quotes CSV location. Empty values are ignored.
func WithQuotesPath(path string) Option {
	return func(c *Config) {
		if strings.TrimSpace(path) != "" {
			c.QuotesPath = path
		}
	}
}

func WithLogLevel(level string) Option {
	return func(c *Config) {
		if strings.TrimSpace(level) != "" {
			c.LogLevel = strings.ToLower(strings.TrimSpace(level))
		}
	}
}

func New(dataDir string, opts ...Option) (Config, error) {
	if strings.TrimSpace(dataDir) == "" {
		return Config{}, fmt.Errorf("data dir is required")
	}
	cfg := Config{
		DataDir:    dataDir,
		LogPath:    filepath.Join(dataDir, DefaultLogFile),
		QuotesPath: filepath.Join(dataDir, DefaultQuotesFile),
		DBPath:     filepath.Join(dataDir, ".pomo", "pomo.db"),
		LogLevel:   DefaultLogLevel,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg, nil
}
