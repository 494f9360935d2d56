package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	toml "github.com/pelletier/go-toml/v2"
)

// Config holds bedboard's runtime settings.
type Config struct {
	FeedURL         string
	IntervalMinutes int
	RequestTimeout  time.Duration
	LogDir          string
	LogLevel        string
}

const (
	defaultConfigPath = "~/.config/bedboard/config.toml"
	defaultLogDir     = "~/.local/state/bedboard"
	defaultLogLevel   = "info"
	defaultTimeout    = 10 * time.Second

	// Polling interval bounds, in minutes.
	MinIntervalMinutes     = 1
	MaxIntervalMinutes     = 30
	DefaultIntervalMinutes = 5
)

// Environment overrides, applied after the config file.
const (
	EnvFeedURL  = "BEDBOARD_FEED_URL"
	EnvInterval = "BEDBOARD_INTERVAL_MINUTES"
	EnvLogLevel = "BEDBOARD_LOG_LEVEL"
	EnvLogDir   = "BEDBOARD_LOG_DIR"
)

// dotenvFiles are loaded from the working directory. Existing environment
// variables win over file values.
var dotenvFiles = []string{".env"}

// Load locates and parses the bedboard config, falling back to defaults when
// the file is missing, then applies .env and environment overrides.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		IntervalMinutes: DefaultIntervalMinutes,
		RequestTimeout:  defaultTimeout,
		LogDir:          defaultLogDir,
		LogLevel:        defaultLogLevel,
	}

	if err := readFile(resolved, &cfg); err != nil {
		return Config{}, err
	}
	if err := applyEnv(&cfg); err != nil {
		return Config{}, err
	}

	cfg.IntervalMinutes = ClampInterval(cfg.IntervalMinutes)
	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = defaultTimeout
	}
	if strings.TrimSpace(cfg.LogDir) == "" {
		cfg.LogDir = defaultLogDir
	}
	cfg.LogDir = mustExpand(cfg.LogDir)
	cfg.LogLevel = strings.ToLower(strings.TrimSpace(cfg.LogLevel))
	if cfg.LogLevel == "" {
		cfg.LogLevel = defaultLogLevel
	}
	return cfg, nil
}

func readFile(resolved string, cfg *Config) error {
	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		FeedURL        string `toml:"feed_url"`
		Interval       *int   `toml:"interval_minutes"`
		TimeoutSeconds *int   `toml:"request_timeout_seconds"`
		LogDir         string `toml:"log_dir"`
		LogLevel       string `toml:"log_level"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return fmt.Errorf("parse config: %w", err)
	}

	cfg.FeedURL = strings.TrimSpace(raw.FeedURL)
	if raw.Interval != nil {
		cfg.IntervalMinutes = *raw.Interval
	}
	if raw.TimeoutSeconds != nil {
		cfg.RequestTimeout = time.Duration(*raw.TimeoutSeconds) * time.Second
	}
	if v := strings.TrimSpace(raw.LogDir); v != "" {
		cfg.LogDir = v
	}
	if v := strings.TrimSpace(raw.LogLevel); v != "" {
		cfg.LogLevel = v
	}
	return nil
}

func applyEnv(cfg *Config) error {
	for _, name := range dotenvFiles {
		if err := godotenv.Load(name); err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("load %s: %w", name, err)
		}
	}

	if v, ok := lookupEnv(EnvFeedURL); ok {
		cfg.FeedURL = v
	}
	if v, ok := lookupEnv(EnvInterval); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("parse %s: %w", EnvInterval, err)
		}
		cfg.IntervalMinutes = n
	}
	if v, ok := lookupEnv(EnvLogLevel); ok {
		cfg.LogLevel = v
	}
	if v, ok := lookupEnv(EnvLogDir); ok {
		cfg.LogDir = v
	}
	return nil
}

func lookupEnv(key string) (string, bool) {
	v, ok := os.LookupEnv(key)
	v = strings.TrimSpace(v)
	return v, ok && v != ""
}

// ClampInterval bounds a polling interval to [MinIntervalMinutes, MaxIntervalMinutes].
func ClampInterval(minutes int) int {
	switch {
	case minutes < MinIntervalMinutes:
		return MinIntervalMinutes
	case minutes > MaxIntervalMinutes:
		return MaxIntervalMinutes
	default:
		return minutes
	}
}

// LogPath returns the path to the session log file.
func (c Config) LogPath() string {
	if strings.TrimSpace(c.LogDir) == "" {
		return mustExpand(defaultLogDir + "/bedboard.log")
	}
	return filepath.Join(c.LogDir, "bedboard.log")
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
