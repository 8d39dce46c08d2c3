// Package config handles configuration loading, validation, and management for dirscan.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/BurntSushi/toml"
)

// Version is the current configuration schema version.
const Version = 1

// Config holds the complete application configuration.
type Config struct {
	// Version is the configuration schema version for migrations.
	Version int `toml:"version" json:"version"`

	// Scan configuration for directory scanning.
	Scan ScanConfig `toml:"scan" json:"scan"`

	// Events configuration for the input event queue.
	Events EventsConfig `toml:"events" json:"events"`

	// Window configuration for the native window.
	Window WindowConfig `toml:"window" json:"window"`

	// Store configuration for scan result persistence.
	Store StoreConfig `toml:"store" json:"store"`

	// Watch configuration for scan staleness detection.
	Watch WatchConfig `toml:"watch" json:"watch"`

	// Theme configuration for colors and dark mode.
	Theme ThemeConfig `toml:"theme" json:"theme"`

	// Logging configuration.
	Logging LoggingConfig `toml:"logging" json:"logging"`
}

// ScanConfig holds directory scanning configuration.
type ScanConfig struct {
	// DefaultPath is the directory scanned at startup. Empty means the
	// user's home directory.
	DefaultPath string `toml:"default_path" json:"default_path"`

	// TopN is how many of the largest subdirectories to display.
	TopN int `toml:"top_n" json:"top_n"`

	// BatchEntries is how many directory entries each scan worker
	// consumes per round before yielding to the others.
	BatchEntries int `toml:"batch_entries" json:"batch_entries"`

	// ReportIntervalMs is how often intermediate scan results are
	// published to the UI, in milliseconds.
	ReportIntervalMs int `toml:"report_interval_ms" json:"report_interval_ms"`

	// FollowSymlinks determines whether to follow symbolic links.
	FollowSymlinks bool `toml:"follow_symlinks" json:"follow_symlinks"`
}

// EventsConfig holds input event queue configuration.
type EventsConfig struct {
	// QueueCapacity bounds the pending event queue. Zero uses the
	// built-in default.
	QueueCapacity int `toml:"queue_capacity" json:"queue_capacity"`
}

// WindowConfig holds native window configuration.
type WindowConfig struct {
	// Width is the initial window width in logical pixels.
	Width int `toml:"width" json:"width"`

	// Height is the initial window height in logical pixels.
	Height int `toml:"height" json:"height"`

	// Title is the window title.
	Title string `toml:"title" json:"title"`
}

// StoreConfig holds scan result persistence configuration.
type StoreConfig struct {
	// Enabled determines whether scan results are persisted.
	Enabled bool `toml:"enabled" json:"enabled"`

	// Path is the path to the SQLite database file.
	Path string `toml:"path" json:"path"`
}

// WatchConfig holds scan staleness detection configuration.
type WatchConfig struct {
	// Enabled determines whether the scanned directory is watched for
	// changes after a scan completes.
	Enabled bool `toml:"enabled" json:"enabled"`

	// DebounceMs is how long the directory must be quiet before a scan
	// is marked stale, in milliseconds.
	DebounceMs int `toml:"debounce_ms" json:"debounce_ms"`
}

// ThemeConfig holds color theme configuration.
type ThemeConfig struct {
	// Mode is the color scheme: "auto", "light", or "dark". Auto follows
	// the platform preference.
	Mode string `toml:"mode" json:"mode"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	// Level is the log level: "debug", "info", "warn", "error".
	Level string `toml:"level" json:"level"`

	// Format is the log format: "text" or "json".
	Format string `toml:"format" json:"format"`

	// Output is the log output: "stdout", "stderr", "file", or "both".
	Output string `toml:"output" json:"output"`

	// FilePath is the path to the log file (when Output includes "file").
	FilePath string `toml:"file_path" json:"file_path"`
}

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() *Config {
	dir := DirscanDir()

	return &Config{
		Version: Version,
		Scan: ScanConfig{
			DefaultPath:      "",
			TopN:             10,
			BatchEntries:     1024,
			ReportIntervalMs: 100,
			FollowSymlinks:   false,
		},
		Events: EventsConfig{
			QueueCapacity: 256,
		},
		Window: WindowConfig{
			Width:  800,
			Height: 600,
			Title:  "dirscan",
		},
		Store: StoreConfig{
			Enabled: true,
			Path:    filepath.Join(dir, "scans.db"),
		},
		Watch: WatchConfig{
			Enabled:    true,
			DebounceMs: 1000,
		},
		Theme: ThemeConfig{
			Mode: "auto",
		},
		Logging: LoggingConfig{
			Level:    "info",
			Format:   "text",
			Output:   "stderr",
			FilePath: filepath.Join(dir, "dirscan.log"),
		},
	}
}

// ConfigPath returns the default configuration file path.
func ConfigPath() string {
	return filepath.Join(DirscanDir(), "config.toml")
}

// DirscanDir returns the base dirscan data directory.
// Uses platform-specific paths or DIRSCAN_DATA_DIR environment override.
func DirscanDir() string {
	if envDir := os.Getenv("DIRSCAN_DATA_DIR"); envDir != "" {
		return envDir
	}

	switch runtime.GOOS {
	case "darwin":
		homeDir, _ := os.UserHomeDir()
		return filepath.Join(homeDir, "Library", "Application Support", "dirscan")
	case "windows":
		appData := os.Getenv("LOCALAPPDATA")
		if appData == "" {
			appData = os.Getenv("APPDATA")
		}
		return filepath.Join(appData, "dirscan")
	default: // Linux and other Unix
		if dataHome := os.Getenv("XDG_DATA_HOME"); dataHome != "" {
			return filepath.Join(dataHome, "dirscan")
		}
		homeDir, _ := os.UserHomeDir()
		return filepath.Join(homeDir, ".local", "share", "dirscan")
	}
}

// Load reads configuration from the specified path.
// If the file doesn't exist, returns default configuration.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path == "" {
		path = ConfigPath()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config file: %w", err)
	}

	if _, err := toml.Decode(string(data), cfg); err != nil {
		return nil, fmt.Errorf("decode TOML: %w", err)
	}

	cfg.ApplyEnvOverrides()

	return cfg, nil
}

// ApplyEnvOverrides applies environment variable overrides to the configuration.
// Environment variables are prefixed with DIRSCAN_ and use underscores.
func (c *Config) ApplyEnvOverrides() {
	if v := os.Getenv("DIRSCAN_SCAN_PATH"); v != "" {
		c.Scan.DefaultPath = v
	}
	if v := os.Getenv("DIRSCAN_STORE_PATH"); v != "" {
		c.Store.Path = v
	}
	if v := os.Getenv("DIRSCAN_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv("DIRSCAN_LOG_PATH"); v != "" {
		c.Logging.FilePath = v
	}
	if v := os.Getenv("DIRSCAN_THEME"); v != "" {
		c.Theme.Mode = v
	}
}

// EnsureDirectories creates the directories the application writes to.
func (c *Config) EnsureDirectories() error {
	dirs := []string{
		filepath.Dir(c.Store.Path),
		filepath.Dir(c.Logging.FilePath),
	}

	for _, dir := range dirs {
		if dir == "" || dir == "." {
			continue
		}
		if err := os.MkdirAll(dir, 0700); err != nil {
			return fmt.Errorf("create directory %s: %w", dir, err)
		}
	}

	return nil
}
