package config

import "time"

// Config represents the complete configuration for tempo.
type Config struct {
	Logging   LoggingConfig   `mapstructure:"logging" toml:"logging"`
	Database  DatabaseConfig  `mapstructure:"database" toml:"database"`
	Favicon   FaviconConfig   `mapstructure:"favicon" toml:"favicon"`
	Bookmarks BookmarksConfig `mapstructure:"bookmarks" toml:"bookmarks"`
	Server    ServerConfig    `mapstructure:"server" toml:"server"`
}

// LogFormat selects the console or JSON log encoder.
type LogFormat string

const (
	LogFormatConsole LogFormat = "console"
	LogFormatJSON    LogFormat = "json"
)

// LoggingConfig controls log level, format and optional rotated file output.
type LoggingConfig struct {
	Level  string    `mapstructure:"level" toml:"level"`
	Format LogFormat `mapstructure:"format" toml:"format"`
	// File enables a rotated log file in addition to stderr. Empty disables it.
	File       string `mapstructure:"file" toml:"file"`
	MaxSizeMB  int    `mapstructure:"max_size_mb" toml:"max_size_mb"`
	MaxBackups int    `mapstructure:"max_backups" toml:"max_backups"`
	MaxAgeDays int    `mapstructure:"max_age_days" toml:"max_age_days"`
}

// DatabaseConfig holds the bookmark store location.
type DatabaseConfig struct {
	Path string `mapstructure:"path" toml:"path"`
}

// FaviconConfig tunes favicon resolution.
type FaviconConfig struct {
	// Size is the icon edge in pixels requested from favicon services.
	Size           int `mapstructure:"size" toml:"size"`
	ProbeTimeoutMs int `mapstructure:"probe_timeout_ms" toml:"probe_timeout_ms"`
	// CacheCapacity bounds the number of cached icons. 0 is unbounded.
	CacheCapacity    int    `mapstructure:"cache_capacity" toml:"cache_capacity"`
	BatchConcurrency int    `mapstructure:"batch_concurrency" toml:"batch_concurrency"`
	UserAgent        string `mapstructure:"user_agent" toml:"user_agent"`
}

// ProbeTimeout returns the per-candidate probe timeout.
func (f FaviconConfig) ProbeTimeout() time.Duration {
	return time.Duration(f.ProbeTimeoutMs) * time.Millisecond
}

// ChromiumFileAuto asks tempo to look for a known browser profile.
const ChromiumFileAuto = "auto"

// BookmarksConfig selects the host bookmark tree.
type BookmarksConfig struct {
	// ChromiumFile is a Chromium "Bookmarks" JSON file, "auto", or empty to
	// use only the local store.
	ChromiumFile string `mapstructure:"chromium_file" toml:"chromium_file"`
	Limit        int    `mapstructure:"limit" toml:"limit"`
}

// ServerConfig controls the local HTTP backend.
type ServerConfig struct {
	Addr         string   `mapstructure:"addr" toml:"addr"`
	AllowOrigins []string `mapstructure:"allow_origins" toml:"allow_origins"`
}
