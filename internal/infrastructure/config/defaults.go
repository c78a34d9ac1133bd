package config

// Default configuration constants
const (
	// Logging defaults
	defaultLogLevel      = "info"
	defaultLogMaxSizeMB  = 10
	defaultLogMaxBackups = 3
	defaultMaxLogAgeDays = 7 // days

	// Favicon defaults
	defaultFaviconSize           = 32
	defaultProbeTimeoutMs        = 3000
	defaultFaviconCacheCapacity  = 1024
	defaultFaviconBatchWorkers   = 8
	defaultFaviconUserAgent      = "tempo-favicon/1.0"
	defaultBookmarkLimit         = 30
	defaultServerAddr            = "127.0.0.1:7412"
	defaultServerAllowAnyOrigins = "*"
)

// DefaultConfig returns the default configuration values.
func DefaultConfig() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:      defaultLogLevel,
			Format:     LogFormatConsole,
			MaxSizeMB:  defaultLogMaxSizeMB,
			MaxBackups: defaultLogMaxBackups,
			MaxAgeDays: defaultMaxLogAgeDays,
		},
		Favicon: FaviconConfig{
			Size:             defaultFaviconSize,
			ProbeTimeoutMs:   defaultProbeTimeoutMs,
			CacheCapacity:    defaultFaviconCacheCapacity,
			BatchConcurrency: defaultFaviconBatchWorkers,
			UserAgent:        defaultFaviconUserAgent,
		},
		Bookmarks: BookmarksConfig{
			Limit: defaultBookmarkLimit,
		},
		Server: ServerConfig{
			Addr:         defaultServerAddr,
			AllowOrigins: []string{defaultServerAllowAnyOrigins},
		},
	}
}
