package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/spf13/viper"
)

// Manager handles configuration loading, watching, and reloading.
type Manager struct {
	config     *Config
	viper      *viper.Viper
	configFile string
	mu         sync.RWMutex
	callbacks  []func(*Config)
	watching   bool
	created    bool
}

// NewManager creates a configuration manager for the XDG config file.
func NewManager() (*Manager, error) {
	configFile, err := GetConfigFile()
	if err != nil {
		return nil, fmt.Errorf("failed to determine config directory: %w\nCheck XDG_CONFIG_HOME environment variable or HOME directory", err)
	}
	return NewManagerForFile(configFile)
}

// NewManagerForFile creates a configuration manager reading configFile.
func NewManagerForFile(configFile string) (*Manager, error) {
	if configFile == "" {
		return nil, errors.New("config file path cannot be empty")
	}

	v := viper.New()
	v.SetConfigFile(configFile)
	v.SetConfigType("toml")

	// TEMPO_FAVICON_SIZE, TEMPO_SERVER_ADDR, ...
	v.SetEnvPrefix("TEMPO")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Short aliases for the logging keys
	if err := v.BindEnv("logging.level", "TEMPO_LOGGING_LEVEL", "TEMPO_LOG_LEVEL"); err != nil {
		return nil, fmt.Errorf("failed to bind TEMPO_LOG_LEVEL: %w", err)
	}
	if err := v.BindEnv("logging.format", "TEMPO_LOGGING_FORMAT", "TEMPO_LOG_FORMAT"); err != nil {
		return nil, fmt.Errorf("failed to bind TEMPO_LOG_FORMAT: %w", err)
	}

	return &Manager{
		viper:      v,
		configFile: configFile,
		callbacks:  make([]func(*Config), 0),
	}, nil
}

// Load loads the configuration from file and environment variables. A
// missing file is created with the default values.
func (m *Manager) Load() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.setDefaults()

	if err := m.readConfigFile(); err != nil {
		return err
	}

	config, err := m.unmarshalConfig()
	if err != nil {
		return err
	}
	if err := ensureDatabasePath(config); err != nil {
		return err
	}
	normalizeConfig(config)

	if err := validateConfig(config); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	m.config = config
	return nil
}

func (m *Manager) readConfigFile() error {
	if _, err := os.Stat(m.configFile); errors.Is(err, fs.ErrNotExist) {
		if createErr := m.createDefaultConfig(); createErr != nil {
			return fmt.Errorf(
				"failed to create default config at %s: %w\nTry creating the directory manually or check permissions",
				m.configFile,
				createErr,
			)
		}
	}

	if err := m.viper.ReadInConfig(); err != nil {
		return fmt.Errorf("failed to read config file at %s: %w\nCheck the file format (must be valid TOML) and permissions", m.configFile, err)
	}
	return nil
}

func (m *Manager) unmarshalConfig() (*Config, error) {
	config := &Config{}
	if err := m.viper.Unmarshal(config); err != nil {
		return nil, fmt.Errorf(
			"failed to parse config file at %s: %w\nCheck for syntax errors, invalid values, or type mismatches",
			m.configFile,
			err,
		)
	}
	return config, nil
}

func ensureDatabasePath(config *Config) error {
	if config.Database.Path != "" {
		return nil
	}
	dbPath, err := GetDatabaseFile()
	if err != nil {
		return fmt.Errorf("failed to get database path: %w", err)
	}
	config.Database.Path = dbPath
	return nil
}

func normalizeConfig(config *Config) {
	config.Logging.Level = strings.ToLower(strings.TrimSpace(config.Logging.Level))
	switch LogFormat(strings.ToLower(string(config.Logging.Format))) {
	case LogFormatJSON:
		config.Logging.Format = LogFormatJSON
	default:
		config.Logging.Format = LogFormatConsole
	}

	config.Bookmarks.ChromiumFile = strings.TrimSpace(config.Bookmarks.ChromiumFile)
	config.Server.Addr = strings.TrimSpace(config.Server.Addr)

	origins := config.Server.AllowOrigins[:0]
	for _, o := range config.Server.AllowOrigins {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	config.Server.AllowOrigins = origins
}

// Get returns the current configuration (thread-safe).
func (m *Manager) Get() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.config == nil {
		return DefaultConfig()
	}

	// Return a copy to prevent external modification
	configCopy := *m.config
	configCopy.Server.AllowOrigins = append([]string(nil), m.config.Server.AllowOrigins...)
	return &configCopy
}

// GetConfigFile returns the path to the configuration file being used.
func (m *Manager) GetConfigFile() string {
	return m.configFile
}

// Created reports whether Load wrote a fresh default config file.
func (m *Manager) Created() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.created
}

// createDefaultConfig writes the default values as a TOML file.
func (m *Manager) createDefaultConfig() error {
	if err := os.MkdirAll(filepath.Dir(m.configFile), dirPerm); err != nil {
		return err
	}

	if err := WriteConfig(DefaultConfig(), m.configFile); err != nil {
		return err
	}

	m.created = true
	return nil
}

// setDefaults sets default configuration values in Viper.
func (m *Manager) setDefaults() {
	defaults := DefaultConfig()

	// Note: Database.Path is resolved in Load() when left empty
	m.viper.SetDefault("database.path", "")

	m.setLoggingDefaults(defaults)
	m.setFaviconDefaults(defaults)
	m.setBookmarksDefaults(defaults)
	m.setServerDefaults(defaults)
}

func (m *Manager) setLoggingDefaults(defaults *Config) {
	m.viper.SetDefault("logging.level", defaults.Logging.Level)
	m.viper.SetDefault("logging.format", string(defaults.Logging.Format))
	m.viper.SetDefault("logging.file", defaults.Logging.File)
	m.viper.SetDefault("logging.max_size_mb", defaults.Logging.MaxSizeMB)
	m.viper.SetDefault("logging.max_backups", defaults.Logging.MaxBackups)
	m.viper.SetDefault("logging.max_age_days", defaults.Logging.MaxAgeDays)
}

func (m *Manager) setFaviconDefaults(defaults *Config) {
	m.viper.SetDefault("favicon.size", defaults.Favicon.Size)
	m.viper.SetDefault("favicon.probe_timeout_ms", defaults.Favicon.ProbeTimeoutMs)
	m.viper.SetDefault("favicon.cache_capacity", defaults.Favicon.CacheCapacity)
	m.viper.SetDefault("favicon.batch_concurrency", defaults.Favicon.BatchConcurrency)
	m.viper.SetDefault("favicon.user_agent", defaults.Favicon.UserAgent)
}

func (m *Manager) setBookmarksDefaults(defaults *Config) {
	m.viper.SetDefault("bookmarks.chromium_file", defaults.Bookmarks.ChromiumFile)
	m.viper.SetDefault("bookmarks.limit", defaults.Bookmarks.Limit)
}

func (m *Manager) setServerDefaults(defaults *Config) {
	m.viper.SetDefault("server.addr", defaults.Server.Addr)
	m.viper.SetDefault("server.allow_origins", defaults.Server.AllowOrigins)
}
