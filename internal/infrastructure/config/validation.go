package config

import (
	"fmt"
	"strings"
)

const maxFaviconSize = 512

var validLogLevels = map[string]struct{}{
	"trace": {}, "debug": {}, "info": {}, "warn": {}, "warning": {},
	"error": {}, "fatal": {}, "panic": {}, "disabled": {}, "off": {},
}

// validateConfig performs comprehensive validation of configuration values
func validateConfig(config *Config) error {
	var validationErrors []string

	validationErrors = append(validationErrors, validateLogging(config)...)
	validationErrors = append(validationErrors, validateFavicon(config)...)
	validationErrors = append(validationErrors, validateBookmarks(config)...)
	validationErrors = append(validationErrors, validateServer(config)...)

	if len(validationErrors) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(validationErrors, "\n  - "))
	}

	return nil
}

func validateLogging(config *Config) []string {
	var validationErrors []string
	if _, ok := validLogLevels[config.Logging.Level]; !ok {
		validationErrors = append(validationErrors,
			fmt.Sprintf("logging.level must be one of trace, debug, info, warn, error, disabled (got %q)", config.Logging.Level))
	}
	if config.Logging.MaxSizeMB < 0 {
		validationErrors = append(validationErrors, "logging.max_size_mb must be non-negative")
	}
	if config.Logging.MaxBackups < 0 {
		validationErrors = append(validationErrors, "logging.max_backups must be non-negative")
	}
	if config.Logging.MaxAgeDays < 0 {
		validationErrors = append(validationErrors, "logging.max_age_days must be non-negative")
	}
	return validationErrors
}

func validateFavicon(config *Config) []string {
	var validationErrors []string
	if config.Favicon.Size < 1 || config.Favicon.Size > maxFaviconSize {
		validationErrors = append(validationErrors, fmt.Sprintf("favicon.size must be between 1 and %d", maxFaviconSize))
	}
	if config.Favicon.ProbeTimeoutMs <= 0 {
		validationErrors = append(validationErrors, "favicon.probe_timeout_ms must be positive")
	}
	if config.Favicon.CacheCapacity < 0 {
		validationErrors = append(validationErrors, "favicon.cache_capacity must be non-negative")
	}
	if config.Favicon.BatchConcurrency < 1 {
		validationErrors = append(validationErrors, "favicon.batch_concurrency must be at least 1")
	}
	return validationErrors
}

func validateBookmarks(config *Config) []string {
	if config.Bookmarks.Limit < 0 {
		return []string{"bookmarks.limit must be non-negative"}
	}
	return nil
}

func validateServer(config *Config) []string {
	if config.Server.Addr == "" {
		return []string{"server.addr cannot be empty"}
	}
	return nil
}
