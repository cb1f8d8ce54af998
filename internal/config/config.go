// Package config provides configuration loading from environment variables.
package config

import (
	"os"
	"strconv"

	"github.com/reoring/skemaform/internal/logging"
)

// Config holds the CLI configuration. Flags override these values.
type Config struct {
	LogLevel      string // SKEMAFORM_LOG_LEVEL, default "info"
	LogFile       string // SKEMAFORM_LOG_FILE, default "" (stderr only)
	LogMaxSizeMB  int    // SKEMAFORM_LOG_MAX_SIZE_MB, default 10
	LogMaxBackups int    // SKEMAFORM_LOG_MAX_BACKUPS, default 3
	LogMaxAgeDays int    // SKEMAFORM_LOG_MAX_AGE_DAYS, default 28
	LogCompress   bool   // SKEMAFORM_LOG_COMPRESS, default true

	Concurrency     int    // SKEMAFORM_CONCURRENCY, default 4
	SchemaCacheSize int    // SKEMAFORM_SCHEMA_CACHE_SIZE, default 128
	Lang            string // SKEMAFORM_LANG, default "en"
}

// Load reads configuration from environment variables with sensible defaults.
func Load() *Config {
	d := logging.DefaultConfig()
	return &Config{
		LogLevel:        getEnvString("SKEMAFORM_LOG_LEVEL", d.Level),
		LogFile:         getEnvString("SKEMAFORM_LOG_FILE", d.FilePath),
		LogMaxSizeMB:    getEnvInt("SKEMAFORM_LOG_MAX_SIZE_MB", d.MaxSizeMB),
		LogMaxBackups:   getEnvInt("SKEMAFORM_LOG_MAX_BACKUPS", d.MaxBackups),
		LogMaxAgeDays:   getEnvInt("SKEMAFORM_LOG_MAX_AGE_DAYS", d.MaxAgeDays),
		LogCompress:     getEnvBool("SKEMAFORM_LOG_COMPRESS", d.Compress),
		Concurrency:     getEnvInt("SKEMAFORM_CONCURRENCY", 4),
		SchemaCacheSize: getEnvInt("SKEMAFORM_SCHEMA_CACHE_SIZE", 128),
		Lang:            getEnvString("SKEMAFORM_LANG", "en"),
	}
}

// Logging returns the logging section of c.
func (c *Config) Logging() logging.Config {
	return logging.Config{
		Level:      c.LogLevel,
		FilePath:   c.LogFile,
		MaxSizeMB:  c.LogMaxSizeMB,
		MaxBackups: c.LogMaxBackups,
		MaxAgeDays: c.LogMaxAgeDays,
		Compress:   c.LogCompress,
	}
}

func getEnvBool(key string, defaultVal bool) bool {
	if v := os.Getenv(key); v != "" {
		switch v {
		case "1", "true", "yes", "on":
			return true
		case "0", "false", "no", "off":
			return false
		}
	}
	return defaultVal
}

func getEnvString(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return defaultVal
}
