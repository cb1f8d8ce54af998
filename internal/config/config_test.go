package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	for _, k := range []string{"SKEMAFORM_LOG_LEVEL", "SKEMAFORM_CONCURRENCY", "SKEMAFORM_LANG", "SKEMAFORM_LOG_COMPRESS"} {
		t.Setenv(k, "")
	}
	cfg := Load()
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 4, cfg.Concurrency)
	assert.Equal(t, 128, cfg.SchemaCacheSize)
	assert.Equal(t, "en", cfg.Lang)
	assert.True(t, cfg.LogCompress)
}

func TestLoad_Env(t *testing.T) {
	t.Setenv("SKEMAFORM_LOG_LEVEL", "debug")
	t.Setenv("SKEMAFORM_LOG_FILE", "/tmp/x.log")
	t.Setenv("SKEMAFORM_CONCURRENCY", "16")
	t.Setenv("SKEMAFORM_SCHEMA_CACHE_SIZE", "not-a-number")
	t.Setenv("SKEMAFORM_LANG", "ja")
	t.Setenv("SKEMAFORM_LOG_COMPRESS", "off")

	cfg := Load()
	assert.Equal(t, 16, cfg.Concurrency)
	assert.Equal(t, 128, cfg.SchemaCacheSize, "invalid ints keep the default")
	assert.Equal(t, "ja", cfg.Lang)

	lc := cfg.Logging()
	assert.Equal(t, "debug", lc.Level)
	assert.Equal(t, "/tmp/x.log", lc.FilePath)
	assert.False(t, lc.Compress)
}
