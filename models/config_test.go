package models

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig, cfg)
	assert.Zero(t, cfg.RequestTimeout)
}

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	content := "base_url: https://risk.example.com/\nrequest_timeout: 15s\nlog_level: debug\ntui: false\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "https://risk.example.com/", cfg.BaseURL)
	assert.Equal(t, 15*time.Second, cfg.RequestTimeout)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.False(t, cfg.TUI)

	require.NoError(t, cfg.Validate())
	assert.Equal(t, "https://risk.example.com", cfg.BaseURL)
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yml"))
	assert.Error(t, err)
}

func TestApplyEnv(t *testing.T) {
	env := map[string]string{
		EnvBaseURL:   "http://backend:8080",
		EnvTimeout:   "2s",
		EnvOutputDir: "out",
	}
	lookup := func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	}

	cfg := DefaultConfig
	require.NoError(t, cfg.ApplyEnv(lookup))
	assert.Equal(t, "http://backend:8080", cfg.BaseURL)
	assert.Equal(t, 2*time.Second, cfg.RequestTimeout)
	assert.Equal(t, "out", cfg.OutputDir)
	assert.Equal(t, "info", cfg.LogLevel)

	env[EnvTimeout] = "soon"
	assert.Error(t, cfg.ApplyEnv(lookup))
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{name: "defaults", mutate: func(c *Config) {}},
		{name: "empty url", mutate: func(c *Config) { c.BaseURL = "" }, wantErr: true},
		{name: "ftp url", mutate: func(c *Config) { c.BaseURL = "ftp://example.com" }, wantErr: true},
		{name: "negative timeout", mutate: func(c *Config) { c.RequestTimeout = -time.Second }, wantErr: true},
		{name: "bad log level", mutate: func(c *Config) { c.LogLevel = "verbose" }, wantErr: true},
		{name: "uppercase log level", mutate: func(c *Config) { c.LogLevel = "WARN" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
