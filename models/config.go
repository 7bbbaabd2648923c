package models

import (
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	BaseURL        string        `json:"base_url" yaml:"base_url"`
	RequestTimeout time.Duration `json:"request_timeout" yaml:"request_timeout"`
	LogFile        string        `json:"log_file" yaml:"log_file"`
	LogLevel       string        `json:"log_level" yaml:"log_level"`
	OutputDir      string        `json:"output_dir" yaml:"output_dir"`
	TUI            bool          `json:"tui" yaml:"tui"`
}

// RequestTimeout of zero means a request waits until the network stack gives up.
var DefaultConfig = Config{
	BaseURL:        "http://localhost:3000",
	RequestTimeout: 0,
	LogLevel:       "info",
	TUI:            true,
}

const (
	EnvBaseURL   = "RISK_ANALYZER_BASE_URL"
	EnvTimeout   = "RISK_ANALYZER_TIMEOUT"
	EnvLogFile   = "RISK_ANALYZER_LOG_FILE"
	EnvLogLevel  = "RISK_ANALYZER_LOG_LEVEL"
	EnvOutputDir = "RISK_ANALYZER_OUTPUT_DIR"
)

// LoadConfig reads a YAML config file on top of DefaultConfig
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	return cfg, nil
}

// ApplyEnv overrides fields from RISK_ANALYZER_* environment variables
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvBaseURL); ok && v != "" {
		c.BaseURL = v
	}
	if v, ok := lookup(EnvTimeout); ok && v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("invalid %s %q: %w", EnvTimeout, v, err)
		}
		c.RequestTimeout = d
	}
	if v, ok := lookup(EnvLogFile); ok && v != "" {
		c.LogFile = v
	}
	if v, ok := lookup(EnvLogLevel); ok && v != "" {
		c.LogLevel = v
	}
	if v, ok := lookup(EnvOutputDir); ok && v != "" {
		c.OutputDir = v
	}
	return nil
}

func (c *Config) Validate() error {
	if c.BaseURL == "" {
		return fmt.Errorf("base URL is required")
	}
	u, err := url.Parse(c.BaseURL)
	if err != nil {
		return fmt.Errorf("invalid base URL %q: %w", c.BaseURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("base URL %q must use http or https", c.BaseURL)
	}
	c.BaseURL = strings.TrimRight(c.BaseURL, "/")

	if c.RequestTimeout < 0 {
		return fmt.Errorf("request timeout must not be negative")
	}

	switch strings.ToLower(c.LogLevel) {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level %q", c.LogLevel)
	}

	return nil
}
