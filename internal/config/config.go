// Package config provides configuration loading and validation for the server.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// localOrigins are always allowed, for local development.
var localOrigins = []string{
	"http://localhost:3000",
	"http://localhost:5000",
	"http://127.0.0.1:3000",
}

// Defaults for values omitted by both the environment and the config file.
const (
	defaultPort           = 5000
	defaultMaxBodyBytes   = 50 << 20
	defaultGenTimeoutSecs = 90
)

// Config holds the server configuration. Values come from the environment,
// optionally overlaid on a JSON config file; missing values use defaults.
type Config struct {
	Port           int      `json:"port,omitempty"`
	APIKey         string   `json:"api_key,omitempty"`
	Model          string   `json:"model,omitempty"`
	FrontendURL    string   `json:"frontend_url,omitempty"`
	ExtraOrigins   []string `json:"extra_origins,omitempty"`
	MaxBodyBytes   int64    `json:"max_body_bytes,omitempty"`
	GenTimeoutSecs int      `json:"gen_timeout_secs,omitempty"`
}

// FromEnv builds a Config from environment variables.
func FromEnv() *Config {
	return &Config{
		Port:           getEnvInt("PORT", defaultPort),
		APIKey:         os.Getenv("GEMINI_API_KEY"),
		Model:          os.Getenv("CV_MODEL"),
		FrontendURL:    os.Getenv("FRONTEND_URL"),
		MaxBodyBytes:   int64(getEnvInt("MAX_BODY_BYTES", defaultMaxBodyBytes)),
		GenTimeoutSecs: getEnvInt("GENERATION_TIMEOUT_SECS", defaultGenTimeoutSecs),
	}
}

// LoadFile loads configuration from a JSON file, overlays environment values
// on top (env wins where set), and fills any value neither source supplied
// with its default.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return cfg.mergeEnv().applyDefaults(), nil
}

// mergeEnv overlays environment values on the receiver and returns it.
// Unparsable numeric variables count as unset so file values survive.
func (c *Config) mergeEnv() *Config {
	if port, ok := envInt("PORT"); ok {
		c.Port = port
	}
	if key := os.Getenv("GEMINI_API_KEY"); key != "" {
		c.APIKey = key
	}
	if model := os.Getenv("CV_MODEL"); model != "" {
		c.Model = model
	}
	if url := os.Getenv("FRONTEND_URL"); url != "" {
		c.FrontendURL = url
	}
	if limit, ok := envInt("MAX_BODY_BYTES"); ok {
		c.MaxBodyBytes = int64(limit)
	}
	if secs, ok := envInt("GENERATION_TIMEOUT_SECS"); ok {
		c.GenTimeoutSecs = secs
	}
	return c
}

// applyDefaults fills zero-valued fields with the documented defaults.
func (c *Config) applyDefaults() *Config {
	if c.Port == 0 {
		c.Port = defaultPort
	}
	if c.MaxBodyBytes == 0 {
		c.MaxBodyBytes = defaultMaxBodyBytes
	}
	if c.GenTimeoutSecs == 0 {
		c.GenTimeoutSecs = defaultGenTimeoutSecs
	}
	return c
}

// Validate checks that the configuration has usable values.
func (c *Config) Validate() error {
	if c.APIKey == "" {
		return fmt.Errorf("config error: GEMINI_API_KEY is required")
	}
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("config error: port %d out of range", c.Port)
	}
	return nil
}

// AllowedOrigins returns the cross-origin allow-list: the fixed local
// development origins plus the configured frontend URL and any extras.
func (c *Config) AllowedOrigins() []string {
	out := make([]string, 0, len(localOrigins)+len(c.ExtraOrigins)+1)
	out = append(out, localOrigins...)
	if trimmed := strings.TrimRight(strings.TrimSpace(c.FrontendURL), "/"); trimmed != "" {
		out = append(out, trimmed)
	}
	for _, origin := range c.ExtraOrigins {
		if trimmed := strings.TrimSpace(origin); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

// GenerationTimeout returns the bounded completion-call timeout.
func (c *Config) GenerationTimeout() time.Duration {
	if c.GenTimeoutSecs <= 0 {
		return 0
	}
	return time.Duration(c.GenTimeoutSecs) * time.Second
}

// getEnvInt gets an environment variable as an integer with a default value.
func getEnvInt(key string, defaultValue int) int {
	if value, ok := envInt(key); ok {
		return value
	}
	return defaultValue
}

// envInt reads an environment variable as an integer, reporting whether a
// parsable value was present.
func envInt(key string) (int, bool) {
	value := os.Getenv(key)
	if value == "" {
		return 0, false
	}
	intValue, err := strconv.Atoi(value)
	if err != nil {
		return 0, false
	}
	return intValue, true
}
