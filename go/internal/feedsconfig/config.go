package feedsconfig

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds feed provider connection settings. Credentials come from
// the environment; the remaining fields may be overridden by a YAML file.
// Empty BaseURL/Version mean the client defaults.
type Config struct {
	APIKey   string        `yaml:"-"`
	Password string        `yaml:"-"`
	BaseURL  string        `yaml:"base_url"`
	Version  string        `yaml:"version"`
	Timeout  time.Duration `yaml:"-"`

	TimeoutSeconds int `yaml:"timeout_seconds"`
}

// NewConfigFromEnv reads MSF_* environment variables.
func NewConfigFromEnv() Config {
	timeout, err := strconv.Atoi(getEnv("MSF_TIMEOUT_SECONDS", "0"))
	if err != nil {
		timeout = 0
	}

	return Config{
		APIKey:   os.Getenv("MSF_API_KEY"),
		Password: os.Getenv("MSF_PASSWORD"),
		BaseURL:  os.Getenv("MSF_BASE_URL"),
		Version:  os.Getenv("MSF_VERSION"),
		Timeout:  time.Duration(timeout) * time.Second,
	}
}

// LoadFile applies overrides from a YAML file on top of the receiver.
// A missing file is not an error; credentials never come from the file.
func (c Config) LoadFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return c, nil
		}
		return c, fmt.Errorf("failed to read config file: %w", err)
	}

	var overrides Config
	if err := yaml.Unmarshal(data, &overrides); err != nil {
		return c, fmt.Errorf("failed to parse config: %w", err)
	}

	if overrides.BaseURL != "" {
		c.BaseURL = overrides.BaseURL
	}
	if overrides.Version != "" {
		c.Version = overrides.Version
	}
	if overrides.TimeoutSeconds > 0 {
		c.Timeout = time.Duration(overrides.TimeoutSeconds) * time.Second
	}

	return c, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
