package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all configuration for the storefront client. Values come
// from environment variables, optionally seeded from a .env file in the
// working directory.
type Config struct {
	APIBase         string `mapstructure:"API_BASE"`
	RequestTimeout  int    `mapstructure:"REQUEST_TIMEOUT"`
	SessionFile     string `mapstructure:"SESSION_FILE"`
	CallbackAddr    string `mapstructure:"CALLBACK_ADDR"`
	CallbackTimeout int    `mapstructure:"CALLBACK_TIMEOUT"`
	LogLevel        string `mapstructure:"LOG_LEVEL"`
}

// Load reads configuration from the environment and an optional .env file.
func Load() (*Config, error) {
	v := viper.New()

	v.SetDefault("API_BASE", "http://localhost:5000")
	v.SetDefault("REQUEST_TIMEOUT", 15)
	v.SetDefault("SESSION_FILE", defaultSessionFile())
	v.SetDefault("CALLBACK_ADDR", "127.0.0.1:8972")
	v.SetDefault("CALLBACK_TIMEOUT", 300)
	v.SetDefault("LOG_LEVEL", "info")

	v.SetConfigFile(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()

	// A missing .env file is fine; the environment alone is enough.
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(*os.PathError); !ok && !os.IsNotExist(err) {
			if _, notFound := err.(viper.ConfigFileNotFoundError); !notFound {
				return nil, fmt.Errorf("reading config file: %w", err)
			}
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.APIBase == "" {
		return fmt.Errorf("API_BASE is required")
	}
	if !strings.HasPrefix(c.APIBase, "http://") && !strings.HasPrefix(c.APIBase, "https://") {
		return fmt.Errorf("API_BASE must be an http(s) URL, got %q", c.APIBase)
	}
	if c.RequestTimeout <= 0 {
		return fmt.Errorf("REQUEST_TIMEOUT must be positive")
	}
	if c.CallbackAddr == "" {
		return fmt.Errorf("CALLBACK_ADDR is required")
	}

	validLogLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLogLevels[strings.ToLower(c.LogLevel)] {
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", c.LogLevel)
	}

	return nil
}

func defaultSessionFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".storefront-session.json"
	}
	return filepath.Join(home, ".storefront", "session.json")
}
