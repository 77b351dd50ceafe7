package config

import (
	"strings"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.APIBase != "http://localhost:5000" {
		t.Errorf("APIBase = %q, want default", cfg.APIBase)
	}
	if cfg.RequestTimeout != 15 {
		t.Errorf("RequestTimeout = %d, want 15", cfg.RequestTimeout)
	}
	if cfg.CallbackAddr != "127.0.0.1:8972" {
		t.Errorf("CallbackAddr = %q, want default", cfg.CallbackAddr)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %q, want info", cfg.LogLevel)
	}
	if cfg.SessionFile == "" {
		t.Error("SessionFile default must not be empty")
	}
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	t.Setenv("API_BASE", "https://api.example.com")
	t.Setenv("REQUEST_TIMEOUT", "30")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.APIBase != "https://api.example.com" {
		t.Errorf("APIBase = %q, want override", cfg.APIBase)
	}
	if cfg.RequestTimeout != 30 {
		t.Errorf("RequestTimeout = %d, want 30", cfg.RequestTimeout)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want debug", cfg.LogLevel)
	}
}

func TestConfig_Validate(t *testing.T) {
	valid := Config{
		APIBase:        "http://localhost:5000",
		RequestTimeout: 15,
		CallbackAddr:   "127.0.0.1:8972",
		LogLevel:       "info",
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"valid", func(c *Config) {}, ""},
		{"missing api base", func(c *Config) { c.APIBase = "" }, "API_BASE"},
		{"non-http api base", func(c *Config) { c.APIBase = "ftp://example.com" }, "http(s)"},
		{"zero timeout", func(c *Config) { c.RequestTimeout = 0 }, "REQUEST_TIMEOUT"},
		{"missing callback addr", func(c *Config) { c.CallbackAddr = "" }, "CALLBACK_ADDR"},
		{"bad log level", func(c *Config) { c.LogLevel = "verbose" }, "log level"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid
			tt.mutate(&cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() error = %v, want nil", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() error = %v, want mention of %q", err, tt.wantErr)
			}
		})
	}
}
