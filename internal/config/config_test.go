package config

import (
	"strings"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Client.Endpoint != "http://localhost:8000" {
		t.Errorf("default endpoint = %q", cfg.Client.Endpoint)
	}
	if cfg.Client.Timeout != 0 {
		t.Errorf("default timeout = %v, want 0 (no deadline)", cfg.Client.Timeout)
	}
	if cfg.Client.MaxFileSize != 5*1024*1024 {
		t.Errorf("default max file size = %d", cfg.Client.MaxFileSize)
	}
	if cfg.Grading.MetThreshold != 0.85 || cfg.Grading.PartialThreshold != 0.65 {
		t.Errorf("default thresholds = %v/%v", cfg.Grading.MetThreshold, cfg.Grading.PartialThreshold)
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:    "valid default",
			mutate:  func(c *Config) {},
			wantErr: "",
		},
		{
			name:    "empty endpoint",
			mutate:  func(c *Config) { c.Client.Endpoint = "" },
			wantErr: "endpoint",
		},
		{
			name:    "negative timeout",
			mutate:  func(c *Config) { c.Client.Timeout = -time.Second },
			wantErr: "timeout",
		},
		{
			name:    "zero max file size",
			mutate:  func(c *Config) { c.Client.MaxFileSize = 0 },
			wantErr: "max_file_size",
		},
		{
			name:    "bad output format",
			mutate:  func(c *Config) { c.Output.DefaultFormat = "xml" },
			wantErr: "invalid output format",
		},
		{
			name:    "bad color mode",
			mutate:  func(c *Config) { c.Output.ColorMode = "sometimes" },
			wantErr: "invalid color mode",
		},
		{
			name:    "threshold above one",
			mutate:  func(c *Config) { c.Grading.MetThreshold = 1.5 },
			wantErr: "met_threshold",
		},
		{
			name: "partial above met",
			mutate: func(c *Config) {
				c.Grading.MetThreshold = 0.5
				c.Grading.PartialThreshold = 0.6
			},
			wantErr: "partial_threshold must be below",
		},
		{
			name:    "zero dimensions",
			mutate:  func(c *Config) { c.Grading.VectorDimensions = 0 },
			wantErr: "vector_dimensions",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() = %v, want nil", err)
				}
				return
			}
			if err == nil {
				t.Fatal("Validate() = nil, want error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() = %v, want mention of %q", err, tt.wantErr)
			}
		})
	}
}
