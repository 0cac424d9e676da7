package config

import (
	"fmt"
	"time"
)

// Config holds the complete application configuration
type Config struct {
	Version string        `yaml:"version" json:"version"`
	Client  ClientConfig  `yaml:"client" json:"client"`
	Output  OutputConfig  `yaml:"output" json:"output"`
	Server  ServerConfig  `yaml:"server" json:"server"`
	Grading GradingConfig `yaml:"grading" json:"grading"`
}

// ClientConfig configures the analyze service client
type ClientConfig struct {
	Endpoint    string        `yaml:"endpoint" json:"endpoint"`           // analyze service URL
	Timeout     time.Duration `yaml:"timeout" json:"timeout"`             // request timeout, 0 means none
	MaxFileSize int64         `yaml:"max_file_size" json:"max_file_size"` // per-file upload cap in bytes
}

// OutputConfig configures output formatting and display
type OutputConfig struct {
	DefaultFormat string `yaml:"default_format" json:"default_format"` // terminal|json|markdown|csv
	ColorMode     string `yaml:"color_mode" json:"color_mode"`         // auto|always|never
	Verbose       bool   `yaml:"verbose" json:"verbose"`               // default verbosity
	NoEmoji       bool   `yaml:"no_emoji" json:"no_emoji"`             // disable emoji output
}

// ServerConfig configures the built-in grading server
type ServerConfig struct {
	Addr         string   `yaml:"addr" json:"addr"`                   // listen address
	BodyLimit    string   `yaml:"body_limit" json:"body_limit"`       // total request body cap
	EnableCORS   bool     `yaml:"enable_cors" json:"enable_cors"`     // allow cross-origin requests
	AllowOrigins []string `yaml:"allow_origins" json:"allow_origins"` // CORS origin allowlist
}

// GradingConfig configures the grading engine thresholds
type GradingConfig struct {
	MetThreshold     float32 `yaml:"met_threshold" json:"met_threshold"`         // similarity for fully met
	PartialThreshold float32 `yaml:"partial_threshold" json:"partial_threshold"` // similarity for partially met
	VectorDimensions int     `yaml:"vector_dimensions" json:"vector_dimensions"` // vectorizer vocabulary size
}

// DefaultConfig returns a configuration with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Version: "1.0",
		Client: ClientConfig{
			Endpoint:    "http://localhost:8000",
			Timeout:     0,
			MaxFileSize: 5 * 1024 * 1024,
		},
		Output: OutputConfig{
			DefaultFormat: "terminal",
			ColorMode:     "auto",
			Verbose:       false,
			NoEmoji:       false,
		},
		Server: ServerConfig{
			Addr:         ":8000",
			BodyLimit:    "12M",
			EnableCORS:   true,
			AllowOrigins: []string{"*"},
		},
		Grading: GradingConfig{
			MetThreshold:     0.85,
			PartialThreshold: 0.65,
			VectorDimensions: 512,
		},
	}
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if err := c.validateClientConfig(); err != nil {
		return err
	}
	if err := c.validateOutputConfig(); err != nil {
		return err
	}
	return c.validateGradingConfig()
}

// validateClientConfig validates client-related configuration
func (c *Config) validateClientConfig() error {
	if c.Client.Endpoint == "" {
		return fmt.Errorf("client endpoint must not be empty")
	}
	if c.Client.Timeout < 0 {
		return fmt.Errorf("client timeout must be non-negative")
	}
	if c.Client.MaxFileSize < 1 {
		return fmt.Errorf("max_file_size must be greater than 0")
	}
	return nil
}

// validateOutputConfig validates output-related configuration
func (c *Config) validateOutputConfig() error {
	if c.Output.DefaultFormat != "" {
		validFormats := map[string]bool{
			"terminal": true,
			"text":     true,
			"json":     true,
			"markdown": true,
			"md":       true,
			"csv":      true,
		}
		if !validFormats[c.Output.DefaultFormat] {
			return fmt.Errorf("invalid output format: %s (must be one of: terminal, text, json, markdown, csv)", c.Output.DefaultFormat)
		}
	}
	if c.Output.ColorMode != "" {
		validColorModes := map[string]bool{
			"auto":   true,
			"always": true,
			"never":  true,
		}
		if !validColorModes[c.Output.ColorMode] {
			return fmt.Errorf("invalid color mode: %s (must be one of: auto, always, never)", c.Output.ColorMode)
		}
	}
	return nil
}

// validateGradingConfig validates grading-related configuration
func (c *Config) validateGradingConfig() error {
	if c.Grading.MetThreshold <= 0 || c.Grading.MetThreshold > 1 {
		return fmt.Errorf("met_threshold must be within (0, 1]")
	}
	if c.Grading.PartialThreshold <= 0 || c.Grading.PartialThreshold > 1 {
		return fmt.Errorf("partial_threshold must be within (0, 1]")
	}
	if c.Grading.PartialThreshold >= c.Grading.MetThreshold {
		return fmt.Errorf("partial_threshold must be below met_threshold")
	}
	if c.Grading.VectorDimensions < 1 {
		return fmt.Errorf("vector_dimensions must be greater than 0")
	}
	return nil
}
