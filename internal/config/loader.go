package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// ConfigPaths defines the config file search paths in priority order
var ConfigPaths = []string{
	"./.gradelens.yaml",               // Project-specific config (highest priority)
	"~/.config/gradelens/config.yaml", // User config
	"/etc/gradelens/config.yaml",      // System config (lowest priority)
}

// Loader handles configuration loading with priority merging
type Loader struct {
	configPaths []string
}

// NewLoader creates a new config loader
func NewLoader() *Loader {
	return &Loader{
		configPaths: ConfigPaths,
	}
}

// LoadConfig loads configuration from multiple sources with priority order:
// 1. Command line flags (handled by caller)
// 2. Environment variables
// 3. ./.gradelens.yaml
// 4. ~/.config/gradelens/config.yaml
// 5. /etc/gradelens/config.yaml
// 6. Built-in defaults
func (l *Loader) LoadConfig(customPath string) (*Config, error) {
	config := DefaultConfig()

	// If custom path is provided, use only that path
	if customPath != "" {
		if err := validateConfigPath(customPath); err != nil {
			return nil, fmt.Errorf("invalid config path: %w", err)
		}
		if err := l.loadFromFile(config, customPath); err != nil {
			return nil, fmt.Errorf("failed to load config from %s: %w", customPath, err)
		}
	} else {
		// Walk the standard paths lowest priority first so later files
		// overwrite earlier ones.
		for i := len(l.configPaths) - 1; i >= 0; i-- {
			path := expandPath(l.configPaths[i])
			if !fileExists(path) {
				continue
			}
			if err := l.loadFromFile(config, path); err != nil {
				fmt.Fprintf(os.Stderr, "Warning: Failed to load config from %s: %v\n", path, err)
			}
		}
	}

	if err := l.applyEnvOverrides(config); err != nil {
		return nil, fmt.Errorf("failed to apply environment overrides: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// loadFromFile parses one YAML file and merges its non-zero values into
// config.
func (l *Loader) loadFromFile(config *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read file: %w", err)
	}

	var fileConfig Config
	if err := yaml.Unmarshal(data, &fileConfig); err != nil {
		return fmt.Errorf("failed to parse YAML: %w", err)
	}

	mergeConfigs(config, &fileConfig)

	return nil
}

// applyEnvOverrides applies environment variable overrides to the config
func (l *Loader) applyEnvOverrides(config *Config) error {
	envMappings := map[string]func(string) error{
		// Client Config
		"GRADELENS_CLIENT_ENDPOINT":      func(v string) error { config.Client.Endpoint = v; return nil },
		"GRADELENS_CLIENT_TIMEOUT":       func(v string) error { return parseDuration(v, &config.Client.Timeout) },
		"GRADELENS_CLIENT_MAX_FILE_SIZE": func(v string) error { return parseInt64(v, &config.Client.MaxFileSize) },

		// Output Config
		"GRADELENS_OUTPUT_DEFAULT_FORMAT": func(v string) error { config.Output.DefaultFormat = v; return nil },
		"GRADELENS_OUTPUT_COLOR_MODE":     func(v string) error { config.Output.ColorMode = v; return nil },
		"GRADELENS_OUTPUT_VERBOSE":        func(v string) error { return parseBool(v, &config.Output.Verbose) },
		"GRADELENS_OUTPUT_NO_EMOJI":       func(v string) error { return parseBool(v, &config.Output.NoEmoji) },

		// Server Config
		"GRADELENS_SERVER_ADDR":        func(v string) error { config.Server.Addr = v; return nil },
		"GRADELENS_SERVER_BODY_LIMIT":  func(v string) error { config.Server.BodyLimit = v; return nil },
		"GRADELENS_SERVER_ENABLE_CORS": func(v string) error { return parseBool(v, &config.Server.EnableCORS) },

		// Grading Config
		"GRADELENS_GRADING_MET_THRESHOLD":     func(v string) error { return parseFloat32(v, &config.Grading.MetThreshold) },
		"GRADELENS_GRADING_PARTIAL_THRESHOLD": func(v string) error { return parseFloat32(v, &config.Grading.PartialThreshold) },
		"GRADELENS_GRADING_VECTOR_DIMENSIONS": func(v string) error { return parseInt(v, &config.Grading.VectorDimensions) },
	}

	for envVar, setter := range envMappings {
		if value := os.Getenv(envVar); value != "" {
			if err := setter(value); err != nil {
				return fmt.Errorf("invalid value for %s: %w", envVar, err)
			}
		}
	}

	// Comma-separated origin list
	if origins := os.Getenv("GRADELENS_SERVER_ALLOW_ORIGINS"); origins != "" {
		config.Server.AllowOrigins = strings.Split(origins, ",")
		for i, origin := range config.Server.AllowOrigins {
			config.Server.AllowOrigins[i] = strings.TrimSpace(origin)
		}
	}

	return nil
}

// GetConfigPaths returns the list of configuration file paths that will be searched
func GetConfigPaths() []string {
	paths := make([]string, 0, len(ConfigPaths))
	for _, path := range ConfigPaths {
		paths = append(paths, expandPath(path))
	}
	return paths
}

// FindConfigFile finds the first existing config file in the search paths
func FindConfigFile() (string, bool) {
	for _, path := range ConfigPaths {
		expandedPath := expandPath(path)
		if fileExists(expandedPath) {
			return expandedPath, true
		}
	}
	return "", false
}

// validateConfigPath rejects config paths that should never be read: relative
// traversal, non-YAML files, and kernel pseudo-filesystems.
func validateConfigPath(path string) error {
	clean := filepath.Clean(path)
	if strings.Contains(clean, "..") {
		return fmt.Errorf("path traversal not allowed")
	}

	if ext := strings.ToLower(filepath.Ext(clean)); ext != ".yaml" && ext != ".yml" {
		return fmt.Errorf("config file must have .yaml or .yml extension")
	}

	abs, err := filepath.Abs(clean)
	if err != nil {
		return fmt.Errorf("failed to resolve absolute path: %w", err)
	}
	if strings.HasPrefix(abs, "/proc/") || strings.HasPrefix(abs, "/sys/") {
		return fmt.Errorf("access to system files not allowed")
	}
	return nil
}

// expandPath resolves a leading ~/ against the home directory.
func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[2:])
		}
	}
	return path
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// mergeConfigs merges source config into destination config.
// Only non-zero values from source overwrite destination.
func mergeConfigs(dst, src *Config) {
	if src.Version != "" {
		dst.Version = src.Version
	}

	mergeClientConfig(&dst.Client, &src.Client)
	mergeOutputConfig(&dst.Output, &src.Output)
	mergeServerConfig(&dst.Server, &src.Server)
	mergeGradingConfig(&dst.Grading, &src.Grading)
}

// mergeClientConfig merges client configuration
func mergeClientConfig(dst, src *ClientConfig) {
	if src.Endpoint != "" {
		dst.Endpoint = src.Endpoint
	}
	if src.Timeout != 0 {
		dst.Timeout = src.Timeout
	}
	if src.MaxFileSize != 0 {
		dst.MaxFileSize = src.MaxFileSize
	}
}

// mergeOutputConfig merges output configuration
func mergeOutputConfig(dst, src *OutputConfig) {
	if src.DefaultFormat != "" {
		dst.DefaultFormat = src.DefaultFormat
	}
	if src.ColorMode != "" {
		dst.ColorMode = src.ColorMode
	}
	if src.Verbose {
		dst.Verbose = src.Verbose
	}
	if src.NoEmoji {
		dst.NoEmoji = src.NoEmoji
	}
}

// mergeServerConfig merges server configuration
func mergeServerConfig(dst, src *ServerConfig) {
	if src.Addr != "" {
		dst.Addr = src.Addr
	}
	if src.BodyLimit != "" {
		dst.BodyLimit = src.BodyLimit
	}
	if len(src.AllowOrigins) > 0 {
		dst.AllowOrigins = src.AllowOrigins
	}
}

// mergeGradingConfig merges grading configuration
func mergeGradingConfig(dst, src *GradingConfig) {
	if src.MetThreshold != 0 {
		dst.MetThreshold = src.MetThreshold
	}
	if src.PartialThreshold != 0 {
		dst.PartialThreshold = src.PartialThreshold
	}
	if src.VectorDimensions != 0 {
		dst.VectorDimensions = src.VectorDimensions
	}
}

// Conversion helpers for env override values.

func parseInt(s string, dst *int) error {
	val, err := strconv.Atoi(s)
	if err == nil {
		*dst = val
	}
	return err
}

func parseInt64(s string, dst *int64) error {
	val, err := strconv.ParseInt(s, 10, 64)
	if err == nil {
		*dst = val
	}
	return err
}

func parseFloat32(s string, dst *float32) error {
	val, err := strconv.ParseFloat(s, 32)
	if err == nil {
		*dst = float32(val)
	}
	return err
}

func parseBool(s string, dst *bool) error {
	val, err := strconv.ParseBool(s)
	if err == nil {
		*dst = val
	}
	return err
}

func parseDuration(s string, dst *time.Duration) error {
	val, err := time.ParseDuration(s)
	if err == nil {
		*dst = val
	}
	return err
}
