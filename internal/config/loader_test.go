package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"gopkg.in/yaml.v3"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadConfigDefaults(t *testing.T) {
	loader := NewLoader()
	loader.configPaths = []string{filepath.Join(t.TempDir(), "missing.yaml")}

	cfg, err := loader.LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.Client.Endpoint != "http://localhost:8000" {
		t.Errorf("endpoint = %q, want default", cfg.Client.Endpoint)
	}
}

func TestLoadConfigCustomPath(t *testing.T) {
	path := writeConfigFile(t, `
client:
  endpoint: "http://grading.internal:9000"
  timeout: 45s
output:
  default_format: "json"
`)

	loader := NewLoader()
	cfg, err := loader.LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if cfg.Client.Endpoint != "http://grading.internal:9000" {
		t.Errorf("endpoint = %q", cfg.Client.Endpoint)
	}
	if cfg.Client.Timeout != 45*time.Second {
		t.Errorf("timeout = %v", cfg.Client.Timeout)
	}
	if cfg.Output.DefaultFormat != "json" {
		t.Errorf("format = %q", cfg.Output.DefaultFormat)
	}
	// Unset fields keep defaults
	if cfg.Server.Addr != ":8000" {
		t.Errorf("addr = %q, want default", cfg.Server.Addr)
	}
}

func TestLoadConfigInvalidPath(t *testing.T) {
	loader := NewLoader()
	if _, err := loader.LoadConfig("../../etc/evil.yaml"); err == nil {
		t.Error("expected error for path traversal")
	}
	if _, err := loader.LoadConfig("config.txt"); err == nil {
		t.Error("expected error for non-YAML extension")
	}
}

func TestLoadConfigInvalidValues(t *testing.T) {
	path := writeConfigFile(t, `
output:
  default_format: "xml"
`)

	loader := NewLoader()
	if _, err := loader.LoadConfig(path); err == nil {
		t.Error("expected validation error for bad format")
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("GRADELENS_CLIENT_ENDPOINT", "http://override:7000")
	t.Setenv("GRADELENS_CLIENT_TIMEOUT", "2m")
	t.Setenv("GRADELENS_OUTPUT_VERBOSE", "true")
	t.Setenv("GRADELENS_SERVER_ALLOW_ORIGINS", "https://a.example, https://b.example")

	loader := NewLoader()
	loader.configPaths = []string{filepath.Join(t.TempDir(), "missing.yaml")}

	cfg, err := loader.LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if cfg.Client.Endpoint != "http://override:7000" {
		t.Errorf("endpoint = %q", cfg.Client.Endpoint)
	}
	if cfg.Client.Timeout != 2*time.Minute {
		t.Errorf("timeout = %v", cfg.Client.Timeout)
	}
	if !cfg.Output.Verbose {
		t.Error("verbose should be overridden to true")
	}
	want := []string{"https://a.example", "https://b.example"}
	if len(cfg.Server.AllowOrigins) != 2 ||
		cfg.Server.AllowOrigins[0] != want[0] || cfg.Server.AllowOrigins[1] != want[1] {
		t.Errorf("origins = %v, want %v", cfg.Server.AllowOrigins, want)
	}
}

func TestEnvOverrideInvalidValue(t *testing.T) {
	t.Setenv("GRADELENS_CLIENT_TIMEOUT", "not-a-duration")

	loader := NewLoader()
	loader.configPaths = []string{filepath.Join(t.TempDir(), "missing.yaml")}

	if _, err := loader.LoadConfig(""); err == nil {
		t.Error("expected error for unparseable env value")
	}
}

func TestSampleConfigParses(t *testing.T) {
	for name, content := range map[string]string{
		"full":    SampleConfig(),
		"minimal": MinimalSampleConfig(),
	} {
		var cfg Config
		if err := yaml.Unmarshal([]byte(content), &cfg); err != nil {
			t.Errorf("%s sample config is not valid YAML: %v", name, err)
		}
	}
}

func TestSampleConfigValidates(t *testing.T) {
	path := writeConfigFile(t, SampleConfig())

	loader := NewLoader()
	cfg, err := loader.LoadConfig(path)
	if err != nil {
		t.Fatalf("sample config failed to load: %v", err)
	}
	if cfg.Client.MaxFileSize != 5*1024*1024 {
		t.Errorf("sample max file size = %d", cfg.Client.MaxFileSize)
	}
}
