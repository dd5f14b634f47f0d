package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func validConfig() Config {
	return Config{
		HTTP: HTTPConfig{Port: 8080},
		Embedding: EmbeddingConfig{
			BaseURL: "https://api.example.com/v1",
			Model:   "text-embedding-3-small",
		},
	}
}

func TestValidate_OK(t *testing.T) {
	cfg := validConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidate_InvalidPort(t *testing.T) {
	for _, port := range []int{0, -1, 70000} {
		cfg := validConfig()
		cfg.HTTP.Port = port
		if err := cfg.Validate(); err == nil {
			t.Errorf("expected error for port %d", port)
		}
	}
}

func TestValidate_MissingEmbeddingSettings(t *testing.T) {
	cfg := validConfig()
	cfg.Embedding.BaseURL = ""
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for missing base_url")
	}

	cfg = validConfig()
	cfg.Embedding.Model = ""
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for missing model")
	}
}

func TestApplyDefaults(t *testing.T) {
	cfg := Config{}
	cfg.ApplyDefaults()

	if cfg.HTTP.ReadTimeoutSec != 10 {
		t.Errorf("expected ReadTimeoutSec=10, got %d", cfg.HTTP.ReadTimeoutSec)
	}
	if cfg.HTTP.WriteTimeoutSec != 10 {
		t.Errorf("expected WriteTimeoutSec=10, got %d", cfg.HTTP.WriteTimeoutSec)
	}
	if cfg.Embedding.TimeoutSec != 5 {
		t.Errorf("expected embedding TimeoutSec=5, got %d", cfg.Embedding.TimeoutSec)
	}
	if cfg.Cache.TTLSec != 300 {
		t.Errorf("expected cache TTLSec=300, got %d", cfg.Cache.TTLSec)
	}
	if cfg.Catalog.Dir != "data" {
		t.Errorf("expected catalog dir 'data', got %q", cfg.Catalog.Dir)
	}
}

func TestExpandEnvVars(t *testing.T) {
	t.Setenv("MIXSEARCH_TEST_VAR", "hello")

	tests := []struct {
		in   string
		want string
	}{
		{"plain", "plain"},
		{"${MIXSEARCH_TEST_VAR}", "hello"},
		{"${MIXSEARCH_TEST_UNSET}", ""},
		{"${MIXSEARCH_TEST_UNSET:-fallback}", "fallback"},
		{"${MIXSEARCH_TEST_VAR:-fallback}", "hello"},
	}
	for _, tt := range tests {
		if got := string(expandEnvVars([]byte(tt.in))); got != tt.want {
			t.Errorf("expandEnvVars(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	if err := os.Mkdir(filepath.Join(dir, "config"), 0o750); err != nil {
		t.Fatal(err)
	}

	doc := strings.TrimSpace(`
http:
  port: 9090
embedding:
  base_url: ${MIXSEARCH_TEST_BASE_URL:-https://api.example.com/v1}
  model: text-embedding-3-small
catalog:
  dir: testdata
cache:
  ttl_sec: 120
`)
	if err := os.WriteFile(filepath.Join(dir, "config", "test.yaml"), []byte(doc), 0o600); err != nil {
		t.Fatal(err)
	}
	chdir(t, dir)

	cfg, err := Load("test")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.HTTP.Port != 9090 {
		t.Errorf("expected port 9090, got %d", cfg.HTTP.Port)
	}
	if cfg.Embedding.BaseURL != "https://api.example.com/v1" {
		t.Errorf("unexpected base_url: %q", cfg.Embedding.BaseURL)
	}
	if cfg.Cache.TTLSec != 120 {
		t.Errorf("expected ttl 120, got %d", cfg.Cache.TTLSec)
	}
	// Defaults fill the rest.
	if cfg.Embedding.TimeoutSec != 5 {
		t.Errorf("expected default embedding timeout, got %d", cfg.Embedding.TimeoutSec)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	chdir(t, t.TempDir())
	if _, err := Load("nonexistent"); err == nil {
		t.Error("expected error for missing config file")
	}
}

// chdir changes the working directory for the duration of the test,
// matching the behavior of testing.T.Chdir (Go 1.24+) on older toolchains.
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(old); err != nil {
			t.Fatal(err)
		}
	})
}
