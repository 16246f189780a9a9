package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pelletier/go-toml/v2"

	"songsearch/internal/config"
)

func TestLoadDefaultConfigExpandsPaths(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)
	t.Chdir(t.TempDir())

	cfg, resolved, exists, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if resolved == "" {
		t.Fatal("expected resolved path")
	}
	if exists {
		t.Fatal("expected config file to be absent in temp HOME")
	}

	wantHistory := filepath.Join(tempHome, ".local", "share", "songsearch", "history.db")
	if cfg.History.Path != wantHistory {
		t.Fatalf("unexpected history path: got %q want %q", cfg.History.Path, wantHistory)
	}
	if cfg.Catalog.BaseURL != config.Default().Catalog.BaseURL {
		t.Fatalf("unexpected catalog base url: %q", cfg.Catalog.BaseURL)
	}
	if cfg.Catalog.Country != "ua" {
		t.Fatalf("expected default country ua, got %q", cfg.Catalog.Country)
	}
	if cfg.Catalog.ProviderLabel != "Apple Music" {
		t.Fatalf("unexpected provider label: %q", cfg.Catalog.ProviderLabel)
	}
	if cfg.RequestTimeout().Seconds() != 10 {
		t.Fatalf("unexpected request timeout: %v", cfg.RequestTimeout())
	}
	if err := cfg.EnsureDirectories(); err != nil {
		t.Fatalf("EnsureDirectories failed: %v", err)
	}
	if info, err := os.Stat(filepath.Dir(cfg.History.Path)); err != nil || !info.IsDir() {
		t.Fatalf("expected history directory to exist: %v", err)
	}
}

func TestLoadCustomPath(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "songsearch.toml")

	type payload struct {
		Catalog struct {
			BaseURL       string `toml:"base_url"`
			Country       string `toml:"country"`
			Entity        string `toml:"entity"`
			Limit         int    `toml:"limit"`
			ProviderLabel string `toml:"provider_label"`
		} `toml:"catalog"`
		History struct {
			Path string `toml:"path"`
		} `toml:"history"`
		Logging struct {
			Format string `toml:"format"`
		} `toml:"logging"`
	}
	custom := payload{}
	custom.Catalog.BaseURL = "https://catalog.example.com/search"
	custom.Catalog.Country = " US "
	custom.Catalog.Entity = "song"
	custom.Catalog.Limit = 25
	custom.Catalog.ProviderLabel = "Catalog"
	custom.History.Path = filepath.Join(tempDir, "journal.db")
	custom.Logging.Format = "JSON"

	data, err := toml.Marshal(custom)
	if err != nil {
		t.Fatalf("marshal config: %v", err)
	}
	if err := os.WriteFile(configPath, data, 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, resolved, exists, err := config.Load(configPath)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists || resolved != configPath {
		t.Fatalf("expected custom config to be used, got %q exists=%v", resolved, exists)
	}
	if cfg.Catalog.BaseURL != "https://catalog.example.com/search" {
		t.Fatalf("unexpected base url: %q", cfg.Catalog.BaseURL)
	}
	if cfg.Catalog.Country != "us" {
		t.Fatalf("expected normalized country, got %q", cfg.Catalog.Country)
	}
	if cfg.Catalog.Entity != "song" || cfg.Catalog.Limit != 25 {
		t.Fatalf("unexpected catalog filters: %+v", cfg.Catalog)
	}
	if cfg.Catalog.ProviderLabel != "Catalog" {
		t.Fatalf("unexpected provider label: %q", cfg.Catalog.ProviderLabel)
	}
	if cfg.Logging.Format != "json" {
		t.Fatalf("expected lowercased log format, got %q", cfg.Logging.Format)
	}
	if cfg.History.Path != custom.History.Path {
		t.Fatalf("unexpected history path: %q", cfg.History.Path)
	}
}

func TestLoadHonoursEnvironmentOverrides(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())
	t.Setenv("SONGSEARCH_CATALOG_URL", "http://127.0.0.1:9999/search")
	t.Setenv("SONGSEARCH_COUNTRY", "GB")

	cfg, _, _, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Catalog.BaseURL != "http://127.0.0.1:9999/search" {
		t.Fatalf("expected env base url, got %q", cfg.Catalog.BaseURL)
	}
	if cfg.Catalog.Country != "gb" {
		t.Fatalf("expected env country, got %q", cfg.Catalog.Country)
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(*config.Config)
		message string
	}{
		{"relative url", func(c *config.Config) { c.Catalog.BaseURL = "/search" }, "catalog.base_url"},
		{"ftp url", func(c *config.Config) { c.Catalog.BaseURL = "ftp://example.com" }, "http or https"},
		{"country", func(c *config.Config) { c.Catalog.Country = "usa" }, "catalog.country"},
		{"limit", func(c *config.Config) { c.Catalog.Limit = 500 }, "catalog.limit"},
		{"timeout", func(c *config.Config) { c.Catalog.TimeoutSeconds = -1 }, "catalog.timeout_seconds"},
		{"history path", func(c *config.Config) { c.History.Path = "" }, "history.path"},
		{"log format", func(c *config.Config) { c.Logging.Format = "xml" }, "logging.format"},
		{"log level", func(c *config.Config) { c.Logging.Level = "trace" }, "logging.level"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := config.Default()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tc.message) {
				t.Fatalf("expected %q in error %q", tc.message, err.Error())
			}
		})
	}
}

func TestDefaultValidates(t *testing.T) {
	cfg := config.Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config should validate: %v", err)
	}
}

func TestCreateSampleLoads(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	if err := config.CreateSample(path); err != nil {
		t.Fatalf("CreateSample returned error: %v", err)
	}
	cfg, _, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("sample config failed to load: %v", err)
	}
	if !exists {
		t.Fatal("expected sample file to exist")
	}
	if cfg.Catalog.ProviderLabel != "Apple Music" {
		t.Fatalf("unexpected provider label from sample: %q", cfg.Catalog.ProviderLabel)
	}
}
