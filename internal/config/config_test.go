package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.OutputDir != "site" {
		t.Errorf("expected default output_dir %q, got %q", "site", cfg.OutputDir)
	}
	if cfg.DefaultLang != "en" {
		t.Errorf("expected default lang en, got %q", cfg.DefaultLang)
	}
	if cfg.Serve.Port != 8080 {
		t.Errorf("expected default port 8080, got %d", cfg.Serve.Port)
	}
	if cfg.Export.Format != FormatPNG {
		t.Errorf("expected default export format png, got %q", cfg.Export.Format)
	}
}

func TestSaveAndLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.winreport.yml")

	original := DefaultConfig()
	original.OutputDir = "public"
	original.DefaultLang = "ko"
	original.Serve.Port = 9090
	original.Export.Format = FormatSVG
	original.Export.Only = []string{"feat*", "kdaChart"}

	// Save.
	if err := original.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	// Load back.
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if loaded.OutputDir != original.OutputDir {
		t.Errorf("output_dir: got %q, want %q", loaded.OutputDir, original.OutputDir)
	}
	if loaded.DefaultLang != original.DefaultLang {
		t.Errorf("default_lang: got %q, want %q", loaded.DefaultLang, original.DefaultLang)
	}
	if loaded.Serve.Port != original.Serve.Port {
		t.Errorf("serve.port: got %d, want %d", loaded.Serve.Port, original.Serve.Port)
	}
	if loaded.Export.Format != original.Export.Format {
		t.Errorf("export.format: got %q, want %q", loaded.Export.Format, original.Export.Format)
	}
	if len(loaded.Export.Only) != len(original.Export.Only) {
		t.Fatalf("export.only length: got %d, want %d", len(loaded.Export.Only), len(original.Export.Only))
	}
	for i, v := range loaded.Export.Only {
		if v != original.Export.Only[i] {
			t.Errorf("export.only[%d]: got %q, want %q", i, v, original.Export.Only[i])
		}
	}
}

func TestLoadMissingFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nonexistent.yml")

	// Loading a missing file should return defaults, not an error.
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load should not fail for missing file: %v", err)
	}
	if cfg.OutputDir != "site" {
		t.Errorf("expected default output dir, got %q", cfg.OutputDir)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.yml")

	cfg := DefaultConfig()
	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	t.Setenv("WINREPORT_DEFAULT_LANG", "ko")
	t.Setenv("WINREPORT_SERVE__PORT", "9999")

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.DefaultLang != "ko" {
		t.Errorf("env override failed: got %q, want ko", loaded.DefaultLang)
	}
	if loaded.Serve.Port != 9999 {
		t.Errorf("nested env override failed: got %d, want 9999", loaded.Serve.Port)
	}
}

func TestLoadUnreadable(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.yml")
	if err := os.WriteFile(path, []byte("output_dir: [unterminated"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected error for malformed yaml")
	}
}

func TestValidateValid(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Errorf("DefaultConfig should be valid, got: %v", err)
	}
}

func TestValidateFailures(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"empty output", func(c *Config) { c.OutputDir = "" }},
		{"unknown lang", func(c *Config) { c.DefaultLang = "fr" }},
		{"no chartjs", func(c *Config) { c.ChartJSURL = "" }},
		{"zero port", func(c *Config) { c.Serve.Port = 0 }},
		{"huge port", func(c *Config) { c.Serve.Port = 70000 }},
		{"bad format", func(c *Config) { c.Export.Format = "gif" }},
		{"bad export lang", func(c *Config) { c.Export.Lang = "jp" }},
		{"zero width", func(c *Config) { c.Export.WidthIn = 0 }},
	}
	for _, tt := range tests {
		cfg := DefaultConfig()
		tt.mutate(cfg)
		err := cfg.Validate()
		if err == nil {
			t.Errorf("%s: expected error", tt.name)
			continue
		}
		if !errors.Is(err, ErrInvalid) {
			t.Errorf("%s: error should wrap ErrInvalid: %v", tt.name, err)
		}
	}
}

func TestSplitList(t *testing.T) {
	got := SplitList(" feat*, ,kdaChart ,")
	if len(got) != 2 || got[0] != "feat*" || got[1] != "kdaChart" {
		t.Errorf("SplitList = %q", got)
	}
	if SplitList("") != nil {
		t.Error("empty input should give nil")
	}
}

func TestValidatePort(t *testing.T) {
	if validatePort("8080") != nil {
		t.Error("8080 should be valid")
	}
	if validatePort("abc") == nil || validatePort("0") == nil {
		t.Error("expected invalid ports to fail")
	}
}

func TestWatchReloadsOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".winreport.yml")
	if err := DefaultConfig().Save(path); err != nil {
		t.Fatal(err)
	}

	changed := make(chan *Config, 16)
	stop, err := Watch(path, func(c *Config, err error) {
		if err != nil {
			return
		}
		select {
		case changed <- c:
		default:
		}
	})
	if err != nil {
		t.Fatalf("Watch: %v", err)
	}
	defer stop()

	next := DefaultConfig()
	next.Serve.Port = 9191
	if err := next.Save(path); err != nil {
		t.Fatal(err)
	}

	// A write can surface as several events, the first of which may see a
	// truncated file.
	timeout := time.After(5 * time.Second)
	for {
		select {
		case c := <-changed:
			if c.Serve.Port == 9191 {
				return
			}
		case <-timeout:
			t.Fatal("no reload with the new port after writing the config file")
		}
	}
}
