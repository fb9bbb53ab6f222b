package config

import (
	"strings"
	"testing"

	"github.com/spf13/afero"
)

func TestLoadDefaultsWhenMissing(t *testing.T) {
	fs := afero.NewMemMapFs()

	cfg, err := Load(fs, "/work")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.LogLevel != "warn" {
		t.Errorf("LogLevel = %q, want %q", cfg.LogLevel, "warn")
	}
	if cfg.NoColor {
		t.Error("NoColor = true, want false")
	}
}

func TestLoadFindsFileInParentDirectory(t *testing.T) {
	fs := afero.NewMemMapFs()
	content := "log_level = \"debug\"\nno_color = true\n"
	if err := afero.WriteFile(fs, "/work/calq.toml", []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	if err := fs.MkdirAll("/work/sub/dir", 0755); err != nil {
		t.Fatalf("failed to create dirs: %v", err)
	}

	cfg, err := Load(fs, "/work/sub/dir")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want %q", cfg.LogLevel, "debug")
	}
	if !cfg.NoColor {
		t.Error("NoColor = false, want true")
	}
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	fs := afero.NewMemMapFs()
	if err := afero.WriteFile(fs, "/work/calq.toml", []byte("no_color = true\n"), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cfg, err := Load(fs, "/work")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.LogLevel != "warn" {
		t.Errorf("LogLevel = %q, want default %q", cfg.LogLevel, "warn")
	}
	if !cfg.NoColor {
		t.Error("NoColor = false, want true")
	}
}

func TestLoadRejectsInvalidLogLevel(t *testing.T) {
	fs := afero.NewMemMapFs()
	if err := afero.WriteFile(fs, "/work/calq.toml", []byte("log_level = \"loud\"\n"), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	_, err := Load(fs, "/work")
	if err == nil {
		t.Fatal("expected error for invalid log_level")
	}
	if !strings.Contains(err.Error(), "invalid configuration") {
		t.Errorf("error = %v, want invalid configuration message", err)
	}
}

func TestLoadRejectsMalformedToml(t *testing.T) {
	fs := afero.NewMemMapFs()
	if err := afero.WriteFile(fs, "/work/calq.toml", []byte("log_level = [\n"), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	_, err := Load(fs, "/work")
	if err == nil {
		t.Fatal("expected error for malformed TOML")
	}
}
