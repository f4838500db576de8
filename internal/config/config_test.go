package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingDefault(t *testing.T) {
	t.Setenv(envHome, t.TempDir())
	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg != defaults() {
		t.Errorf("%+v (actual) != %+v (expected)", cfg, defaults())
	}
}

func TestLoadMissingExplicit(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected an error for a missing explicit config")
	}
}

func TestLoadYAML(t *testing.T) {
	home := t.TempDir()
	t.Setenv(envHome, home)
	data := "timezone: Europe/Paris\njson: true\n"
	if err := os.WriteFile(filepath.Join(home, "config.yaml"), []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	want := Config{Timezone: "Europe/Paris", Format: DefaultFormat, JSON: true}
	if cfg != want {
		t.Errorf("%+v (actual) != %+v (expected)", cfg, want)
	}
}

func TestLoadTOML(t *testing.T) {
	home := t.TempDir()
	t.Setenv(envHome, home)
	data := "timezone = \"UTC\"\nformat = \"2006-01-02\"\nno_color = true\n"
	if err := os.WriteFile(filepath.Join(home, "config.toml"), []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
	if p := Path(); filepath.Base(p) != "config.toml" {
		t.Fatalf("Path() = %q", p)
	}
	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	want := Config{Timezone: "UTC", Format: "2006-01-02", NoColor: true}
	if cfg != want {
		t.Errorf("%+v (actual) != %+v (expected)", cfg, want)
	}
}

func TestLoadInvalid(t *testing.T) {
	p := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(p, []byte("timezone: [unterminated"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(p); err == nil {
		t.Error("expected a parse error")
	}
}
