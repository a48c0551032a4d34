package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.Server.Port != 4000 {
		t.Fatalf("expected default port 4000, got %d", cfg.Server.Port)
	}
	if cfg.Store.Backend != "file" || cfg.Store.Path != "data/photos.json" {
		t.Fatalf("unexpected store defaults: %+v", cfg.Store)
	}
	if cfg.Auth.Username != "admin" {
		t.Fatalf("unexpected auth defaults: %+v", cfg.Auth)
	}
}

func TestLoadParsesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
server:
  port: 9000
store:
  backend: sqlite
  path: data/photos.db
auth:
  username: curator
  password: hunter2
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.Server.Port != 9000 {
		t.Fatalf("expected port 9000, got %d", cfg.Server.Port)
	}
	if cfg.Store.Backend != "sqlite" || cfg.Store.Path != "data/photos.db" {
		t.Fatalf("unexpected store config: %+v", cfg.Store)
	}
	if cfg.Auth.Username != "curator" || cfg.Auth.Password != "hunter2" {
		t.Fatalf("unexpected auth config: %+v", cfg.Auth)
	}
}

func TestEnvironmentOverridesFile(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("ADMIN_USERNAME", "operator")
	t.Setenv("ADMIN_PASSWORD", "from-env")

	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.Server.Port != 8080 {
		t.Fatalf("expected env port 8080, got %d", cfg.Server.Port)
	}
	if cfg.Auth.Username != "operator" || cfg.Auth.Password != "from-env" {
		t.Fatalf("env overrides not applied: %+v", cfg.Auth)
	}
}

func TestMalformedFileFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("server: [not a map"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	if _, err := Load(path); err == nil {
		t.Fatal("expected a parse error")
	}
}
