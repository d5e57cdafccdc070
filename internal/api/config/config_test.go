package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfigFile(t *testing.T, dir, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Join(dir, "configs"), 0o755); err != nil {
		t.Fatalf("mkdir configs: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "configs", "config.yaml"), []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
}

func TestLoadConfigMalformedFile(t *testing.T) {
	dir := t.TempDir()
	writeConfigFile(t, dir, "server:\n  port: [9000\n")
	t.Chdir(dir)

	if err := LoadConfig(); err == nil {
		t.Fatal("expected error for malformed config file")
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	t.Chdir(t.TempDir())

	if err := LoadConfig(); err == nil {
		t.Fatal("expected error when config file is absent")
	}
}

func TestLoadConfigAppliesDefaults(t *testing.T) {
	dir := t.TempDir()
	writeConfigFile(t, dir, "server:\n  port: 9000\n")
	t.Chdir(dir)

	if err := LoadConfig(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if Cfg.Server.Port != 9000 {
		t.Fatalf("expected port 9000, got %d", Cfg.Server.Port)
	}
	if Cfg.Feed.DefaultPageSize != 10 {
		t.Fatalf("expected default page size 10, got %d", Cfg.Feed.DefaultPageSize)
	}
	if Cfg.Feed.CandidatePool != 500 {
		t.Fatalf("expected default candidate pool 500, got %d", Cfg.Feed.CandidatePool)
	}
}
