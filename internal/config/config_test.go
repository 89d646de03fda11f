package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadFromFileParsesPaths(t *testing.T) {
	cfg := &Config{}
	cfg.ConfigPath = filepath.Join(t.TempDir(), "config")

	content := "# defaults\nProfilePath=/tmp/profiles/zsh.yaml\nIndexPath=/tmp/termscribe.db\n"
	if err := os.WriteFile(cfg.ConfigPath, []byte(content), 0o600); err != nil {
		t.Fatalf("write config file error = %v", err)
	}

	if err := cfg.loadFromFile(); err != nil {
		t.Fatalf("loadFromFile() error = %v", err)
	}

	if cfg.ProfilePath != "/tmp/profiles/zsh.yaml" {
		t.Fatalf("ProfilePath = %q, want /tmp/profiles/zsh.yaml", cfg.ProfilePath)
	}
	if cfg.IndexPath != "/tmp/termscribe.db" {
		t.Fatalf("IndexPath = %q, want /tmp/termscribe.db", cfg.IndexPath)
	}
}

func TestLoadFromFileIgnoresMalformedLines(t *testing.T) {
	cfg := &Config{}
	cfg.ConfigPath = filepath.Join(t.TempDir(), "config")

	content := "not a key value pair\nIndexPath=/var/db/runs.db\n"
	if err := os.WriteFile(cfg.ConfigPath, []byte(content), 0o600); err != nil {
		t.Fatalf("write config file error = %v", err)
	}

	if err := cfg.loadFromFile(); err != nil {
		t.Fatalf("loadFromFile() error = %v", err)
	}
	if cfg.IndexPath != "/var/db/runs.db" {
		t.Fatalf("IndexPath = %q, want /var/db/runs.db", cfg.IndexPath)
	}
}

func TestLoadFromFileMissingFile(t *testing.T) {
	cfg := &Config{ConfigPath: filepath.Join(t.TempDir(), "absent")}

	err := cfg.loadFromFile()
	if !os.IsNotExist(err) {
		t.Fatalf("loadFromFile() error = %v, want not-exist", err)
	}
}
