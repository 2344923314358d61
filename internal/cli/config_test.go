package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestConfigSaveAndLoad(t *testing.T) {
	tmp := t.TempDir()
	t.Setenv("HOME", tmp)

	cfg := CLIConfig{ServerURL: "http://myhost:9090"}

	if err := saveConfig(cfg); err != nil {
		t.Fatalf("save: %v", err)
	}

	path := filepath.Join(tmp, ".config", "ra", "config.yaml")
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("config file not found: %v", err)
	}

	loaded, err := loadConfig()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if loaded.ServerURL != cfg.ServerURL {
		t.Errorf("server_url = %q, want %q", loaded.ServerURL, cfg.ServerURL)
	}
}

func TestConfigLoadMissing(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := loadConfig()
	if err != nil {
		t.Fatalf("load missing: %v", err)
	}
	if cfg.ServerURL != "" {
		t.Error("expected zero-value config for missing file")
	}
}

func TestConfigLoadInvalid(t *testing.T) {
	tmp := t.TempDir()
	t.Setenv("HOME", tmp)

	path := filepath.Join(tmp, ".config", "ra", "config.yaml")
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte("server_url: [unclosed"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}

	if _, err := loadConfig(); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestGetServerURLFromEnv(t *testing.T) {
	t.Setenv("RA_SERVER_URL", "http://custom:1234")
	t.Setenv("HOME", t.TempDir())

	if url := getServerURL(); url != "http://custom:1234" {
		t.Errorf("url = %q, want %q", url, "http://custom:1234")
	}
}

func TestGetServerURLFromConfig(t *testing.T) {
	t.Setenv("RA_SERVER_URL", "")
	t.Setenv("HOME", t.TempDir())

	if err := saveConfig(CLIConfig{ServerURL: "http://saved:7000"}); err != nil {
		t.Fatalf("save: %v", err)
	}
	if url := getServerURL(); url != "http://saved:7000" {
		t.Errorf("url = %q, want %q", url, "http://saved:7000")
	}
}

func TestGetServerURLDefault(t *testing.T) {
	t.Setenv("RA_SERVER_URL", "")
	t.Setenv("HOME", t.TempDir())

	if url := getServerURL(); url != defaultServerURL {
		t.Errorf("url = %q, want %q", url, defaultServerURL)
	}
}

func TestConfigSetServerCommand(t *testing.T) {
	t.Setenv("RA_SERVER_URL", "")
	t.Setenv("HOME", t.TempDir())

	out, err := executeCommand("config", "set-server", "http://reviews.example:8000", "--env-file", "")
	if err != nil {
		t.Fatalf("set-server: %v", err)
	}
	if !strings.Contains(out, "http://reviews.example:8000") {
		t.Errorf("output = %q", out)
	}
	if url := getServerURL(); url != "http://reviews.example:8000" {
		t.Errorf("url = %q after set-server", url)
	}
}
