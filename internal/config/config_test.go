package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if err := cfg.ValidateConfig(); err != nil {
		t.Fatalf("default config must validate: %v", err)
	}

	if cfg.General.ListExtension != ".lst" {
		t.Errorf("unexpected list extension: %q", cfg.General.ListExtension)
	}
	if cfg.General.BackupExtension != ".bak" {
		t.Errorf("unexpected backup extension: %q", cfg.General.BackupExtension)
	}
	if !cfg.General.ShouldMakeBackup() {
		t.Error("backups must be enabled by default")
	}
	if cfg.Domains.Prefix != "DOMAIN-SUFFIX" || cfg.IP.Prefix != "IP-CIDR" {
		t.Errorf("unexpected rule prefixes: %q / %q", cfg.Domains.Prefix, cfg.IP.Prefix)
	}
	if cfg.IP.NoResolveFlag != "no-resolve" {
		t.Errorf("unexpected no-resolve flag: %q", cfg.IP.NoResolveFlag)
	}
}

func TestLoadConfig(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "rulefmt.conf")

	content := `
[general]
make_backup = false

[domains]
dirs = ["services", "categories"]

[ip]
dirs = ["subnets/ipv4"]
`
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cfg, err := LoadConfig(configPath)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if err := cfg.ValidateConfig(); err != nil {
		t.Fatalf("loaded config must validate: %v", err)
	}

	// Absent fields keep built-in defaults.
	if cfg.General.ListExtension != ".lst" {
		t.Errorf("expected default list extension, got %q", cfg.General.ListExtension)
	}
	if cfg.General.ShouldMakeBackup() {
		t.Error("make_backup override was not applied")
	}

	if len(cfg.Domains.Dirs) != 2 {
		t.Fatalf("expected 2 domain dirs, got %d", len(cfg.Domains.Dirs))
	}

	// Relative dirs resolve against the config file directory.
	absDirs := cfg.AbsDomainDirs()
	if absDirs[0] != filepath.Join(tmpDir, "services") {
		t.Errorf("unexpected resolved dir: %q", absDirs[0])
	}

	ipDirs := cfg.AbsIPDirs()
	if len(ipDirs) != 1 || ipDirs[0] != filepath.Join(tmpDir, "subnets", "ipv4") {
		t.Errorf("unexpected resolved IP dirs: %v", ipDirs)
	}
}

func TestLoadConfig_NotFound(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.conf")); err == nil {
		t.Error("expected error for missing config file")
	}
}

func TestLoadConfig_Malformed(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "bad.conf")
	if err := os.WriteFile(configPath, []byte("[general\nlist_extension = "), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	if _, err := LoadConfig(configPath); err == nil {
		t.Error("expected error for malformed config file")
	}
}
