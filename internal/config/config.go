package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"github.com/0xAlexFox/shadowrocket-config/internal/log"
)

// DefaultConfig returns the built-in configuration. It reproduces the
// original behavior of the maintenance scripts: fixed directory sets,
// backups enabled, canonical rule tags. Relative directories resolve
// against the current working directory.
func DefaultConfig() *Config {
	cwd, err := os.Getwd()
	if err != nil {
		cwd = "."
	}

	cfg := &Config{}
	cfg.applyDefaults()
	cfg._baseDir = cwd

	return cfg
}

// LoadConfig reads a TOML configuration file. Sections and fields that are
// absent keep their built-in defaults.
func LoadConfig(configPath string) (*Config, error) {
	configFile := filepath.Clean(configPath)

	if !filepath.IsAbs(configFile) {
		if path, err := filepath.Abs(configFile); err != nil {
			return nil, fmt.Errorf("failed to get absolute path: %v", err)
		} else {
			configFile = path
		}
	}

	if _, err := os.Stat(configFile); os.IsNotExist(err) {
		return nil, fmt.Errorf("configuration file not found: %s", configFile)
	}

	content, err := os.ReadFile(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %v", err)
	}

	var config Config
	if err := toml.Unmarshal(content, &config); err != nil {
		var derr *toml.DecodeError
		if errors.As(err, &derr) {
			log.Errorf(derr.String())
			row, col := derr.Position()
			log.Errorf("Error at line %d, column %d", row, col)
			return nil, fmt.Errorf("failed to parse config file")
		}
		return nil, fmt.Errorf("failed to parse config file: %v", err)
	}

	config.applyDefaults()
	config._baseDir = filepath.Dir(configFile)

	log.Debugf("Configuration file path: %s", configFile)
	log.Debugf("List directories base: %s", config._baseDir)

	return &config, nil
}

// applyDefaults fills every unset field with its built-in value.
func (c *Config) applyDefaults() {
	if c.General == nil {
		c.General = &GeneralConfig{}
	}
	if c.General.ListExtension == "" {
		c.General.ListExtension = ".lst"
	}
	if c.General.BackupExtension == "" {
		c.General.BackupExtension = ".bak"
	}
	if c.General.MakeBackup == nil {
		enabled := true
		c.General.MakeBackup = &enabled
	}

	if c.Domains == nil {
		c.Domains = &DomainListsConfig{}
	}
	if c.Domains.Prefix == "" {
		c.Domains.Prefix = "DOMAIN-SUFFIX"
	}
	if c.Domains.Dirs == nil {
		c.Domains.Dirs = []string{"domains/services"}
	}

	if c.IP == nil {
		c.IP = &IPListsConfig{}
	}
	if c.IP.Prefix == "" {
		c.IP.Prefix = "IP-CIDR"
	}
	if c.IP.NoResolveFlag == "" {
		c.IP.NoResolveFlag = "no-resolve"
	}
	if c.IP.RuleTemplate == "" {
		c.IP.RuleTemplate = "{{prefix}},{{cidr}},{{flag}}"
	}
	if c.IP.Dirs == nil {
		c.IP.Dirs = []string{"domains/ip"}
	}
}
