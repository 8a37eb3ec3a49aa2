package config

import (
	"github.com/0xAlexFox/shadowrocket-config/internal/utils"
)

type Config struct {
	// General holds settings shared by every list kind.
	General *GeneralConfig `toml:"general"`
	// Domains configures the domain-suffix list directories.
	Domains *DomainListsConfig `toml:"domains"`
	// IP configures the IP/CIDR list directories.
	IP *IPListsConfig `toml:"ip"`

	_baseDir string
}

type GeneralConfig struct {
	// ListExtension is the file extension of rule list files (default: ".lst").
	ListExtension string `toml:"list_extension" validate:"required,file_ext"`
	// BackupExtension is appended to a list file path to form its backup path (default: ".bak").
	BackupExtension string `toml:"backup_extension" validate:"required,file_ext,nefield=ListExtension"`
	// MakeBackup writes a backup copy of each list file before rewriting it (default: true).
	MakeBackup *bool `toml:"make_backup"`
}

// ShouldMakeBackup reports whether backups are enabled. Unset means enabled.
func (g *GeneralConfig) ShouldMakeBackup() bool {
	return g.MakeBackup == nil || *g.MakeBackup
}

type DomainListsConfig struct {
	// Prefix is the routing rule tag prepended to every domain line (default: "DOMAIN-SUFFIX").
	Prefix string `toml:"prefix" validate:"required,rule_prefix"`
	// Dirs are the directories scanned recursively for domain list files.
	Dirs []string `toml:"dirs" validate:"dive,required"`
}

type IPListsConfig struct {
	// Prefix is the routing rule tag of every emitted IP rule (default: "IP-CIDR").
	Prefix string `toml:"prefix" validate:"required,rule_prefix"`
	// NoResolveFlag is the modifier appended to every emitted IP rule (default: "no-resolve").
	NoResolveFlag string `toml:"no_resolve_flag" validate:"required"`
	// RuleTemplate renders an IP rule. Available variables: {{prefix}}, {{cidr}}, {{flag}}.
	RuleTemplate string `toml:"rule_template" validate:"required,rule_template"`
	// Dirs are the directories scanned recursively for IP list files.
	Dirs []string `toml:"dirs" validate:"dive,required"`
}

// GetBaseDir returns the directory relative list directories resolve against:
// the config file's directory, or the working directory for built-in defaults.
func (c *Config) GetBaseDir() string {
	return c._baseDir
}

// AbsDomainDirs returns the configured domain directories resolved to absolute paths.
func (c *Config) AbsDomainDirs() []string {
	return absDirs(c.Domains.Dirs, c._baseDir)
}

// AbsIPDirs returns the configured IP directories resolved to absolute paths.
func (c *Config) AbsIPDirs() []string {
	return absDirs(c.IP.Dirs, c._baseDir)
}

// AllDirs returns every configured directory, domain dirs first.
func (c *Config) AllDirs() []string {
	return append(c.AbsDomainDirs(), c.AbsIPDirs()...)
}

func absDirs(dirs []string, baseDir string) []string {
	out := make([]string, 0, len(dirs))
	for _, d := range dirs {
		out = append(out, utils.GetAbsolutePath(d, baseDir))
	}
	return out
}
