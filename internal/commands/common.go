package commands

import (
	"fmt"

	"github.com/0xAlexFox/shadowrocket-config/internal/config"
)

type Runner interface {
	Init(args []string, globalArgs *AppContext) error
	Run() error
	Name() string
}

type AppContext struct {
	ConfigPath string
	Verbose    bool
}

// loadAndValidateConfig loads the configuration file if one was given,
// otherwise falls back to the built-in defaults. Either way the result is
// validated before use.
func loadAndValidateConfig(configPath string) (*config.Config, error) {
	var cfg *config.Config

	if configPath == "" {
		cfg = config.DefaultConfig()
	} else {
		loaded, err := config.LoadConfig(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load configuration: %v", err)
		}
		cfg = loaded
	}

	if err := cfg.ValidateConfig(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %v", err)
	}

	return cfg, nil
}
