package main

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config is the ambient CLI configuration, modeled directly on the
// teacher's pkg/config.LoadProfile: a small YAML file naming the
// signing key file and whether audit logging is enabled.
type Config struct {
	Name           string `yaml:"name"`
	SigningKeyFile string `yaml:"signing_key_file"`
	AuditEnabled   bool   `yaml:"audit_enabled"`
}

// LoadConfig reads and parses a YAML configuration file. A missing
// Name defaults to the base of the config path, matching the
// teacher's profile-loader default-naming convention.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("classguard: reading config %s: %w", path, err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("classguard: parsing config %s: %w", path, err)
	}
	if cfg.Name == "" {
		cfg.Name = filepath.Base(path)
	}
	return &cfg, nil
}

// readSigningKey loads the raw signing key bytes from cfg, or returns
// nil when no key file is configured (unsigned operation).
func readSigningKey(cfg *Config) ([]byte, error) {
	if cfg == nil || cfg.SigningKeyFile == "" {
		return nil, nil
	}
	key, err := os.ReadFile(cfg.SigningKeyFile)
	if err != nil {
		return nil, fmt.Errorf("classguard: reading signing key %s: %w", cfg.SigningKeyFile, err)
	}
	return key, nil
}
