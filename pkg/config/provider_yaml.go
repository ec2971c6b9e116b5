package config

import (
	"fmt"
	"os"

	yaml "gopkg.in/yaml.v2"
)

// YAMLProvider loads configuration from a YAML file. It is read-only.
type YAMLProvider struct {
	filename string
}

// NewYAMLProvider creates a provider for the given file path.
func NewYAMLProvider(filename string) *YAMLProvider {
	return &YAMLProvider{filename: filename}
}

// LoadConfig reads and parses the YAML file and applies defaults.
func (y *YAMLProvider) LoadConfig() (*ConfigData, error) {
	data, err := os.ReadFile(y.filename)
	if err != nil {
		return nil, fmt.Errorf("error reading config file %s: %v", y.filename, err)
	}

	cfg := &ConfigData{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("error parsing config file %s: %v", y.filename, err)
	}

	cfg.ApplyDefaults()
	return cfg, nil
}

// IsReadOnly always returns true for YAML files.
func (y *YAMLProvider) IsReadOnly() bool {
	return true
}

// Close is a no-op for file-backed configuration.
func (y *YAMLProvider) Close() error {
	return nil
}
