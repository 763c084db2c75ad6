package config

import (
	_ "embed"

	"gopkg.in/yaml.v3"
)

//go:embed default.yml
var defaultConfigYAML string

// loadDefaultConfig loads the embedded default configuration.
//
// If the embedded YAML cannot be decoded, the hard-coded equivalent is
// returned so the tool keeps working.
//
// Returns:
//   - *Config: the default configuration
func loadDefaultConfig() *Config {
	var cfg Config
	if err := yaml.Unmarshal([]byte(defaultConfigYAML), &cfg); err == nil {
		return &cfg
	}
	return &Config{
		Cargo:        "cargo",
		ManifestName: "Cargo.toml",
		Timeout:      60,
		Color:        "auto",
		List:         ListCfg{Output: "table"},
	}
}

// GetDefaultConfig returns the embedded default configuration YAML.
func GetDefaultConfig() string {
	return defaultConfigYAML
}
