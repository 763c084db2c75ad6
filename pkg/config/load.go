// Package config loads the optional .workspaces.yml file that supplies
// defaults for the cargo binary, command timeout, colour mode, and the list
// command flags.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/ajxudir/workspaces/pkg/verbose"
	"gopkg.in/yaml.v3"
)

// FileName is the configuration file looked up in the working directory.
const FileName = ".workspaces.yml"

// DefaultMaxConfigFileSize caps the size of a configuration file.
const DefaultMaxConfigFileSize int64 = 1 << 20

// LoadConfig loads configuration from the specified path or defaults.
//
// If configPath is provided, that file must exist. Otherwise .workspaces.yml
// in workDir is used when present. Keys missing from the file keep their
// built-in defaults. The result is validated before it is returned.
//
// Parameters:
//   - configPath: path to the config file, or empty to look in workDir
//   - workDir: directory searched for .workspaces.yml
//
// Returns:
//   - *Config: the loaded configuration
//   - error: when the file cannot be read, has invalid YAML or unknown keys, or fails validation
func LoadConfig(configPath, workDir string) (*Config, error) {
	cfg := loadDefaultConfig()

	path := configPath
	if path == "" {
		local := filepath.Join(workDir, FileName)
		if _, err := os.Stat(local); err == nil {
			verbose.Infof("Found local config: %s", local)
			path = local
		}
	}

	if path != "" {
		if err := loadConfigFile(path, cfg); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		cfg.Path = path
	}

	if err := Validate(cfg); err != nil {
		return nil, err
	}

	verbose.ConfigLoaded(cfg.Path)
	return cfg, nil
}

// loadConfigFile reads path and decodes it over cfg.
//
// Parameters:
//   - path: path to the config file
//   - cfg: configuration pre-filled with defaults
//
// Returns:
//   - error: when the file is too large, unreadable, or not valid for Config
func loadConfigFile(path string, cfg *Config) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	if info.Size() > DefaultMaxConfigFileSize {
		return fmt.Errorf("config file too large: %d bytes (max %d bytes)", info.Size(), DefaultMaxConfigFileSize)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return loadConfigData(data, cfg)
}

// loadConfigData decodes YAML over cfg, rejecting unknown keys.
// An empty document leaves cfg unchanged.
//
// Parameters:
//   - data: YAML configuration data
//   - cfg: configuration to update
//
// Returns:
//   - error: when the YAML is malformed or names an unknown key
func loadConfigData(data []byte, cfg *Config) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("invalid YAML: %w", err)
	}
	return nil
}
