package config

import "time"

// Config is the root configuration structure.
//
// Fields:
//   - Cargo: cargo binary used to produce workspace metadata
//   - ManifestName: manifest filename stripped from package paths
//   - Timeout: seconds allowed for the metadata command; 0 disables the limit
//   - Color: colour mode for text output (auto, always, never)
//   - List: defaults for the list command flags
//   - Path: file the configuration was read from; empty for built-in defaults
type Config struct {
	Cargo        string  `yaml:"cargo"`
	ManifestName string  `yaml:"manifest_name"`
	Timeout      int     `yaml:"timeout"`
	Color        string  `yaml:"color"`
	List         ListCfg `yaml:"list"`

	Path string `yaml:"-"`
}

// ListCfg holds defaults for the list command. Flags given on the command
// line take precedence.
type ListCfg struct {
	Long   bool   `yaml:"long"`
	All    bool   `yaml:"all"`
	Output string `yaml:"output"`
}

// GetTimeout returns the metadata command timeout as a duration.
//
// Returns:
//   - time.Duration: Timeout seconds as a duration; 0 means no limit
func (c *Config) GetTimeout() time.Duration {
	if c.Timeout <= 0 {
		return 0
	}
	return time.Duration(c.Timeout) * time.Second
}

// IsDefault reports whether no configuration file was read.
func (c *Config) IsDefault() bool {
	return c.Path == ""
}
