package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/opensubtitles/subrelease/internal/language"
)

// Config holds all subrelease configuration
type Config struct {
	Scan      ScanConfig      `toml:"scan"`
	Report    ReportConfig    `toml:"report"`
	Languages []LanguageEntry `toml:"languages"`
}

// ScanConfig controls subtitle discovery
type ScanConfig struct {
	Extensions []string `toml:"extensions"` // subtitle file extensions to pick up
	Workers    int      `toml:"workers"`    // 0 means one worker per CPU
}

// ReportConfig controls where scan reports are written
type ReportConfig struct {
	Directory string `toml:"directory"` // empty means the default data dir
}

// LanguageEntry is a custom language table entry merged on top of the
// builtin table
type LanguageEntry struct {
	Key         string `toml:"key"`
	Code2       string `toml:"code2"`
	Code3       string `toml:"code3"`
	Name        string `toml:"name"`
	DisplayName string `toml:"display_name"`
}

// DefaultConfig returns a config with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Scan: ScanConfig{
			Extensions: []string{".srt", ".sub", ".ssa", ".ass", ".smi", ".mpl", ".txt", ".vtt"},
			Workers:    0,
		},
		Report: ReportConfig{
			Directory: "",
		},
	}
}

// ConfigPath returns the path to the config file
func ConfigPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to get config directory: %w", err)
	}
	return filepath.Join(configDir, "subrelease", "config.toml"), nil
}

// EnsureConfigDir creates the config directory if it doesn't exist
func EnsureConfigDir() error {
	configFile, err := ConfigPath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(configFile), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	return nil
}

// Load reads the config file, creating it with defaults if it doesn't exist
func Load() (*Config, error) {
	configFile, err := ConfigPath()
	if err != nil {
		return nil, err
	}

	if err := EnsureConfigDir(); err != nil {
		return nil, err
	}

	if _, err := os.Stat(configFile); os.IsNotExist(err) {
		cfg := DefaultConfig()
		if err := Save(cfg); err != nil {
			return nil, fmt.Errorf("failed to create default config: %w", err)
		}
		return cfg, nil
	}

	var cfg Config
	if _, err := toml.DecodeFile(configFile, &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	return &cfg, nil
}

// Save writes the config to disk
func Save(cfg *Config) error {
	configFile, err := ConfigPath()
	if err != nil {
		return err
	}

	if err := EnsureConfigDir(); err != nil {
		return err
	}

	f, err := os.Create(configFile)
	if err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}
	defer f.Close()

	encoder := toml.NewEncoder(f)
	if err := encoder.Encode(cfg); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// Validate checks if the config is valid
func (c *Config) Validate() error {
	if len(c.Scan.Extensions) == 0 {
		return fmt.Errorf("no subtitle extensions configured")
	}
	for _, ext := range c.Scan.Extensions {
		if !strings.HasPrefix(ext, ".") {
			return fmt.Errorf("invalid extension %q: must start with a dot", ext)
		}
	}

	if c.Scan.Workers < 0 {
		return fmt.Errorf("invalid worker count: %d", c.Scan.Workers)
	}

	for _, l := range c.Languages {
		if l.Key == "" {
			return fmt.Errorf("language entry missing key")
		}
		if l.Code3 == "" {
			return fmt.Errorf("language entry %q missing three-letter code", l.Key)
		}
		if l.Name == "" {
			return fmt.Errorf("language entry %q missing name", l.Key)
		}
	}

	return nil
}

// Table builds the effective language table: the builtin set with any
// configured custom entries merged on top
func (c *Config) Table() language.Table {
	table := language.Builtin()
	if len(c.Languages) == 0 {
		return table
	}

	custom := make(language.Table, len(c.Languages))
	for _, l := range c.Languages {
		display := l.DisplayName
		if display == "" {
			display = l.Name
		}
		custom[l.Key] = language.Entry{
			Code2:       strings.ToLower(l.Code2),
			Code3:       strings.ToLower(l.Code3),
			Name:        l.Name,
			DisplayName: display,
		}
	}
	table.Merge(custom)
	return table
}
