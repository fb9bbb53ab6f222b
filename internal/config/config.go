package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/spf13/afero"
)

// ConfigFileName is the file searched for upward from the working directory.
const ConfigFileName = "calq.toml"

// Config represents the complete configuration for calq
type Config struct {
	// LogLevel controls diagnostic output on stderr ("error", "warn",
	// "info", "debug"). Defaults to "warn" so a normal session is quiet.
	LogLevel string `toml:"log_level"`

	// NoColor disables styled output entirely.
	NoColor bool `toml:"no_color"`
}

// Default returns the configuration used when no config file exists.
func Default() *Config {
	return &Config{
		LogLevel: "warn",
	}
}

// Load loads configuration from calq.toml, searched upward from startDir.
// A missing config file is not an error; defaults are returned.
func Load(fs afero.Fs, startDir string) (*Config, error) {
	cfg := Default()

	configPath, ok := findConfigFile(fs, startDir)
	if !ok {
		return cfg, nil
	}

	configData, err := afero.ReadFile(fs, configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if _, err := toml.Decode(string(configData), cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", configPath, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// findConfigFile searches for calq.toml starting from the given directory
// and walking toward the filesystem root.
func findConfigFile(fs afero.Fs, startDir string) (string, bool) {
	absDir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false
	}

	currentDir := absDir
	for {
		configPath := filepath.Join(currentDir, ConfigFileName)
		if exists, err := afero.Exists(fs, configPath); err == nil && exists {
			return configPath, true
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			// Reached root directory
			break
		}
		currentDir = parentDir
	}

	return "", false
}

// validate checks that all configured values are usable
func (c *Config) validate() error {
	var errors []string

	switch strings.ToLower(c.LogLevel) {
	case "", "error", "warn", "info", "debug":
	default:
		errors = append(errors, fmt.Sprintf("invalid log_level %q (valid: error, warn, info, debug)", c.LogLevel))
	}

	if len(errors) > 0 {
		return fmt.Errorf("invalid configuration: %s", strings.Join(errors, ", "))
	}

	return nil
}
