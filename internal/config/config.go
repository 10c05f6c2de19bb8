// Package config loads and validates YAML configuration for md2docx.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mdwizard/go-md2docx/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrInvalidWorkers  = errors.New("workers must be zero or positive")
)

// userConfigDir is the per-user config location under $HOME.
const userConfigDir = ".config/go-md2docx"

// Config holds all configuration for document generation.
type Config struct {
	Theme   string        `yaml:"theme"`   // "default" or "professional"
	Workers int           `yaml:"workers"` // parallel workers for batch mode (0 = auto)
	Input   InputConfig   `yaml:"input"`
	Output  OutputConfig  `yaml:"output"`
	Console ConsoleConfig `yaml:"console"`
}

// InputConfig defines input source options.
type InputConfig struct {
	DefaultDir string `yaml:"defaultDir"` // Default input directory (empty = must specify)
}

// OutputConfig defines output destination options.
type OutputConfig struct {
	DefaultDir string `yaml:"defaultDir"` // Default output directory (empty = same as source)
	Overwrite  bool   `yaml:"overwrite"`  // Overwrite existing files without prompting
}

// ConsoleConfig defines interactive console options.
type ConsoleConfig struct {
	NoBanner bool `yaml:"noBanner"` // Suppress the startup banner
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() *Config {
	return &Config{Theme: "default"}
}

// Validate checks config field values. Theme names are validated again by
// the converter; the check here produces a friendlier config-level error.
func (c *Config) Validate() error {
	switch strings.ToLower(c.Theme) {
	case "", "default", "professional":
	default:
		return fmt.Errorf("%w: unknown theme %q", ErrConfigParse, c.Theme)
	}
	if c.Workers < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidWorkers, c.Workers)
	}
	return nil
}

// LoadConfig loads a config by path or bare name. A name without a path
// separator is searched in the working directory and then in
// ~/.config/go-md2docx, with a .yaml extension appended when missing.
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	path, err := resolvePath(nameOrPath)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path) // #nosec G304 -- user-provided path
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
	}

	cfg := DefaultConfig()
	if err := yamlutil.UnmarshalStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// resolvePath turns a config name or path into a concrete file path.
func resolvePath(nameOrPath string) (string, error) {
	if strings.ContainsAny(nameOrPath, "/\\") {
		return nameOrPath, nil
	}

	name := nameOrPath
	if filepath.Ext(name) == "" {
		name += ".yaml"
	}

	candidates := []string{name}
	if home, err := os.UserHomeDir(); err == nil {
		candidates = append(candidates, filepath.Join(home, userConfigDir, name))
	}

	for _, p := range candidates {
		if _, err := os.Stat(p); err == nil {
			return p, nil
		}
	}

	return "", fmt.Errorf("%w: %s (searched: %s)", ErrConfigNotFound, nameOrPath, strings.Join(candidates, ", "))
}
