package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/mcncl/jsontree/internal/errors"
	"github.com/mcncl/jsontree/internal/parser"
)

// Config represents the complete configuration for the jsontree CLI
type Config struct {
	Parser ParserConfig `yaml:"parser"`
	Output OutputConfig `yaml:"output"`
	Dev    DevConfig    `yaml:"dev"`
}

// ParserConfig controls parsing limits
type ParserConfig struct {
	MaxDepth int `yaml:"max_depth"`
}

// OutputConfig controls how the parsed tree is rendered back out
type OutputConfig struct {
	// KeyCase rewrites object keys before serialization: "none", "camel",
	// "snake" or "kebab".
	KeyCase string `yaml:"key_case"`
	// CheckOnly validates the input without emitting the document.
	CheckOnly bool `yaml:"check_only"`
}

// DevConfig contains development/debug options
type DevConfig struct {
	Debug bool `yaml:"debug"`
}

// NewConfig creates a new Config with default values
func NewConfig() *Config {
	return &Config{
		Parser: ParserConfig{
			MaxDepth: parser.DefaultMaxDepth,
		},
		Output: OutputConfig{
			KeyCase:   "none",
			CheckOnly: false,
		},
		Dev: DevConfig{
			Debug: false,
		},
	}
}

// Validate checks that the configuration values are usable
func (c *Config) Validate() error {
	switch c.Output.KeyCase {
	case "", "none", "camel", "snake", "kebab":
	default:
		return errors.NewInputError(fmt.Sprintf("invalid key_case '%s': expected none, camel, snake or kebab", c.Output.KeyCase), nil)
	}
	if c.Parser.MaxDepth < 0 {
		return errors.NewInputError("parser.max_depth must not be negative", nil)
	}
	return nil
}

// LoadConfig loads configuration from a YAML file
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Start with defaults
	cfg := NewConfig()

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// FindConfigFile searches for a config file in current directory and parents
func FindConfigFile() string {
	configNames := []string{".jsontree.yml", ".jsontree.yaml", "jsontree.yml", "jsontree.yaml"}

	currentDir, err := os.Getwd()
	if err != nil {
		return ""
	}

	// Search up the directory tree
	for {
		for _, name := range configNames {
			configPath := filepath.Join(currentDir, name)
			if _, err := os.Stat(configPath); err == nil {
				return configPath
			}
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			// Reached root directory
			break
		}
		currentDir = parentDir
	}

	return ""
}
