// Package config holds the explicit defaults record for batch generation
// and the externally configurable pieces of the payload catalog: the
// reserved-name ("dunder") keys of the object model under attack and the
// invalid byte sequence used by the broken-utf8 payload.
package config

import (
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	apperrors "github.com/JonasFriedli/DestructiveJSON/internal/errors"
)

// Config represents the complete configuration for djson
type Config struct {
	Defaults  Defaults        `yaml:"defaults"`
	Dunder    DunderCatalog   `yaml:"dunder"`
	Malformed MalformedConfig `yaml:"malformed"`
	Output    OutputConfig    `yaml:"output"`
}

// Defaults is the single record of default parameters used by the batch
// ("all") operation. Every shape's default lives here rather than being
// re-declared per shape.
type Defaults struct {
	Depth         int    `yaml:"depth"`
	ManyKeys      int    `yaml:"many_keys"`
	KeyPrefix     string `yaml:"key_prefix"`
	LongKey       int    `yaml:"long_key"`
	ArrayLength   int    `yaml:"array_length"`
	Duplicates    int    `yaml:"duplicates"`
	DuplicateKey  string `yaml:"duplicate_key"`
	DunderMode    string `yaml:"dunder_mode"`
	MalformedMode string `yaml:"malformed_mode"`
	MixedKeys     int    `yaml:"mixed_keys"`
	MixedLongKey  int    `yaml:"mixed_long_key"`
}

// DunderCatalog names the reserved/magic attributes of the host object
// model targeted by the key-injection payloads. The defaults are the
// CPython names, but nothing downstream assumes that runtime.
type DunderCatalog struct {
	Class string `yaml:"class"`
	Dict  string `yaml:"dict"`
	Init  string `yaml:"init"`
}

// MalformedConfig controls the malformed-document catalog
type MalformedConfig struct {
	// InvalidUTF8 is the hex-encoded byte sequence embedded by the
	// broken-utf8 mode. Golden files depend on the "ffff" default.
	InvalidUTF8 string `yaml:"invalid_utf8"`
}

// OutputConfig controls how payloads are written
type OutputConfig struct {
	Pretty bool   `yaml:"pretty"`
	Outdir string `yaml:"outdir"`
}

// NewConfig creates a new Config with default values
func NewConfig() *Config {
	return &Config{
		Defaults: Defaults{
			Depth:         200,
			ManyKeys:      20000,
			KeyPrefix:     "k",
			LongKey:       2000,
			ArrayLength:   100000,
			Duplicates:    5,
			DuplicateKey:  "dup",
			DunderMode:    "all",
			MalformedMode: "unclosed",
			MixedKeys:     20000,
			MixedLongKey:  2000,
		},
		Dunder: DunderCatalog{
			Class: "__class__",
			Dict:  "__dict__",
			Init:  "__init__",
		},
		Malformed: MalformedConfig{
			InvalidUTF8: "ffff",
		},
		Output: OutputConfig{
			Pretty: false,
			Outdir: "payloads",
		},
	}
}

// LoadConfig loads configuration from a YAML file
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, apperrors.NewConfigError(fmt.Sprintf("failed to read config file '%s'", path), err)
	}

	// Start with defaults so a partial file only overrides what it names
	cfg := NewConfig()

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, apperrors.NewConfigError(fmt.Sprintf("failed to parse config file '%s'", path), err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks the config for values the generators would reject
func (c *Config) Validate() error {
	if _, err := c.InvalidUTF8Bytes(); err != nil {
		return err
	}
	if c.Dunder.Class == "" || c.Dunder.Dict == "" || c.Dunder.Init == "" {
		return apperrors.NewConfigError("dunder catalog entries must not be empty", apperrors.ErrInvalidConfig)
	}
	return nil
}

// InvalidUTF8Bytes decodes the hex-encoded invalid byte sequence
func (c *Config) InvalidUTF8Bytes() ([]byte, error) {
	b, err := hex.DecodeString(c.Malformed.InvalidUTF8)
	if err != nil {
		return nil, apperrors.NewConfigError(
			fmt.Sprintf("malformed.invalid_utf8 is not valid hex: '%s'", c.Malformed.InvalidUTF8), err)
	}
	if len(b) == 0 {
		return nil, apperrors.NewConfigError("malformed.invalid_utf8 must not be empty", apperrors.ErrInvalidConfig)
	}
	return b, nil
}

// FindConfigFile searches for a config file in current directory and parents
func FindConfigFile() string {
	configNames := []string{".djson.yml", ".djson.yaml", "djson.yml", "djson.yaml"}

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
