// SPDX-License-Identifier: EPL-2.0

package config

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"

	"github.com/ik5/ddalog/formats/dda"
	"github.com/ik5/ddalog/telemetry"
)

// EnvPrefix namespaces every environment variable.
const EnvPrefix = "DDALOG"

// FileEnv names the variable holding the optional YAML file path.
const FileEnv = EnvPrefix + "_CONFIG"

var (
	ErrNoInput       = errors.New("no input file")
	ErrUnknownFormat = errors.New("unknown output format")
	ErrInvalidRate   = errors.New("rate must be positive")
)

// Formats lists the accepted output formats.
var Formats = []string{"csv", "xlsx", "wav", "aiff"}

// Config represents the complete command configuration
type Config struct {
	Input    string        `yaml:"input" split_words:"true"`
	Output   string        `yaml:"output" split_words:"true"`
	Format   string        `yaml:"format" split_words:"true"`
	Fields   []string      `yaml:"fields" split_words:"true"`
	Rate     int           `yaml:"rate" split_words:"true"`
	BitDepth int           `yaml:"bit_depth" split_words:"true"`
	Offset   int64         `yaml:"offset" split_words:"true"`
	Sheet    string        `yaml:"sheet" split_words:"true"`
	Logging  LoggingConfig `yaml:"logging" split_words:"true"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level    string `yaml:"level" split_words:"true"`
	Format   string `yaml:"format" split_words:"true"`
	Output   string `yaml:"output" split_words:"true"`
	FilePath string `yaml:"file_path" split_words:"true"`
}

// Default returns default configuration
func Default() *Config {
	return &Config{
		Format:   "csv",
		Fields:   []string{telemetry.EngineSpeed.String()},
		Rate:     dda.SampleRate,
		BitDepth: 16,
		Offset:   dda.DefaultOffset,
		Logging: LoggingConfig{
			Level:    "info",
			Format:   "text",
			Output:   "console",
			FilePath: "ddaconv.log",
		},
	}
}

// Load starts from Default, overlays the file named by DDALOG_CONFIG when
// set, then the environment. It does not validate.
func Load() (*Config, error) {
	cfg := Default()

	if path := os.Getenv(FileEnv); path != "" {
		if err := cfg.loadFile(path); err != nil {
			return nil, fmt.Errorf("failed to load config from file: %w", err)
		}
	}

	// no default tags, so only variables that are set override
	if err := envconfig.Process(EnvPrefix, cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from env: %w", err)
	}

	return cfg, nil
}

// loadFile overlays the YAML file at path. Keys missing from the file keep
// their current value.
func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	return yaml.Unmarshal(data, c)
}

// Validate checks the settings that the converter depends on and
// normalizes the format name.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Input) == "" {
		return ErrNoInput
	}

	c.Format = strings.ToLower(strings.TrimPrefix(c.Format, "."))
	if !slices.Contains(Formats, c.Format) {
		return fmt.Errorf("%w %q, want one of %s", ErrUnknownFormat, c.Format, strings.Join(Formats, ", "))
	}

	if c.Offset < 0 {
		return fmt.Errorf("%w: offset %d", dda.ErrSeekOutOfRange, c.Offset)
	}

	if c.IsPCM() {
		if c.Rate <= 0 {
			return fmt.Errorf("%w: %d", ErrInvalidRate, c.Rate)
		}
		if _, err := c.ParsedFields(); err != nil {
			return err
		}
	}

	return nil
}

// IsPCM reports whether the format exports channels as audio.
func (c *Config) IsPCM() bool {
	return c.Format == "wav" || c.Format == "aiff"
}

// ParsedFields resolves Fields to telemetry fields.
func (c *Config) ParsedFields() ([]telemetry.Field, error) {
	return telemetry.ParseFields(strings.Join(c.Fields, ","))
}
