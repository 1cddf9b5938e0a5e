package config

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// DefaultPath is read when no --config flag is given. It may be absent.
const DefaultPath = ".args.yaml"

// Output formats accepted by the CLI.
const (
	OutputText = "text"
	OutputJSON = "json"
	OutputYAML = "yaml"
)

// Config is the CLI configuration file.
type Config struct {
	LogLevel         string            `mapstructure:"log_level" yaml:"log_level"`
	Output           string            `mapstructure:"output" yaml:"output"`
	StrictDuplicates bool              `mapstructure:"strict_duplicates" yaml:"strict_duplicates"`
	Profiles         map[string]string `mapstructure:"profiles" yaml:"profiles"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		LogLevel: "info",
		Output:   OutputText,
		Profiles: map[string]string{},
	}
}

// Load reads a configuration file.
// A missing file at DefaultPath yields Default; a missing explicit path is an error.
func Load(path string) (Config, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultPath
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && !explicit {
			return Default(), nil
		}
		return Config{}, fmt.Errorf("failed to read config: %w", err)
	}
	return Parse(data)
}

// Parse decodes YAML configuration data on top of Default.
func Parse(data []byte) (Config, error) {
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg := Default()
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &cfg,
		ErrorUnused:      true,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return Config{}, err
	}
	if err := decoder.Decode(raw); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks enumerated fields.
func (c Config) Validate() error {
	if err := CheckOutput(c.Output); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// CheckOutput reports whether format names a supported output format.
func CheckOutput(format string) error {
	switch strings.ToLower(format) {
	case OutputText, OutputJSON, OutputYAML:
		return nil
	default:
		return fmt.Errorf("unknown output %q (want %s, %s or %s)", format, OutputText, OutputJSON, OutputYAML)
	}
}

// Profile returns the schema stored under name.
func (c Config) Profile(name string) (string, error) {
	s, ok := c.Profiles[name]
	if !ok {
		return "", fmt.Errorf("unknown profile %q (known: %s)", name, strings.Join(c.ProfileNames(), ", "))
	}
	return s, nil
}

// ProfileNames returns the profile names in ascending order.
func (c Config) ProfileNames() []string {
	names := make([]string, 0, len(c.Profiles))
	for name := range c.Profiles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
