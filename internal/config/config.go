// Package config provides configuration loading for the lvms command.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvms/annotated"
	"github.com/katalvlaran/lvms/fragment"
	"github.com/katalvlaran/lvms/internal/logging"
	"github.com/katalvlaran/lvms/mass"
	"github.com/katalvlaran/lvms/peptide"
	"github.com/katalvlaran/lvms/sites"
)

// ErrInvalidConfig wraps every Validate failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config is the complete lvms configuration.
type Config struct {
	Codec         CodecConfig          `yaml:"codec"`
	Mass          MassConfig           `yaml:"mass"`
	Fragments     FragmentsConfig      `yaml:"fragments"`
	Modifications []ModificationConfig `yaml:"modifications"`
	Log           LogConfig            `yaml:"log"`
}

// CodecConfig configures annotated sequence parsing.
type CodecConfig struct {
	// Convention is "unshifted" or "reference".
	Convention string `yaml:"convention"`
	// StrictResidues rejects letters that are not amino acid codes.
	StrictResidues bool `yaml:"strict_residues"`
}

// MassConfig configures mass comparison.
type MassConfig struct {
	Epsilon   float64 `yaml:"epsilon"`
	Tolerance string  `yaml:"tolerance"`
}

// FragmentsConfig sets fragment listing defaults.
type FragmentsConfig struct {
	// Ions is a comma separated series list such as "b,y".
	Ions   string `yaml:"ions"`
	Charge int    `yaml:"charge"`
}

// ModificationConfig declares a modification on top of the built-in set.
type ModificationConfig struct {
	Name string  `yaml:"name"`
	Mass float64 `yaml:"mass"`
	// Sites is a site expression such as "S|T|Y" or "NPep".
	Sites string `yaml:"sites"`
}

// LogConfig configures the command logger.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Codec: CodecConfig{Convention: annotated.Unshifted.String()},
		Mass: MassConfig{
			Epsilon:   mass.DefaultEpsilon,
			Tolerance: "10ppm",
		},
		Fragments: FragmentsConfig{Ions: "b,y", Charge: 1},
		Log:       LogConfig{Level: "info", Format: logging.FormatText},
	}
}

// Validate checks every section and returns the first problem wrapped in
// ErrInvalidConfig.
func (c *Config) Validate() error {
	if _, err := c.AnnotatedOptions(); err != nil {
		return fmt.Errorf("%w: codec.convention: %v", ErrInvalidConfig, err)
	}
	if c.Mass.Epsilon <= 0 {
		return fmt.Errorf("%w: mass.epsilon must be positive", ErrInvalidConfig)
	}
	if _, err := c.Tolerance(); err != nil {
		return fmt.Errorf("%w: mass.tolerance: %v", ErrInvalidConfig, err)
	}
	if ions, err := c.IonTypes(); err != nil {
		return fmt.Errorf("%w: fragments.ions: %v", ErrInvalidConfig, err)
	} else if len(ions) == 0 {
		return fmt.Errorf("%w: fragments.ions is empty", ErrInvalidConfig)
	}
	if c.Fragments.Charge == 0 {
		return fmt.Errorf("%w: fragments.charge must be non-zero", ErrInvalidConfig)
	}
	if _, err := c.ModificationSet(); err != nil {
		return fmt.Errorf("%w: modifications: %v", ErrInvalidConfig, err)
	}
	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: log.level: %v", ErrInvalidConfig, err)
	}
	if _, err := logging.ParseFormat(c.Log.Format); err != nil {
		return fmt.Errorf("%w: log.format: %v", ErrInvalidConfig, err)
	}

	return nil
}

// AnnotatedOptions translates the codec section into parser options.
func (c *Config) AnnotatedOptions() ([]annotated.Option, error) {
	conv, err := annotated.ParseConvention(c.Codec.Convention)
	if err != nil {
		return nil, err
	}
	opts := []annotated.Option{annotated.WithConvention(conv)}
	if c.Codec.StrictResidues {
		opts = append(opts, annotated.WithStrictResidues())
	}
	return opts, nil
}

// Tolerance parses the mass tolerance.
func (c *Config) Tolerance() (mass.Tolerance, error) {
	return mass.ParseTolerance(c.Mass.Tolerance)
}

// IonTypes parses the default ion series.
func (c *Config) IonTypes() ([]fragment.IonType, error) {
	return fragment.ParseIonTypes(c.Fragments.Ions)
}

// ModificationSet returns the built-in modifications extended, and
// overridden by name, with the configured ones.
func (c *Config) ModificationSet() (*peptide.ModificationSet, error) {
	set := peptide.DefaultModifications()
	for i, mc := range c.Modifications {
		if mc.Name == "" {
			return nil, fmt.Errorf("entry %d: name is required", i)
		}
		mask, err := sites.Parse(mc.Sites)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", mc.Name, err)
		}
		if mask.IsEmpty() {
			return nil, fmt.Errorf("%s: no sites", mc.Name)
		}
		set.Add(&peptide.Modification{Name: mc.Name, Mass: mc.Mass, Sites: mask})
	}

	return set, nil
}

// LoadFromFile loads configuration from a YAML file on top of the defaults.
func LoadFromFile(path string) (*Config, error) {
	layer, err := readLayer(path)
	if err != nil {
		return nil, err
	}

	config := DefaultConfig()
	config.Merge(layer)
	return config, nil
}

// readLayer decodes a file onto a zero Config so that Merge only sees the
// keys the file sets.
func readLayer(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var layer Config
	if err := yaml.Unmarshal(data, &layer); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	return &layer, nil
}

// SaveToFile writes the configuration as YAML, creating parent directories.
func (c *Config) SaveToFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Merge merges other into c. Non-zero values in other take precedence;
// modifications accumulate and later names replace earlier ones.
func (c *Config) Merge(other *Config) {
	if other == nil {
		return
	}

	// Codec
	if other.Codec.Convention != "" {
		c.Codec.Convention = other.Codec.Convention
	}
	if other.Codec.StrictResidues {
		c.Codec.StrictResidues = true
	}

	// Mass
	if other.Mass.Epsilon != 0 {
		c.Mass.Epsilon = other.Mass.Epsilon
	}
	if other.Mass.Tolerance != "" {
		c.Mass.Tolerance = other.Mass.Tolerance
	}

	// Fragments
	if other.Fragments.Ions != "" {
		c.Fragments.Ions = other.Fragments.Ions
	}
	if other.Fragments.Charge != 0 {
		c.Fragments.Charge = other.Fragments.Charge
	}

	c.Modifications = append(c.Modifications, other.Modifications...)

	// Log
	if other.Log.Level != "" {
		c.Log.Level = other.Log.Level
	}
	if other.Log.Format != "" {
		c.Log.Format = other.Log.Format
	}
}
