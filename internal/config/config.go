// Package config provides unified configuration loading for montyhall.
// It supports loading from YAML files and environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// Config contains all montyhall configuration settings.
type Config struct {
	// Doors lists the door counts to simulate, in presentation order.
	Doors []int `json:"doors" yaml:"doors" env:"DOORS" envSeparator:","`

	// Repetitions lists the trial counts run for every door count.
	Repetitions []int `json:"repetitions" yaml:"repetitions" env:"REPETITIONS" envSeparator:","`

	// Seed fixes the random source. Zero means seed from runtime entropy.
	Seed uint64 `json:"seed,omitempty" yaml:"seed,omitempty" env:"SEED"`

	// Plot contains settings for the chart artifact.
	Plot PlotConfig `json:"plot" yaml:"plot" envPrefix:"PLOT_"`

	// Logging contains settings for operational logging.
	Logging LoggingConfig `json:"logging" yaml:"logging" envPrefix:"LOG_"`
}

// PlotConfig configures chart rendering.
type PlotConfig struct {
	// Enabled turns the chart on. When false the run reports that results
	// were not plotted.
	Enabled bool `json:"enabled" yaml:"enabled" env:"ENABLED"`

	// Dir is the directory the chart image is written to.
	Dir string `json:"dir" yaml:"dir" env:"DIR"`
}

// LoggingConfig configures montyhall's logging behavior.
type LoggingConfig struct {
	// Level sets the log verbosity: "info" (default), "debug", or "trace".
	// "trace" additionally logs individual trials of small batches.
	Level string `json:"level" yaml:"level" env:"LEVEL"`
}

// EnvPrefix prefixes every environment variable read by Load.
const EnvPrefix = "MONTYHALL_"

// Default returns a Config with the classic experiment matrix.
func Default() *Config {
	return &Config{
		Doors:       []int{3, 4, 5, 10, 20},
		Repetitions: []int{10, 100, 1000, 10000},
		Plot: PlotConfig{
			Enabled: true,
			Dir:     ".",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// DefaultPath returns ~/.montyhall/config.yaml, or "" when the home
// directory cannot be determined.
func DefaultPath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".montyhall", "config.yaml")
}

// Load loads configuration from path and environment variables.
// Order: defaults -> config file -> environment variables.
// An empty path means the default location, which may be absent; an explicit
// path must exist.
func Load(path string) (*Config, error) {
	config := Default()

	explicit := path != ""
	if !explicit {
		path = DefaultPath()
	}

	if path != "" {
		_, statErr := os.Stat(path)
		switch {
		case statErr == nil:
			fileConfig, err := LoadFromFile(path)
			if err != nil {
				return nil, fmt.Errorf("loading config file: %w", err)
			}
			config = fileConfig
		case explicit || !errors.Is(statErr, os.ErrNotExist):
			return nil, fmt.Errorf("loading config file: %w", statErr)
		}
	}

	if err := applyEnvOverrides(config); err != nil {
		return nil, err
	}

	return config, nil
}

// LoadFromFile loads configuration from a specific YAML file. Keys missing
// from the file keep their defaults.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	config := Default()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	return config, nil
}

// Validate checks the settings the simulator does not check itself.
// Door and repetition counts are left to the simulator so an invalid door
// count surfaces from the run exactly as it would from a direct call.
func (c *Config) Validate() error {
	if len(c.Doors) == 0 {
		return errors.New("doors must list at least one door count")
	}
	if len(c.Repetitions) == 0 {
		return errors.New("repetitions must list at least one repetition count")
	}

	validLevels := map[string]bool{"info": true, "debug": true, "trace": true}
	if c.Logging.Level != "" && !validLevels[c.Logging.Level] {
		return fmt.Errorf("invalid log level: %s (valid: info, debug, trace, or empty for default)", c.Logging.Level)
	}

	if c.Plot.Enabled && c.Plot.Dir == "" {
		return errors.New("plot.dir must be set when plotting is enabled")
	}

	return nil
}

// applyEnvOverrides applies MONTYHALL_* environment variables to config.
// Unset variables leave the current values alone.
func applyEnvOverrides(config *Config) error {
	if err := env.ParseWithOptions(config, env.Options{Prefix: EnvPrefix}); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Marshal renders config as YAML.
func (c *Config) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("encoding config: %w", err)
	}
	return data, nil
}
