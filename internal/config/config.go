// Package config loads tablelayout CLI settings from a config file,
// TABLELAYOUT_* environment variables and defaults.
package config

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix is the prefix of every environment variable read by the CLI.
const EnvPrefix = "TABLELAYOUT"

// Config holds the entire CLI configuration.
type Config struct {
	Log     LogConfig     `mapstructure:"log" yaml:"log"`
	Solve   SolveConfig   `mapstructure:"solve" yaml:"solve"`
	Output  OutputConfig  `mapstructure:"output" yaml:"output"`
	Preview PreviewConfig `mapstructure:"preview" yaml:"preview"`
}

// LogConfig controls the CLI logger.
type LogConfig struct {
	Level      string `mapstructure:"level" yaml:"level"`
	Format     string `mapstructure:"format" yaml:"format"`
	File       string `mapstructure:"file" yaml:"file"`
	MaxSize    int    `mapstructure:"max_size" yaml:"max_size"`
	MaxBackups int    `mapstructure:"max_backups" yaml:"max_backups"`
	MaxAge     int    `mapstructure:"max_age" yaml:"max_age"`
	Compress   bool   `mapstructure:"compress" yaml:"compress"`
}

// SolveConfig holds solver defaults. Width and height of zero mean the
// target area comes from each layout document.
type SolveConfig struct {
	Width   float32 `mapstructure:"width" yaml:"width"`
	Height  float32 `mapstructure:"height" yaml:"height"`
	Strict  bool    `mapstructure:"strict" yaml:"strict"`
	Workers int     `mapstructure:"workers" yaml:"workers"`
}

// OutputConfig controls how placements are printed.
type OutputConfig struct {
	Format string `mapstructure:"format" yaml:"format"`
}

// PreviewConfig controls the ASCII and PNG previews.
type PreviewConfig struct {
	Border string `mapstructure:"border" yaml:"border"`
	Scale  int    `mapstructure:"scale" yaml:"scale"`
}

// SetDefaults registers every default value on v.
func SetDefaults(v *viper.Viper) {
	// -- Log --
	v.SetDefault("log.level", "warn")
	v.SetDefault("log.format", "console")
	v.SetDefault("log.file", "")
	v.SetDefault("log.max_size", 10)
	v.SetDefault("log.max_backups", 3)
	v.SetDefault("log.max_age", 7)
	v.SetDefault("log.compress", false)

	// -- Solve --
	v.SetDefault("solve.width", 0)
	v.SetDefault("solve.height", 0)
	v.SetDefault("solve.strict", false)
	v.SetDefault("solve.workers", 4)

	// -- Output --
	v.SetDefault("output.format", "text")

	// -- Preview --
	v.SetDefault("preview.border", "single")
	v.SetDefault("preview.scale", 1)
}

// NewViper returns a viper instance with defaults and environment binding
// configured. If cfgFile is empty, tablelayout.yaml is looked up in the
// working directory.
func NewViper(cfgFile string) *viper.Viper {
	v := viper.New()
	SetDefaults(v)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("tablelayout")
		v.SetConfigType("yaml")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads the config file (a missing default file is not an error),
// unmarshals and validates it.
func Load(v *viper.Viper) (*Config, error) {
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

// Validate checks the configuration for sane values.
func (c *Config) Validate() error {
	for _, v := range []float32{c.Solve.Width, c.Solve.Height} {
		f := float64(v)
		if f < 0 || math.IsNaN(f) || math.IsInf(f, 0) {
			return fmt.Errorf("solve size must be finite and not negative, got %gx%g", c.Solve.Width, c.Solve.Height)
		}
	}
	if c.Solve.Workers < 1 {
		return fmt.Errorf("solve.workers must be at least 1, got %d", c.Solve.Workers)
	}
	switch c.Output.Format {
	case "text", "json":
	default:
		return fmt.Errorf("output.format must be text or json, got %q", c.Output.Format)
	}
	switch c.Log.Format {
	case "console", "json":
	default:
		return fmt.Errorf("log.format must be console or json, got %q", c.Log.Format)
	}
	if c.Preview.Scale < 1 {
		return fmt.Errorf("preview.scale must be at least 1, got %d", c.Preview.Scale)
	}
	return nil
}
