// SPDX-License-Identifier: MIT

// Package config holds the pcmatrix run configuration: its defaults, how it
// is loaded from file, environment and flags, how it is validated, and the
// logger it implies.
//
// Precedence, lowest to highest: Defaults, the YAML file given to Load,
// PCMATRIX_* environment variables, command-line flags, and finally values
// the caller sets on the viper instance (the CLI's positional arguments).
package config

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"golang.org/x/mod/semver"

	"github.com/katalvlaran/pcmatrix/matrix"
	"github.com/katalvlaran/pcmatrix/prodcons"
)

// SchemaVersion is the configuration version written by Defaults.
// Files must declare the same major version.
const SchemaVersion = "v1.0.0"

// Log formats accepted by NewLogger.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// LogConfig selects the logger level and output format.
type LogConfig struct {
	Level  string `mapstructure:"level" yaml:"level"`
	Format string `mapstructure:"format" yaml:"format"`
}

// Config is the full run configuration.
type Config struct {
	Version    string    `mapstructure:"version" yaml:"version"`
	Workers    int       `mapstructure:"workers" yaml:"workers"`
	BufferSize int       `mapstructure:"buffer_size" yaml:"buffer_size"`
	Matrices   int       `mapstructure:"matrices" yaml:"matrices"`
	Mode       int       `mapstructure:"mode" yaml:"mode"`
	Seed       int64     `mapstructure:"seed" yaml:"seed"` // 0: pick one at startup
	MaxDim     int       `mapstructure:"max_dim" yaml:"max_dim"`
	MaxValue   int       `mapstructure:"max_value" yaml:"max_value"`
	Quiet      bool      `mapstructure:"quiet" yaml:"quiet"` // suppress matrix display
	Log        LogConfig `mapstructure:"log" yaml:"log"`
}

// Defaults returns the configuration used when nothing overrides it.
func Defaults() Config {
	return Config{
		Version:    SchemaVersion,
		Workers:    1,
		BufferSize: 200,
		Matrices:   1200,
		Mode:       matrix.ModeRandom,
		MaxDim:     matrix.DefaultMaxDim,
		MaxValue:   matrix.DefaultMaxValue,
		Log: LogConfig{
			Level:  logrus.InfoLevel.String(),
			Format: FormatText,
		},
	}
}

// Validate checks every field and returns the first problem found.
func (c Config) Validate() error {
	if !semver.IsValid(c.Version) {
		return invalidf("version %q is not a semantic version", c.Version)
	}
	if got, want := semver.Major(c.Version), semver.Major(SchemaVersion); got != want {
		return fmt.Errorf("%w: %q, want major %s", ErrUnsupportedVersion, c.Version, want)
	}

	switch {
	case c.Workers < 1:
		return invalidf("workers=%d, need >= 1", c.Workers)
	case c.BufferSize < 1:
		return invalidf("buffer_size=%d, need >= 1", c.BufferSize)
	case c.Matrices < 0:
		return invalidf("matrices=%d, need >= 0", c.Matrices)
	case c.Mode < 0:
		return invalidf("mode=%d, need >= 0", c.Mode)
	case c.MaxDim < 1:
		return invalidf("max_dim=%d, need >= 1", c.MaxDim)
	case c.MaxValue < 1:
		return invalidf("max_value=%d, need >= 1", c.MaxValue)
	}

	if _, err := logrus.ParseLevel(c.Log.Level); err != nil {
		return invalidf("log.level: %v", err)
	}
	if c.Log.Format != FormatText && c.Log.Format != FormatJSON {
		return invalidf("log.format %q, want %q or %q", c.Log.Format, FormatText, FormatJSON)
	}

	return nil
}

// Params returns the engine parameters carried by c.
func (c Config) Params() prodcons.Params {
	return prodcons.Params{
		Workers:    c.Workers,
		BufferSize: c.BufferSize,
		Matrices:   c.Matrices,
		Mode:       c.Mode,
	}
}

// GeneratorOptions returns the matrix.Generator options carried by c.
// c must be valid: the option constructors panic on out-of-range bounds.
func (c Config) GeneratorOptions() []matrix.Option {
	return []matrix.Option{
		matrix.WithSeed(c.Seed),
		matrix.WithMaxDim(c.MaxDim),
		matrix.WithMaxValue(c.MaxValue),
	}
}
