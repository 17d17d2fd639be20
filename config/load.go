// SPDX-License-Identifier: MIT

package config

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable: PCMATRIX_WORKERS,
// PCMATRIX_LOG_LEVEL, and so on.
const EnvPrefix = "PCMATRIX"

// Configuration keys, as used in YAML files and with viper.
const (
	KeyVersion    = "version"
	KeyWorkers    = "workers"
	KeyBufferSize = "buffer_size"
	KeyMatrices   = "matrices"
	KeyMode       = "mode"
	KeySeed       = "seed"
	KeyMaxDim     = "max_dim"
	KeyMaxValue   = "max_value"
	KeyQuiet      = "quiet"
	KeyLogLevel   = "log.level"
	KeyLogFormat  = "log.format"
)

// flagKeys maps command-line flag names to configuration keys.
var flagKeys = map[string]string{
	"workers":     KeyWorkers,
	"buffer-size": KeyBufferSize,
	"matrices":    KeyMatrices,
	"mode":        KeyMode,
	"seed":        KeySeed,
	"max-dim":     KeyMaxDim,
	"max-value":   KeyMaxValue,
	"quiet":       KeyQuiet,
	"log-level":   KeyLogLevel,
	"log-format":  KeyLogFormat,
}

// RegisterFlags defines one flag per configuration key on fs. Flag defaults
// mirror Defaults; only flags the user actually sets override other sources.
func RegisterFlags(fs *pflag.FlagSet) {
	d := Defaults()
	fs.IntP("workers", "w", d.Workers, "producer goroutines, and as many consumers")
	fs.IntP("buffer-size", "b", d.BufferSize, "bounded buffer capacity in matrices")
	fs.IntP("matrices", "n", d.Matrices, "matrices to produce (floored to a multiple of workers)")
	fs.IntP("mode", "m", d.Mode, "0 for random shapes, N for N×N matrices")
	fs.Int64("seed", d.Seed, "RNG seed; 0 picks one from the clock")
	fs.Int("max-dim", d.MaxDim, "largest random dimension in mode 0")
	fs.Int("max-value", d.MaxValue, "largest element value")
	fs.BoolP("quiet", "q", d.Quiet, "do not display products")
	fs.String("log-level", d.Log.Level, "panic, fatal, error, warn, info, debug or trace")
	fs.String("log-format", d.Log.Format, "text or json")
}

// SetDefaults registers Defaults on v. Every key must have a default so that
// AutomaticEnv can override it during Unmarshal.
func SetDefaults(v *viper.Viper) {
	d := Defaults()
	v.SetDefault(KeyVersion, d.Version)
	v.SetDefault(KeyWorkers, d.Workers)
	v.SetDefault(KeyBufferSize, d.BufferSize)
	v.SetDefault(KeyMatrices, d.Matrices)
	v.SetDefault(KeyMode, d.Mode)
	v.SetDefault(KeySeed, d.Seed)
	v.SetDefault(KeyMaxDim, d.MaxDim)
	v.SetDefault(KeyMaxValue, d.MaxValue)
	v.SetDefault(KeyQuiet, d.Quiet)
	v.SetDefault(KeyLogLevel, d.Log.Level)
	v.SetDefault(KeyLogFormat, d.Log.Format)
}

// Bind prepares v: defaults, PCMATRIX_* environment lookup and, when fs is
// non-nil, the flags created by RegisterFlags.
func Bind(v *viper.Viper, fs *pflag.FlagSet) error {
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if fs == nil {
		return nil
	}
	for name, key := range flagKeys {
		f := fs.Lookup(name)
		if f == nil {
			continue
		}
		if err := v.BindPFlag(key, f); err != nil {
			return fmt.Errorf("config: bind flag %q: %w", name, err)
		}
	}

	return nil
}

// Load reads the optional YAML file at path into v, decodes the merged
// settings and validates them. Call Bind first.
func Load(v *viper.Viper, path string) (Config, error) {
	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("%w: read %s: %w", ErrInvalidConfig, path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("%w: decode: %w", ErrInvalidConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}
