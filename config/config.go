/*
 * config.go, part of gosimm.
 *
 *
 * Copyright 2024 Raul Mera <rmeraa{at}academicos(dot)uta(dot)cl>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

// Package config loads the settings of the gosimm command from a YAML
// file, GOSIMM_* environment variables and defaults, in increasing order
// of precedence: defaults, file, environment. Flags bound with BindFlag win
// over all of them.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const envPrefix = "GOSIMM"

// Defaults.
const (
	DefaultWorkers       = 1
	DefaultChargeMethod  = "gasteiger"
	DefaultChargeMaxIter = 6
	DefaultDamping       = 0.5
	DefaultTolerance     = 1e-8
	DefaultLogLevel      = "info"
	DefaultLogFormat     = "console"
)

// Config holds every setting.
type Config struct {
	ForceField ForceFieldConfig `mapstructure:"forcefield"`
	Typing     TypingConfig     `mapstructure:"typing"`
	Charges    ChargesConfig    `mapstructure:"charges"`
	Log        LogConfig        `mapstructure:"log"`
}

// ForceFieldConfig selects the reference catalog. An empty Catalog means
// the GAFF2 catalog embedded in the library.
type ForceFieldConfig struct {
	Catalog        string   `mapstructure:"catalog"`
	Defines        []string `mapstructure:"defines"`
	FollowIncludes bool     `mapstructure:"follow_includes"`
}

type TypingConfig struct {
	Workers     int  `mapstructure:"workers"`
	LinkerTypes bool `mapstructure:"linker_types"`
}

// ChargesConfig sets the charge method, "none" to skip charges.
type ChargesConfig struct {
	Method    string  `mapstructure:"method"`
	MaxIter   int     `mapstructure:"max_iter"`
	Damping   float64 `mapstructure:"damping"`
	Tolerance float64 `mapstructure:"tolerance"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`  //debug, info, warn or error
	Format string `mapstructure:"format"` //json or console
}

// Loader reads a Config. The zero value is not usable, use NewLoader.
type Loader struct {
	v *viper.Viper
}

// NewLoader returns a Loader with the defaults set and environment
// variables enabled, so that, for instance, GOSIMM_TYPING_WORKERS sets
// typing.workers.
func NewLoader() *Loader {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)
	return &Loader{v: v}
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("forcefield.catalog", "")
	v.SetDefault("forcefield.defines", []string{})
	v.SetDefault("forcefield.follow_includes", true)
	v.SetDefault("typing.workers", DefaultWorkers)
	v.SetDefault("typing.linker_types", false)
	v.SetDefault("charges.method", DefaultChargeMethod)
	v.SetDefault("charges.max_iter", DefaultChargeMaxIter)
	v.SetDefault("charges.damping", DefaultDamping)
	v.SetDefault("charges.tolerance", DefaultTolerance)
	v.SetDefault("log.level", DefaultLogLevel)
	v.SetDefault("log.format", DefaultLogFormat)
}

// BindFlag makes the value of the flag, if it was set, override the key.
func (L *Loader) BindFlag(key string, f *pflag.Flag) error {
	if f == nil {
		return fmt.Errorf("config: no flag to bind to %q", key)
	}
	return L.v.BindPFlag(key, f)
}

// Load reads the file at path, if path is not empty, and returns the
// validated Config.
func (L *Loader) Load(path string) (*Config, error) {
	if path != "" {
		L.v.SetConfigFile(path)
		if err := L.v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: failed to read config file %q: %w", path, err)
		}
	}
	cfg := &Config{}
	if err := L.v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("config: failed to unmarshal configuration: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validation failed: %w", err)
	}
	return cfg, nil
}

// Load is a shortcut for NewLoader().Load(path).
func Load(path string) (*Config, error) {
	return NewLoader().Load(path)
}

// Validate returns every problem found in the configuration.
func (c *Config) Validate() error {
	var err error
	if c.Typing.Workers < 0 {
		err = multierr.Append(err, fmt.Errorf("typing.workers must not be negative, got %d", c.Typing.Workers))
	}
	if c.Charges.Method == "" {
		err = multierr.Append(err, errors.New("charges.method must not be empty"))
	}
	if c.Charges.MaxIter < 1 {
		err = multierr.Append(err, fmt.Errorf("charges.max_iter must be at least 1, got %d", c.Charges.MaxIter))
	}
	if c.Charges.Damping <= 0 || c.Charges.Damping > 1 {
		err = multierr.Append(err, fmt.Errorf("charges.damping must be in (0,1], got %g", c.Charges.Damping))
	}
	if c.Charges.Tolerance <= 0 {
		err = multierr.Append(err, fmt.Errorf("charges.tolerance must be positive, got %g", c.Charges.Tolerance))
	}
	if _, e := zapcore.ParseLevel(c.Log.Level); e != nil {
		err = multierr.Append(err, fmt.Errorf("log.level: %w", e))
	}
	if c.Log.Format != "json" && c.Log.Format != "console" {
		err = multierr.Append(err, fmt.Errorf("log.format must be json or console, got %q", c.Log.Format))
	}
	return err
}

// Logger builds a zap logger writing to stderr.
func (c LogConfig) Logger() (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(c.Level)
	if err != nil {
		level = zapcore.InfoLevel
	}
	var encCfg zapcore.EncoderConfig
	encoding := "json"
	if c.Format == "console" {
		encCfg = zap.NewDevelopmentEncoderConfig()
		encoding = "console"
	} else {
		encCfg = zap.NewProductionEncoderConfig()
	}
	encCfg.TimeKey = "ts"
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	zc := zap.Config{
		Level:            zap.NewAtomicLevelAt(level),
		Development:      c.Format == "console",
		Encoding:         encoding,
		EncoderConfig:    encCfg,
		OutputPaths:      []string{"stderr"},
		ErrorOutputPaths: []string{"stderr"},
	}
	l, err := zc.Build()
	if err != nil {
		return nil, fmt.Errorf("config: failed to build logger: %w", err)
	}
	return l, nil
}
