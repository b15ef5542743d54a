// Earlylog - Early structured-log bootstrap for server processes
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/earlylog

package config

import (
	"fmt"

	"github.com/knadh/koanf/v2"

	"github.com/tomtom215/earlylog/internal/levelfilter"
	"github.com/tomtom215/earlylog/internal/logging"
	"github.com/tomtom215/earlylog/internal/validation"
)

// HandlersPath is the koanf path holding the handler sections.
const HandlersPath = "logging.handlers"

// Config is the typed part of the configuration.
type Config struct {
	Logging     LoggingConfig     `koanf:"logging"`
	Diagnostics DiagnosticsConfig `koanf:"diagnostics"`

	// File is the configuration file that was read, if any.
	File string `koanf:"-"`

	k *koanf.Koanf
}

// LoggingConfig selects the handler and holds the level map.
type LoggingConfig struct {
	Handler string            `koanf:"handler" validate:"required,excludes=."`
	Levels  map[string]string `koanf:"levels" validate:"dive,loglevel"`
}

// DiagnosticsConfig configures earlylog's own logger.
type DiagnosticsConfig struct {
	Level  string `koanf:"level" validate:"oneof=trace debug info warn error fatal disabled"`
	Format string `koanf:"format" validate:"oneof=json console"`
}

func defaultConfig() *Config {
	return &Config{
		Logging: LoggingConfig{
			Handler: "console",
			Levels: map[string]string{
				levelfilter.Global: levelfilter.DefaultGlobalLevel.String(),
			},
		},
		Diagnostics: DiagnosticsConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// Validate checks the typed configuration.
func (c *Config) Validate() error {
	return validation.Validate(c)
}

// HandlerPath is the koanf path of the selected handler section.
func (c *Config) HandlerPath() string {
	return HandlersPath + "." + c.Logging.Handler
}

// LevelMap converts the configured levels into a LevelMap.
func (c *Config) LevelMap() (levelfilter.LevelMap, error) {
	m, err := levelfilter.ParseLevelMap(c.Logging.Levels)
	if err != nil {
		return nil, fmt.Errorf("logging.levels: %w", err)
	}
	return m, nil
}

// Koanf returns the merged configuration tree. It satisfies format.Source.
func (c *Config) Koanf() *koanf.Koanf {
	return c.k
}

// DiagnosticsLogging converts Diagnostics into a logging.Config.
func (c *Config) DiagnosticsLogging() logging.Config {
	cfg := logging.DefaultConfig()
	cfg.Level = c.Diagnostics.Level
	cfg.Format = c.Diagnostics.Format
	return cfg
}
