// Earlylog - Early structured-log bootstrap for server processes
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/earlylog

package bootstrap

import (
	"errors"

	"github.com/tomtom215/earlylog/internal/config"
	"github.com/tomtom215/earlylog/internal/format"
	"github.com/tomtom215/earlylog/internal/logging"
)

// LoadFormatter translates the handler section at path. On failure the root
// cause is logged before the translation error is returned.
func LoadFormatter(src format.Source, path string) (*format.Config, error) {
	cfg, err := format.Translate(path, src)
	if err != nil {
		cause := err
		if unwrapped := errors.Unwrap(err); unwrapped != nil {
			cause = unwrapped
		}
		logging.Error().
			Err(cause).
			Str("path", path).
			Msg("formatter translation failed")
		return nil, err
	}
	return cfg, nil
}

// OptionsFromConfig builds Init options from loaded configuration.
func OptionsFromConfig(cfg *config.Config) (Options, error) {
	levels, err := cfg.LevelMap()
	if err != nil {
		return Options{}, err
	}
	formatter, err := LoadFormatter(cfg.Koanf(), cfg.HandlerPath())
	if err != nil {
		return Options{}, err
	}
	return Options{Levels: levels, Formatter: formatter}, nil
}

// Configure runs the process-wide Initializer with options from cfg.
func Configure(cfg *config.Config) (bool, error) {
	opts, err := OptionsFromConfig(cfg)
	if err != nil {
		return false, err
	}
	return Init(opts)
}
