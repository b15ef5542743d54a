// Earlylog - Early structured-log bootstrap for server processes
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/earlylog

package format

import (
	"strings"

	"github.com/tomtom215/earlylog/internal/logging"
)

// ConsoleSink is the only sink colors apply to.
const ConsoleSink = "console"

// ColorConfig holds per-level escape sequences for console output.
type ColorConfig struct {
	Enabled bool                     `json:"enabled"`
	Escapes map[logging.Level]string `json:"escapes"`
}

// DefaultPalette returns the escape sequences used for levels that have no
// color_esc_seqs entry.
func DefaultPalette() map[logging.Level]string {
	return map[logging.Level]string{
		logging.LevelDebug:     "\x1b[90m",
		logging.LevelInfo:      "\x1b[32m",
		logging.LevelNotice:    "\x1b[36m",
		logging.LevelWarning:   "\x1b[33m",
		logging.LevelError:     "\x1b[31m",
		logging.LevelCritical:  "\x1b[1;31m",
		logging.LevelAlert:     "\x1b[1;35m",
		logging.LevelEmergency: "\x1b[1;37;41m",
	}
}

// escReplacer turns the two spellings of ESC people type in config files
// into the ESC byte.
var escReplacer = strings.NewReplacer(`\033`, "\x1b", `\e`, "\x1b")

// UnescapeESC replaces every literal `\e` and `\033` in s with ESC (0x1b).
// All other bytes, other backslash sequences included, are left alone.
func UnescapeESC(s string) string {
	return escReplacer.Replace(s)
}

// CompileColors reads use_colors and color_esc_seqs.<level> under path.
// For any sink other than the console it returns a disabled config with an
// empty map and reads nothing.
func CompileColors(src Source, path, sink string) ColorConfig {
	if sink != ConsoleSink {
		return ColorConfig{Escapes: map[logging.Level]string{}}
	}

	cfg := ColorConfig{
		Enabled: true,
		Escapes: DefaultPalette(),
	}
	if key := join(path, "use_colors"); src.Exists(key) {
		cfg.Enabled = src.Bool(key)
	}
	for _, level := range logging.Levels() {
		key := join(path, "color_esc_seqs", level.String())
		if src.Exists(key) {
			cfg.Escapes[level] = UnescapeESC(src.String(key))
		}
	}
	return cfg
}
