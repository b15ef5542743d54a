// Earlylog - Early structured-log bootstrap for server processes
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/earlylog

package logging

import (
	"errors"
	"fmt"
	"strings"
)

// Level is a syslog-style severity. Lower values are less severe.
type Level uint8

const (
	LevelDebug Level = iota
	LevelInfo
	LevelNotice
	LevelWarning
	LevelError
	LevelCritical
	LevelAlert
	LevelEmergency

	// LevelNone is only valid as a minimum level. Nothing is at or above it.
	LevelNone
)

// ErrUnknownLevel is returned by ParseLevel for names it does not recognize.
var ErrUnknownLevel = errors.New("unknown log level")

var levelNames = [...]string{
	LevelDebug:     "debug",
	LevelInfo:      "info",
	LevelNotice:    "notice",
	LevelWarning:   "warning",
	LevelError:     "error",
	LevelCritical:  "critical",
	LevelAlert:     "alert",
	LevelEmergency: "emergency",
	LevelNone:      "none",
}

var levelShortNames = [...]string{
	LevelDebug:     "DBG",
	LevelInfo:      "INF",
	LevelNotice:    "NOT",
	LevelWarning:   "WRN",
	LevelError:     "ERR",
	LevelCritical:  "CRT",
	LevelAlert:     "ALR",
	LevelEmergency: "EMG",
	LevelNone:      "---",
}

// String returns the lowercase level name.
func (l Level) String() string {
	if int(l) < len(levelNames) {
		return levelNames[l]
	}
	return "unknown"
}

// ShortString returns a three letter upper case abbreviation.
func (l Level) ShortString() string {
	if int(l) < len(levelShortNames) {
		return levelShortNames[l]
	}
	return "???"
}

// Valid reports whether l is one of the eight event levels.
func (l Level) Valid() bool {
	return l <= LevelEmergency
}

// Levels returns the eight event levels in ascending order.
func Levels() []Level {
	return []Level{
		LevelDebug,
		LevelInfo,
		LevelNotice,
		LevelWarning,
		LevelError,
		LevelCritical,
		LevelAlert,
		LevelEmergency,
	}
}

// ParseLevel parses a level name. It accepts the canonical names, "none",
// and the common abbreviations warn, crit and emerg.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LevelDebug, nil
	case "info":
		return LevelInfo, nil
	case "notice":
		return LevelNotice, nil
	case "warning", "warn":
		return LevelWarning, nil
	case "error":
		return LevelError, nil
	case "critical", "crit":
		return LevelCritical, nil
	case "alert":
		return LevelAlert, nil
	case "emergency", "emerg":
		return LevelEmergency, nil
	case "none":
		return LevelNone, nil
	default:
		return LevelNone, fmt.Errorf("%w: %q", ErrUnknownLevel, s)
	}
}

// MarshalText encodes the level by name, so maps keyed by Level serialize
// as {"debug": ...} rather than by number.
func (l Level) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}

// UnmarshalText is the inverse of MarshalText.
func (l *Level) UnmarshalText(text []byte) error {
	parsed, err := ParseLevel(string(text))
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}
