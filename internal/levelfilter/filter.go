// Earlylog - Early structured-log bootstrap for server processes
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/earlylog

package levelfilter

import (
	"fmt"

	"github.com/tomtom215/earlylog/internal/logging"
)

const (
	// Global is the category every lookup falls back to.
	Global = "global"

	// SuperDomain is the domain head whose second element names a category.
	SuperDomain = "server"

	// BootstrapCategory tags events logged while the process is starting.
	BootstrapCategory = "prelaunch"

	// DefaultGlobalLevel is used when a LevelMap has no "global" entry.
	DefaultGlobalLevel = logging.LevelNotice
)

// LevelMap maps a category to its minimum level.
type LevelMap map[string]logging.Level

// DefaultLevelMap is the map used before any configuration is known: the
// bootstrap category at notice. Filters built from it fill in "global".
func DefaultLevelMap() LevelMap {
	return LevelMap{BootstrapCategory: logging.LevelNotice}
}

// ParseLevelMap converts category -> level name pairs, as read from
// configuration, into a LevelMap. A missing "global" entry is filled in with
// DefaultGlobalLevel.
func ParseLevelMap(raw map[string]string) (LevelMap, error) {
	m := make(LevelMap, len(raw)+1)
	for category, name := range raw {
		level, err := logging.ParseLevel(name)
		if err != nil {
			return nil, fmt.Errorf("level for category %q: %w", category, err)
		}
		m[category] = level
	}
	return m.withGlobal(), nil
}

// withGlobal returns a copy of m that is guaranteed to resolve "global".
func (m LevelMap) withGlobal() LevelMap {
	out := make(LevelMap, len(m)+1)
	for k, v := range m {
		out[k] = v
	}
	if _, ok := out[Global]; !ok {
		out[Global] = DefaultGlobalLevel
	}
	return out
}

// Category returns the category an event domain belongs to.
func Category(domain []string) string {
	switch {
	case len(domain) >= 2 && domain[0] == SuperDomain:
		return domain[1]
	case len(domain) >= 1:
		return domain[0]
	default:
		return Global
	}
}

// Minimum returns the minimum level for category: its own entry if present,
// otherwise the "global" entry.
func (m LevelMap) Minimum(category string) logging.Level {
	if level, ok := m[category]; ok {
		return level
	}
	if level, ok := m[Global]; ok {
		return level
	}
	return DefaultGlobalLevel
}

// Resolve returns the minimum level that applies to e.
func Resolve(m LevelMap, e *logging.Event) logging.Level {
	return m.Minimum(Category(e.Domain))
}

// Decide is the filter decision for e under m.
func Decide(m LevelMap, e *logging.Event) logging.Action {
	minimum := Resolve(m, e)
	if minimum == logging.LevelNone {
		return logging.Drop
	}
	if e.Level < minimum {
		return logging.Drop
	}
	return logging.Pass
}

// New returns a filter bound to a private copy of m. Later changes to m do
// not affect the filter.
func New(m LevelMap) logging.Filter {
	bound := m.withGlobal()
	return func(e *logging.Event) logging.Action {
		return Decide(bound, e)
	}
}
