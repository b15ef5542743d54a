// Earlylog - Early structured-log bootstrap for server processes
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/earlylog

package format

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/tomtom215/earlylog/internal/logging"
)

// VerbosityMap assigns a numeric verbosity to each level. It is either
// empty or has an entry for every level.
type VerbosityMap map[logging.Level]int

// CompileVerbosity compiles space separated level:N entries with an
// optional *:N catch-all. Empty input gives an empty map. The catch-all
// fills every level not named explicitly. Without a catch-all every level
// must be named, otherwise ErrIncompleteVerbosityCoverage is returned.
// A repeated level keeps its last value.
func CompileVerbosity(s string) (VerbosityMap, error) {
	entries := strings.Fields(s)
	out := make(VerbosityMap, len(logging.Levels()))
	if len(entries) == 0 {
		return out, nil
	}

	var (
		fallback    int
		hasFallback bool
	)
	for _, entry := range entries {
		name, num, ok := strings.Cut(entry, ":")
		if !ok {
			return nil, fmt.Errorf("%w: %q is not level:N", ErrMalformedVerbosityMapping, entry)
		}
		n, err := strconv.Atoi(num)
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %w", ErrMalformedVerbosityMapping, entry, err)
		}

		if name == Wildcard {
			fallback, hasFallback = n, true
			continue
		}
		level, err := logging.ParseLevel(name)
		if err != nil || !level.Valid() {
			return nil, fmt.Errorf("%w: %q: unknown level %q", ErrMalformedVerbosityMapping, entry, name)
		}
		out[level] = n
	}

	var missing []string
	for _, level := range logging.Levels() {
		if _, ok := out[level]; ok {
			continue
		}
		if hasFallback {
			out[level] = fallback
			continue
		}
		missing = append(missing, level.String())
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: missing %s and no *:N entry",
			ErrIncompleteVerbosityCoverage, strings.Join(missing, ", "))
	}

	return out, nil
}
