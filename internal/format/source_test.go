// Earlylog - Early structured-log bootstrap for server processes
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/earlylog

package format

import "fmt"

// mapSource is a flat Source for tests.
type mapSource map[string]any

func (m mapSource) Exists(path string) bool {
	_, ok := m[path]
	return ok
}

func (m mapSource) String(path string) string {
	v, ok := m[path]
	if !ok {
		return ""
	}
	return fmt.Sprint(v)
}

func (m mapSource) Bool(path string) bool {
	b, _ := m[path].(bool)
	return b
}
