// Earlylog - Early structured-log bootstrap for server processes
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/earlylog

package format

// SplitLine splits a compiled line at the first message selector. Everything
// before it is the prefix, which a renderer repeats on each physical line of
// a multi-line message; the message and everything after it is the line.
// Without a message selector the prefix is empty and the whole input is the
// line.
func SplitLine(directives []Directive) (prefix, line []Directive) {
	for i, d := range directives {
		if d.IsMessage() {
			prefix = append([]Directive{}, directives[:i]...)
			line = append([]Directive{}, directives[i:]...)
			return prefix, line
		}
	}
	return []Directive{}, append([]Directive{}, directives...)
}
