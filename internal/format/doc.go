// Earlylog - Early structured-log bootstrap for server processes
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/earlylog

// Package format compiles human-written formatter configuration into a
// Config that an output renderer can consume without parsing anything.
//
// Translate reads one handler section of the configuration and dispatches on
// its formatter kind:
//
//	plaintext: template -> directives -> SplitLine -> prefix/line
//	           color_esc_seqs -> CompileColors
//	json:      json.field_map -> CompileFieldMap
//	           json.verbosity_map -> CompileVerbosity
//
// Both kinds share time_format (CompileTimePattern, or a named format),
// level_format and single_line.
//
// Compilation is pure: the same input always yields the same Config. Any
// compiler failure aborts the translation and is returned as a
// *TranslationError wrapping the cause; a partial Config is never returned.
//
// Nothing here renders an event. The compiled structures describe what to
// print and in which order.
package format
