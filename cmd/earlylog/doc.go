// Earlylog - Early structured-log bootstrap for server processes
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/earlylog

/*
Command earlylog checks and exercises an early logging configuration.

# Commands

	earlylog check [--config FILE] [--handler NAME]

Loads the configuration, translates the selected handler section, installs
early logging and prints the compiled formatter and level map as JSON. A
translation failure exits non-zero after logging the root cause.

	earlylog emit [--level LEVEL] [--domain server,sql] [--field k=v] MESSAGE...

Installs early logging the same way and pushes one event through the
runtime, reporting on stderr whether it was written or dropped.

# Configuration

Configuration is loaded via koanf with layered sources (highest priority
wins): environment variables, the YAML file given by --config or
EARLYLOG_CONFIG, built-in defaults. See package internal/config for keys.

# Example Usage

	export LOG_LEVEL_SQL=debug
	export LOG_FORMATTER=json
	export LOG_JSON_FIELD_MAP="time:ts level message:msg *:-"
	earlylog check
	earlylog emit --level debug --domain server,sql "connection pool ready"
*/
package main
