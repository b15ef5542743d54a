// Earlylog - Early structured-log bootstrap for server processes
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/earlylog

/*
Package config loads the configuration the early logging bootstrap needs:
which handler section to translate, the per-category level map, and the
settings of earlylog's own diagnostic logger.

# Configuration Sources

Sources are layered with koanf, later layers overriding earlier ones:

 1. Built-in defaults (struct provider)
 2. Optional YAML file (explicit path, EARLYLOG_CONFIG, or a default path)
 3. Environment variables

The loaded *koanf.Koanf is kept and handed to format.Translate as its
Source, so handler sections do not need a Go struct.

# File Layout

	logging:
	  handler: console
	  levels:
	    global: notice
	    sql: debug
	    progress: none
	  handlers:
	    console:
	      formatter: plaintext
	      time_format: "utc:2006-01-02 15:04:05.000"
	      plaintext:
	        format: "{time} [{level}] {message}"
	      color_esc_seqs:
	        error: '\e[1;31m'
	diagnostics:
	  level: info
	  format: console

# Environment Variables

  - LOG_HANDLER: handler section name (default: console)
  - LOG_LEVELS: JSON object of category to level, e.g. {"sql":"debug"}
  - LOG_LEVEL_<CATEGORY>: level for one category, e.g. LOG_LEVEL_SQL=debug
  - LOG_FORMATTER, LOG_TIME_FORMAT, LOG_LEVEL_FORMAT, LOG_SINGLE_LINE,
    LOG_PLAINTEXT_FORMAT, LOG_JSON_FIELD_MAP, LOG_JSON_VERBOSITY_MAP,
    LOG_USE_COLORS: override the matching key of the selected handler
  - EARLYLOG_LOG_LEVEL, EARLYLOG_LOG_FORMAT: diagnostic logger settings

Unlisted environment variables are ignored.
*/
package config
