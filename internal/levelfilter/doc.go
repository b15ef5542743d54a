// Earlylog - Early structured-log bootstrap for server processes
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/earlylog

// Package levelfilter decides per event whether its level is high enough for
// the category it belongs to.
//
// The category comes from the event domain:
//
//	["server", "sql", ...]  -> "sql"      (sub-category of the server super-domain)
//	["http", ...]           -> "http"     (first element)
//	[] or nil               -> "global"
//
// The minimum level for the category is looked up in a LevelMap, falling back
// to the "global" entry exactly once. A minimum of LevelNone drops everything.
package levelfilter
