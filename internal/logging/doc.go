// Earlylog - Early structured-log bootstrap for server processes
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/earlylog

// Package logging is the logging runtime that early log handling plugs into.
//
// It has two halves:
//
//   - A Runtime that carries log events ({level, message, domain, fields})
//     through a global severity threshold and a chain of named filters before
//     handing them to a zerolog sink. Filters are registered with AddFilter and
//     the handler (default filter action plus compiled formatter) is installed
//     with SetHandlerConfig.
//   - A zerolog-based diagnostic logger the project uses for its own messages
//     (Info(), Error(), ...), configured with Init.
//
// # Levels
//
// Levels follow syslog ordering:
//
//	debug < info < notice < warning < error < critical < alert < emergency
//
// LevelNone is a sentinel that only makes sense as a minimum level: a category
// mapped to it drops everything.
//
// # Filters
//
// A Filter inspects an event and answers Pass, Drop or Ignore. Filters run on
// the emitting goroutine for every event, so they must not block or mutate the
// event. The filter chain is kept as an immutable snapshot behind an atomic
// pointer; Emit never takes a lock.
//
//	rt := logging.NewRuntime(os.Stderr)
//	_ = rt.AddFilter("no_progress", func(e *logging.Event) logging.Action {
//	    if len(e.Domain) > 0 && e.Domain[0] == "progress" {
//	        return logging.Drop
//	    }
//	    return logging.Ignore
//	})
//	rt.Emit(logging.Event{Level: logging.LevelInfo, Message: "listening", Domain: []string{"server", "http"}})
//
// # slog
//
// SlogHandler feeds log/slog records into a Runtime so libraries that only
// speak slog go through the same filters. The "domain" attribute becomes the
// event domain.
package logging
