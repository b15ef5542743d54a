// Earlylog - Early structured-log bootstrap for server processes
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/earlylog

// Package bootstrap installs early logging on a logging.Runtime exactly once.
//
// The first successful Init call on an Initializer:
//
//  1. registers the level filter bound to the level map
//  2. registers a filter that drops the "progress" category
//  3. installs the formatter with a default action of Pass
//  4. lowers the runtime threshold to debug, leaving the filters as the
//     only gate
//
// Every later call is a no-op that reports success. Concurrent first calls
// result in exactly one installation. A failed call leaves the runtime as
// it found it and the next call tries again.
//
// Typical use at process start:
//
//	cfg, err := config.Load("")
//	...
//	if _, err := bootstrap.Configure(cfg); err != nil {
//	    logging.Err(err).Msg("early logging")
//	    os.Exit(1)
//	}
package bootstrap
