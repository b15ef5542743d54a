// Earlylog - Early structured-log bootstrap for server processes
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/earlylog

// Package validation validates configuration option bags using
// go-playground/validator v10.
//
// A single validator instance is shared by the whole process; it caches
// struct metadata and is safe for concurrent use. Field names in errors are
// taken from the `koanf` struct tag, so messages name the configuration key
// the user actually wrote:
//
//	type options struct {
//	    Formatter string `koanf:"formatter" validate:"oneof=plaintext json"`
//	    Minimum   string `koanf:"minimum"   validate:"omitempty,loglevel"`
//	}
//
//	if err := validation.ValidateStruct(&opts); err != nil {
//	    return fmt.Errorf("handler %s: %w", path, err)
//	}
//
// Custom tags:
//   - loglevel: a level name accepted by logging.ParseLevel, including "none"
package validation
