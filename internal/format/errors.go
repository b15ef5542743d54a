// Earlylog - Early structured-log bootstrap for server processes
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/earlylog

package format

import (
	"errors"
	"fmt"
)

var (
	// ErrExcessiveFractionalDigits is returned for a fractional-second marker
	// with more than MaxFractionalDigits zeros.
	ErrExcessiveFractionalDigits = errors.New("excessive fractional second digits")

	// ErrMalformedFieldMapping is returned for a field-map entry with an empty
	// name or a wildcard rename.
	ErrMalformedFieldMapping = errors.New("malformed field mapping")

	// ErrIncompleteVerbosityCoverage is returned when a verbosity map has no
	// catch-all and does not name every level.
	ErrIncompleteVerbosityCoverage = errors.New("verbosity map does not cover every level")

	// ErrMalformedVerbosityMapping is returned for an entry that is not
	// level:N.
	ErrMalformedVerbosityMapping = errors.New("malformed verbosity mapping")

	// ErrMalformedTemplate is returned for a plaintext template with an
	// unterminated or empty placeholder.
	ErrMalformedTemplate = errors.New("malformed plaintext template")

	// ErrUnknownFormatter is returned for a formatter kind other than
	// plaintext or json.
	ErrUnknownFormatter = errors.New("unknown formatter")
)

// TranslationError is the single error Translate returns. The underlying
// compiler or validation error is available through errors.Unwrap,
// errors.Is and errors.As.
type TranslationError struct {
	// Path is the configuration path of the handler being translated.
	Path string
	// Err is the root cause.
	Err error
}

func (e *TranslationError) Error() string {
	return fmt.Sprintf("configuration_translation_failure: %s: %v", e.Path, e.Err)
}

func (e *TranslationError) Unwrap() error {
	return e.Err
}
