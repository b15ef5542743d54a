// Earlylog - Early structured-log bootstrap for server processes
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/earlylog

package format

import (
	"fmt"
	"strings"

	"github.com/tomtom215/earlylog/internal/logging"
)

// Source is the configuration lookup Translate reads from. Paths are dot
// separated. *koanf.Koanf satisfies it.
type Source interface {
	Exists(path string) bool
	String(path string) string
	Bool(path string) bool
}

// Kind is the formatter kind.
type Kind uint8

const (
	KindPlaintext Kind = iota
	KindJSON
)

func (k Kind) String() string {
	if k == KindJSON {
		return "json"
	}
	return "plaintext"
}

// MarshalText encodes the kind by name.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// ParseKind parses a formatter kind name.
func ParseKind(s string) (Kind, error) {
	switch s {
	case "plaintext":
		return KindPlaintext, nil
	case "json":
		return KindJSON, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownFormatter, s)
	}
}

// Level formats.
const (
	LevelLower = "lower"
	LevelUpper = "upper"
	LevelShort = "short"
)

// Config is a compiled formatter. Exactly one of Plaintext and JSON is set,
// matching Type.
type Config struct {
	Type        Kind       `json:"type"`
	Time        TimeFormat `json:"time"`
	LevelFormat string     `json:"level_format"`
	SingleLine  bool       `json:"single_line"`

	Plaintext *Plaintext `json:"plaintext,omitempty"`
	JSON      *JSON      `json:"json,omitempty"`
}

// Plaintext is the plaintext half of a Config.
type Plaintext struct {
	// Prefix is printed before every physical line of the message.
	Prefix []Directive `json:"prefix"`
	// Line starts at the message selector.
	Line   []Directive `json:"line"`
	Colors ColorConfig `json:"colors"`
}

// JSON is the json half of a Config.
type JSON struct {
	FieldMap  FieldMap     `json:"field_map"`
	Verbosity VerbosityMap `json:"verbosity_map"`
}

// Kind returns the formatter kind name.
func (c *Config) Kind() string {
	return c.Type.String()
}

// ColorsEnabled reports whether a plaintext formatter should color output.
func (c *Config) ColorsEnabled() bool {
	return c.Plaintext != nil && c.Plaintext.Colors.Enabled
}

// FormatLevel renders l according to LevelFormat.
func (c *Config) FormatLevel(l logging.Level) string {
	switch c.LevelFormat {
	case LevelUpper:
		return strings.ToUpper(l.String())
	case LevelShort:
		return l.ShortString()
	default:
		return l.String()
	}
}

// Default returns the formatter used before any configuration is read:
// plaintext, DefaultTemplate, rfc3339 and no colors.
func Default() *Config {
	directives, err := CompileTemplate(DefaultTemplate)
	if err != nil {
		panic(fmt.Sprintf("format: default template: %v", err))
	}
	prefix, line := SplitLine(directives)

	return &Config{
		Type:        KindPlaintext,
		Time:        TimeFormat{Name: TimeRFC3339},
		LevelFormat: LevelLower,
		Plaintext: &Plaintext{
			Prefix: prefix,
			Line:   line,
			Colors: ColorConfig{Escapes: map[logging.Level]string{}},
		},
	}
}

var _ logging.Formatter = (*Config)(nil)

func join(parts ...string) string {
	nonEmpty := parts[:0:0]
	for _, p := range parts {
		if p != "" {
			nonEmpty = append(nonEmpty, p)
		}
	}
	return strings.Join(nonEmpty, ".")
}
