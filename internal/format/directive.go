// Earlylog - Early structured-log bootstrap for server processes
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/earlylog

package format

// Selector says which part of an event a Directive prints.
type Selector uint8

const (
	// SelectLiteral prints Directive.Text verbatim.
	SelectLiteral Selector = iota
	SelectTime
	SelectLevel
	SelectMessage
	SelectPID
	// SelectField prints the meta field named by Directive.Field.
	SelectField
)

var selectorNames = [...]string{
	SelectLiteral: "literal",
	SelectTime:    "time",
	SelectLevel:   "level",
	SelectMessage: "message",
	SelectPID:     "pid",
	SelectField:   "field",
}

func (s Selector) String() string {
	if int(s) < len(selectorNames) {
		return selectorNames[s]
	}
	return "unknown"
}

// MarshalText encodes the selector by name.
func (s Selector) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Directive is one element of a compiled line format: either literal text or
// a selector for part of the event.
type Directive struct {
	Selector Selector `json:"selector"`
	Text     string   `json:"text,omitempty"`
	Field    string   `json:"field,omitempty"`
}

// Literal returns a directive printing s.
func Literal(s string) Directive {
	return Directive{Selector: SelectLiteral, Text: s}
}

// Select returns a directive printing the given built-in part of an event.
func Select(s Selector) Directive {
	return Directive{Selector: s}
}

// SelectNamed returns a directive printing the named meta field.
func SelectNamed(name string) Directive {
	return Directive{Selector: SelectField, Field: name}
}

// IsMessage reports whether d prints the event message.
func (d Directive) IsMessage() bool {
	return d.Selector == SelectMessage
}
