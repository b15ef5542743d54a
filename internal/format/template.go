// Earlylog - Early structured-log bootstrap for server processes
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/earlylog

package format

import (
	"fmt"
	"strings"
)

// DefaultTemplate is the plaintext line template used when none is set.
const DefaultTemplate = "{time} [{level}] {message}"

// CompileTemplate compiles a plaintext template. Placeholders are written
// {name}: time, level, message (or msg) and pid are built in, any other
// name selects that meta field. Text between placeholders is kept as one
// literal directive. A "}" outside a placeholder is literal text.
func CompileTemplate(tmpl string) ([]Directive, error) {
	var (
		out     []Directive
		literal strings.Builder
	)
	flush := func() {
		if literal.Len() > 0 {
			out = append(out, Literal(literal.String()))
			literal.Reset()
		}
	}

	for rest := tmpl; rest != ""; {
		open := strings.IndexByte(rest, '{')
		if open < 0 {
			literal.WriteString(rest)
			break
		}
		literal.WriteString(rest[:open])

		end := strings.IndexByte(rest[open:], '}')
		if end < 0 {
			return nil, fmt.Errorf("%w: unterminated placeholder at offset %d",
				ErrMalformedTemplate, len(tmpl)-len(rest)+open)
		}
		name := strings.TrimSpace(rest[open+1 : open+end])
		if name == "" || strings.ContainsRune(name, '{') {
			return nil, fmt.Errorf("%w: bad placeholder %q", ErrMalformedTemplate, rest[open:open+end+1])
		}

		flush()
		out = append(out, placeholder(name))
		rest = rest[open+end+1:]
	}
	flush()

	return out, nil
}

func placeholder(name string) Directive {
	switch name {
	case "time":
		return Select(SelectTime)
	case "level":
		return Select(SelectLevel)
	case "message", "msg":
		return Select(SelectMessage)
	case "pid":
		return Select(SelectPID)
	default:
		return SelectNamed(name)
	}
}
