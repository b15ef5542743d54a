// Earlylog - Early structured-log bootstrap for server processes
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/earlylog

package format

import (
	"time"

	"github.com/tomtom215/earlylog/internal/metrics"
	"github.com/tomtom215/earlylog/internal/validation"
)

// Options is the shared option bag read from a handler section before
// dispatching on the formatter kind.
type Options struct {
	Formatter   string `koanf:"formatter" validate:"oneof=plaintext json"`
	TimeFormat  string `koanf:"time_format" validate:"required"`
	LevelFormat string `koanf:"level_format" validate:"oneof=lower upper short"`
	SingleLine  bool   `koanf:"single_line"`
	Sink        string `koanf:"sink" validate:"required"`
}

// ReadOptions reads the shared options under path, applying defaults for
// absent keys. The sink defaults to the last element of path.
func ReadOptions(src Source, path string) Options {
	opts := Options{
		Formatter:   KindPlaintext.String(),
		TimeFormat:  TimeRFC3339,
		LevelFormat: LevelLower,
		Sink:        lastElement(path),
	}
	if key := join(path, "formatter"); src.Exists(key) {
		opts.Formatter = src.String(key)
	}
	if key := join(path, "time_format"); src.Exists(key) {
		opts.TimeFormat = src.String(key)
	}
	if key := join(path, "level_format"); src.Exists(key) {
		opts.LevelFormat = src.String(key)
	}
	if key := join(path, "single_line"); src.Exists(key) {
		opts.SingleLine = src.Bool(key)
	}
	if key := join(path, "sink"); src.Exists(key) {
		opts.Sink = src.String(key)
	}
	return opts
}

// Translate compiles the handler section at path into a Config. Every
// failure is returned as a *TranslationError wrapping the cause, and no
// Config is returned with it. The caller is expected to log the cause.
func Translate(path string, src Source) (*Config, error) {
	start := time.Now()
	opts := ReadOptions(src, path)

	cfg, err := translate(path, src, opts)
	metrics.RecordTranslation(kindLabel(opts.Formatter), time.Since(start), err)
	if err != nil {
		return nil, &TranslationError{Path: path, Err: err}
	}
	return cfg, nil
}

func translate(path string, src Source, opts Options) (*Config, error) {
	kind, err := ParseKind(opts.Formatter)
	if err != nil {
		return nil, err
	}
	if verr := validation.ValidateStruct(&opts); verr != nil {
		return nil, verr
	}

	tf, err := compileTime(opts.TimeFormat)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Type:        kind,
		Time:        tf,
		LevelFormat: opts.LevelFormat,
		SingleLine:  opts.SingleLine,
	}

	switch kind {
	case KindPlaintext:
		cfg.Plaintext, err = translatePlaintext(path, src, opts.Sink)
	case KindJSON:
		cfg.JSON, err = translateJSON(path, src)
	}
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

func translatePlaintext(path string, src Source, sink string) (*Plaintext, error) {
	tmpl := DefaultTemplate
	if key := join(path, "plaintext", "format"); src.Exists(key) {
		tmpl = src.String(key)
	}
	directives, err := CompileTemplate(tmpl)
	if err != nil {
		return nil, err
	}
	prefix, line := SplitLine(directives)

	return &Plaintext{
		Prefix: prefix,
		Line:   line,
		Colors: CompileColors(src, path, sink),
	}, nil
}

func translateJSON(path string, src Source) (*JSON, error) {
	fields, err := CompileFieldMap(src.String(join(path, "json", "field_map")))
	if err != nil {
		return nil, err
	}
	verbosity, err := CompileVerbosity(src.String(join(path, "json", "verbosity_map")))
	if err != nil {
		return nil, err
	}
	return &JSON{FieldMap: fields, Verbosity: verbosity}, nil
}

func compileTime(s string) (TimeFormat, error) {
	if IsNamedTimeFormat(s) {
		return TimeFormat{Name: s, Zone: ZoneLocal}, nil
	}
	return CompileTimePattern(s)
}

func kindLabel(formatter string) string {
	if _, err := ParseKind(formatter); err != nil {
		return "unknown"
	}
	return formatter
}

func lastElement(path string) string {
	for i := len(path) - 1; i >= 0; i-- {
		if path[i] == '.' {
			return path[i+1:]
		}
	}
	return path
}
