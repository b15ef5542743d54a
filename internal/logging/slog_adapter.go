// Earlylog - Early structured-log bootstrap for server processes
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/earlylog

package logging

import (
	"context"
	"log/slog"
)

// Extra slog levels so the syslog-only severities survive the round trip.
const (
	SlogLevelNotice    = slog.LevelInfo + 2
	SlogLevelCritical  = slog.LevelError + 4
	SlogLevelAlert     = slog.LevelError + 8
	SlogLevelEmergency = slog.LevelError + 12
)

// DomainAttr is the slog attribute that becomes Event.Domain. Its value may
// be a string or a []string.
const DomainAttr = "domain"

// SlogHandler implements slog.Handler on top of a Runtime, so slog records
// go through the same threshold and filters as native events.
//
//	slogger := slog.New(logging.NewSlogHandler(logging.Default()))
//	slogger.Info("connected", "domain", []string{"server", "sql"})
type SlogHandler struct {
	runtime *Runtime
	attrs   []groupedAttr
	groups  []string
}

// groupedAttr is an attribute together with the groups open when it was
// added.
type groupedAttr struct {
	groups []string
	attr   slog.Attr
}

// NewSlogHandler returns a handler feeding rt, or the default runtime when
// rt is nil.
func NewSlogHandler(rt *Runtime) *SlogHandler {
	if rt == nil {
		rt = Default()
	}
	return &SlogHandler{runtime: rt}
}

// Enabled reports whether the runtime threshold admits level.
func (h *SlogHandler) Enabled(_ context.Context, level slog.Level) bool {
	return slogToLevel(level) >= h.runtime.Threshold()
}

// Handle converts the record to an Event and emits it.
//
//nolint:gocritic // slog.Record is passed by value per slog.Handler interface
func (h *SlogHandler) Handle(ctx context.Context, record slog.Record) error {
	e := Event{
		Time:    record.Time,
		Level:   slogToLevel(record.Level),
		Message: record.Message,
	}

	for _, ga := range h.attrs {
		addAttr(&e, ga.attr, ga.groups)
	}
	record.Attrs(func(attr slog.Attr) bool {
		addAttr(&e, attr, h.groups)
		return true
	})

	h.runtime.EmitContext(ctx, e)
	return nil
}

// WithAttrs returns a new Handler with the given attributes.
func (h *SlogHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	newAttrs := make([]groupedAttr, len(h.attrs), len(h.attrs)+len(attrs))
	copy(newAttrs, h.attrs)
	for _, attr := range attrs {
		newAttrs = append(newAttrs, groupedAttr{groups: h.groups, attr: attr})
	}

	return &SlogHandler{
		runtime: h.runtime,
		attrs:   newAttrs,
		groups:  h.groups,
	}
}

// WithGroup returns a new Handler with the given group name.
func (h *SlogHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}

	newGroups := make([]string, len(h.groups)+1)
	copy(newGroups, h.groups)
	newGroups[len(h.groups)] = name

	return &SlogHandler{
		runtime: h.runtime,
		attrs:   h.attrs,
		groups:  newGroups,
	}
}

// addAttr stores attr on e. A top-level domain attribute sets e.Domain;
// everything else lands in e.Fields under its group-qualified key.
func addAttr(e *Event, attr slog.Attr, groups []string) {
	attr.Value = attr.Value.Resolve()

	if len(groups) == 0 && attr.Key == DomainAttr {
		switch v := attr.Value.Any().(type) {
		case string:
			e.Domain = []string{v}
			return
		case []string:
			e.Domain = v
			return
		}
	}

	if attr.Value.Kind() == slog.KindGroup {
		nested := append(groups[:len(groups):len(groups)], attr.Key)
		for _, ga := range attr.Value.Group() {
			addAttr(e, ga, nested)
		}
		return
	}

	key := attr.Key
	for i := len(groups) - 1; i >= 0; i-- {
		key = groups[i] + "." + key
	}
	if e.Fields == nil {
		e.Fields = make(map[string]any)
	}
	e.Fields[key] = attr.Value.Any()
}

// slogToLevel maps slog levels, including the Slog* constants above, onto
// syslog levels.
func slogToLevel(level slog.Level) Level {
	switch {
	case level < slog.LevelInfo:
		return LevelDebug
	case level < SlogLevelNotice:
		return LevelInfo
	case level < slog.LevelWarn:
		return LevelNotice
	case level < slog.LevelError:
		return LevelWarning
	case level < SlogLevelCritical:
		return LevelError
	case level < SlogLevelAlert:
		return LevelCritical
	case level < SlogLevelEmergency:
		return LevelAlert
	default:
		return LevelEmergency
	}
}

// NewSlogLogger creates an slog.Logger backed by rt.
func NewSlogLogger(rt *Runtime) *slog.Logger {
	return slog.New(NewSlogHandler(rt))
}
