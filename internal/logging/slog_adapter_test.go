// Earlylog - Early structured-log bootstrap for server processes
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/earlylog

package logging

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
	"time"
)

// --- Test: NewSlogHandler ---

func TestNewSlogHandler(t *testing.T) {
	t.Parallel()

	handler := NewSlogHandler(nil)
	if handler == nil {
		t.Fatal("NewSlogHandler(nil) = nil, want non-nil")
	}
	if handler.runtime != Default() {
		t.Error("NewSlogHandler(nil) should use the default runtime")
	}
	if handler.attrs != nil || handler.groups != nil {
		t.Errorf("new handler has attrs %v, groups %v", handler.attrs, handler.groups)
	}
}

// --- Test: SlogHandler.Enabled ---

func TestSlogHandler_Enabled(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		threshold Level
		slogLevel slog.Level
		want      bool
	}{
		{"debug threshold enables debug", LevelDebug, slog.LevelDebug, true},
		{"notice threshold disables info", LevelNotice, slog.LevelInfo, false},
		{"notice threshold enables notice", LevelNotice, SlogLevelNotice, true},
		{"notice threshold enables warn", LevelNotice, slog.LevelWarn, true},
		{"error threshold disables warn", LevelError, slog.LevelWarn, false},
		{"emergency threshold enables emergency", LevelEmergency, SlogLevelEmergency, true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rt := NewRuntime(&bytes.Buffer{})
			rt.threshold.Store(uint32(tt.threshold))
			if got := NewSlogHandler(rt).Enabled(context.Background(), tt.slogLevel); got != tt.want {
				t.Errorf("Enabled(%v) = %v, want %v", tt.slogLevel, got, tt.want)
			}
		})
	}
}

// --- Test: slogToLevel ---

func TestSlogToLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   slog.Level
		want Level
	}{
		{slog.LevelDebug - 4, LevelDebug},
		{slog.LevelDebug, LevelDebug},
		{slog.LevelInfo, LevelInfo},
		{SlogLevelNotice, LevelNotice},
		{slog.LevelWarn, LevelWarning},
		{slog.LevelError, LevelError},
		{SlogLevelCritical, LevelCritical},
		{SlogLevelAlert, LevelAlert},
		{SlogLevelEmergency, LevelEmergency},
		{SlogLevelEmergency + 10, LevelEmergency},
	}
	for _, tt := range tests {
		if got := slogToLevel(tt.in); got != tt.want {
			t.Errorf("slogToLevel(%v) = %s, want %s", tt.in, got, tt.want)
		}
	}
}

// --- Test: SlogHandler.Handle ---

// captureFilter records the last event the runtime saw.
func captureFilter(dst *Event) Filter {
	return func(e *Event) Action {
		*dst = *e
		return Ignore
	}
}

func TestSlogHandler_HandleDomain(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	rt := NewRuntime(&buf)
	var seen Event
	if err := rt.AddFilter("capture", captureFilter(&seen)); err != nil {
		t.Fatal(err)
	}

	logger := NewSlogLogger(rt)
	logger.Log(context.Background(), SlogLevelNotice, "pool ready",
		DomainAttr, []string{"server", "sql"},
		"conns", 4,
	)

	if seen.Message != "pool ready" || seen.Level != LevelNotice {
		t.Errorf("event = %+v", seen)
	}
	if len(seen.Domain) != 2 || seen.Domain[1] != "sql" {
		t.Errorf("Domain = %v, want [server sql]", seen.Domain)
	}
	if _, ok := seen.Fields[DomainAttr]; ok {
		t.Error("domain attribute also stored as a field")
	}
	if seen.Fields["conns"] != int64(4) {
		t.Errorf("Fields[conns] = %#v", seen.Fields["conns"])
	}
	if !strings.Contains(buf.String(), "pool ready") {
		t.Errorf("event not written: %s", buf.String())
	}
}

func TestSlogHandler_StringDomainAndGroups(t *testing.T) {
	t.Parallel()

	rt := NewRuntime(&bytes.Buffer{})
	rt.SetThreshold(LevelDebug)
	var seen Event
	if err := rt.AddFilter("capture", captureFilter(&seen)); err != nil {
		t.Fatal(err)
	}

	logger := slog.New(NewSlogHandler(rt)).
		With(DomainAttr, "http").
		WithGroup("req").
		With("method", "GET")
	logger.Info("served", slog.Group("timing", slog.Duration("total", time.Second)), DomainAttr, "ignored")

	if len(seen.Domain) != 1 || seen.Domain[0] != "http" {
		t.Errorf("Domain = %v, want [http]", seen.Domain)
	}
	if seen.Fields["req.method"] != "GET" {
		t.Errorf("Fields = %v, want req.method", seen.Fields)
	}
	if seen.Fields["req.timing.total"] != time.Second {
		t.Errorf("Fields = %v, want req.timing.total", seen.Fields)
	}
	if seen.Fields["req.domain"] != "ignored" {
		t.Errorf("grouped domain attribute should be a field: %v", seen.Fields)
	}
}

func TestSlogHandler_WithGroupEmpty(t *testing.T) {
	t.Parallel()

	h := NewSlogHandler(NewRuntime(&bytes.Buffer{}))
	if got := h.WithGroup(""); got != h {
		t.Error("WithGroup(\"\") should return the same handler")
	}
}

func TestSlogHandler_WithAttrsDoesNotAlias(t *testing.T) {
	t.Parallel()

	h := NewSlogHandler(NewRuntime(&bytes.Buffer{}))
	a := h.WithAttrs([]slog.Attr{slog.String("a", "1")}).(*SlogHandler)
	b := a.WithAttrs([]slog.Attr{slog.String("b", "2")}).(*SlogHandler)
	c := a.WithAttrs([]slog.Attr{slog.String("c", "3")}).(*SlogHandler)

	if len(a.attrs) != 1 {
		t.Errorf("parent attrs modified: %v", a.attrs)
	}
	if b.attrs[1].attr.Key != "b" || c.attrs[1].attr.Key != "c" {
		t.Errorf("children share storage: %v / %v", b.attrs, c.attrs)
	}
}

func TestSlogHandler_ContextIDs(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	rt := NewRuntime(&buf)

	ctx := ContextWithCorrelationID(context.Background(), "abcd1234")
	NewSlogLogger(rt).WarnContext(ctx, "slow query")

	if !strings.Contains(buf.String(), `"correlation_id":"abcd1234"`) {
		t.Errorf("correlation ID missing: %s", buf.String())
	}
}
