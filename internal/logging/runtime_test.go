// Earlylog - Early structured-log bootstrap for server processes
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/earlylog

package logging

import (
	"bytes"
	"context"
	"errors"
	"reflect"
	"strings"
	"sync"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/tomtom215/earlylog/internal/metrics"
)

func constFilter(a Action) Filter {
	return func(*Event) Action { return a }
}

type kindFormatter string

func (k kindFormatter) Kind() string { return string(k) }

func TestRuntime_Defaults(t *testing.T) {
	t.Parallel()

	rt := NewRuntime(&bytes.Buffer{})
	if rt.Threshold() != LevelNotice {
		t.Errorf("Threshold() = %s, want notice", rt.Threshold())
	}
	if len(rt.Filters()) != 0 {
		t.Errorf("Filters() = %v, want none", rt.Filters())
	}
	if hc := rt.HandlerConfig(); hc.DefaultAction != Pass || hc.Formatter != nil {
		t.Errorf("HandlerConfig() = %+v", hc)
	}
}

func TestRuntime_AddRemoveFilter(t *testing.T) {
	t.Parallel()

	rt := NewRuntime(&bytes.Buffer{})
	if err := rt.AddFilter("a", constFilter(Ignore)); err != nil {
		t.Fatalf("AddFilter(a) error = %v", err)
	}
	if err := rt.AddFilter("b", constFilter(Ignore)); err != nil {
		t.Fatalf("AddFilter(b) error = %v", err)
	}
	if err := rt.AddFilter("a", constFilter(Drop)); !errors.Is(err, ErrDuplicateFilter) {
		t.Errorf("AddFilter(a) again error = %v, want ErrDuplicateFilter", err)
	}
	if err := rt.AddFilter("", constFilter(Drop)); err == nil {
		t.Error("AddFilter with empty name succeeded")
	}
	if err := rt.AddFilter("nil", nil); err == nil {
		t.Error("AddFilter with nil filter succeeded")
	}

	if got := rt.Filters(); !reflect.DeepEqual(got, []string{"a", "b"}) {
		t.Errorf("Filters() = %v, want [a b]", got)
	}
	if !rt.RemoveFilter("a") {
		t.Error("RemoveFilter(a) = false")
	}
	if rt.RemoveFilter("a") {
		t.Error("RemoveFilter(a) twice = true")
	}
	if got := rt.Filters(); !reflect.DeepEqual(got, []string{"b"}) {
		t.Errorf("Filters() = %v, want [b]", got)
	}
}

func TestRuntime_Decide(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		filters       []Action
		defaultAction Action
		level         Level
		want          Action
		wantBy        string
	}{
		{"below threshold", nil, Pass, LevelInfo, Drop, "threshold"},
		{"no filters uses default pass", nil, Pass, LevelNotice, Pass, ""},
		{"no filters uses default drop", nil, Drop, LevelNotice, Drop, ""},
		{"all ignore uses default", []Action{Ignore, Ignore}, Drop, LevelError, Drop, ""},
		{"pass beats default drop", []Action{Ignore, Pass}, Drop, LevelError, Pass, ""},
		{"drop wins over pass", []Action{Pass, Drop}, Pass, LevelError, Drop, "f1"},
		{"first drop named", []Action{Drop, Drop}, Pass, LevelError, Drop, "f0"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rt := NewRuntime(&bytes.Buffer{})
			for i, a := range tt.filters {
				if err := rt.AddFilter("f"+string(rune('0'+i)), constFilter(a)); err != nil {
					t.Fatal(err)
				}
			}
			rt.SetHandlerConfig(HandlerConfig{DefaultAction: tt.defaultAction})

			got, by := rt.Decide(&Event{Level: tt.level})
			if got != tt.want || by != tt.wantBy {
				t.Errorf("Decide() = %s, %q; want %s, %q", got, by, tt.want, tt.wantBy)
			}
		})
	}
}

func TestRuntime_EmitJSON(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	rt := NewRuntime(&buf)

	written := rt.Emit(Event{
		Level:   LevelWarning,
		Message: "disk almost full",
		Domain:  []string{"server", "storage"},
		Fields:  map[string]any{"free_mb": 12, "token": "abcd1234efgh5678"},
	})
	if !written {
		t.Fatal("Emit() = false, want true")
	}

	out := buf.String()
	for _, want := range []string{
		`"level":"warning"`,
		`"message":"disk almost full"`,
		`"domain":["server","storage"]`,
		`"free_mb":12`,
		`"token":"abcd...5678"`,
		`"time":`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %s: %s", want, out)
		}
	}
}

func TestRuntime_EmitPlaintext(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	rt := NewRuntime(&buf)
	rt.SetHandlerConfig(HandlerConfig{Formatter: kindFormatter("plaintext")})

	rt.Emit(Event{Level: LevelError, Message: "plain message"})

	out := buf.String()
	if !strings.Contains(out, "plain message") {
		t.Errorf("message missing: %s", out)
	}
	if strings.Contains(out, `"message"`) {
		t.Errorf("expected console output, got JSON: %s", out)
	}
	if strings.Contains(out, "\x1b[") {
		t.Errorf("colors written for a formatter without color support: %q", out)
	}
}

func TestRuntime_EmitDroppedMetrics(t *testing.T) {
	counter := metrics.EventsDropped.WithLabelValues("runtime_test_drop")
	before := testutil.ToFloat64(counter)

	var buf bytes.Buffer
	rt := NewRuntime(&buf)
	rt.SetThreshold(LevelDebug)
	if err := rt.AddFilter("runtime_test_drop", constFilter(Drop)); err != nil {
		t.Fatal(err)
	}

	if rt.Emit(Event{Level: LevelEmergency, Message: "gone"}) {
		t.Error("Emit() = true for a dropped event")
	}
	if buf.Len() != 0 {
		t.Errorf("dropped event written: %s", buf.String())
	}
	if got := testutil.ToFloat64(counter) - before; got != 1 {
		t.Errorf("dropped counter delta = %v, want 1", got)
	}
}

func TestRuntime_EmitContext(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	rt := NewRuntime(&buf)

	fields := map[string]any{"k": "v"}
	ctx := ContextWithRequestID(ContextWithCorrelationID(context.Background(), "c0ffee00"), "req-9")
	rt.EmitContext(ctx, Event{Level: LevelNotice, Message: "ids", Fields: fields})

	out := buf.String()
	if !strings.Contains(out, `"correlation_id":"c0ffee00"`) || !strings.Contains(out, `"request_id":"req-9"`) {
		t.Errorf("ids missing: %s", out)
	}
	if len(fields) != 1 {
		t.Errorf("caller's field map modified: %v", fields)
	}
}

func TestRuntime_ConcurrentEmitAndConfigure(t *testing.T) {
	t.Parallel()

	rt := NewRuntime(&syncBuffer{})
	rt.SetThreshold(LevelDebug)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 200; j++ {
				rt.Emit(Event{Level: LevelInfo, Message: "tick"})
			}
		}()
	}
	for i := 0; i < 20; i++ {
		name := "f" + string(rune('a'+i))
		if err := rt.AddFilter(name, constFilter(Ignore)); err != nil {
			t.Fatal(err)
		}
		rt.SetHandlerConfig(HandlerConfig{DefaultAction: Pass})
	}
	wg.Wait()

	if got := len(rt.Filters()); got != 20 {
		t.Errorf("Filters() has %d entries, want 20", got)
	}
}

// syncBuffer serialises writes from concurrent emitters.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}
