// Earlylog - Early structured-log bootstrap for server processes
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/earlylog

package logging

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/earlylog/internal/metrics"
)

// ErrDuplicateFilter is returned by AddFilter when the name is taken.
var ErrDuplicateFilter = errors.New("filter already registered")

// thresholdFilterName labels drops caused by the global threshold.
const thresholdFilterName = "threshold"

// Formatter is a compiled output description. The runtime only needs its
// kind ("plaintext" or "json") to pick a zerolog writer; rendering details
// belong to the sink.
type Formatter interface {
	Kind() string
}

// colorFormatter is implemented by formatters that can turn colors off.
type colorFormatter interface {
	ColorsEnabled() bool
}

// HandlerConfig is what SetHandlerConfig installs.
type HandlerConfig struct {
	// DefaultAction applies when every filter ignored the event.
	// The zero value, Pass, logs it.
	DefaultAction Action

	// Formatter selects the sink output. Nil means JSON.
	Formatter Formatter
}

type namedFilter struct {
	name string
	fn   Filter
}

// Runtime routes events through a severity threshold and a filter chain
// into a zerolog sink. All methods are safe for concurrent use; Emit is
// lock-free.
type Runtime struct {
	// mu serialises writers; readers use the atomic snapshots only.
	mu sync.Mutex

	filters   atomic.Pointer[[]namedFilter]
	handler   atomic.Pointer[HandlerConfig]
	sink      atomic.Pointer[zerolog.Logger]
	threshold atomic.Uint32

	out io.Writer
}

// NewRuntime creates a runtime writing to w (os.Stderr when nil). Until
// configured it passes notice and above, has no filters and writes JSON.
func NewRuntime(w io.Writer) *Runtime {
	if w == nil {
		w = os.Stderr
	}
	r := &Runtime{out: w}
	r.filters.Store(&[]namedFilter{})
	r.threshold.Store(uint32(LevelNotice))
	r.installHandler(HandlerConfig{})
	return r
}

// AddFilter registers f under name.
func (r *Runtime) AddFilter(name string, f Filter) error {
	if name == "" || f == nil {
		return fmt.Errorf("add filter %q: name and filter are required", name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	current := *r.filters.Load()
	for _, nf := range current {
		if nf.name == name {
			return fmt.Errorf("add filter %q: %w", name, ErrDuplicateFilter)
		}
	}

	next := make([]namedFilter, len(current), len(current)+1)
	copy(next, current)
	next = append(next, namedFilter{name: name, fn: f})
	r.filters.Store(&next)
	return nil
}

// RemoveFilter unregisters the named filter and reports whether it existed.
func (r *Runtime) RemoveFilter(name string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	current := *r.filters.Load()
	next := make([]namedFilter, 0, len(current))
	for _, nf := range current {
		if nf.name != name {
			next = append(next, nf)
		}
	}
	if len(next) == len(current) {
		return false
	}
	r.filters.Store(&next)
	return true
}

// Filters returns the registered filter names in evaluation order.
func (r *Runtime) Filters() []string {
	current := *r.filters.Load()
	names := make([]string, len(current))
	for i, nf := range current {
		names[i] = nf.name
	}
	return names
}

// SetHandlerConfig installs the handler configuration.
func (r *Runtime) SetHandlerConfig(cfg HandlerConfig) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.installHandler(cfg)
}

func (r *Runtime) installHandler(cfg HandlerConfig) {
	var w io.Writer = r.out
	if cfg.Formatter != nil && cfg.Formatter.Kind() == "plaintext" {
		noColor := true
		if cf, ok := cfg.Formatter.(colorFormatter); ok {
			noColor = !cf.ColorsEnabled()
		}
		w = zerolog.ConsoleWriter{
			Out:        r.out,
			TimeFormat: time.RFC3339,
			NoColor:    noColor,
		}
	}
	sink := zerolog.New(w)
	r.sink.Store(&sink)
	r.handler.Store(&cfg)
}

// HandlerConfig returns the installed handler configuration.
func (r *Runtime) HandlerConfig() HandlerConfig {
	return *r.handler.Load()
}

// SetThreshold sets the global minimum level. Events below it are dropped
// before any filter runs. LevelDebug accepts everything, which also opens
// zerolog's own global gate.
func (r *Runtime) SetThreshold(l Level) {
	r.threshold.Store(uint32(l))
	if l == LevelDebug {
		zerolog.SetGlobalLevel(zerolog.TraceLevel)
	}
}

// Threshold returns the global minimum level.
func (r *Runtime) Threshold() Level {
	return Level(r.threshold.Load())
}

// Decide runs the threshold and filter chain against e and returns the final
// action together with the name of the filter that dropped it, if any.
func (r *Runtime) Decide(e *Event) (Action, string) {
	if e.Level < r.Threshold() {
		return Drop, thresholdFilterName
	}

	passed := false
	for _, nf := range *r.filters.Load() {
		switch nf.fn(e) {
		case Drop:
			return Drop, nf.name
		case Pass:
			passed = true
		}
	}
	if passed {
		return Pass, ""
	}
	return r.handler.Load().DefaultAction, ""
}

// Emit sends e through the runtime and reports whether it was written.
//
//nolint:gocritic // Event is passed by value so filters see a private copy
func (r *Runtime) Emit(e Event) bool {
	action, by := r.Decide(&e)
	if action == Drop {
		if by == "" {
			by = "default"
		}
		metrics.EventsDropped.WithLabelValues(by).Inc()
		return false
	}
	r.write(&e)
	return true
}

// EmitContext is Emit with correlation and request IDs from ctx added to the
// event fields.
//
//nolint:gocritic // Event is passed by value so filters see a private copy
func (r *Runtime) EmitContext(ctx context.Context, e Event) bool {
	correlationID := CorrelationIDFromContext(ctx)
	requestID := RequestIDFromContext(ctx)
	if correlationID != "" || requestID != "" {
		fields := make(map[string]any, len(e.Fields)+2)
		for k, v := range e.Fields {
			fields[k] = v
		}
		if correlationID != "" {
			fields[string(correlationIDKey)] = correlationID
		}
		if requestID != "" {
			fields[string(requestIDKey)] = requestID
		}
		e.Fields = fields
	}
	return r.Emit(e)
}

func (r *Runtime) write(e *Event) {
	ts := e.Time
	if ts.IsZero() {
		ts = time.Now()
	}

	ev := r.sink.Load().Log().
		Str(zerolog.LevelFieldName, e.Level.String()).
		Time(zerolog.TimestampFieldName, ts)
	if len(e.Domain) > 0 {
		ev = ev.Strs("domain", e.Domain)
	}
	if len(e.Fields) > 0 {
		ev = ev.Fields(redactFields(e.Fields))
	}
	ev.Msg(e.Message)
}

var defaultRuntime = NewRuntime(os.Stderr)

// Default returns the process-wide runtime.
func Default() *Runtime {
	return defaultRuntime
}
