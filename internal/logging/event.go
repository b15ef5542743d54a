// Earlylog - Early structured-log bootstrap for server processes
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/earlylog

package logging

import "time"

// Event is a single log event as it travels through the runtime.
type Event struct {
	Time    time.Time
	Level   Level
	Message string

	// Domain tags the subsystem that produced the event, most general first,
	// e.g. ["server", "sql"].
	Domain []string

	// Fields holds the remaining named meta data.
	Fields map[string]any
}

// Action is a filter verdict.
type Action uint8

const (
	// Pass lets the event continue unchanged.
	Pass Action = iota
	// Drop discards the event. No further filters run.
	Drop
	// Ignore means the filter has no opinion about the event.
	Ignore
)

func (a Action) String() string {
	switch a {
	case Pass:
		return "pass"
	case Drop:
		return "drop"
	case Ignore:
		return "ignore"
	default:
		return "unknown"
	}
}

// Filter decides what happens to an event. Implementations run on the
// emitting goroutine and must not retain or modify e.
type Filter func(e *Event) Action
