// Earlylog - Early structured-log bootstrap for server processes
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/earlylog

package logging

import (
	"errors"
	"testing"

	"github.com/goccy/go-json"
)

func TestParseLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  Level
	}{
		{"debug", LevelDebug},
		{"info", LevelInfo},
		{"notice", LevelNotice},
		{"warning", LevelWarning},
		{"warn", LevelWarning},
		{"error", LevelError},
		{"critical", LevelCritical},
		{"crit", LevelCritical},
		{"alert", LevelAlert},
		{"emergency", LevelEmergency},
		{"emerg", LevelEmergency},
		{"none", LevelNone},
		{" Notice ", LevelNotice},
	}

	for _, tt := range tests {
		got, err := ParseLevel(tt.input)
		if err != nil {
			t.Errorf("ParseLevel(%q) error = %v", tt.input, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseLevel(%q) = %s, want %s", tt.input, got, tt.want)
		}
	}

	if _, err := ParseLevel("loud"); !errors.Is(err, ErrUnknownLevel) {
		t.Errorf("ParseLevel(loud) error = %v, want ErrUnknownLevel", err)
	}
}

func TestLevelOrder(t *testing.T) {
	t.Parallel()

	levels := Levels()
	if len(levels) != 8 {
		t.Fatalf("Levels() has %d entries, want 8", len(levels))
	}
	for i := 1; i < len(levels); i++ {
		if levels[i-1] >= levels[i] {
			t.Errorf("%s is not below %s", levels[i-1], levels[i])
		}
	}
	if !(LevelEmergency < LevelNone) {
		t.Error("LevelNone must be above every event level")
	}
	if LevelNone.Valid() {
		t.Error("LevelNone.Valid() = true")
	}
}

func TestLevelStrings(t *testing.T) {
	t.Parallel()

	for _, l := range Levels() {
		parsed, err := ParseLevel(l.String())
		if err != nil || parsed != l {
			t.Errorf("ParseLevel(%q) = %s, %v", l.String(), parsed, err)
		}
		if len(l.ShortString()) != 3 {
			t.Errorf("%s.ShortString() = %q", l, l.ShortString())
		}
	}
	if got := Level(42).String(); got != "unknown" {
		t.Errorf("Level(42).String() = %q", got)
	}
}

func TestLevelJSONMapKeys(t *testing.T) {
	t.Parallel()

	out, err := json.Marshal(map[Level]int{LevelDebug: 2})
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if string(out) != `{"debug":2}` {
		t.Errorf("Marshal() = %s", out)
	}
}

func TestLevelUnmarshalText(t *testing.T) {
	t.Parallel()

	var l Level
	if err := l.UnmarshalText([]byte("crit")); err != nil || l != LevelCritical {
		t.Errorf("UnmarshalText(crit) = %s, %v", l, err)
	}
	if err := l.UnmarshalText([]byte("loud")); err == nil {
		t.Error("UnmarshalText(loud) error = nil")
	}
}
