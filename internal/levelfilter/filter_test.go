// Earlylog - Early structured-log bootstrap for server processes
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/earlylog

package levelfilter

import (
	"errors"
	"testing"

	"github.com/tomtom215/earlylog/internal/logging"
)

func TestCategory(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		domain []string
		want   string
	}{
		{"nil domain", nil, Global},
		{"empty domain", []string{}, Global},
		{"super-domain sub-category", []string{"server", "sql"}, "sql"},
		{"super-domain deeper", []string{"server", "sql", "pool"}, "sql"},
		{"super-domain alone", []string{"server"}, "server"},
		{"plain domain", []string{"http", "router"}, "http"},
		{"super-domain not first", []string{"app", "server"}, "app"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := Category(tt.domain); got != tt.want {
				t.Errorf("Category(%v) = %q, want %q", tt.domain, got, tt.want)
			}
		})
	}
}

func TestDecide_AbsentCategoryEqualsGlobal(t *testing.T) {
	t.Parallel()

	m := LevelMap{Global: logging.LevelWarning, "sql": logging.LevelDebug}
	for _, level := range logging.Levels() {
		absent := &logging.Event{Level: level, Domain: []string{"unmapped"}}
		global := &logging.Event{Level: level}

		if got, want := Decide(m, absent), Decide(m, global); got != want {
			t.Errorf("level %s: unmapped category = %s, global = %s", level, got, want)
		}
	}
}

func TestDecide_TotalOrder(t *testing.T) {
	t.Parallel()

	levels := logging.Levels()
	for i, minimum := range levels {
		m := LevelMap{Global: minimum}
		for j, level := range levels {
			e := &logging.Event{Level: level}
			want := logging.Pass
			if j < i {
				want = logging.Drop
			}
			if got := Decide(m, e); got != want {
				t.Errorf("minimum %s, level %s: got %s, want %s", minimum, level, got, want)
			}
		}
	}
}

func TestDecide_NoneDropsEverything(t *testing.T) {
	t.Parallel()

	m := LevelMap{Global: logging.LevelDebug, "progress": logging.LevelNone}
	for _, level := range logging.Levels() {
		e := &logging.Event{Level: level, Domain: []string{"server", "progress"}}
		if got := Decide(m, e); got != logging.Drop {
			t.Errorf("level %s: got %s, want drop", level, got)
		}
	}
}

func TestDecide_SubCategory(t *testing.T) {
	t.Parallel()

	m := LevelMap{Global: logging.LevelError, "sql": logging.LevelDebug}

	e := &logging.Event{Level: logging.LevelInfo, Domain: []string{"server", "sql"}}
	if got := Decide(m, e); got != logging.Pass {
		t.Errorf("server.sql info: got %s, want pass", got)
	}

	e = &logging.Event{Level: logging.LevelInfo, Domain: []string{"server", "http"}}
	if got := Decide(m, e); got != logging.Drop {
		t.Errorf("server.http info: got %s, want drop", got)
	}
}

func TestNew_CopiesMap(t *testing.T) {
	t.Parallel()

	m := LevelMap{Global: logging.LevelInfo}
	filter := New(m)
	m[Global] = logging.LevelEmergency

	e := &logging.Event{Level: logging.LevelInfo}
	if got := filter(e); got != logging.Pass {
		t.Errorf("filter saw later map change: got %s, want pass", got)
	}
}

func TestNew_MissingGlobal(t *testing.T) {
	t.Parallel()

	filter := New(LevelMap{"sql": logging.LevelDebug})

	if got := filter(&logging.Event{Level: logging.LevelInfo}); got != logging.Drop {
		t.Errorf("info under default global: got %s, want drop", got)
	}
	if got := filter(&logging.Event{Level: logging.LevelNotice}); got != logging.Pass {
		t.Errorf("notice under default global: got %s, want pass", got)
	}
}

func TestNew_NilMap(t *testing.T) {
	t.Parallel()

	filter := New(nil)
	if got := filter(&logging.Event{Level: logging.LevelNotice}); got != logging.Pass {
		t.Errorf("got %s, want pass", got)
	}
}

func TestResolve(t *testing.T) {
	t.Parallel()

	m := LevelMap{Global: logging.LevelNotice, "http": logging.LevelWarning}
	e := &logging.Event{Domain: []string{"http"}}
	if got := Resolve(m, e); got != logging.LevelWarning {
		t.Errorf("Resolve() = %s, want warning", got)
	}
	e = &logging.Event{Domain: []string{"server", "http"}}
	if got := Resolve(m, e); got != logging.LevelWarning {
		t.Errorf("Resolve() = %s, want warning", got)
	}
}

func TestDefaultLevelMap(t *testing.T) {
	t.Parallel()

	m := DefaultLevelMap()
	if len(m) != 1 || m[BootstrapCategory] != logging.LevelNotice {
		t.Fatalf("DefaultLevelMap() = %v, want {%s: notice}", m, BootstrapCategory)
	}

	filter := New(m)
	tests := []struct {
		domain []string
		level  logging.Level
		want   logging.Action
	}{
		{[]string{BootstrapCategory}, logging.LevelInfo, logging.Drop},
		{[]string{BootstrapCategory}, logging.LevelNotice, logging.Pass},
		{[]string{SuperDomain, BootstrapCategory}, logging.LevelWarning, logging.Pass},
		{nil, logging.LevelInfo, logging.Drop},
		{[]string{"sql"}, logging.LevelNotice, logging.Pass},
	}
	for _, tt := range tests {
		e := &logging.Event{Level: tt.level, Domain: tt.domain}
		if got := filter(e); got != tt.want {
			t.Errorf("filter(%v at %s) = %s, want %s", tt.domain, tt.level, got, tt.want)
		}
	}
	if _, ok := m[Global]; ok {
		t.Error("New added global to the caller's map")
	}
}

func TestParseLevelMap(t *testing.T) {
	t.Parallel()

	m, err := ParseLevelMap(map[string]string{"sql": "debug", "http": "none"})
	if err != nil {
		t.Fatalf("ParseLevelMap() error = %v", err)
	}
	if m["sql"] != logging.LevelDebug {
		t.Errorf("sql = %s, want debug", m["sql"])
	}
	if m["http"] != logging.LevelNone {
		t.Errorf("http = %s, want none", m["http"])
	}
	if m[Global] != DefaultGlobalLevel {
		t.Errorf("global = %s, want %s", m[Global], DefaultGlobalLevel)
	}

	_, err = ParseLevelMap(map[string]string{"sql": "loud"})
	if !errors.Is(err, logging.ErrUnknownLevel) {
		t.Errorf("ParseLevelMap() error = %v, want ErrUnknownLevel", err)
	}
}

func BenchmarkDecide(b *testing.B) {
	filter := New(LevelMap{Global: logging.LevelNotice, "sql": logging.LevelDebug})
	e := &logging.Event{Level: logging.LevelInfo, Domain: []string{"server", "sql"}}

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		filter(e)
	}
}
