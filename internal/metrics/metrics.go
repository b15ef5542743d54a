// Earlylog - Early structured-log bootstrap for server processes
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/earlylog

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Initializer outcomes.
const (
	InitInstalled = "installed"
	InitNoop      = "noop"
	InitFailed    = "failed"
)

var (
	Translations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "earlylog_translations_total",
			Help: "Total number of formatter configuration translations",
		},
		[]string{"kind", "result"}, // result: "ok", "error"
	)

	TranslationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "earlylog_translation_duration_seconds",
			Help:    "Duration of formatter configuration translations in seconds",
			Buckets: []float64{0.00001, 0.0001, 0.001, 0.01, 0.1},
		},
		[]string{"kind"},
	)

	Initializations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "earlylog_initializations_total",
			Help: "Total number of early logging initializer calls by outcome",
		},
		[]string{"result"},
	)

	EventsDropped = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "earlylog_events_dropped_total",
			Help: "Total number of log events dropped, by filter name",
		},
		[]string{"filter"},
	)
)

// RecordTranslation records one formatter translation. kind is "unknown"
// when the formatter kind could not be read.
func RecordTranslation(kind string, duration time.Duration, err error) {
	if kind == "" {
		kind = "unknown"
	}
	result := "ok"
	if err != nil {
		result = "error"
	}
	Translations.WithLabelValues(kind, result).Inc()
	TranslationDuration.WithLabelValues(kind).Observe(duration.Seconds())
}

// RecordInitialization records an initializer call outcome.
func RecordInitialization(result string) {
	Initializations.WithLabelValues(result).Inc()
}
