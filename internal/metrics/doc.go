// Earlylog - Early structured-log bootstrap for server processes
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/earlylog

/*
Package metrics holds the Prometheus instruments for early log handling.

# Available Metrics

	earlylog_translations_total{kind,result}     formatter translations by kind and outcome
	earlylog_translation_duration_seconds{kind}  time spent compiling a formatter
	earlylog_initializations_total{result}       initializer calls: installed, noop, failed
	earlylog_events_dropped_total{filter}        events dropped, by the filter that dropped them

All instruments are registered with the default registry through promauto.
They are updated at configuration time and by the runtime, never from inside
a filter.
*/
package metrics
