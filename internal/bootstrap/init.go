// Earlylog - Early structured-log bootstrap for server processes
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/earlylog

package bootstrap

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/tomtom215/earlylog/internal/format"
	"github.com/tomtom215/earlylog/internal/levelfilter"
	"github.com/tomtom215/earlylog/internal/logging"
	"github.com/tomtom215/earlylog/internal/metrics"
)

// Filter names registered on the runtime.
const (
	LevelFilterName    = "early_level"
	ProgressFilterName = "suppress_progress"
)

// NoisyCategory is dropped unconditionally once early logging is installed.
const NoisyCategory = "progress"

// Options are the inputs of Init. Zero values select defaults.
type Options struct {
	// Levels defaults to levelfilter.DefaultLevelMap().
	Levels levelfilter.LevelMap
	// Formatter defaults to format.Default().
	Formatter logging.Formatter
}

// Initializer installs early logging on one runtime.
type Initializer struct {
	runtime *logging.Runtime

	mu         sync.Mutex
	configured atomic.Bool
}

// New returns an Initializer for rt, or for the default runtime when rt is
// nil.
func New(rt *logging.Runtime) *Initializer {
	if rt == nil {
		rt = logging.Default()
	}
	return &Initializer{runtime: rt}
}

// Configured reports whether Init has completed successfully.
func (in *Initializer) Configured() bool {
	return in.configured.Load()
}

// Init installs early logging. It reports whether this call performed the
// installation; calls after the first success return false and a nil error
// without touching the runtime.
//
//nolint:gocritic // Options is small and read once
func (in *Initializer) Init(opts Options) (bool, error) {
	if in.configured.Load() {
		metrics.RecordInitialization(metrics.InitNoop)
		return false, nil
	}

	in.mu.Lock()
	defer in.mu.Unlock()

	if in.configured.Load() {
		metrics.RecordInitialization(metrics.InitNoop)
		return false, nil
	}

	if err := in.install(opts); err != nil {
		metrics.RecordInitialization(metrics.InitFailed)
		return false, fmt.Errorf("early logging: %w", err)
	}

	in.configured.Store(true)
	metrics.RecordInitialization(metrics.InitInstalled)
	return true, nil
}

// install must be called with mu held.
//
//nolint:gocritic // Options is small and read once
func (in *Initializer) install(opts Options) error {
	levels := opts.Levels
	if len(levels) == 0 {
		levels = levelfilter.DefaultLevelMap()
	}
	formatter := opts.Formatter
	if formatter == nil {
		formatter = format.Default()
	}

	if err := in.runtime.AddFilter(LevelFilterName, levelfilter.New(levels)); err != nil {
		return err
	}
	if err := in.runtime.AddFilter(ProgressFilterName, suppressNoisy); err != nil {
		in.runtime.RemoveFilter(LevelFilterName)
		return err
	}

	in.runtime.SetHandlerConfig(logging.HandlerConfig{
		DefaultAction: logging.Pass,
		Formatter:     formatter,
	})
	in.runtime.SetThreshold(logging.LevelDebug)

	logging.Debug().
		Str("formatter", formatter.Kind()).
		Int("categories", len(levels)).
		Msg("early logging installed")
	return nil
}

func suppressNoisy(e *logging.Event) logging.Action {
	if levelfilter.Category(e.Domain) == NoisyCategory {
		return logging.Drop
	}
	return logging.Ignore
}

var defaultInitializer = New(nil)

// Init runs the process-wide Initializer bound to logging.Default().
//
//nolint:gocritic // Options is small and read once
func Init(opts Options) (bool, error) {
	return defaultInitializer.Init(opts)
}

// Configured reports whether the process-wide Initializer has completed.
func Configured() bool {
	return defaultInitializer.Configured()
}
