// Earlylog - Early structured-log bootstrap for server processes
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/earlylog

package main

import (
	"os"

	"github.com/tomtom215/earlylog/internal/logging"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		logging.Err(err).Msg("earlylog failed")
		os.Exit(1)
	}
}
