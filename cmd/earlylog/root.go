// Earlylog - Early structured-log bootstrap for server processes
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/earlylog

package main

import (
	"github.com/spf13/cobra"

	"github.com/tomtom215/earlylog/internal/bootstrap"
	"github.com/tomtom215/earlylog/internal/config"
	"github.com/tomtom215/earlylog/internal/logging"
)

type rootOptions struct {
	configFile string
	handler    string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "earlylog",
		Short: "Check and exercise early logging configuration",
		Long: `earlylog translates the logging configuration of a server process the
same way the process does at start-up, before anything else is configured.

Use "check" to validate a configuration and see what it compiles to, and
"emit" to see whether a given event would be written.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&opts.configFile, "config", "", "config file (default: $EARLYLOG_CONFIG or ./earlylog.yaml)")
	cmd.PersistentFlags().StringVar(&opts.handler, "handler", "", "handler section to translate (default: logging.handler)")

	cmd.AddCommand(newCheckCmd(opts), newEmitCmd(opts))
	return cmd
}

// load reads configuration for the selected handler and configures the
// diagnostic logger.
func (o *rootOptions) load() (*config.Config, error) {
	cfg, err := config.LoadHandler(o.configFile, o.handler)
	if err != nil {
		return nil, err
	}
	logging.Init(cfg.DiagnosticsLogging())
	return cfg, nil
}

// install loads configuration and installs early logging on the default
// runtime.
func (o *rootOptions) install() (*config.Config, bootstrap.Options, error) {
	cfg, err := o.load()
	if err != nil {
		return nil, bootstrap.Options{}, err
	}
	opts, err := bootstrap.OptionsFromConfig(cfg)
	if err != nil {
		return nil, bootstrap.Options{}, err
	}
	installed, err := bootstrap.Init(opts)
	if err != nil {
		return nil, bootstrap.Options{}, err
	}
	logging.Debug().
		Bool("installed", installed).
		Str("handler", cfg.HandlerPath()).
		Str("file", cfg.File).
		Msg("early logging ready")
	return cfg, opts, nil
}
