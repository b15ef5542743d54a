// Earlylog - Early structured-log bootstrap for server processes
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/earlylog

package main

import (
	"fmt"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/tomtom215/earlylog/internal/levelfilter"
	"github.com/tomtom215/earlylog/internal/logging"
)

type checkReport struct {
	Handler   string               `json:"handler"`
	File      string               `json:"file,omitempty"`
	Levels    levelfilter.LevelMap `json:"levels"`
	Filters   []string             `json:"filters"`
	Formatter logging.Formatter    `json:"formatter"`
}

func newCheckCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Translate the configuration and print the result",
		Long: `Loads the configuration, translates the selected handler section and
installs early logging. Prints the compiled formatter, the level map and the
installed filters as JSON.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, opts, err := root.install()
			if err != nil {
				return err
			}

			report := checkReport{
				Handler:   cfg.HandlerPath(),
				File:      cfg.File,
				Levels:    opts.Levels,
				Filters:   logging.Default().Filters(),
				Formatter: opts.Formatter,
			}
			out, err := json.MarshalIndent(report, "", "  ")
			if err != nil {
				return fmt.Errorf("encode report: %w", err)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), string(out))
			return err
		},
	}
}
