// Earlylog - Early structured-log bootstrap for server processes
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/earlylog

package main

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/tomtom215/earlylog/internal/levelfilter"
	"github.com/tomtom215/earlylog/internal/logging"
)

type emitOptions struct {
	level  string
	domain []string
	fields map[string]string
}

func newEmitCmd(root *rootOptions) *cobra.Command {
	opts := &emitOptions{}

	cmd := &cobra.Command{
		Use:   "emit MESSAGE...",
		Short: "Push one event through the configured runtime",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			level, err := logging.ParseLevel(opts.level)
			if err != nil {
				return err
			}
			if !level.Valid() {
				return fmt.Errorf("%q is not an event level", opts.level)
			}

			if _, _, err := root.install(); err != nil {
				return err
			}

			e := logging.Event{
				Time:    time.Now(),
				Level:   level,
				Message: strings.Join(args, " "),
				Domain:  opts.domain,
			}
			if len(opts.fields) > 0 {
				e.Fields = make(map[string]any, len(opts.fields))
				for k, v := range opts.fields {
					e.Fields[k] = v
				}
			}

			ctx := logging.ContextWithNewCorrelationID(context.Background())
			rt := logging.Default()
			action, by := rt.Decide(&e)
			written := rt.EmitContext(ctx, e)

			logging.Ctx(ctx).Info().
				Str("category", levelfilter.Category(e.Domain)).
				Str("action", action.String()).
				Str("filter", by).
				Bool("written", written).
				Msg("event emitted")
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.level, "level", "info", "event level")
	cmd.Flags().StringSliceVar(&opts.domain, "domain", nil, "event domain, most general first (e.g. server,sql)")
	cmd.Flags().StringToStringVar(&opts.fields, "field", nil, "extra meta field key=value (repeatable)")
	return cmd
}
