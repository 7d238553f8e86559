// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"fmt"
	"io"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// Execute runs the nacheck command tree.
func Execute(ctx context.Context) error {
	return newRootCmd().ExecuteContext(ctx)
}

func newRootCmd() *cobra.Command {
	var level string
	root := &cobra.Command{
		Use:           "nacheck",
		Short:         "Check the algebraic contracts of lvgeom over random samples",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&level, "log-level", zerolog.InfoLevel.String(), "log level (trace, debug, info, warn, error)")
	root.AddCommand(runCmd(&level), listCmd())

	return root
}

// newLogger builds the console logger used by the commands.
func newLogger(w io.Writer, level string) (zerolog.Logger, error) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.Nop(), fmt.Errorf("log level: %w", err)
	}

	return zerolog.New(zerolog.ConsoleWriter{Out: w, NoColor: true}).
		Level(lvl).
		With().Timestamp().Logger(), nil
}
