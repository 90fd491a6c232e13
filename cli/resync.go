// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/shanakasp/backendNextSupabase/store"
)

// NewResyncCommand creates the resync command.
func NewResyncCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "resync [flags]",
		Short: "Re-archive every complete response",
		Long: `Write every complete response to the archive store again.

Use after archive writes failed. Upserts are idempotent, so running it
twice is harmless.
` + configFlags,
		DisableFlagParsing: true,
		SilenceUsage:       true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runResync(cmd.Context(), args, cmd.OutOrStdout())
		},
	}

	return cmd
}

func runResync(ctx context.Context, args []string, out io.Writer) error {
	cfg, err := loadConfig(args)
	if err != nil {
		return err
	}

	b, err := openBackend(ctx, cfg)
	if err != nil {
		return err
	}
	defer b.Close()

	n, err := store.Resync(ctx, b.answers, b.archive)
	fmt.Fprintf(out, "archived %d complete response(s)\n", n)
	return err
}
