package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"spdxer/internal/operations"
)

func newShowCommand(ctx *commandContext) *cobra.Command {
	var keep bool

	cmd := &cobra.Command{
		Use:   "show <license>",
		Short: "Open the license text in the system viewer",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			reg, err := ctx.ensureRegistry()
			if err != nil {
				return err
			}

			opts := operations.ShowOptions{Width: cfg.Format.Width}
			if !keep {
				opts.CleanupDelay = time.Duration(cfg.Show.CleanupDelaySeconds) * time.Second
			}
			path, err := operations.Show(reg, args[0], opts, ctx.ensureLogger())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Displaying license %s in the default viewer.\n", args[0])
			if keep {
				fmt.Fprintf(out, "Temporary file preserved at: %s\n", path)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&keep, "keep", false, "Skip the delayed cleanup of the temporary file")
	return cmd
}
