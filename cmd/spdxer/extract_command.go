package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"spdxer/internal/operations"
)

func newExtractCommand(ctx *commandContext) *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "extract <license>",
		Short: "Write the license text to the repository root",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExtract(ctx, cmd.OutOrStdout(), args[0], dryRun)
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Show the target path without writing")
	return cmd
}

func runExtract(ctx *commandContext, out io.Writer, licenseKey string, dryRun bool) error {
	cfg, err := ctx.ensureConfig()
	if err != nil {
		return err
	}
	reg, err := ctx.ensureRegistry()
	if err != nil {
		return err
	}
	root, err := ctx.repoRoot()
	if err != nil {
		return err
	}

	result, err := operations.Extract(reg, licenseKey, root, cfg.Format.Width, dryRun)
	if err != nil {
		return err
	}
	if result.DryRun {
		fmt.Fprintf(out, "Would extract license to: %s\n", result.Path)
	} else {
		fmt.Fprintf(out, "Extracted license to: %s\n", result.Path)
	}
	if result.Placeholder {
		fmt.Fprintln(out, "Full license text unavailable; wrote a placeholder pointing at spdx.org.")
	}
	return nil
}
