package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"spdxer/internal/operations"
)

func newAddCommand(ctx *commandContext) *cobra.Command {
	var dryRun bool
	var extract bool

	cmd := &cobra.Command{
		Use:   "add <license>",
		Short: "Add SPDX headers to files that are missing one",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			files, err := ctx.sourceFiles()
			if err != nil {
				return err
			}
			batch, err := ctx.newBatch(dryRun)
			if err != nil {
				return err
			}
			result, err := batch.Add(files, args[0])
			if err != nil {
				return err
			}
			printResult(cmd.OutOrStdout(), result, "added")

			if extract {
				if err := runExtract(ctx, cmd.OutOrStdout(), args[0], dryRun); err != nil {
					return err
				}
			}
			return batchError(result)
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Show what would change without writing")
	cmd.Flags().BoolVar(&extract, "extract", false, "Also write the license text to the repository root")
	return cmd
}

func newChangeCommand(ctx *commandContext) *cobra.Command {
	var dryRun bool
	var extract bool

	cmd := &cobra.Command{
		Use:   "change <license>",
		Short: "Replace existing SPDX headers with a new license",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			files, err := ctx.sourceFiles()
			if err != nil {
				return err
			}
			batch, err := ctx.newBatch(dryRun)
			if err != nil {
				return err
			}
			result, err := batch.Change(files, args[0])
			if err != nil {
				return err
			}
			printResult(cmd.OutOrStdout(), result, "changed")

			if extract {
				if err := runExtract(ctx, cmd.OutOrStdout(), args[0], dryRun); err != nil {
					return err
				}
			}
			return batchError(result)
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Show what would change without writing")
	cmd.Flags().BoolVar(&extract, "extract", false, "Also write the license text to the repository root")
	return cmd
}

func newRemoveCommand(ctx *commandContext) *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "remove",
		Short: "Remove SPDX headers from files",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			files, err := ctx.sourceFiles()
			if err != nil {
				return err
			}
			batch, err := ctx.newBatch(dryRun)
			if err != nil {
				return err
			}
			result := batch.Remove(files)
			printResult(cmd.OutOrStdout(), result, "removed")
			return batchError(result)
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Show what would change without writing")
	return cmd
}

// printResult writes the per-run summary for a batch operation.
func printResult(out io.Writer, result *operations.Result, verb string) {
	if result.DryRun {
		verb = "would be " + verb
	}
	fmt.Fprintf(out, "%d file(s) %s, %d skipped\n", len(result.Modified), verb, len(result.Skipped))
	for _, fe := range result.Errors {
		fmt.Fprintf(out, "  error: %s: %v\n", fe.Path, fe.Err)
	}
}

func batchError(result *operations.Result) error {
	if result.OK() {
		return nil
	}
	return fmt.Errorf("%d file(s) failed", len(result.Errors))
}
