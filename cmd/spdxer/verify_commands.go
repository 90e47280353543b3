package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"spdxer/internal/operations"
)

func newVerifyCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "verify",
		Short: "Report which files are missing SPDX headers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := runVerify(ctx, cmd.OutOrStdout())
			return err
		},
	}
}

func newCheckCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Like verify, but fail when any header is missing",
		Long:  "Intended for pre-commit hooks and CI: exits non-zero when any scanned file lacks a detectable SPDX header.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			report, err := runVerify(ctx, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			if !report.OK() {
				return fmt.Errorf("%d file(s) missing SPDX headers", len(report.Missing))
			}
			return nil
		},
	}
}

func runVerify(ctx *commandContext, out io.Writer) (*operations.Report, error) {
	files, err := ctx.sourceFiles()
	if err != nil {
		return nil, err
	}
	report := operations.Verify(files)

	switch ids := report.Identifiers(); len(ids) {
	case 0:
		fmt.Fprintln(out, "Detected SPDX license identifiers: none found.")
	case 1:
		fmt.Fprintf(out, "Detected SPDX license identifier: %s\n", ids[0])
	default:
		fmt.Fprintln(out, "Detected SPDX license identifiers:")
		for _, d := range report.Detected {
			fmt.Fprintf(out, "  - %s - %s\n", d.Path, d.Identifier)
		}
	}

	if report.OK() {
		fmt.Fprintln(out, "All scanned files have SPDX headers.")
	} else {
		fmt.Fprintln(out, "The following files are missing SPDX headers:")
		for _, path := range report.Missing {
			fmt.Fprintf(out, "  - %s\n", path)
		}
		fmt.Fprintf(out, "Found %d file(s) without SPDX headers.\n", len(report.Missing))
	}
	return report, nil
}
