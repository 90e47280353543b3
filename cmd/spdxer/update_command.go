package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"spdxer/internal/license"
)

func newUpdateCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "update",
		Short: "Download the latest SPDX license list into the data file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			reg, err := license.Update(cmd.Context(), license.UpdateOptions{
				URL:      cfg.Data.UpdateURL,
				Timeout:  time.Duration(cfg.Data.UpdateTimeout) * time.Second,
				DataFile: cfg.Data.File,
			}, ctx.ensureLogger())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			meta := reg.Metadata()
			fmt.Fprintf(out, "Updated license data at %s\n", cfg.Data.File)
			fmt.Fprintf(out, "SPDX list version %s, %d licenses\n", meta.SPDXVersion, reg.Len())
			return nil
		},
	}
}
