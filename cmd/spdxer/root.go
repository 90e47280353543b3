package main

import (
	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	var configFlag string
	var pathFlag string
	var dataFileFlag string

	ctx := newCommandContext(&configFlag, &pathFlag, &dataFileFlag)

	rootCmd := &cobra.Command{
		Use:           "spdxer",
		Short:         "Manage SPDX license headers in source files",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if shouldSkipConfig(cmd) {
				return nil
			}
			_, err := ctx.ensureConfig()
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Configuration file path")
	rootCmd.PersistentFlags().StringVarP(&pathFlag, "path", "p", "", "Repository root or single file to operate on")
	rootCmd.PersistentFlags().StringVar(&dataFileFlag, "data-file", "", "SPDX license data file path")

	rootCmd.AddCommand(newAddCommand(ctx))
	rootCmd.AddCommand(newChangeCommand(ctx))
	rootCmd.AddCommand(newRemoveCommand(ctx))
	rootCmd.AddCommand(newVerifyCommand(ctx))
	rootCmd.AddCommand(newCheckCommand(ctx))
	rootCmd.AddCommand(newListCommand(ctx))
	rootCmd.AddCommand(newExtractCommand(ctx))
	rootCmd.AddCommand(newShowCommand(ctx))
	rootCmd.AddCommand(newUpdateCommand(ctx))
	rootCmd.AddCommand(newConfigCommand())

	return rootCmd
}
