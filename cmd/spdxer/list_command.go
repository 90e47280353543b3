package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newListCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "list [keyword]",
		Short: "List known licenses, optionally filtered by keyword",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, err := ctx.ensureRegistry()
			if err != nil {
				return err
			}
			keyword := ""
			if len(args) == 1 {
				keyword = args[0]
			}

			matches := reg.Filter(keyword)
			if len(matches) == 0 {
				return fmt.Errorf("no licenses match %q", keyword)
			}

			rows := make([][]string, 0, len(matches))
			for _, item := range matches {
				rows = append(rows, []string{
					item.Key,
					item.Entry.Name,
					yesNo(item.Entry.Deprecated),
					yesNo(item.Entry.OSIApproved),
					yesNo(item.Entry.FSFLibre),
				})
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, renderTable(out,
				[]string{"Identifier", "Name", "Deprecated", "OSI", "FSF"}, rows))
			fmt.Fprintf(out, "%d license(s)\n", len(matches))
			return nil
		},
	}
}

func yesNo(value bool) string {
	if value {
		return "yes"
	}
	return "no"
}
