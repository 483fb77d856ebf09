package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"satchel/internal/library"
)

func newSearchCommand(cctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "search <query>",
		Short: "Search recordings and files by name or type",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cctx.withLibrary(cmd, func(ctx context.Context, lib *library.Library) error {
				query := args[0]
				out := cmd.OutOrStdout()

				records, err := lib.Recordings().Search(ctx, query)
				if err != nil {
					return err
				}
				files, err := lib.Files().Search(ctx, query)
				if err != nil {
					return err
				}

				if len(records) == 0 && len(files) == 0 {
					fmt.Fprintf(out, "Nothing matches %q\n", query)
					return nil
				}
				if len(records) > 0 {
					fmt.Fprintln(out, "Recordings:")
					printRecordingTable(cmd, records)
				}
				if len(files) > 0 {
					fmt.Fprintln(out, "Files:")
					printFileTable(cmd, files)
				}
				return nil
			})
		},
	}
}
