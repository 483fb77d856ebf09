package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"satchel/internal/catalog"
	"satchel/internal/ingest"
	"satchel/internal/library"
)

func newFileCommand(ctx *commandContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "file",
		Short: "Manage imported files",
	}

	cmd.AddCommand(newFileListCommand(ctx))
	cmd.AddCommand(newFileAddCommand(ctx))
	cmd.AddCommand(newFileOpenCommand(ctx))
	cmd.AddCommand(newFileDeleteCommand(ctx))
	cmd.AddCommand(newFileRenameCommand(ctx))

	return cmd
}

func newFileListCommand(cctx *commandContext) *cobra.Command {
	var query string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List imported files, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cctx.withLibrary(cmd, func(ctx context.Context, lib *library.Library) error {
				files, err := lib.Files().Search(ctx, query)
				if err != nil {
					return err
				}
				printFileTable(cmd, files)
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&query, "filter", "f", "", "Only show files matching this text")
	return cmd
}

func newFileAddCommand(cctx *commandContext) *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "add <path>",
		Short: "Copy a file into the vault and catalog it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cctx.withLibrary(cmd, func(ctx context.Context, lib *library.Library) error {
				cand, err := ingest.Inspect(args[0])
				if err != nil {
					return err
				}

				file, err := lib.Files().Import(ctx, cand, name)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Imported %q as %s (%s)\n",
					file.Name, catalog.TypeLabel(file.Type), sizeLabel(file))
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "Display name for the file")
	return cmd
}

func newFileOpenCommand(cctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "open <id>",
		Short: "Verify a file and print its vault path",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cctx.withLibrary(cmd, func(ctx context.Context, lib *library.Library) error {
				files, err := lib.Files().List(ctx)
				if err != nil {
					return err
				}
				id, err := matchID(files, args[0])
				if err != nil {
					return err
				}

				file, err := lib.Files().Resolve(ctx, id)
				if err != nil {
					var missing *library.MissingFileError
					if errors.As(err, &missing) {
						return fmt.Errorf("file %q no longer exists and was removed from the library", missing.Name)
					}
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), file.URI)
				return nil
			})
		},
	}
}

func newFileDeleteCommand(cctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:     "delete <id>",
		Aliases: []string{"rm"},
		Short:   "Delete a file and its bytes",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cctx.withLibrary(cmd, func(ctx context.Context, lib *library.Library) error {
				files, err := lib.Files().List(ctx)
				if err != nil {
					return err
				}
				id, err := matchID(files, args[0])
				if err != nil {
					return err
				}

				removed, ok, err := lib.Files().Delete(ctx, id)
				if err != nil {
					return err
				}
				if !ok {
					fmt.Fprintf(cmd.OutOrStdout(), "File %s was already gone\n", id)
					return nil
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Deleted file %q\n", removed.Name)
				return nil
			})
		},
	}
}

func newFileRenameCommand(cctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "rename <id> <new-name>",
		Short: "Rename an imported file",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cctx.withLibrary(cmd, func(ctx context.Context, lib *library.Library) error {
				files, err := lib.Files().List(ctx)
				if err != nil {
					return err
				}
				id, err := matchID(files, args[0])
				if err != nil {
					return err
				}

				renamed, err := lib.Files().Rename(ctx, id, args[1])
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Renamed file to %q\n", renamed.Name)
				return nil
			})
		},
	}
}

func printFileTable(cmd *cobra.Command, files []catalog.File) {
	out := cmd.OutOrStdout()
	if len(files) == 0 {
		fmt.Fprintln(out, "No files")
		return
	}

	rows := make([][]string, 0, len(files))
	for _, file := range files {
		rows = append(rows, []string{
			shortID(file.ID),
			file.Name,
			catalog.TypeLabel(file.Type),
			file.Date,
			sizeLabel(file),
		})
	}
	fmt.Fprintln(out, renderTable([]string{"ID", "Name", "Type", "Imported", "Size"}, rows, 5))
}
