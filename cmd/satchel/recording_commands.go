package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"satchel/internal/catalog"
	"satchel/internal/ingest"
	"satchel/internal/library"
	"satchel/internal/recorder"
)

func newRecordingCommand(ctx *commandContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "recording",
		Aliases: []string{"rec"},
		Short:   "Manage captured audio recordings",
	}

	cmd.AddCommand(newRecordingListCommand(ctx))
	cmd.AddCommand(newRecordingCaptureCommand(ctx))
	cmd.AddCommand(newRecordingImportCommand(ctx))
	cmd.AddCommand(newRecordingPlayCommand(ctx))
	cmd.AddCommand(newRecordingDeleteCommand(ctx))
	cmd.AddCommand(newRecordingRenameCommand(ctx))

	return cmd
}

func newRecordingListCommand(cctx *commandContext) *cobra.Command {
	var query string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recordings, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cctx.withLibrary(cmd, func(ctx context.Context, lib *library.Library) error {
				records, err := lib.Recordings().Search(ctx, query)
				if err != nil {
					return err
				}
				printRecordingTable(cmd, records)
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&query, "filter", "f", "", "Only show recordings matching this text")
	return cmd
}

func newRecordingCaptureCommand(cctx *commandContext) *cobra.Command {
	var name string
	var seconds int

	cmd := &cobra.Command{
		Use:   "capture",
		Short: "Record audio until Ctrl+C or the time limit",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cctx.withLibrary(cmd, func(ctx context.Context, lib *library.Library) error {
				cfg, err := cctx.ensureConfig()
				if err != nil {
					return err
				}
				logger, err := cctx.ensureLogger()
				if err != nil {
					return err
				}

				rec := recorder.New(cfg.Recorder, logger)
				stagingDir := filepath.Join(cfg.Paths.DataDir, "staging")
				capture, err := rec.Record(ctx, stagingDir, seconds)
				if err != nil {
					return err
				}
				defer func() {
					_ = os.Remove(capture.Path)
				}()

				if name == "" {
					name = ingest.DefaultRecordingName(time.Now())
				}

				// A Ctrl+C that stopped the capture must not also abort the save.
				saveCtx := context.WithoutCancel(ctx)
				saved, err := lib.Recordings().Add(saveCtx, capture.Path, name, ingest.DurationLabel(capture.Elapsed))
				if err != nil {
					return err
				}

				fmt.Fprintf(cmd.OutOrStdout(), "Saved recording %q (%s, %s)\n", saved.Name, saved.Duration, sizeLabel(saved))
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "Display name for the recording")
	cmd.Flags().IntVarP(&seconds, "seconds", "s", 0, "Stop after this many seconds (default: configured maximum)")
	return cmd
}

func newRecordingImportCommand(cctx *commandContext) *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "import <path>",
		Short: "Import an existing audio file as a recording",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cctx.withLibrary(cmd, func(ctx context.Context, lib *library.Library) error {
				cand, err := ingest.Inspect(args[0])
				if err != nil {
					return err
				}
				if name == "" {
					name = cand.SuggestedName
				}

				saved, err := lib.Recordings().Add(ctx, cand.Path, name, "Unknown")
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Imported recording %q (%s)\n", saved.Name, sizeLabel(saved))
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "Display name for the recording")
	return cmd
}

func newRecordingPlayCommand(cctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "play <id>",
		Short: "Verify a recording and print its vault path",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cctx.withLibrary(cmd, func(ctx context.Context, lib *library.Library) error {
				records, err := lib.Recordings().List(ctx)
				if err != nil {
					return err
				}
				id, err := matchID(records, args[0])
				if err != nil {
					return err
				}

				rec, err := lib.Recordings().Resolve(ctx, id)
				if err != nil {
					var missing *library.MissingFileError
					if errors.As(err, &missing) {
						return fmt.Errorf("recording %q no longer exists and was removed from the library", missing.Name)
					}
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), rec.URI)
				return nil
			})
		},
	}
}

func newRecordingDeleteCommand(cctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:     "delete <id>",
		Aliases: []string{"rm"},
		Short:   "Delete a recording and its audio bytes",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cctx.withLibrary(cmd, func(ctx context.Context, lib *library.Library) error {
				records, err := lib.Recordings().List(ctx)
				if err != nil {
					return err
				}
				id, err := matchID(records, args[0])
				if err != nil {
					return err
				}

				removed, ok, err := lib.Recordings().Delete(ctx, id)
				if err != nil {
					return err
				}
				if !ok {
					fmt.Fprintf(cmd.OutOrStdout(), "Recording %s was already gone\n", id)
					return nil
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Deleted recording %q\n", removed.Name)
				return nil
			})
		},
	}
}

func newRecordingRenameCommand(cctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "rename <id> <new-name>",
		Short: "Rename a recording",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cctx.withLibrary(cmd, func(ctx context.Context, lib *library.Library) error {
				records, err := lib.Recordings().List(ctx)
				if err != nil {
					return err
				}
				id, err := matchID(records, args[0])
				if err != nil {
					return err
				}

				renamed, err := lib.Recordings().Rename(ctx, id, args[1])
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Renamed recording to %q\n", renamed.Name)
				return nil
			})
		},
	}
}

func printRecordingTable(cmd *cobra.Command, records []catalog.Recording) {
	out := cmd.OutOrStdout()
	if len(records) == 0 {
		fmt.Fprintln(out, "No recordings")
		return
	}

	rows := make([][]string, 0, len(records))
	for _, rec := range records {
		rows = append(rows, []string{shortID(rec.ID), rec.Name, rec.Duration, sizeLabel(rec)})
	}
	fmt.Fprintln(out, renderTable([]string{"ID", "Name", "Duration", "Size"}, rows, 4))
}
