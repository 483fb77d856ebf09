package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"satchel/internal/library"
	"satchel/internal/vault"
)

func newStatusCommand(cctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show vault health and catalog counts",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cctx.withLibrary(cmd, func(ctx context.Context, lib *library.Library) error {
				cfg, err := cctx.ensureConfig()
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()

				health, healthErr := lib.Store().CheckHealth(ctx)
				records, err := lib.Recordings().List(ctx)
				if err != nil {
					return err
				}
				files, err := lib.Files().List(ctx)
				if err != nil {
					return err
				}

				rows := [][]string{
					{"Vault", cfg.Paths.DataDir, ""},
					{"Catalog database", health.DBPath, statusLabel(healthErr == nil && health.DatabaseReadable)},
					{"Catalog integrity", "", statusLabel(healthErr == nil && health.IntegrityCheck)},
					{"Recordings", fmt.Sprintf("%d", len(records)), ""},
					{"Files", fmt.Sprintf("%d", len(files)), ""},
				}

				if free, err := vault.FreeSpace(cfg.Paths.DataDir); err == nil {
					rows = append(rows, []string{"Free space", humanSize(int64(free)), ""})
				}

				fmt.Fprintln(out, renderTable([]string{"Item", "Detail", "State"}, rows))
				if healthErr != nil {
					fmt.Fprintf(out, "Catalog health check failed: %v\n", healthErr)
				}
				return nil
			})
		},
	}
}
