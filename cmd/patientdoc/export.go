package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"patientdoc/internal/storage"
)

func newExportCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "export <sqlite-path>",
		Short: "Copy all patients into a SQLite database",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			path := args[0]

			db, err := storage.NewDB(path)
			if err != nil {
				return fmt.Errorf("failed to open database: %w", err)
			}
			defer func() {
				_ = db.Close()
			}()

			if err := storage.Migrate(db); err != nil {
				return fmt.Errorf("failed to run migrations: %w", err)
			}

			patients := a.patients.List(ctx)
			if err := storage.Export(ctx, db, patients); err != nil {
				return err
			}
			slog.Info("Patients exported", "path", path, "count", len(patients))
			fmt.Fprintf(cmd.OutOrStdout(), "Exported %d patients to %s.\n", len(patients), path)
			return nil
		},
	}
}
