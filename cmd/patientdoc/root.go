package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"patientdoc/internal/config"
	"patientdoc/internal/logging"
	"patientdoc/internal/service"
	"patientdoc/internal/storage"
)

// app carries what every subcommand needs once the root command has run setup.
type app struct {
	patientsFile string

	cfg      *config.Config
	patients service.PatientService
}

// Execute runs the root command and exits non-zero on error.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCommand().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	a := &app{}

	cmd := &cobra.Command{
		Use:   "patientdoc",
		Short: "Patient documentation kept in a CSV file.",
		Long: `patientdoc records, lists, searches, edits and deletes patient records.
Every change rewrites the whole patients file. Without a subcommand the web
interface is started.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.serve(cmd.Context(), a.cfg.APIPort, defaultShutdownTimeout)
		},
	}

	// Global file flag, available for all commands.
	cmd.PersistentFlags().StringVar(&a.patientsFile, "file", "", "patients CSV file (overrides PATIENTS_FILE)")

	cmd.AddCommand(
		newServeCommand(a),
		newListCommand(a),
		newAddCommand(a),
		newUpdateCommand(a),
		newDeleteCommand(a),
		newExportCommand(a),
	)

	return cmd
}

// setup loads configuration, installs the logger and opens the record store.
func (a *app) setup() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if a.patientsFile != "" {
		cfg.PatientsFile = a.patientsFile
	}
	if err := cfg.EnsureDataDir(); err != nil {
		return err
	}
	a.cfg = cfg

	slog.SetDefault(logging.New(cfg))
	slog.Debug("Logging configured", "level", cfg.LogLevel.String(), "format", cfg.LogFormat)

	repo, err := storage.OpenPatientRepo(cfg.PatientsFile)
	if err != nil {
		return fmt.Errorf("failed to open patients file: %w", err)
	}
	slog.Debug("Patients loaded", "path", repo.Path(), "count", repo.Len())

	a.patients = service.NewPatientService(repo)
	return nil
}
