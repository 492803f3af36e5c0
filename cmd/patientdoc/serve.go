package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	nethttp "net/http"
	"time"

	"github.com/spf13/cobra"

	"patientdoc/internal/config"
	"patientdoc/internal/handlers"
	"patientdoc/internal/http"
)

const defaultShutdownTimeout = 10 * time.Second

func newServeCommand(a *app) *cobra.Command {
	var (
		port            string
		shutdownTimeout time.Duration
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the web interface",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if port == "" {
				port = a.cfg.APIPort
			} else if err := config.ValidatePort("--port", port); err != nil {
				return err
			}
			return a.serve(cmd.Context(), port, shutdownTimeout)
		},
	}

	cmd.Flags().StringVar(&port, "port", "", "listen port (defaults to API_PORT)")
	cmd.Flags().DurationVar(&shutdownTimeout, "shutdown-timeout", defaultShutdownTimeout, "Maximum time to wait for graceful shutdown")

	return cmd
}

// serve runs the HTTP server until ctx is cancelled, then shuts it down.
func (a *app) serve(ctx context.Context, port string, shutdownTimeout time.Duration) error {
	pages, err := handlers.NewPageHandler()
	if err != nil {
		return fmt.Errorf("failed to render pages: %w", err)
	}

	router := http.NewRouter(&http.Deps{
		Patients: a.patients,
		Pages:    pages,
	})

	srv := &nethttp.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("Starting web server", "addr", srv.Addr, "patients_file", a.cfg.PatientsFile)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, nethttp.ErrServerClosed) {
			return fmt.Errorf("web server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	slog.Info("Shutting down web server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("web server shutdown: %w", err)
	}
	return nil
}
