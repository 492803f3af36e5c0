package handlers

import (
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
)

func init() {
	// Set default logger to discard output for cleaner test output
	slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

// newTestRouter mounts the patient and API handlers the same way the
// application router does, so chi URL parameters resolve.
func newTestRouter(h *PatientHandler, api *APIHandler) http.Handler {
	r := chi.NewRouter()
	if h != nil {
		r.Get("/patients", h.List)
		r.Get("/patients/new", h.New)
		r.Post("/patients", h.Create)
		r.Get("/patients/{id}/edit", h.Edit)
		r.Post("/patients/{id}", h.Update)
		r.Post("/patients/{id}/delete", h.Delete)
		r.Get("/patients/{id}/print", h.Print)
	}
	if api != nil {
		r.Get("/api/patients", api.List)
		r.Post("/api/patients", api.Create)
		r.Get("/api/patients/{id}", api.Get)
		r.Put("/api/patients/{id}", api.Update)
		r.Delete("/api/patients/{id}", api.Delete)
	}
	return r
}
