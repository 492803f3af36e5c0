package handlers

import (
	"encoding/json"
	"errors"
	"io/fs"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"patientdoc/internal/contextutil"
	"patientdoc/internal/service"
)

// HealthHandler handles HTTP requests for health checks.
type HealthHandler struct {
	patients service.PatientService
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(patients service.PatientService) *HealthHandler {
	return &HealthHandler{patients: patients}
}

// HealthResponse represents the health check response.
type HealthResponse struct {
	// Overall health status: "healthy" or "unhealthy"
	Status string `json:"status"`

	// Timestamp of the health check
	Timestamp string `json:"timestamp"`

	// Backing CSV file
	PatientsFile string `json:"patients_file"`

	// Number of patients held in memory
	Patients int `json:"patients"`

	// Individual check results
	Checks map[string]string `json:"checks"`

	// List of issues (only present if status is unhealthy)
	Issues []string `json:"issues,omitempty"`
}

// ServeHTTP reports whether the patients file can be written.
// Returns 200 OK if healthy, 503 Service Unavailable otherwise.
func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	if r.Method != http.MethodGet {
		logger.WarnContext(ctx, "method not allowed", "method", r.Method)
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	stats := h.patients.Stats(ctx)
	checks := make(map[string]string)
	var issues []string

	if err := checkWritable(stats.Path); err != nil {
		logger.WarnContext(ctx, "patients file health check failed", "path", stats.Path, "error", err)
		checks["patients_file"] = "error"
		issues = append(issues, "patients_file_not_writable")
	} else {
		checks["patients_file"] = "ok"
	}

	status := "healthy"
	httpStatus := http.StatusOK
	if len(issues) > 0 {
		status = "unhealthy"
		httpStatus = http.StatusServiceUnavailable
	}

	response := HealthResponse{
		Status:       status,
		Timestamp:    time.Now().UTC().Format(time.RFC3339),
		PatientsFile: stats.Path,
		Patients:     stats.Count,
		Checks:       checks,
		Issues:       issues,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(httpStatus)

	if err := json.NewEncoder(w).Encode(response); err != nil {
		logger.ErrorContext(ctx, "failed to encode health response", "error", err)
	}
}

// checkWritable reports whether path, or its directory when path does not
// exist yet, is a writable location for the next full rewrite.
func checkWritable(path string) error {
	info, err := os.Stat(path)
	switch {
	case err == nil:
		if info.IsDir() {
			return errors.New("patients file is a directory")
		}
	case errors.Is(err, fs.ErrNotExist):
		info, err = os.Stat(filepath.Dir(path))
		if err != nil {
			return err
		}
		if !info.IsDir() {
			return errors.New("parent of patients file is not a directory")
		}
	default:
		return err
	}

	f, err := os.CreateTemp(filepath.Dir(path), ".health-*")
	if err != nil {
		return err
	}
	name := f.Name()
	_ = f.Close()
	return os.Remove(name)
}
