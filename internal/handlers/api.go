package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"patientdoc/internal/contextutil"
	"patientdoc/internal/service"
	"patientdoc/internal/storage"
)

// APIHandler serves the JSON patient API.
type APIHandler struct {
	patients service.PatientService
}

// NewAPIHandler creates a new APIHandler.
func NewAPIHandler(patients service.PatientService) *APIHandler {
	return &APIHandler{patients: patients}
}

// PatientPayload is the JSON representation of a patient.
type PatientPayload struct {
	ID          string `json:"id,omitempty"`
	FullName    string `json:"full_name"`
	Age         string `json:"age"`
	WeightKg    string `json:"weight_kg"`
	HeightCm    string `json:"height_cm"`
	Diagnosis   string `json:"diagnosis"`
	Allergies   string `json:"allergies"`
	Medications string `json:"medications"`
	Sex         string `json:"sex"`
}

// PatientListResponse is the response of the list endpoint.
type PatientListResponse struct {
	Query    string           `json:"query,omitempty"`
	Total    int              `json:"total"`
	Patients []PatientPayload `json:"patients"`
}

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// List returns the patients matching the optional "q" query parameter.
func (h *APIHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	query := r.URL.Query().Get("q")

	results := h.patients.Search(ctx, query)
	resp := PatientListResponse{
		Query:    query,
		Total:    h.patients.Stats(ctx).Count,
		Patients: make([]PatientPayload, 0, len(results)),
	}
	for _, p := range results {
		resp.Patients = append(resp.Patients, payloadFromPatient(p))
	}

	h.writeJSON(w, r, http.StatusOK, resp)
}

// Get returns one patient.
func (h *APIHandler) Get(w http.ResponseWriter, r *http.Request) {
	p, err := h.patients.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}
	h.writeJSON(w, r, http.StatusOK, payloadFromPatient(p))
}

// Create adds a patient from a JSON body.
func (h *APIHandler) Create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	in, ok := h.decode(w, r)
	if !ok {
		return
	}

	p, err := h.patients.Add(ctx, in)
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}
	h.writeJSON(w, r, http.StatusCreated, payloadFromPatient(p))
}

// Update replaces a patient from a JSON body.
func (h *APIHandler) Update(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	in, ok := h.decode(w, r)
	if !ok {
		return
	}

	p, err := h.patients.Update(ctx, chi.URLParam(r, "id"), in)
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}
	h.writeJSON(w, r, http.StatusOK, payloadFromPatient(p))
}

// Delete removes a patient.
func (h *APIHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.patients.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.handleServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *APIHandler) decode(w http.ResponseWriter, r *http.Request) (service.PatientInput, bool) {
	ctx := r.Context()

	var req PatientPayload
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		contextutil.LoggerFromContext(ctx).WarnContext(ctx, "invalid request body", "error", err)
		h.writeError(w, http.StatusBadRequest, "Invalid request body")
		return service.PatientInput{}, false
	}

	return service.PatientInput{
		FullName:    req.FullName,
		Age:         req.Age,
		WeightKg:    req.WeightKg,
		HeightCm:    req.HeightCm,
		Diagnosis:   req.Diagnosis,
		Allergies:   req.Allergies,
		Medications: req.Medications,
		Sex:         req.Sex,
	}, true
}

func (h *APIHandler) handleServiceError(w http.ResponseWriter, r *http.Request, err error) {
	status, message := statusForError(r.Context(), err)
	h.writeError(w, status, message)
}

func (h *APIHandler) writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		ctx := r.Context()
		contextutil.LoggerFromContext(ctx).ErrorContext(ctx, "failed to encode response", "error", err)
	}
}

// writeError writes an error response.
func (h *APIHandler) writeError(w http.ResponseWriter, statusCode int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(ErrorResponse{
		Error: message,
	})
}

func payloadFromPatient(p storage.Patient) PatientPayload {
	return PatientPayload{
		ID:          p.ID,
		FullName:    p.FullName,
		Age:         p.Age,
		WeightKg:    p.WeightKg,
		HeightCm:    p.HeightCm,
		Diagnosis:   p.Diagnosis,
		Allergies:   p.Allergies,
		Medications: p.Medications,
		Sex:         p.Sex,
	}
}
