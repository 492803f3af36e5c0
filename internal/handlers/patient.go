package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"slices"

	"github.com/go-chi/chi/v5"

	"patientdoc/internal/contextutil"
	"patientdoc/internal/service"
	"patientdoc/internal/storage"
)

// Notices shown after a redirect, selected by the "notice" query parameter.
var notices = map[string]string{
	"saved":   "Data saved.",
	"deleted": "Patient deleted.",
}

var defaultSexOptions = []string{"Male", "Female"}

// PatientHandler serves the HTML pages for listing, adding, editing and
// deleting patients.
type PatientHandler struct {
	patients service.PatientService
	views    *views
}

type pageData struct {
	Title  string
	Notice string
	Error  string
}

type listPageData struct {
	pageData
	Query    string
	Patients []storage.Patient
	Total    int
}

type formPageData struct {
	pageData
	Action     string
	Submit     string
	Patient    service.PatientInput
	SexOptions []string
}

type messagePageData struct {
	pageData
	Message string
}

// NewPatientHandler creates a new PatientHandler.
func NewPatientHandler(patients service.PatientService) *PatientHandler {
	return &PatientHandler{
		patients: patients,
		views:    newViews(),
	}
}

// List renders the patient table, filtered by the "q" query parameter.
func (h *PatientHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	query := r.URL.Query().Get("q")

	data := listPageData{
		pageData: pageData{
			Title:  "Patient list",
			Notice: notices[r.URL.Query().Get("notice")],
		},
		Query:    query,
		Patients: h.patients.Search(ctx, query),
		Total:    h.patients.Stats(ctx).Count,
	}
	h.render(w, r, http.StatusOK, "list", data)
}

// New renders an empty add form.
func (h *PatientHandler) New(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, "form", newFormData("Add patient", "/patients", "Add patient", service.PatientInput{}))
}

// Create stores a new patient from the submitted form.
func (h *PatientHandler) Create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	if err := r.ParseForm(); err != nil {
		logger.WarnContext(ctx, "invalid form body", "error", err)
		h.renderError(w, r, http.StatusBadRequest, "Invalid form data.")
		return
	}

	if _, err := h.patients.Add(ctx, inputFromForm(r.PostForm)); err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	http.Redirect(w, r, "/patients?notice=saved", http.StatusSeeOther)
}

// Edit renders the edit form for the patient in the URL.
func (h *PatientHandler) Edit(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := chi.URLParam(r, "id")

	p, err := h.patients.Get(ctx, id)
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	data := newFormData("Edit patient", "/patients/"+url.PathEscape(p.ID), "Save changes", service.InputFromPatient(p))
	data.Notice = notices[r.URL.Query().Get("notice")]
	h.render(w, r, http.StatusOK, "form", data)
}

// Update saves the submitted edit form.
func (h *PatientHandler) Update(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)
	id := chi.URLParam(r, "id")

	if err := r.ParseForm(); err != nil {
		logger.WarnContext(ctx, "invalid form body", "error", err)
		h.renderError(w, r, http.StatusBadRequest, "Invalid form data.")
		return
	}

	p, err := h.patients.Update(ctx, id, inputFromForm(r.PostForm))
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	http.Redirect(w, r, "/patients/"+url.PathEscape(p.ID)+"/edit?notice=saved", http.StatusSeeOther)
}

// Delete removes the patient in the URL and returns to the list, keeping the
// search the row was deleted from.
func (h *PatientHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := chi.URLParam(r, "id")

	if err := h.patients.Delete(ctx, id); err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	params := url.Values{"notice": {"deleted"}}
	if q := r.FormValue("q"); q != "" {
		params.Set("q", q)
	}
	http.Redirect(w, r, "/patients?"+params.Encode(), http.StatusSeeOther)
}

// Print shows the print notice for one patient.
func (h *PatientHandler) Print(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	p, err := h.patients.Get(ctx, chi.URLParam(r, "id"))
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	logger.InfoContext(ctx, "print requested", "id", p.ID)
	data := messagePageData{
		pageData: pageData{Title: "Printing"},
		Message:  "Printing started for " + p.FullName + ".",
	}
	h.render(w, r, http.StatusOK, "message", data)
}

func (h *PatientHandler) render(w http.ResponseWriter, r *http.Request, status int, name string, data any) {
	ctx := r.Context()
	if err := h.views.render(w, status, name, data); err != nil {
		contextutil.LoggerFromContext(ctx).ErrorContext(ctx, "failed to render page", "view", name, "error", err)
		http.Error(w, "failed to render page", http.StatusInternalServerError)
	}
}

func (h *PatientHandler) renderError(w http.ResponseWriter, r *http.Request, status int, message string) {
	data := messagePageData{
		pageData: pageData{Title: http.StatusText(status), Error: message},
		Message:  "The request could not be completed.",
	}
	h.render(w, r, status, "message", data)
}

// handleServiceError maps service errors to HTTP status codes and an error page.
func (h *PatientHandler) handleServiceError(w http.ResponseWriter, r *http.Request, err error) {
	status, message := statusForError(r.Context(), err)
	h.renderError(w, r, status, message)
}

// statusForError maps service errors to a status code and a user-facing message.
func statusForError(ctx context.Context, err error) (int, string) {
	logger := contextutil.LoggerFromContext(ctx)

	var validationErr *service.ValidationError
	switch {
	case errors.As(err, &validationErr):
		logger.WarnContext(ctx, "invalid request", "error", err)
		if validationErr.Field == "id" {
			return http.StatusBadRequest, "No patient selected."
		}
		return http.StatusBadRequest, validationErr.Error()
	case errors.Is(err, service.ErrNotFound):
		logger.WarnContext(ctx, "patient not found", "error", err)
		return http.StatusNotFound, "Patient not found."
	default:
		logger.ErrorContext(ctx, "service error", "error", err)
		return http.StatusInternalServerError, "Patient data could not be saved."
	}
}

func newFormData(title, action, submit string, in service.PatientInput) formPageData {
	options := slices.Clone(defaultSexOptions)
	if in.Sex != "" && !slices.Contains(options, in.Sex) {
		options = append(options, in.Sex)
	}
	return formPageData{
		pageData:   pageData{Title: title},
		Action:     action,
		Submit:     submit,
		Patient:    in,
		SexOptions: options,
	}
}

func inputFromForm(form url.Values) service.PatientInput {
	return service.PatientInput{
		FullName:    form.Get("full_name"),
		Age:         form.Get("age"),
		WeightKg:    form.Get("weight_kg"),
		HeightCm:    form.Get("height_cm"),
		Diagnosis:   form.Get("diagnosis"),
		Allergies:   form.Get("allergies"),
		Medications: form.Get("medications"),
		Sex:         form.Get("sex"),
	}
}
