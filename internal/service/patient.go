package service

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_patient_store.go -package=mocks patientdoc/internal/service PatientStore
//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_patient_service.go -package=mocks patientdoc/internal/service PatientService

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"patientdoc/internal/contextutil"
	"patientdoc/internal/storage"
)

// PatientStore is the record store as seen by the service layer.
type PatientStore interface {
	// List returns every patient in file order.
	List() []storage.Patient
	// Search returns the patients whose name matches query, in file order.
	Search(query string) []storage.Patient
	// Get returns the patient with the given ID.
	Get(id string) (storage.Patient, error)
	// Add appends a patient and persists the full list.
	Add(p storage.Patient) (storage.Patient, error)
	// Update replaces the patient with the given ID and persists the full list.
	Update(id string, p storage.Patient) (storage.Patient, error)
	// UpdateAt replaces the patient at an authoritative index and persists the full list.
	UpdateAt(index int, p storage.Patient) (storage.Patient, error)
	// Delete removes the patient with the given ID and persists the full list.
	Delete(id string) error
	// DeleteAt removes the patient at visibleIndex of view and persists the full list.
	DeleteAt(view []storage.Patient, visibleIndex int) error
	// Len returns the number of patients.
	Len() int
	// Path returns the backing file path.
	Path() string
}

// PatientInput carries the editable fields of a patient.
type PatientInput struct {
	FullName    string
	Age         string
	WeightKg    string
	HeightCm    string
	Diagnosis   string
	Allergies   string
	Medications string
	Sex         string
}

// StoreStats describes the backing store.
type StoreStats struct {
	Path  string
	Count int
}

// PatientService provides patient record management.
type PatientService interface {
	// List returns all patients in stored order.
	List(ctx context.Context) []storage.Patient
	// Search returns the patients whose name contains query, ignoring case.
	Search(ctx context.Context, query string) []storage.Patient
	// Get returns one patient by ID.
	Get(ctx context.Context, id string) (storage.Patient, error)
	// Add creates a new patient.
	Add(ctx context.Context, in PatientInput) (storage.Patient, error)
	// Update replaces the fields of the patient with the given ID.
	Update(ctx context.Context, id string, in PatientInput) (storage.Patient, error)
	// UpdateAt replaces the fields of the patient at an authoritative index.
	UpdateAt(ctx context.Context, index int, in PatientInput) (storage.Patient, error)
	// Delete removes the patient with the given ID.
	Delete(ctx context.Context, id string) error
	// DeleteVisible removes the patient shown at visibleIndex of the search
	// results for query and returns it.
	DeleteVisible(ctx context.Context, query string, visibleIndex int) (storage.Patient, error)
	// Stats reports the backing file and record count.
	Stats(ctx context.Context) StoreStats
}

// patientService implements PatientService.
type patientService struct {
	store PatientStore
}

// NewPatientService creates a new PatientService.
func NewPatientService(store PatientStore) PatientService {
	return &patientService{
		store: store,
	}
}

func (s *patientService) List(ctx context.Context) []storage.Patient {
	return s.store.List()
}

func (s *patientService) Search(ctx context.Context, query string) []storage.Patient {
	results := s.store.Search(query)
	contextutil.LoggerFromContext(ctx).DebugContext(ctx, "patient search", "query", query, "matches", len(results))
	return results
}

func (s *patientService) Get(ctx context.Context, id string) (storage.Patient, error) {
	if err := validateID(id); err != nil {
		return storage.Patient{}, err
	}
	p, err := s.store.Get(id)
	if err != nil {
		return storage.Patient{}, s.mapError(ctx, err, "failed to get patient", "id", id)
	}
	return p, nil
}

func (s *patientService) Add(ctx context.Context, in PatientInput) (storage.Patient, error) {
	logger := contextutil.LoggerFromContext(ctx)

	p, err := s.store.Add(in.toPatient())
	if err != nil {
		return storage.Patient{}, s.mapError(ctx, err, "failed to add patient")
	}

	logger.InfoContext(ctx, "patient added", "id", p.ID, "count", s.store.Len())
	return p, nil
}

func (s *patientService) Update(ctx context.Context, id string, in PatientInput) (storage.Patient, error) {
	logger := contextutil.LoggerFromContext(ctx)

	if err := validateID(id); err != nil {
		logger.WarnContext(ctx, "update without selection")
		return storage.Patient{}, err
	}

	p, err := s.store.Update(id, in.toPatient())
	if err != nil {
		return storage.Patient{}, s.mapError(ctx, err, "failed to update patient", "id", id)
	}

	logger.InfoContext(ctx, "patient updated", "id", p.ID)
	return p, nil
}

func (s *patientService) UpdateAt(ctx context.Context, index int, in PatientInput) (storage.Patient, error) {
	logger := contextutil.LoggerFromContext(ctx)

	p, err := s.store.UpdateAt(index, in.toPatient())
	if err != nil {
		return storage.Patient{}, s.mapError(ctx, err, "failed to update patient", "index", index)
	}

	logger.InfoContext(ctx, "patient updated", "id", p.ID, "index", index)
	return p, nil
}

func (s *patientService) Delete(ctx context.Context, id string) error {
	logger := contextutil.LoggerFromContext(ctx)

	if err := validateID(id); err != nil {
		logger.WarnContext(ctx, "delete without selection")
		return err
	}

	if err := s.store.Delete(id); err != nil {
		return s.mapError(ctx, err, "failed to delete patient", "id", id)
	}

	logger.InfoContext(ctx, "patient deleted", "id", id, "count", s.store.Len())
	return nil
}

func (s *patientService) DeleteVisible(ctx context.Context, query string, visibleIndex int) (storage.Patient, error) {
	logger := contextutil.LoggerFromContext(ctx)

	view := s.store.Search(query)
	if visibleIndex < 0 || visibleIndex >= len(view) {
		logger.WarnContext(ctx, "visible index out of range", "query", query, "index", visibleIndex, "visible", len(view))
		return storage.Patient{}, &ValidationError{
			Field:   "index",
			Message: fmt.Sprintf("%d is not a listed row (%d shown)", visibleIndex, len(view)),
		}
	}

	target := view[visibleIndex]
	if err := s.store.DeleteAt(view, visibleIndex); err != nil {
		return storage.Patient{}, s.mapError(ctx, err, "failed to delete patient", "id", target.ID)
	}

	logger.InfoContext(ctx, "patient deleted", "id", target.ID, "query", query, "visible_index", visibleIndex)
	return target, nil
}

func (s *patientService) Stats(ctx context.Context) StoreStats {
	return StoreStats{
		Path:  s.store.Path(),
		Count: s.store.Len(),
	}
}

// mapError converts store errors into the service error taxonomy and logs them.
func (s *patientService) mapError(ctx context.Context, err error, msg string, attrs ...any) error {
	logger := contextutil.LoggerFromContext(ctx)

	switch {
	case errors.Is(err, storage.ErrNotFound):
		logger.WarnContext(ctx, msg, append(attrs, "error", err)...)
		return WrapError(ErrNotFound, msg)
	case errors.Is(err, storage.ErrIndexOutOfRange):
		logger.WarnContext(ctx, msg, append(attrs, "error", err)...)
		return &ValidationError{Field: "index", Message: err.Error()}
	default:
		logger.ErrorContext(ctx, msg, append(attrs, "error", err)...)
		return storageError(err, msg)
	}
}

func validateID(id string) error {
	if strings.TrimSpace(id) == "" {
		return &ValidationError{
			Field:   "id",
			Message: "no patient selected",
		}
	}
	return nil
}

// toPatient copies the fields exactly as given; they are free text.
func (in PatientInput) toPatient() storage.Patient {
	return storage.Patient{
		FullName:    in.FullName,
		Age:         in.Age,
		WeightKg:    in.WeightKg,
		HeightCm:    in.HeightCm,
		Diagnosis:   in.Diagnosis,
		Allergies:   in.Allergies,
		Medications: in.Medications,
		Sex:         in.Sex,
	}
}

// InputFromPatient returns the editable fields of p.
func InputFromPatient(p storage.Patient) PatientInput {
	return PatientInput{
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
