package storage

import (
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/google/uuid"
)

var (
	// ErrNotFound is returned when no patient has the requested ID.
	ErrNotFound = errors.New("patient not found")
	// ErrIndexOutOfRange is returned when a list position does not exist.
	ErrIndexOutOfRange = errors.New("index out of range")
)

// PatientRepo holds the authoritative patient list in memory and persists it
// to a CSV file with a full rewrite after every mutation.
// It satisfies service.PatientStore.
type PatientRepo struct {
	mu       sync.RWMutex
	path     string
	patients []Patient
	save     func(path string, patients []Patient) error
}

// OpenPatientRepo loads the CSV file at path and assigns an ID to each row.
func OpenPatientRepo(path string) (*PatientRepo, error) {
	patients, err := Load(path)
	if err != nil {
		return nil, err
	}
	for i := range patients {
		patients[i].ID = uuid.New().String()
	}

	return &PatientRepo{
		path:     path,
		patients: patients,
		save:     SaveAll,
	}, nil
}

// Path returns the backing file path.
func (r *PatientRepo) Path() string {
	return r.path
}

// Len returns the number of patients.
func (r *PatientRepo) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.patients)
}

// List returns a copy of every patient in file order.
func (r *PatientRepo) List() []Patient {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.patients)
}

// Search returns the patients whose full name contains query, ignoring case.
func (r *PatientRepo) Search(query string) []Patient {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return Search(r.patients, query)
}

// Get returns the patient with the given ID.
func (r *PatientRepo) Get(id string) (Patient, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i := r.indexOf(id)
	if i < 0 {
		return Patient{}, ErrNotFound
	}
	return r.patients[i], nil
}

// Add appends p to the list under a new ID and rewrites the file.
func (r *PatientRepo) Add(p Patient) (Patient, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p.ID = uuid.New().String()
	next := append(slices.Clone(r.patients), p)
	if err := r.commit(next); err != nil {
		return Patient{}, err
	}
	return p, nil
}

// Update replaces the fields of the patient with the given ID, keeping the ID,
// and rewrites the file.
func (r *PatientRepo) Update(id string, p Patient) (Patient, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return Patient{}, ErrNotFound
	}
	return r.replaceAt(i, p)
}

// UpdateAt replaces the patient at authoritative index i and rewrites the file.
func (r *PatientRepo) UpdateAt(i int, p Patient) (Patient, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if i < 0 || i >= len(r.patients) {
		return Patient{}, fmt.Errorf("update at %d of %d: %w", i, len(r.patients), ErrIndexOutOfRange)
	}
	return r.replaceAt(i, p)
}

// Delete removes the patient with the given ID and rewrites the file.
func (r *PatientRepo) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return ErrNotFound
	}
	return r.commit(slices.Delete(slices.Clone(r.patients), i, i+1))
}

// DeleteAt removes the patient displayed at visibleIndex of view.
// view is a result of List or Search; the row is resolved through its ID,
// so a filtered view never deletes the wrong patient.
func (r *PatientRepo) DeleteAt(view []Patient, visibleIndex int) error {
	if visibleIndex < 0 || visibleIndex >= len(view) {
		return fmt.Errorf("delete at %d of %d: %w", visibleIndex, len(view), ErrIndexOutOfRange)
	}
	return r.Delete(view[visibleIndex].ID)
}

func (r *PatientRepo) replaceAt(i int, p Patient) (Patient, error) {
	p.ID = r.patients[i].ID
	next := slices.Clone(r.patients)
	next[i] = p
	if err := r.commit(next); err != nil {
		return Patient{}, err
	}
	return p, nil
}

// commit persists next and installs it only if the write succeeded.
// Callers must hold the write lock.
func (r *PatientRepo) commit(next []Patient) error {
	if err := r.save(r.path, next); err != nil {
		return err
	}
	r.patients = next
	return nil
}

func (r *PatientRepo) indexOf(id string) int {
	if id == "" {
		return -1
	}
	return slices.IndexFunc(r.patients, func(p Patient) bool {
		return p.ID == id
	})
}
