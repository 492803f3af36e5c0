package storage

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/google/renameio/v2/maybe"
)

// Load reads all patients from the CSV file at path.
// A missing file is an empty store, not an error.
// Rows with fewer than FieldCount fields are padded; longer rows are truncated.
// Loaded patients have no ID; PatientRepo assigns them.
func Load(path string) ([]Patient, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return []Patient{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open patients file: %w", err)
	}
	defer func() {
		_ = f.Close()
	}()

	return readPatients(f, path)
}

func readPatients(r io.Reader, path string) ([]Patient, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // rows of any width are tolerated

	patients := []Patient{}
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read patients file: %w", err)
		}
		if len(row) == 0 {
			continue
		}
		if len(row) > FieldCount {
			line, _ := reader.FieldPos(0)
			slog.Warn("patient row has extra fields, keeping the first ones",
				"path", path, "line", line, "fields", len(row), "kept", FieldCount)
		}
		patients = append(patients, PatientFromRow(row))
	}

	return patients, nil
}

// SaveAll replaces the CSV file at path with exactly the given patients.
// On unix the rows go to a temporary file that is synced and renamed over
// path, so a crash leaves either the old or the new file.
func SaveAll(path string, patients []Patient) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	var buf bytes.Buffer
	if err := writePatients(&buf, patients); err != nil {
		return err
	}

	if err := maybe.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("failed to replace patients file: %w", err)
	}
	return nil
}

func writePatients(w io.Writer, patients []Patient) error {
	writer := csv.NewWriter(w)
	for _, p := range patients {
		if err := writer.Write(p.Row()); err != nil {
			return fmt.Errorf("failed to write patient row: %w", err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to flush patients file: %w", err)
	}
	return nil
}
