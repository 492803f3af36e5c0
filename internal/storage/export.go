package storage

import (
	"context"
	"database/sql"
	"fmt"
)

// Export replaces the contents of the patients table with the given patients.
// position keeps the file order. The whole export runs in one transaction.
func Export(ctx context.Context, db *sql.DB, patients []Patient) (err error) {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin export: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if _, err = tx.ExecContext(ctx, "DELETE FROM patients"); err != nil {
		return fmt.Errorf("failed to clear patients table: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO patients (id, position, full_name, age, weight_kg, height_cm, diagnosis, allergies, medications, sex)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare export insert: %w", err)
	}
	defer stmt.Close()

	for i, p := range patients {
		_, err = stmt.ExecContext(ctx,
			p.ID, i, p.FullName, p.Age, p.WeightKg, p.HeightCm,
			p.Diagnosis, p.Allergies, p.Medications, p.Sex,
		)
		if err != nil {
			return fmt.Errorf("failed to export patient %d: %w", i, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit export: %w", err)
	}
	return nil
}
