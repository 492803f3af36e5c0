package storage

// FieldCount is the number of positional fields in a stored patient row.
const FieldCount = 8

// Patient represents one patient row in the CSV store.
// Field order matches the column order of the file.
type Patient struct {
	ID          string // UUID assigned at load/add time, never persisted
	FullName    string // Search key
	Age         string
	WeightKg    string
	HeightCm    string
	Diagnosis   string
	Allergies   string
	Medications string
	Sex         string
}

// Row returns the patient as the eight positional fields written to the file.
func (p Patient) Row() []string {
	return []string{
		p.FullName,
		p.Age,
		p.WeightKg,
		p.HeightCm,
		p.Diagnosis,
		p.Allergies,
		p.Medications,
		p.Sex,
	}
}

// PatientFromRow builds a patient from a stored row.
// Short rows are padded with empty strings and extra fields are dropped.
func PatientFromRow(row []string) Patient {
	fields := PadRow(row)
	return Patient{
		FullName:    fields[0],
		Age:         fields[1],
		WeightKg:    fields[2],
		HeightCm:    fields[3],
		Diagnosis:   fields[4],
		Allergies:   fields[5],
		Medications: fields[6],
		Sex:         fields[7],
	}
}

// PadRow returns a copy of row with exactly FieldCount fields.
func PadRow(row []string) []string {
	fields := make([]string, FieldCount)
	copy(fields, row)
	return fields
}
