package storage

import "strings"

// Search returns the patients whose full name contains query, ignoring case.
// The result keeps the input order. An empty query matches every patient.
func Search(patients []Patient, query string) []Patient {
	q := strings.ToLower(query)
	matches := make([]Patient, 0, len(patients))
	for _, p := range patients {
		if q == "" || strings.Contains(strings.ToLower(p.FullName), q) {
			matches = append(matches, p)
		}
	}
	return matches
}
