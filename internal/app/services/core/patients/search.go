package patients

import (
	"strings"
	"sync"

	"careform-service/internal/pkg/dto/responses"
	"careform-service/internal/pkg/models"
)

// DeriveDisplayRows projects the fetched record set into list rows: a
// trimmed display name and a flattened last-visit value per record. Source
// order is preserved and source records are never touched.
func DeriveDisplayRows(records []models.PatientRecord) []responses.PatientRow {
	rows := make([]responses.PatientRow, 0, len(records))
	for _, record := range records {
		rows = append(rows, responses.PatientRow{
			ID:          record.ID,
			Name:        strings.TrimSpace(record.FirstName + " " + record.LastName),
			FirstName:   record.FirstName,
			LastName:    record.LastName,
			DateOfBirth: record.DateOfBirth,
			Email:       record.Email,
			Phone:       record.Phone,
			Status:      record.MedicalInfo.Status,
			Conditions:  record.MedicalInfo.Conditions,
			LastVisit:   record.MedicalInfo.LastVisit,
		})
	}
	return rows
}

// FilterRows applies the list search: case-insensitive substring over first
// name, last name, email, status and every condition, plus a literal
// substring match on the phone number. An empty term returns the rows
// untouched, order preserved.
func FilterRows(rows []responses.PatientRow, searchTerm string) []responses.PatientRow {
	if searchTerm == "" {
		return rows
	}

	lowerTerm := strings.ToLower(searchTerm)
	filtered := make([]responses.PatientRow, 0, len(rows))
	for _, row := range rows {
		if rowMatches(row, searchTerm, lowerTerm) {
			filtered = append(filtered, row)
		}
	}
	return filtered
}

func rowMatches(row responses.PatientRow, rawTerm, lowerTerm string) bool {
	if strings.Contains(strings.ToLower(row.FirstName), lowerTerm) ||
		strings.Contains(strings.ToLower(row.LastName), lowerTerm) ||
		strings.Contains(strings.ToLower(row.Email), lowerTerm) ||
		strings.Contains(row.Phone, rawTerm) ||
		strings.Contains(strings.ToLower(row.Status), lowerTerm) {
		return true
	}
	for _, condition := range row.Conditions {
		if strings.Contains(strings.ToLower(condition), lowerTerm) {
			return true
		}
	}
	return false
}

// SearchIndex memoizes the derived rows for one (record-set version, term)
// pair, so repeated identical queries against an unchanged record set reuse
// the previous projection instead of recomputing it per request.
type SearchIndex struct {
	mu      sync.Mutex
	version int64
	term    string
	rows    []responses.PatientRow
}

func NewSearchIndex() *SearchIndex {
	return &SearchIndex{}
}

func (idx *SearchIndex) Rows(version int64, records []models.PatientRecord, searchTerm string) []responses.PatientRow {
	idx.mu.Lock()
	defer idx.mu.Unlock()

	if idx.rows != nil && idx.version == version && idx.term == searchTerm {
		return idx.rows
	}

	rows := FilterRows(DeriveDisplayRows(records), searchTerm)
	idx.version = version
	idx.term = searchTerm
	idx.rows = rows
	return rows
}
