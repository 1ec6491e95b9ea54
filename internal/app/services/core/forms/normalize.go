package forms

import (
	"strings"

	"careform-service/internal/pkg/models"
)

// SplitListInput turns one free-text input into a list. Splitting happens
// only when a comma is present; a lone comma-free value is kept verbatim as
// a single item, untrimmed, matching the form's historical behavior.
func SplitListInput(value string) []string {
	if len(value) == 0 {
		return []string{}
	}
	if !strings.Contains(value, ",") {
		return []string{value}
	}
	parts := strings.Split(value, ",")
	items := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			items = append(items, trimmed)
		}
	}
	return items
}

// NormalizeList trims every entry and drops the empties. Applied to
// allergies and conditions at submit time.
func NormalizeList(items []string) []string {
	normalized := make([]string, 0, len(items))
	for _, item := range items {
		trimmed := strings.TrimSpace(item)
		if trimmed != "" {
			normalized = append(normalized, trimmed)
		}
	}
	return normalized
}

// NormalizeForSubmit prepares a validated record for the upstream call:
// list fields are normalized and client-local identity tokens are stripped,
// since the backend assigns its own item ids.
func NormalizeForSubmit(record *models.PatientRecord) {
	record.MedicalInfo.Allergies = NormalizeList(record.MedicalInfo.Allergies)
	record.MedicalInfo.Conditions = NormalizeList(record.MedicalInfo.Conditions)

	for i := range record.MedicalInfo.CurrentMedications {
		record.MedicalInfo.CurrentMedications[i].LocalID = ""
	}
	for i := range record.Documents {
		record.Documents[i].LocalID = ""
	}
}
