package responses

import "careform-service/internal/pkg/models"

// PatientRow is the flattened list projection derived from a PatientRecord.
// Source records are never mutated; rows copy the attributes the list screen
// displays and filters on.
type PatientRow struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	FirstName   string   `json:"firstName"`
	LastName    string   `json:"lastName"`
	DateOfBirth string   `json:"dateOfBirth"`
	Email       string   `json:"email"`
	Phone       string   `json:"phone"`
	Status      string   `json:"status"`
	Conditions  []string `json:"conditions"`
	LastVisit   string   `json:"lastVisit"`
}

type SubmitPatient struct {
	ID      string `json:"id"`
	Created bool   `json:"created"`
}

type ValidateField struct {
	Valid   bool   `json:"valid"`
	Message string `json:"message,omitempty"`
}

type PatientForm struct {
	State     string               `json:"state"`
	DraftKey  string               `json:"draftKey"`
	FromDraft bool                 `json:"fromDraft"`
	Record    models.PatientRecord `json:"record"`
}
