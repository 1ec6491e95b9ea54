package requests

import "careform-service/internal/pkg/models"

type SubmitPatient struct {
	// PatientID is empty for create mode.
	PatientID string               `json:"-"`
	Record    models.PatientRecord `json:"record"`
}

type ValidateField struct {
	Path  string      `json:"path"`
	Value interface{} `json:"value"`
}

type ValidateSection struct {
	Section string               `json:"section"`
	Record  models.PatientRecord `json:"record"`
}

type SaveDraft struct {
	Record models.PatientRecord `json:"record"`
}
