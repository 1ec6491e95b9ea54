package forms

import (
	"fmt"

	"careform-service/internal/app/services/core/schema"
	"careform-service/internal/pkg/constvars"
	"careform-service/internal/pkg/models"
	"careform-service/internal/pkg/utils"
)

type State string

const (
	StateLoading    State = "loading"
	StateEditing    State = "editing"
	StateSubmitting State = "submitting"
	StateSucceeded  State = "succeeded"
	StateFailed     State = "failed"
)

// Form is one editable form instance over a PatientRecord. Validation and
// collection operations are synchronous and never fail operationally; invalid
// input lands in Errors as data, keyed by field path.
type Form struct {
	State     State
	DraftKey  string
	FromDraft bool
	Record    models.PatientRecord
	Errors    map[string]string

	schema *schema.Schema
}

// NewForm starts a create-mode form with the dashboard's default values.
func NewForm(s *schema.Schema) *Form {
	return &Form{
		State:    StateEditing,
		DraftKey: constvars.DraftKeyNewPatient,
		Record:   NewRecordDefaults(),
		Errors:   make(map[string]string),
		schema:   s,
	}
}

// NewEditForm starts an edit-mode form over an already reconciled record.
func NewEditForm(s *schema.Schema, draftKey string, record models.PatientRecord, fromDraft bool) *Form {
	NormalizeCollections(&record)
	return &Form{
		State:     StateEditing,
		DraftKey:  draftKey,
		FromDraft: fromDraft,
		Record:    record,
		Errors:    make(map[string]string),
		schema:    s,
	}
}

// NewRecordDefaults mirrors the form's initial values: O+ blood type, active
// status, today's last-visit and effective dates, zero amounts, empty
// collections.
func NewRecordDefaults() models.PatientRecord {
	today := utils.TodayYMD()
	return models.PatientRecord{
		MedicalInfo: models.MedicalInfo{
			Allergies:          []string{},
			CurrentMedications: []models.Medication{},
			Conditions:         []string{},
			BloodType:          "O+",
			LastVisit:          today,
			Status:             models.PatientStatusActive,
		},
		Insurance: models.InsuranceInfo{
			EffectiveDate: today,
		},
		Documents: []models.Document{},
	}
}

// NormalizeCollections replaces absent optional collections with empty
// slices so collection operations never run against a nil sequence.
func NormalizeCollections(record *models.PatientRecord) {
	if record.MedicalInfo.Allergies == nil {
		record.MedicalInfo.Allergies = []string{}
	}
	if record.MedicalInfo.CurrentMedications == nil {
		record.MedicalInfo.CurrentMedications = []models.Medication{}
	}
	if record.MedicalInfo.Conditions == nil {
		record.MedicalInfo.Conditions = []string{}
	}
	if record.Documents == nil {
		record.Documents = []models.Document{}
	}
}

// ValidateField revalidates a single field while the user types. The empty
// string means the value is acceptable.
func (f *Form) ValidateField(path string, value interface{}) string {
	message := f.schema.ValidateValue(path, value)
	if message == "" {
		delete(f.Errors, path)
	} else {
		f.Errors[path] = message
	}
	return message
}

// ValidateAll validates the whole record, replacing the error map.
func (f *Form) ValidateAll() bool {
	f.Errors = f.schema.Validate(&f.Record)
	return len(f.Errors) == 0
}

// BeginSubmit moves the form into the submitting state. A form already
// submitting refuses re-entry, which is what disables the submit control.
func (f *Form) BeginSubmit() error {
	if f.State == StateSubmitting {
		return fmt.Errorf("form %s: submission already in flight", f.DraftKey)
	}
	if f.State != StateEditing && f.State != StateFailed {
		return fmt.Errorf("form %s: cannot submit from state %s", f.DraftKey, f.State)
	}
	f.State = StateSubmitting
	return nil
}

// Succeed marks the terminal state after a confirmed save.
func (f *Form) Succeed() {
	f.State = StateSucceeded
}

// Fail returns the form to an editable state with work preserved.
func (f *Form) Fail() {
	f.State = StateFailed
}

// Editing reports whether field edits are currently allowed.
func (f *Form) Editing() bool {
	return f.State == StateEditing || f.State == StateFailed
}
