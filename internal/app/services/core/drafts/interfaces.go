package drafts

import (
	"context"

	"careform-service/internal/app/services/core/forms"
	"careform-service/internal/pkg/models"
)

type DraftUsecase interface {
	SaveDraft(ctx context.Context, draftKey string, record *models.PatientRecord) error
	LoadDraft(ctx context.Context, draftKey string) (*models.PatientRecord, error)
	ClearDraft(ctx context.Context, draftKey string) error

	// OpenForm reconciles the authoritative record with any persisted draft
	// and returns the editable form instance. An empty patientID opens a
	// create-mode form under the sentinel key.
	OpenForm(ctx context.Context, patientID string) (*forms.Form, error)

	AppendMedication(ctx context.Context, draftKey string) (*models.PatientRecord, error)
	RemoveMedication(ctx context.Context, draftKey string, index int) (*models.PatientRecord, error)
	AppendDocument(ctx context.Context, draftKey string) (*models.PatientRecord, error)
	RemoveDocument(ctx context.Context, draftKey string, index int) (*models.PatientRecord, error)
}
