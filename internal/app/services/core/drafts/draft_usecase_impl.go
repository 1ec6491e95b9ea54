package drafts

import (
	"context"
	"time"

	"careform-service/internal/app/contracts"
	"careform-service/internal/app/services/core/forms"
	"careform-service/internal/app/services/core/schema"
	"careform-service/internal/pkg/constvars"
	"careform-service/internal/pkg/models"

	"go.uber.org/zap"
)

type draftUsecase struct {
	DraftRepository contracts.DraftRepository
	RecordClient    contracts.PatientRecordClient
	Schema          *schema.Schema
	Log             *zap.Logger
}

func NewDraftUsecase(
	draftRepository contracts.DraftRepository,
	recordClient contracts.PatientRecordClient,
	recordSchema *schema.Schema,
	logger *zap.Logger,
) DraftUsecase {
	return &draftUsecase{
		DraftRepository: draftRepository,
		RecordClient:    recordClient,
		Schema:          recordSchema,
		Log:             logger,
	}
}

// DraftKeyFor maps a patient identity onto its draft key, falling back to
// the sentinel for a record that has not been created yet.
func DraftKeyFor(patientID string) string {
	if patientID == "" {
		return constvars.DraftKeyNewPatient
	}
	return patientID
}

func (uc *draftUsecase) SaveDraft(ctx context.Context, draftKey string, record *models.PatientRecord) error {
	draft := &models.PatientDraft{
		Key:           draftKey,
		SchemaVersion: constvars.DraftSchemaVersion,
		Record:        *record,
		SavedAt:       time.Now().UTC(),
	}
	return uc.DraftRepository.Upsert(ctx, draft)
}

func (uc *draftUsecase) LoadDraft(ctx context.Context, draftKey string) (*models.PatientRecord, error) {
	draft, err := uc.DraftRepository.FindByKey(ctx, draftKey)
	if err != nil {
		return nil, err
	}
	if draft == nil {
		return nil, nil
	}
	if draft.SchemaVersion != constvars.DraftSchemaVersion {
		uc.Log.Warn("draftUsecase.LoadDraft ignoring draft with stale schema version",
			zap.String(constvars.LoggingDraftKeyKey, draftKey),
			zap.Int("schema_version", draft.SchemaVersion),
		)
		return nil, nil
	}
	record := draft.Record
	return &record, nil
}

func (uc *draftUsecase) ClearDraft(ctx context.Context, draftKey string) error {
	return uc.DraftRepository.DeleteByKey(ctx, draftKey)
}

// OpenForm implements the reconciliation rule: the draft, when present,
// replaces the fetched record wholesale; it is never deep-merged with it.
func (uc *draftUsecase) OpenForm(ctx context.Context, patientID string) (*forms.Form, error) {
	draftKey := DraftKeyFor(patientID)

	draft, err := uc.LoadDraft(ctx, draftKey)
	if err != nil {
		return nil, err
	}
	if draft != nil {
		return forms.NewEditForm(uc.Schema, draftKey, *draft, true), nil
	}

	if patientID == "" {
		return forms.NewForm(uc.Schema), nil
	}

	fetched, err := uc.RecordClient.FetchOne(ctx, patientID)
	if err != nil {
		return nil, err
	}
	return forms.NewEditForm(uc.Schema, draftKey, *fetched, false), nil
}

func (uc *draftUsecase) AppendMedication(ctx context.Context, draftKey string) (*models.PatientRecord, error) {
	return uc.mutateForm(ctx, draftKey, func(form *forms.Form) {
		form.AppendMedication()
	})
}

func (uc *draftUsecase) RemoveMedication(ctx context.Context, draftKey string, index int) (*models.PatientRecord, error) {
	return uc.mutateForm(ctx, draftKey, func(form *forms.Form) {
		form.RemoveMedication(index)
	})
}

func (uc *draftUsecase) AppendDocument(ctx context.Context, draftKey string) (*models.PatientRecord, error) {
	return uc.mutateForm(ctx, draftKey, func(form *forms.Form) {
		form.AppendDocument()
	})
}

func (uc *draftUsecase) RemoveDocument(ctx context.Context, draftKey string, index int) (*models.PatientRecord, error) {
	return uc.mutateForm(ctx, draftKey, func(form *forms.Form) {
		form.RemoveDocument(index)
	})
}

// mutateForm applies one collection operation to the reconciled form and
// persists the result as the new draft, so item identity survives reloads.
func (uc *draftUsecase) mutateForm(ctx context.Context, draftKey string, mutate func(*forms.Form)) (*models.PatientRecord, error) {
	patientID := ""
	if draftKey != constvars.DraftKeyNewPatient {
		patientID = draftKey
	}

	form, err := uc.OpenForm(ctx, patientID)
	if err != nil {
		return nil, err
	}

	mutate(form)

	if err := uc.SaveDraft(ctx, draftKey, &form.Record); err != nil {
		return nil, err
	}
	return &form.Record, nil
}
