package contracts

import (
	"context"

	"careform-service/internal/pkg/models"
)

type DraftRepository interface {
	Upsert(ctx context.Context, draft *models.PatientDraft) error
	FindByKey(ctx context.Context, key string) (*models.PatientDraft, error)
	DeleteByKey(ctx context.Context, key string) error
}
