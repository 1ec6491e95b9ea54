package contracts

import (
	"context"

	"careform-service/internal/pkg/models"
)

// PatientRecordClient is the transport collaborator for the upstream patient
// record store. Implementations classify failures by HTTP status class and
// never interpret them beyond that.
type PatientRecordClient interface {
	FetchAll(ctx context.Context) ([]models.PatientRecord, error)
	FetchOne(ctx context.Context, patientID string) (*models.PatientRecord, error)
	Create(ctx context.Context, record *models.PatientRecord) (*models.PatientRecord, error)
	Update(ctx context.Context, patientID string, record *models.PatientRecord) (*models.PatientRecord, error)
}
