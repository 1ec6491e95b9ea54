package patients

import (
	"context"

	"careform-service/internal/pkg/dto/requests"
	"careform-service/internal/pkg/dto/responses"
	"careform-service/internal/pkg/models"
)

type PatientUsecase interface {
	ListPatients(ctx context.Context, searchTerm string) ([]responses.PatientRow, error)
	GetPatient(ctx context.Context, patientID string) (*models.PatientRecord, error)
	Submit(ctx context.Context, request *requests.SubmitPatient) (*responses.SubmitPatient, error)
	ValidateField(ctx context.Context, request *requests.ValidateField) *responses.ValidateField
	ValidateSection(ctx context.Context, section string, record *models.PatientRecord) map[string]string
}
