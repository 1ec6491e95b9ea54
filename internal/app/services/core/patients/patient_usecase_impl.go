package patients

import (
	"context"
	"errors"
	"fmt"
	"time"

	"careform-service/internal/app/config"
	"careform-service/internal/app/contracts"
	"careform-service/internal/app/services/core/drafts"
	"careform-service/internal/app/services/core/forms"
	"careform-service/internal/app/services/core/schema"
	"careform-service/internal/pkg/constvars"
	"careform-service/internal/pkg/dto/requests"
	"careform-service/internal/pkg/dto/responses"
	"careform-service/internal/pkg/exceptions"
	"careform-service/internal/pkg/models"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

// cachedRecordSet is the redis-cached projection source. Version changes on
// every refetch, which is what lets the search index skip recomputation.
type cachedRecordSet struct {
	Version int64                  `json:"version"`
	Records []models.PatientRecord `json:"records"`
}

type patientUsecase struct {
	RecordClient        contracts.PatientRecordClient
	RedisRepository     contracts.RedisRepository
	Locker              contracts.LockerService
	NotificationService contracts.NotificationService
	DraftUsecase        drafts.DraftUsecase
	Schema              *schema.Schema
	Index               *SearchIndex
	InternalConfig      *config.InternalConfig
	Log                 *zap.Logger
}

func NewPatientUsecase(
	recordClient contracts.PatientRecordClient,
	redisRepository contracts.RedisRepository,
	lockerService contracts.LockerService,
	notificationService contracts.NotificationService,
	draftUsecase drafts.DraftUsecase,
	recordSchema *schema.Schema,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) PatientUsecase {
	return &patientUsecase{
		RecordClient:        recordClient,
		RedisRepository:     redisRepository,
		Locker:              lockerService,
		NotificationService: notificationService,
		DraftUsecase:        draftUsecase,
		Schema:              recordSchema,
		Index:               NewSearchIndex(),
		InternalConfig:      internalConfig,
		Log:                 logger,
	}
}

func (uc *patientUsecase) ListPatients(ctx context.Context, searchTerm string) ([]responses.PatientRow, error) {
	recordSet, err := uc.recordSet(ctx)
	if err != nil {
		return nil, err
	}

	rows := uc.Index.Rows(recordSet.Version, recordSet.Records, searchTerm)
	uc.Log.Debug("patientUsecase.ListPatients filtered rows",
		zap.String(constvars.LoggingSearchTermKey, searchTerm),
		zap.Int(constvars.LoggingRecordCountKey, len(rows)),
	)
	return rows, nil
}

func (uc *patientUsecase) GetPatient(ctx context.Context, patientID string) (*models.PatientRecord, error) {
	cacheKey := fmt.Sprintf(constvars.RedisKeyPatientFormat, patientID)

	cached, err := uc.RedisRepository.Get(ctx, cacheKey)
	if err != nil {
		uc.Log.Warn("patientUsecase.GetPatient cache read failed, falling back to upstream",
			zap.String(constvars.LoggingRedisKey, cacheKey),
			zap.Error(err),
		)
	} else if cached != "" {
		record := new(models.PatientRecord)
		if err := json.Unmarshal([]byte(cached), record); err == nil {
			return record, nil
		}
	}

	record, err := uc.RecordClient.FetchOne(ctx, patientID)
	if err != nil {
		return nil, err
	}

	ttl := time.Duration(uc.InternalConfig.App.ListCacheTTLSeconds) * time.Second
	if err := uc.RedisRepository.Set(ctx, cacheKey, record, ttl); err != nil {
		uc.Log.Warn("patientUsecase.GetPatient cache write failed",
			zap.String(constvars.LoggingRedisKey, cacheKey),
			zap.Error(err),
		)
	}
	return record, nil
}

// Submit orchestrates the save: final validation, list normalization, the
// create-or-update call, then cache invalidation, draft clearing and a
// success notification. A failed call leaves the draft untouched so no work
// is lost.
func (uc *patientUsecase) Submit(ctx context.Context, request *requests.SubmitPatient) (*responses.SubmitPatient, error) {
	draftKey := drafts.DraftKeyFor(request.PatientID)
	lockKey := fmt.Sprintf(constvars.RedisKeySubmitLockFormat, draftKey)
	lockTTL := time.Duration(uc.InternalConfig.App.SubmitLockTTLSeconds) * time.Second

	acquired, lockValue, err := uc.Locker.TryLock(ctx, lockKey, lockTTL)
	if err != nil {
		return nil, err
	}
	if !acquired {
		return nil, exceptions.ErrSubmissionInFlight(nil)
	}
	defer uc.Locker.Unlock(ctx, lockKey, lockValue)

	record := request.Record
	if fieldErrors := uc.Schema.Validate(&record); len(fieldErrors) > 0 {
		uc.Log.Info("patientUsecase.Submit validation failed",
			zap.String(constvars.LoggingDraftKeyKey, draftKey),
			zap.Int(constvars.LoggingFieldCountKey, len(fieldErrors)),
		)
		return nil, exceptions.ErrRecordValidation(fieldErrors)
	}

	forms.NormalizeForSubmit(&record)

	var saved *models.PatientRecord
	created := request.PatientID == ""
	if created {
		saved, err = uc.RecordClient.Create(ctx, &record)
	} else {
		saved, err = uc.RecordClient.Update(ctx, request.PatientID, &record)
	}
	if err != nil {
		uc.notifyFailure(ctx, err)
		return nil, err
	}

	uc.invalidateCaches(ctx, saved.ID)

	if err := uc.DraftUsecase.ClearDraft(ctx, draftKey); err != nil {
		uc.Log.Error("patientUsecase.Submit failed to clear draft after save",
			zap.String(constvars.LoggingDraftKeyKey, draftKey),
			zap.Error(err),
		)
	}

	message := "Patient updated successfully!"
	if created {
		message = "Patient created successfully!"
	}
	uc.notify(ctx, &models.Notification{
		Message:    message,
		Severity:   models.NotificationSeveritySuccess,
		DurationMs: constvars.NotificationAutoDismissMs,
	})

	return &responses.SubmitPatient{ID: saved.ID, Created: created}, nil
}

func (uc *patientUsecase) ValidateField(ctx context.Context, request *requests.ValidateField) *responses.ValidateField {
	message := uc.Schema.ValidateValue(request.Path, request.Value)
	return &responses.ValidateField{
		Valid:   message == "",
		Message: message,
	}
}

func (uc *patientUsecase) ValidateSection(ctx context.Context, section string, record *models.PatientRecord) map[string]string {
	return uc.Schema.ValidateSection(section, record)
}

func (uc *patientUsecase) recordSet(ctx context.Context) (*cachedRecordSet, error) {
	cached, err := uc.RedisRepository.Get(ctx, constvars.RedisKeyPatientList)
	if err != nil {
		uc.Log.Warn("patientUsecase.recordSet cache read failed, falling back to upstream",
			zap.String(constvars.LoggingRedisKey, constvars.RedisKeyPatientList),
			zap.Error(err),
		)
	} else if cached != "" {
		recordSet := new(cachedRecordSet)
		if err := json.Unmarshal([]byte(cached), recordSet); err == nil {
			return recordSet, nil
		}
	}

	records, err := uc.RecordClient.FetchAll(ctx)
	if err != nil {
		return nil, err
	}

	recordSet := &cachedRecordSet{
		Version: time.Now().UnixNano(),
		Records: records,
	}
	ttl := time.Duration(uc.InternalConfig.App.ListCacheTTLSeconds) * time.Second
	if err := uc.RedisRepository.Set(ctx, constvars.RedisKeyPatientList, recordSet, ttl); err != nil {
		uc.Log.Warn("patientUsecase.recordSet cache write failed",
			zap.String(constvars.LoggingRedisKey, constvars.RedisKeyPatientList),
			zap.Error(err),
		)
	}
	return recordSet, nil
}

func (uc *patientUsecase) invalidateCaches(ctx context.Context, patientID string) {
	if err := uc.RedisRepository.Delete(ctx, constvars.RedisKeyPatientList); err != nil {
		uc.Log.Warn("patientUsecase.invalidateCaches failed to drop list cache", zap.Error(err))
	}
	if patientID != "" {
		cacheKey := fmt.Sprintf(constvars.RedisKeyPatientFormat, patientID)
		if err := uc.RedisRepository.Delete(ctx, cacheKey); err != nil {
			uc.Log.Warn("patientUsecase.invalidateCaches failed to drop record cache",
				zap.String(constvars.LoggingRedisKey, cacheKey),
				zap.Error(err),
			)
		}
	}
}

// notifyFailure scales severity to the transport failure class: client
// errors warn and auto-dismiss, server errors and no-response stay on screen.
func (uc *patientUsecase) notifyFailure(ctx context.Context, err error) {
	notification := &models.Notification{
		Message:    "Error saving patient: " + clientMessage(err),
		Severity:   models.NotificationSeverityError,
		Persistent: true,
	}

	var customErr *exceptions.CustomError
	if errors.As(err, &customErr) && customErr.StatusCode < 500 {
		notification.Severity = models.NotificationSeverityWarning
		notification.Persistent = false
		notification.DurationMs = constvars.NotificationWarningMs
	}

	uc.notify(ctx, notification)
}

func (uc *patientUsecase) notify(ctx context.Context, notification *models.Notification) {
	if err := uc.NotificationService.Publish(ctx, notification); err != nil {
		uc.Log.Error("patientUsecase.notify failed to publish notification", zap.Error(err))
	}
}

func clientMessage(err error) string {
	var customErr *exceptions.CustomError
	if errors.As(err, &customErr) {
		return customErr.ClientMessage
	}
	return constvars.ErrClientSomethingWrongWithApplication
}
