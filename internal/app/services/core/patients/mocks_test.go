package patients

import (
	"context"
	"fmt"
	"time"

	"careform-service/internal/app/services/core/forms"
	"careform-service/internal/pkg/exceptions"
	"careform-service/internal/pkg/models"

	"github.com/goccy/go-json"
)

type mockRecordClient struct {
	records map[string]*models.PatientRecord

	FetchAllCalls int
	FetchOneCalls int
	CreateCalls   int
	UpdateCalls   int

	FetchAllErr error
	CreateErr   error
	UpdateErr   error

	LastSubmitted *models.PatientRecord
}

func newMockRecordClient(records ...models.PatientRecord) *mockRecordClient {
	client := &mockRecordClient{records: make(map[string]*models.PatientRecord)}
	for i := range records {
		record := records[i]
		client.records[record.ID] = &record
	}
	return client
}

func (m *mockRecordClient) FetchAll(ctx context.Context) ([]models.PatientRecord, error) {
	m.FetchAllCalls++
	if m.FetchAllErr != nil {
		return nil, m.FetchAllErr
	}
	all := make([]models.PatientRecord, 0, len(m.records))
	for _, record := range m.records {
		all = append(all, *record)
	}
	return all, nil
}

func (m *mockRecordClient) FetchOne(ctx context.Context, patientID string) (*models.PatientRecord, error) {
	m.FetchOneCalls++
	record, ok := m.records[patientID]
	if !ok {
		return nil, exceptions.ErrUpstreamRecordNotFound(nil, patientID)
	}
	copied := *record
	return &copied, nil
}

func (m *mockRecordClient) Create(ctx context.Context, record *models.PatientRecord) (*models.PatientRecord, error) {
	m.CreateCalls++
	if m.CreateErr != nil {
		return nil, m.CreateErr
	}
	saved := *record
	saved.ID = fmt.Sprintf("pat-%03d", len(m.records)+1)
	m.records[saved.ID] = &saved
	m.LastSubmitted = record
	return &saved, nil
}

func (m *mockRecordClient) Update(ctx context.Context, patientID string, record *models.PatientRecord) (*models.PatientRecord, error) {
	m.UpdateCalls++
	if m.UpdateErr != nil {
		return nil, m.UpdateErr
	}
	saved := *record
	saved.ID = patientID
	m.records[patientID] = &saved
	m.LastSubmitted = record
	return &saved, nil
}

type mockRedisRepository struct {
	store  map[string]string
	GetErr error
}

func newMockRedisRepository() *mockRedisRepository {
	return &mockRedisRepository{store: make(map[string]string)}
}

func (m *mockRedisRepository) Set(ctx context.Context, key string, value interface{}, exp time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	m.store[key] = string(data)
	return nil
}

func (m *mockRedisRepository) Get(ctx context.Context, key string) (string, error) {
	if m.GetErr != nil {
		return "", m.GetErr
	}
	return m.store[key], nil
}

func (m *mockRedisRepository) Delete(ctx context.Context, key string) error {
	delete(m.store, key)
	return nil
}

func (m *mockRedisRepository) TrySetNX(ctx context.Context, key string, value interface{}, exp time.Duration) (bool, error) {
	if _, exists := m.store[key]; exists {
		return false, nil
	}
	return true, m.Set(ctx, key, value, exp)
}

type mockLocker struct {
	Held        bool
	LockCalls   int
	UnlockCalls int
}

func (m *mockLocker) TryLock(ctx context.Context, key string, expiration time.Duration) (bool, string, error) {
	m.LockCalls++
	if m.Held {
		return false, "", nil
	}
	return true, "lock-value", nil
}

func (m *mockLocker) Unlock(ctx context.Context, key, lockValue string) error {
	m.UnlockCalls++
	return nil
}

type mockNotificationService struct {
	Published []*models.Notification
}

func (m *mockNotificationService) Publish(ctx context.Context, notification *models.Notification) error {
	m.Published = append(m.Published, notification)
	return nil
}

type mockDraftUsecase struct {
	drafts     map[string]*models.PatientRecord
	ClearCalls int
}

func newMockDraftUsecase() *mockDraftUsecase {
	return &mockDraftUsecase{drafts: make(map[string]*models.PatientRecord)}
}

func (m *mockDraftUsecase) SaveDraft(ctx context.Context, draftKey string, record *models.PatientRecord) error {
	copied := *record
	m.drafts[draftKey] = &copied
	return nil
}

func (m *mockDraftUsecase) LoadDraft(ctx context.Context, draftKey string) (*models.PatientRecord, error) {
	return m.drafts[draftKey], nil
}

func (m *mockDraftUsecase) ClearDraft(ctx context.Context, draftKey string) error {
	m.ClearCalls++
	delete(m.drafts, draftKey)
	return nil
}

func (m *mockDraftUsecase) OpenForm(ctx context.Context, patientID string) (*forms.Form, error) {
	return nil, nil
}

func (m *mockDraftUsecase) AppendMedication(ctx context.Context, draftKey string) (*models.PatientRecord, error) {
	return nil, nil
}

func (m *mockDraftUsecase) RemoveMedication(ctx context.Context, draftKey string, index int) (*models.PatientRecord, error) {
	return nil, nil
}

func (m *mockDraftUsecase) AppendDocument(ctx context.Context, draftKey string) (*models.PatientRecord, error) {
	return nil, nil
}

func (m *mockDraftUsecase) RemoveDocument(ctx context.Context, draftKey string, index int) (*models.PatientRecord, error) {
	return nil, nil
}
