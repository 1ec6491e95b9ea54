package records

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"careform-service/internal/app/config"
	"careform-service/internal/app/contracts"
	"careform-service/internal/pkg/constvars"
	"careform-service/internal/pkg/exceptions"
	"careform-service/internal/pkg/models"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

var (
	recordClientInstance contracts.PatientRecordClient
	onceRecordClient     sync.Once
)

// recordClient talks to the upstream patient record store. It forwards the
// configured bearer token and classifies failures by status class without
// interpreting them further.
type recordClient struct {
	BaseURL     string
	BearerToken string
	HTTPClient  *http.Client
	Log         *zap.Logger
}

func NewRecordClient(upstreamConfig config.Upstream, logger *zap.Logger) contracts.PatientRecordClient {
	onceRecordClient.Do(func() {
		recordClientInstance = &recordClient{
			BaseURL:     upstreamConfig.BaseURL + "/" + constvars.ResourcePatients,
			BearerToken: upstreamConfig.BearerToken,
			HTTPClient: &http.Client{
				Timeout: time.Duration(upstreamConfig.TimeoutSeconds) * time.Second,
			},
			Log: logger,
		}
	})
	return recordClientInstance
}

func (c *recordClient) FetchAll(ctx context.Context) ([]models.PatientRecord, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("recordClient.FetchAll called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	body, err := c.do(ctx, constvars.MethodGet, c.BaseURL, nil)
	if err != nil {
		return nil, err
	}

	var patients []models.PatientRecord
	if err := json.Unmarshal(body, &patients); err != nil {
		return nil, exceptions.ErrUpstreamDecodeResponse(err, constvars.ResourcePatients)
	}
	return patients, nil
}

func (c *recordClient) FetchOne(ctx context.Context, patientID string) (*models.PatientRecord, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("recordClient.FetchOne called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patientID),
	)

	body, err := c.do(ctx, constvars.MethodGet, fmt.Sprintf("%s/%s", c.BaseURL, patientID), nil)
	if err != nil {
		return nil, err
	}

	patient := new(models.PatientRecord)
	if err := json.Unmarshal(body, patient); err != nil {
		return nil, exceptions.ErrUpstreamDecodeResponse(err, constvars.ResourcePatients)
	}
	return patient, nil
}

func (c *recordClient) Create(ctx context.Context, record *models.PatientRecord) (*models.PatientRecord, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("recordClient.Create called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	payload, err := json.Marshal(record)
	if err != nil {
		return nil, exceptions.ErrCannotMarshalJSON(err)
	}

	body, err := c.do(ctx, constvars.MethodPost, c.BaseURL, payload)
	if err != nil {
		return nil, err
	}

	created := new(models.PatientRecord)
	if err := json.Unmarshal(body, created); err != nil {
		return nil, exceptions.ErrUpstreamDecodeResponse(err, constvars.ResourcePatients)
	}
	return created, nil
}

func (c *recordClient) Update(ctx context.Context, patientID string, record *models.PatientRecord) (*models.PatientRecord, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("recordClient.Update called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patientID),
	)

	payload, err := json.Marshal(record)
	if err != nil {
		return nil, exceptions.ErrCannotMarshalJSON(err)
	}

	body, err := c.do(ctx, constvars.MethodPut, fmt.Sprintf("%s/%s", c.BaseURL, patientID), payload)
	if err != nil {
		return nil, err
	}

	updated := new(models.PatientRecord)
	if err := json.Unmarshal(body, updated); err != nil {
		return nil, exceptions.ErrUpstreamDecodeResponse(err, constvars.ResourcePatients)
	}
	return updated, nil
}

func (c *recordClient) do(ctx context.Context, method, url string, payload []byte) ([]byte, error) {
	var reader io.Reader
	if payload != nil {
		reader = bytes.NewBuffer(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	if c.BearerToken != "" {
		req.Header.Set(constvars.HeaderAuthorization, "Bearer "+c.BearerToken)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, exceptions.ErrUpstreamNoResponse(err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, exceptions.ErrUpstreamDecodeResponse(err, constvars.ResourcePatients)
	}

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return body, nil
	}
	return nil, c.classify(resp.StatusCode, body)
}

func (c *recordClient) classify(statusCode int, body []byte) error {
	detail := string(body)
	switch {
	case statusCode == constvars.StatusUnauthorized:
		return exceptions.ErrUpstreamUnauthorized(nil)
	case statusCode == constvars.StatusForbidden:
		return exceptions.ErrUpstreamForbidden(nil)
	case statusCode == constvars.StatusNotFound:
		return exceptions.ErrUpstreamRecordNotFound(nil, detail)
	case statusCode >= 400 && statusCode < 500:
		return exceptions.ErrUpstreamClient(nil, detail)
	default:
		return exceptions.ErrUpstreamServer(nil, detail)
	}
}
