package records

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"careform-service/internal/pkg/constvars"
	"careform-service/internal/pkg/exceptions"
	"careform-service/internal/pkg/models"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func testClient(baseURL string) *recordClient {
	return &recordClient{
		BaseURL:     baseURL + "/" + constvars.ResourcePatients,
		BearerToken: "test-token",
		HTTPClient:  &http.Client{Timeout: 5 * time.Second},
		Log:         zap.NewNop(),
	}
}

func TestRecordClientFetchAll(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer test-token", r.Header.Get(constvars.HeaderAuthorization))
		assert.Equal(t, http.MethodGet, r.Method)
		json.NewEncoder(w).Encode([]models.PatientRecord{{ID: "pat-001", FirstName: "John"}})
	}))
	defer server.Close()

	client := testClient(server.URL)
	records, err := client.FetchAll(context.Background())

	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "pat-001", records[0].ID)
}

func TestRecordClientCreate(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)

		var received models.PatientRecord
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		assert.Equal(t, "John", received.FirstName)

		received.ID = "pat-010"
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(received)
	}))
	defer server.Close()

	client := testClient(server.URL)
	created, err := client.Create(context.Background(), &models.PatientRecord{FirstName: "John"})

	require.NoError(t, err)
	assert.Equal(t, "pat-010", created.ID)
}

func TestRecordClientStatusClassification(t *testing.T) {
	tests := []struct {
		name           string
		upstreamStatus int
		wantStatus     int
	}{
		{"Unauthorized", http.StatusUnauthorized, constvars.StatusUnauthorized},
		{"Forbidden", http.StatusForbidden, constvars.StatusForbidden},
		{"Not Found", http.StatusNotFound, constvars.StatusNotFound},
		{"Client Error", http.StatusUnprocessableEntity, constvars.StatusBadRequest},
		{"Server Error", http.StatusInternalServerError, constvars.StatusBadGateway},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.upstreamStatus)
			}))
			defer server.Close()

			client := testClient(server.URL)
			_, err := client.FetchOne(context.Background(), "pat-001")

			var customErr *exceptions.CustomError
			require.ErrorAs(t, err, &customErr)
			assert.Equal(t, tt.wantStatus, customErr.StatusCode)
		})
	}
}

func TestRecordClientNoResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	client := testClient(server.URL)
	_, err := client.FetchAll(context.Background())

	var customErr *exceptions.CustomError
	require.ErrorAs(t, err, &customErr)
	assert.Equal(t, constvars.StatusServiceUnavailable, customErr.StatusCode)
}

func TestRecordClientDecodeFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json"))
	}))
	defer server.Close()

	client := testClient(server.URL)
	_, err := client.FetchAll(context.Background())

	var customErr *exceptions.CustomError
	require.ErrorAs(t, err, &customErr)
	assert.Equal(t, constvars.StatusBadGateway, customErr.StatusCode)
}
