package detection

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rotnot/rotnot-backend/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testService(baseURL string) *detectionService {
	return &detectionService{baseURL: baseURL, client: http.DefaultClient}
}

func TestDetectBase64RelaysVerdict(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/detect/base64", r.URL.Path)
		require.Equal(t, http.MethodPost, r.Method)

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "aGVsbG8=", body["image"])

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"label":"fresh","confidence":0.93}`))
	}))
	defer ts.Close()

	svc := testService(ts.URL)
	verdict, err := svc.DetectBase64(context.Background(), domain.DetectRequest{Image: "aGVsbG8="})
	require.NoError(t, err)
	assert.JSONEq(t, `{"label":"fresh","confidence":0.93}`, string(verdict))
}

func TestDetectBase64RejectsEmptyImage(t *testing.T) {
	svc := testService("http://unused")

	_, err := svc.DetectBase64(context.Background(), domain.DetectRequest{})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestDetectBase64UpstreamDown(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer ts.Close()

	svc := testService(ts.URL)
	_, err := svc.DetectBase64(context.Background(), domain.DetectRequest{Image: "aGVsbG8="})
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestHealth(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/health", r.URL.Path)
		w.Write([]byte(`{"status":"ok"}`))
	}))
	defer ts.Close()

	svc := testService(ts.URL)
	verdict, err := svc.Health(context.Background())
	require.NoError(t, err)
	assert.JSONEq(t, `{"status":"ok"}`, string(verdict))
}
