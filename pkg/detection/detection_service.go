package detection

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/rotnot/rotnot-backend/domain"
	"github.com/rotnot/rotnot-backend/internal/utils"
)

type (
	DetectionService interface {
		DetectBase64(ctx context.Context, req domain.DetectRequest) (json.RawMessage, error)
		Health(ctx context.Context) (json.RawMessage, error)
	}

	detectionService struct {
		baseURL string
		client  *http.Client
	}
)

func NewDetectionService() DetectionService {
	return &detectionService{
		baseURL: utils.GetConfig("DETECTION_API_URL"),
		client:  &http.Client{Timeout: 30 * time.Second},
	}
}

// DetectBase64 forwards the image to the freshness model and relays its
// verdict untouched.
func (s *detectionService) DetectBase64(ctx context.Context, req domain.DetectRequest) (json.RawMessage, error) {
	if req.Image == "" {
		return nil, domain.ErrEmptyImage
	}

	body, err := json.Marshal(map[string]string{"image": req.Image})
	if err != nil {
		return nil, err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/detect/base64", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	return s.relay(httpReq)
}

func (s *detectionService) Health(ctx context.Context) (json.RawMessage, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+"/health", nil)
	if err != nil {
		return nil, err
	}
	return s.relay(httpReq)
}

func (s *detectionService) relay(req *http.Request) (json.RawMessage, error) {
	res, err := s.client.Do(req)
	if err != nil {
		return nil, domain.ErrDetectionUnavailable
	}
	defer res.Body.Close()

	payload, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, domain.ErrDetectionUnavailable
	}
	if res.StatusCode >= http.StatusInternalServerError {
		return nil, domain.ErrDetectionUnavailable
	}

	return payload, nil
}
