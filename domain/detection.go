package domain

import "fmt"

var (
	MessageSuccessDetect = "detection completed successfully"

	MessageFailedDetect         = "failed to run detection"
	MessageDetectionUnavailable = "detection service is unavailable"

	ErrDetectionUnavailable = fmt.Errorf("%w: detection service unreachable", ErrConflict)
	ErrEmptyImage           = fmt.Errorf("%w: image payload is required", ErrValidation)
)

type (
	DetectRequest struct {
		Image string `json:"image" validate:"required"`
	}
)
