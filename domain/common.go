package domain

import (
	"errors"
	"fmt"
)

// Error categories. Feature errors wrap one of these so the presenter layer
// can map any error to an HTTP status with a single errors.Is chain.
var (
	ErrUnauthenticated = errors.New("not authenticated")
	ErrValidation      = errors.New("invalid request")
	ErrNotFound        = errors.New("not found")
	ErrForbidden       = errors.New("forbidden")
	ErrConflict        = errors.New("conflict")
)

var (
	MessageFailedBodyRequest    = "failed to parse request body"
	MessageFailedProcessRequest = "failed to process request"
	MessageFailedGetToken       = "failed to get token"
	MessageFailedTokenInvalid   = "token is invalid"

	ErrTokenNotFound = fmt.Errorf("%w: token not found", ErrUnauthenticated)
	ErrTokenExpired  = fmt.Errorf("%w: token expired", ErrUnauthenticated)
	ErrTokenInvalid  = fmt.Errorf("%w: token invalid", ErrUnauthenticated)
)
