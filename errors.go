package verity

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorKind classifies an APIError by the HTTP status it came with.
type ErrorKind int

const (
	// KindGeneric covers every non-success status without a dedicated kind.
	KindGeneric ErrorKind = iota
	// KindAuth is a 401 Unauthorized response.
	KindAuth
	// KindNotFound is a 404 Not Found response.
	KindNotFound
	// KindRateLimit is a 429 Too Many Requests response.
	KindRateLimit
)

func (k ErrorKind) String() string {
	switch k {
	case KindAuth:
		return "auth"
	case KindNotFound:
		return "not_found"
	case KindRateLimit:
		return "rate_limit"
	default:
		return "generic"
	}
}

// kindForStatus maps an HTTP status code to its ErrorKind.
func kindForStatus(status int) ErrorKind {
	switch status {
	case http.StatusUnauthorized:
		return KindAuth
	case http.StatusNotFound:
		return KindNotFound
	case http.StatusTooManyRequests:
		return KindRateLimit
	default:
		return KindGeneric
	}
}

// Sentinel errors matched by errors.Is against an *APIError of the same kind.
var (
	ErrUnauthorized = errors.New("verity: unauthorized")
	ErrNotFound     = errors.New("verity: not found")
	ErrRateLimited  = errors.New("verity: rate limited")
)

// APIError represents a non-success response from the Verity API.
type APIError struct {
	Kind       ErrorKind
	StatusCode int
	// Code is the machine-readable error code, empty when the body carried none.
	Code    string
	Message string
	Hint    string
}

func (e *APIError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("verity: %s (code=%s, status=%d)", e.Message, e.Code, e.StatusCode)
	}
	return fmt.Sprintf("verity: %s (status=%d)", e.Message, e.StatusCode)
}

// Is lets errors.Is match the kind sentinels.
func (e *APIError) Is(target error) bool {
	switch target {
	case ErrUnauthorized:
		return e.Kind == KindAuth
	case ErrNotFound:
		return e.Kind == KindNotFound
	case ErrRateLimited:
		return e.Kind == KindRateLimit
	}
	return false
}

// AsAPIError reports whether err is or wraps an *APIError and returns it.
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}
