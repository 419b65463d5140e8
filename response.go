package verity

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// Response is the success envelope every Verity endpoint returns.
type Response[T any] struct {
	Success bool `json:"success"`
	Data    T    `json:"data"`
	// Meta is passed through undecoded; its shape varies per endpoint
	// (pagination cursors, request ids, timings).
	Meta json.RawMessage `json:"meta,omitempty"`
}

// DecodeMeta unmarshals the opaque meta object into v.
func (r *Response[T]) DecodeMeta(v any) error {
	if len(r.Meta) == 0 {
		return errors.New("verity: response has no meta")
	}
	return json.Unmarshal(r.Meta, v)
}

// ErrorResponse is the envelope returned with non-success statuses.
type ErrorResponse struct {
	Success bool         `json:"success"`
	Error   *ErrorDetail `json:"error"`
}

// ErrorDetail describes an API error.
type ErrorDetail struct {
	Code    string `json:"code,omitempty"`
	Message string `json:"message"`
	Hint    string `json:"hint,omitempty"`
}

// processResponse turns a status and raw body into either the decoded success
// envelope or an *APIError. The status alone decides which envelope to expect.
func processResponse[T any](status int, body []byte) (*Response[T], error) {
	if status >= http.StatusOK && status < http.StatusMultipleChoices {
		out := &Response[T]{}
		if len(bytes.TrimSpace(body)) == 0 {
			out.Success = true
			return out, nil
		}
		if err := json.Unmarshal(body, out); err != nil {
			return nil, fmt.Errorf("verity: decode response: %w", err)
		}
		return out, nil
	}

	apiErr := &APIError{
		Kind:       kindForStatus(status),
		StatusCode: status,
		Message:    fmt.Sprintf("HTTP %d", status),
	}

	var envelope ErrorResponse
	if err := json.Unmarshal(body, &envelope); err == nil && envelope.Error != nil {
		apiErr.Code = envelope.Error.Code
		apiErr.Message = envelope.Error.Message
		apiErr.Hint = envelope.Error.Hint
	}

	return nil, apiErr
}
