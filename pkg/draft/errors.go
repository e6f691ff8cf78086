package draft

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// ErrFieldNotFound is the sentinel wrapped by every *FieldError. It reports
// a local programmer error (an unfetched or unknown field), never a remote
// failure.
var ErrFieldNotFound = errors.New("field not found")

// APIError is the only error kind returned for remote failures: any
// response with a status outside 200-299.
type APIError struct {
	// StatusCode is the numeric HTTP status of the failing response.
	StatusCode int

	// Message is a best-effort human-readable message extracted from the
	// response body.
	Message string

	// Body is the raw response body.
	Body []byte

	// Response is the raw *http.Response, for advanced callers. Its body
	// has already been consumed; use Body instead.
	Response *http.Response
}

func (e *APIError) Error() string {
	return fmt.Sprintf("draft API error (status %d): %s", e.StatusCode, e.Message)
}

// newAPIError builds an *APIError from a failing response, extracting a
// message from the body: for JSON bodies the "error" field when present,
// the raw text when JSON parsing fails, and a generic message for non-JSON
// bodies.
func newAPIError(resp *http.Response, body []byte) *APIError {
	apiErr := &APIError{
		StatusCode: resp.StatusCode,
		Body:       body,
		Response:   resp,
	}

	contentType := resp.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "application/json") {
		apiErr.Message = fmt.Sprintf("unknown error invoking the Draft API (%d)", resp.StatusCode)
		return apiErr
	}

	var errResp struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(body, &errResp); err != nil {
		apiErr.Message = string(body)
		return apiErr
	}

	if errResp.Error != "" {
		apiErr.Message = errResp.Error
	} else {
		apiErr.Message = "unknown error invoking the Draft API"
	}
	return apiErr
}

// IsNotFound reports whether err is an *APIError with status 404.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound
}

// IsUnauthorized reports whether err is an *APIError with status 401.
func IsUnauthorized(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusUnauthorized
}

// FieldError reports a dynamic field lookup against an entity whose backing
// data is absent or lacks the requested key.
type FieldError struct {
	// Field is the name of the missing field.
	Field string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("field %q not found in entity data", e.Field)
}

func (e *FieldError) Unwrap() error {
	return ErrFieldNotFound
}
