package client

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

var (
	ErrUnavailable    = errors.New("server unavailable")
	ErrUnauthorized   = errors.New("unauthorized")
	ErrSessionInvalid = errors.New("session invalid")
	ErrForbidden      = errors.New("forbidden")
	ErrNotFound       = errors.New("not found")
	ErrDecode         = errors.New("malformed response")
)

// Fallback texts returned by Message.
const (
	GenericErrorMessage     = "Something went wrong. Please try again."
	UnavailableErrorMessage = "The server is unavailable. Please try again later."
	SessionExpiredMessage   = "Your session has expired. Please log in again."
)

// APIError is a non-2xx response. Body holds the payload exactly as received;
// Detail is the backend's "detail" field when there is one.
type APIError struct {
	StatusCode int
	Detail     string
	Body       []byte
}

func newAPIError(status int, body []byte) *APIError {
	return &APIError{StatusCode: status, Detail: parseDetail(body), Body: body}
}

func (e *APIError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("api error %d: %s", e.StatusCode, e.Detail)
	}
	return fmt.Sprintf("api error %d: %s", e.StatusCode, http.StatusText(e.StatusCode))
}

// Is lets errors.Is match an APIError against the status sentinels.
func (e *APIError) Is(target error) bool {
	switch target {
	case ErrSessionInvalid, ErrUnauthorized:
		return e.StatusCode == http.StatusUnauthorized
	case ErrForbidden:
		return e.StatusCode == http.StatusForbidden
	case ErrNotFound:
		return e.StatusCode == http.StatusNotFound
	}
	return false
}

// parseDetail extracts "detail" from a FastAPI error body. Validation errors
// carry a list of {msg} objects, which are joined.
func parseDetail(body []byte) string {
	var payload struct {
		Detail json.RawMessage `json:"detail"`
	}
	if err := json.Unmarshal(body, &payload); err != nil || len(payload.Detail) == 0 {
		return ""
	}

	var s string
	if err := json.Unmarshal(payload.Detail, &s); err == nil {
		return s
	}

	var items []struct {
		Msg string `json:"msg"`
	}
	if err := json.Unmarshal(payload.Detail, &items); err == nil {
		msgs := make([]string, 0, len(items))
		for _, it := range items {
			if it.Msg != "" {
				msgs = append(msgs, it.Msg)
			}
		}
		return strings.Join(msgs, "; ")
	}
	return ""
}

// Message returns the text shown to the user for err: the backend detail when
// present, otherwise a generic fallback.
func Message(err error) string {
	if err == nil {
		return ""
	}

	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Detail != "" {
		return apiErr.Detail
	}

	switch {
	case errors.Is(err, ErrSessionInvalid):
		return SessionExpiredMessage
	case errors.Is(err, ErrUnavailable):
		return UnavailableErrorMessage
	default:
		return GenericErrorMessage
	}
}
