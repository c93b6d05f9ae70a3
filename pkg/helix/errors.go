package helix

import (
	"encoding/json"
	"fmt"
	"strings"
)

// RequestError reports a request or body record that failed construction,
// before any network interaction.
type RequestError struct {
	Endpoint string
	Err      error
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("building %s request: %v", e.Endpoint, e.Err)
}

func (e *RequestError) Unwrap() error { return e.Err }

// SerializationError reports a POST body that could not be encoded.
type SerializationError struct {
	Err error
}

func (e *SerializationError) Error() string {
	return fmt.Sprintf("serializing request body: %v", e.Err)
}

func (e *SerializationError) Unwrap() error { return e.Err }

// DecodeError reports response bytes that did not match the declared schema.
// RecordIndex is the zero-based index of the offending record within the
// data array, or -1 when the envelope itself failed to decode. Field names
// the violated field when it could be determined.
type DecodeError struct {
	RecordIndex int
	Field       string
	Err         error
}

func (e *DecodeError) Error() string {
	where := "response envelope"
	if e.RecordIndex >= 0 {
		where = fmt.Sprintf("record %d", e.RecordIndex)
	}
	if e.Field != "" {
		return fmt.Sprintf("decoding %s: field %q: %v", where, e.Field, e.Err)
	}
	return fmt.Sprintf("decoding %s: %v", where, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// APIError is a non-success response from the Helix API, decoded from its
// standard error body when one was present.
type APIError struct {
	StatusCode int
	Status     string `json:"error"`
	Message    string `json:"message"`
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("helix API error (status %d): %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("helix API error (status %d)", e.StatusCode)
}

func newAPIError(statusCode int, body []byte) *APIError {
	apiErr := &APIError{StatusCode: statusCode}
	// Error bodies are decoded best-effort; a non-JSON body becomes the
	// message verbatim.
	if err := json.Unmarshal(body, apiErr); err != nil || apiErr.Message == "" {
		apiErr.Message = strings.TrimSpace(string(body))
	}
	return apiErr
}

// ScopeError reports a request whose required scopes are not covered by the
// credential's granted scopes.
type ScopeError struct {
	Endpoint string
	Missing  []Scope
}

func (e *ScopeError) Error() string {
	names := make([]string, len(e.Missing))
	for i, s := range e.Missing {
		names[i] = string(s)
	}
	return fmt.Sprintf("%s requires scopes not granted to the credential: %s",
		e.Endpoint, strings.Join(names, ", "))
}
