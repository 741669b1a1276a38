package academysdk

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// APIError is the typed form of the service's error responses. Every failure
// body is a JSON object with a single "error" field carrying a human readable
// message.
type APIError struct {
	// StatusCode is the HTTP status code for this error
	StatusCode int `json:"-"`

	// Message is the human-readable error message
	Message string `json:"error"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("academy: %d %s", e.StatusCode, e.Message)
}

// IsNotFound reports whether the error corresponds to a 404 response.
func (e *APIError) IsNotFound() bool { return e.StatusCode == http.StatusNotFound }

// IsConflict reports whether the error corresponds to a 409 response.
func (e *APIError) IsConflict() bool { return e.StatusCode == http.StatusConflict }

// parseErrorResponse turns a non-success response into a typed error.
func parseErrorResponse(resp *http.Response, body []byte) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	var errResp ErrorResponse
	if err := json.Unmarshal(body, &errResp); err == nil && errResp.Error != "" {
		return &APIError{
			StatusCode: resp.StatusCode,
			Message:    errResp.Error,
		}
	}

	// Fallback: create generic error from status code
	return &APIError{
		StatusCode: resp.StatusCode,
		Message:    fmt.Sprintf("HTTP %d: %s", resp.StatusCode, http.StatusText(resp.StatusCode)),
	}
}
