package infomaniak

import (
	"errors"
	"fmt"
)

var (
	ErrMissingAPIToken = errors.New("infomaniak: missing API token")
)

const (
	detailRequestFailed   = "API request failed"
	detailInvalidResponse = "Invalid API response format"
)

// APIRequestError is returned when the API answers with anything other than
// a success envelope.
type APIRequestError struct {
	StatusCode int            `json:"status_code"`
	Envelope   map[string]any `json:"envelope,omitempty"` // nil when the body was not a JSON object
	Body       string         `json:"body,omitempty"`
	ItemIndex  int            `json:"item_index"`
	Intent     string         `json:"intent"`
	Detail     string         `json:"detail"`
}

func (e *APIRequestError) Error() string {
	return fmt.Sprintf("infomaniak: %s: %s (status: %d, item: %d)", e.Intent, e.Detail, e.StatusCode, e.ItemIndex)
}

// IsClientError returns true if the error is due to client input
func (e *APIRequestError) IsClientError() bool {
	return e.StatusCode >= 400 && e.StatusCode < 500
}

// IsServerError returns true if the error is due to server issues
func (e *APIRequestError) IsServerError() bool {
	return e.StatusCode >= 500
}

// IsAuthError returns true if the error is related to authentication
func (e *APIRequestError) IsAuthError() bool {
	return e.StatusCode == 401 || e.StatusCode == 403
}

// IsNotFound returns true if the resource was not found
func (e *APIRequestError) IsNotFound() bool {
	return e.StatusCode == 404
}

// ErrorCode returns the API error code, e.g. "not_authorized", when present.
func (e *APIRequestError) ErrorCode() string {
	if e.Envelope == nil {
		return ""
	}

	if nested, ok := e.Envelope["error"].(map[string]any); ok {
		if code, ok := nested["code"].(string); ok {
			return code
		}
	}

	return ""
}

// AsAPIRequestError unwraps err to an *APIRequestError
func AsAPIRequestError(err error) (*APIRequestError, bool) {
	var apiErr *APIRequestError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

// IsAuthError checks if an error is an authentication failure
func IsAuthError(err error) bool {
	if e, ok := AsAPIRequestError(err); ok {
		return e.IsAuthError()
	}
	return false
}

// IsNotFound checks if an error is a not-found error
func IsNotFound(err error) bool {
	if e, ok := AsAPIRequestError(err); ok {
		return e.IsNotFound()
	}
	return false
}

// errorDetail pulls a human readable message out of an error envelope.
func errorDetail(envelope map[string]any) string {
	switch e := envelope["error"].(type) {
	case string:
		if e != "" {
			return e
		}
	case map[string]any:
		for _, key := range []string{"description", "message", "code"} {
			if s, ok := e[key].(string); ok && s != "" {
				return s
			}
		}
	}

	for _, key := range []string{"message", "description"} {
		if s, ok := envelope[key].(string); ok && s != "" {
			return s
		}
	}

	return detailRequestFailed
}
