package infomaniak

import (
	"encoding/json"
)

const (
	ResultSuccess = "success"
	ResultError   = "error"
)

// Credentials carries the bearer token. The client never mutates it.
type Credentials struct {
	APIToken string `json:"api_token"`
}

// Envelope is the {result, data} wrapper around every API response.
type Envelope struct {
	Result string
	Data   any

	// Raw is the whole decoded body. List endpoints put page, pages and
	// total next to data.
	Raw map[string]any
}

func (e *Envelope) IsSuccess() bool {
	return e.Result == ResultSuccess
}

func newEnvelope(raw map[string]any) *Envelope {
	result, _ := raw["result"].(string)

	return &Envelope{
		Result: result,
		Data:   raw["data"],
		Raw:    raw,
	}
}

// Decode converts an untyped payload into T by a JSON round trip.
func Decode[T any](data any) (T, error) {
	var result T

	encoded, err := json.Marshal(data)
	if err != nil {
		return result, err
	}

	if err := json.Unmarshal(encoded, &result); err != nil {
		return result, err
	}

	return result, nil
}

// Profile is the subset of /1/profile used to verify a token.
type Profile struct {
	ID          int64  `json:"id"`
	Email       string `json:"email"`
	FirstName   string `json:"firstname"`
	LastName    string `json:"lastname"`
	DisplayName string `json:"display_name"`
}
