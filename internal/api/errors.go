package api

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// Error is a non-2xx response from the API, carried back to the caller
// unchanged. Message is the server-supplied "message" field when the body
// had one.
type Error struct {
	Status  int
	Message string
	Body    []byte
}

func (e *Error) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api: %d %s: %s", e.Status, http.StatusText(e.Status), e.Message)
	}
	return fmt.Sprintf("api: %d %s", e.Status, http.StatusText(e.Status))
}

func newError(status int, body []byte) *Error {
	apiErr := &Error{Status: status, Body: body}

	var payload struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &payload); err == nil {
		apiErr.Message = payload.Message
	}
	return apiErr
}
