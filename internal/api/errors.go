package api

import (
	"errors"
	"fmt"
	"net/http"
)

// StatusError is a completed backend call that returned a non-2xx status. Body
// holds the server's plain-text error verbatim, which the UI surfaces as-is.
type StatusError struct {
	Status int
	Body   string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("api: status %d", e.Status)
	}
	return fmt.Sprintf("api: status %d: %s", e.Status, e.Body)
}

// NotFound reports whether the backend said the record does not exist.
func (e *StatusError) NotFound() bool {
	return e.Status == http.StatusNotFound
}

// Message renders an error for the user: the server's own text for a completed
// call, a generic connectivity line for anything that never got a response.
func Message(err error) string {
	var se *StatusError
	if errors.As(err, &se) {
		if se.Body != "" {
			return se.Body
		}
		return fmt.Sprintf("request failed with status %d", se.Status)
	}
	return "Error connecting to backend"
}
