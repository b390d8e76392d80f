package client

import (
	"errors"
	"fmt"
	"net/http"
)

// APIError is a non-2xx answer from the quiz API.
type APIError struct {
	Status  int
	Message string
	Fields  map[string]string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("quiz api: %s", http.StatusText(e.Status))
	}
	return fmt.Sprintf("quiz api: %d %s", e.Status, e.Message)
}

// TransportError is a failure to reach the API or to read its answer.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Status == http.StatusNotFound
}

func IsTransport(err error) bool {
	var tErr *TransportError
	return errors.As(err, &tErr)
}
