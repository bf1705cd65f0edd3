package gateway

import (
	"errors"
	"fmt"
)

// ErrEmptyResult means the backend answered but had nothing to return.
var ErrEmptyResult = errors.New("no data available")

// NetworkError wraps a transport failure; no response was received.
type NetworkError struct {
	Op  string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("%s: network error: %v", e.Op, e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// RejectedError is a non-2xx answer from the backend.
type RejectedError struct {
	Op         string
	StatusCode int
	Message    string
}

func (e *RejectedError) Error() string {
	return fmt.Sprintf("%s: rejected with status %d: %s", e.Op, e.StatusCode, e.Message)
}

// UserMessage returns the text to show for a failed call, falling back to
// fallback when err carries nothing presentable.
func UserMessage(err error, fallback string) string {
	var rejected *RejectedError
	if errors.As(err, &rejected) && rejected.Message != "" {
		return rejected.Message
	}
	return fallback
}
