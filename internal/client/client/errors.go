package client

import (
	"errors"
	"fmt"
)

var (
	ErrUnavailable   = errors.New("server unavailable")
	ErrUnauthorized  = errors.New("unauthorized")
	ErrRequestFailed = errors.New("request failed")
)

// RequestFailedError is a non-2xx answer other than a session rejection.
// Detail is the server's machine-readable message, empty when it sent none.
type RequestFailedError struct {
	Status int
	Detail string
}

func (e *RequestFailedError) Error() string {
	if e.Detail != "" {
		return e.Detail
	}
	return fmt.Sprintf("request failed with status %d", e.Status)
}

func (e *RequestFailedError) Is(target error) bool {
	return target == ErrRequestFailed
}

// DetailOr returns the server detail carried by err, or fallback when err
// carries none.
func DetailOr(err error, fallback string) string {
	var rf *RequestFailedError
	if errors.As(err, &rf) && rf.Detail != "" {
		return rf.Detail
	}
	return fallback
}
