package client

import (
	"fmt"
	"sort"
	"strings"
)

// ValidationError reports a payload rejected locally, before any request
// was sent. The operation is a no-op on both the remote system and the
// cached state.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for field, msg := range e.Fields {
		parts = append(parts, field+" "+msg)
	}
	sort.Strings(parts)
	return "validation failed: " + strings.Join(parts, "; ")
}

// RemoteError reports a failed exchange with the API: either the request
// never completed (Err set, StatusCode 0) or the server answered with a
// non-success status.
type RemoteError struct {
	StatusCode int
	Message    string
	Err        error
}

func (e *RemoteError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("remote request failed: %v", e.Err)
	}
	if e.Message != "" {
		return fmt.Sprintf("remote request failed with status %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("remote request failed with status %d", e.StatusCode)
}

func (e *RemoteError) Unwrap() error { return e.Err }

// NotFoundError reports an identifier that did not resolve remotely.
type NotFoundError struct {
	Resource string
	ID       string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Resource, e.ID)
}
