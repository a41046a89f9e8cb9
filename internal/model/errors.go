package model

import (
	"fmt"
)

// UpstreamError reports a failed call to one provider: transport failure,
// timeout, non-2xx status, or an unreadable body.
type UpstreamError struct {
	Source     Source
	StatusCode int // zero when no response was received
	Err        error
}

// Message is the error text without the provider prefix.
func (e *UpstreamError) Message() string {
	switch {
	case e.StatusCode != 0 && e.Err != nil:
		return fmt.Sprintf("HTTP %d: %v", e.StatusCode, e.Err)
	case e.StatusCode != 0:
		return fmt.Sprintf("HTTP %d", e.StatusCode)
	case e.Err != nil:
		return e.Err.Error()
	default:
		return "upstream failure"
	}
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("%s: %s", e.Source, e.Message())
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

// ValidationError rejects caller input before any provider is contacted.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}
