package booking

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	// ErrDraftNotFound means the session expired or never existed.
	ErrDraftNotFound = errors.New("booking draft not found or expired")
	// ErrDraftComplete means the wizard already succeeded and is read-only.
	ErrDraftComplete = errors.New("booking already completed")
)

// ValidationError carries field-level messages for a step that failed
// its local validation. The step does not advance while it is returned.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// PaymentError is a hard processor failure (e.g. card declined). The
// message is the processor's own, surfaced verbatim.
type PaymentError struct {
	Code    string
	Message string
}

func (e *PaymentError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// SubmissionError is a backend rejection of the booking write after
// payment was already captured. Submission stays retry-eligible.
type SubmissionError struct {
	Message string
}

func (e *SubmissionError) Error() string {
	return "booking submission failed: " + e.Message
}
