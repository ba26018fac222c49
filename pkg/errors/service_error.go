package custom_error

import (
	"sort"
	"strings"
)

// ValidationError carries per-field messages, or a single message when the
// failure is not tied to one field.
type ValidationError struct {
	Fields  map[string][]string
	Message string
}

func NewValidationError() *ValidationError {
	return &ValidationError{Fields: make(map[string][]string)}
}

func NewValidationMessage(message string) *ValidationError {
	return &ValidationError{Message: message}
}

func (e *ValidationError) Add(field, message string) {
	if e.Fields == nil {
		e.Fields = make(map[string][]string)
	}
	e.Fields[field] = append(e.Fields[field], message)
}

func (e *ValidationError) HasErrors() bool {
	return len(e.Fields) > 0 || e.Message != ""
}

// OrNil returns nil when nothing was added, so callers can return it as error.
func (e *ValidationError) OrNil() error {
	if !e.HasErrors() {
		return nil
	}

	return e
}

func (e *ValidationError) Error() string {
	if e.Message != "" {
		return e.Message
	}

	fields := make([]string, 0, len(e.Fields))
	for field := range e.Fields {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	return "validation failed: " + strings.Join(fields, ", ")
}

type NotFoundError struct {
	Message string
}

func NewNotFoundError(message string) *NotFoundError {
	return &NotFoundError{Message: message}
}

func (e *NotFoundError) Error() string {
	return e.Message
}

// ConflictError reports a request that is well formed but cannot be applied
// to the current state, e.g. a stock-in without any supplier.
type ConflictError struct {
	Message string
}

func NewConflictError(message string) *ConflictError {
	return &ConflictError{Message: message}
}

func (e *ConflictError) Error() string {
	return e.Message
}
