package custom_error

import (
	"errors"
	"fmt"

	"github.com/lib/pq"
)

type CustomError interface {
	Error() string
}

type UniqueViolationError struct {
	message    string
	code       string // PostgreSQL error code (e.g., "23505")
	Constraint string
}

type ForeignKeyViolationError struct {
	message    string
	code       string // PostgreSQL error code (e.g., "23503")
	Constraint string
}

func (f *ForeignKeyViolationError) Error() string {
	return fmt.Sprintf("%s (code: %s)", f.message, f.code)
}

func (e *UniqueViolationError) Error() string {
	return fmt.Sprintf("%s (code: %s)", e.message, e.code)
}

func WrapDBError(message, code string) CustomError {
	switch code {
	case "23505":
		return &UniqueViolationError{
			message: message,
			code:    code,
		}
	case "23503":
		return &ForeignKeyViolationError{
			message: "Value is already used by other resources " + message,
			code:    code,
		}
	default:
		return fmt.Errorf("uncategorized error occurred with code %s: %s", code, message)
	}
}

// FromPQ converts a lib/pq error into one of the typed violations, keeping
// the constraint name. Other errors are wrapped with message.
func FromPQ(message string, err error) error {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return fmt.Errorf("%s: %w", message, err)
	}

	wrapped := WrapDBError(message, string(pqErr.Code))
	switch e := wrapped.(type) {
	case *UniqueViolationError:
		e.Constraint = pqErr.Constraint
	case *ForeignKeyViolationError:
		e.Constraint = pqErr.Constraint
	}

	return wrapped
}

// IsOutOfRange reports whether err carries SQLSTATE 22003, a numeric value
// outside its column's range.
func IsOutOfRange(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "22003"
}
