package tasksrepo

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jrazmi/taskapi/core/repositories"
)

// Set of error values for CRUD operations on the task resource.
var (
	ErrTaskNotFound = fmt.Errorf("task %w", repositories.ErrNotFound)
	ErrPersistence  = errors.New("task persistence failure")
)

// FieldError is a single violated field constraint.
type FieldError struct {
	Field string
	Err   string
}

// ValidationError lists every field constraint a request violated.
type ValidationError struct {
	Fields []FieldError
}

func (ve *ValidationError) Error() string {
	parts := make([]string, len(ve.Fields))
	for i, fe := range ve.Fields {
		parts[i] = fe.Field + ": " + fe.Err
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (ve *ValidationError) add(field, msg string) {
	ve.Fields = append(ve.Fields, FieldError{Field: field, Err: msg})
}

// errOrNil keeps a nil *ValidationError from becoming a non-nil error.
func (ve *ValidationError) errOrNil() error {
	if len(ve.Fields) == 0 {
		return nil
	}
	return ve
}

// IsValidationError reports whether err carries field violations and
// returns them.
func IsValidationError(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}
