package services

import "fmt"

// FieldError reports a field value outside its allowed domain. Handlers map
// it to a 400 response carrying the field name.
type FieldError struct {
	Field   string
	Message string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// NewFieldError creates a FieldError for the given field.
func NewFieldError(field, format string, args ...interface{}) *FieldError {
	return &FieldError{
		Field:   field,
		Message: fmt.Sprintf(format, args...),
	}
}
