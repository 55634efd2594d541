package validation

import "fmt"

// ValidationError описывает нарушение формата входных данных
type ValidationError struct {
	Field   string // имя поля
	Message string // что не так
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

func fieldError(field, format string, args ...any) *ValidationError {
	return &ValidationError{Field: field, Message: fmt.Sprintf(format, args...)}
}
