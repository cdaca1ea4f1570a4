package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors. Services wrap them with the operation name and the REST
// layer turns them into status codes: 404, 409, 400, 401 and 403.
var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
	ErrValidation    = errors.New("validation error")
	ErrUnauthorized  = errors.New("unauthorized")
	ErrForbidden     = errors.New("forbidden")

	// ErrConfiguration means an operator step is missing, for example the
	// catalog was never seeded. Reported as 500 with an operator hint.
	ErrConfiguration = errors.New("configuration error")
)

// FieldError is one rejected input field. Field uses the JSON path of the
// request, e.g. "userCards[2].status".
type FieldError struct {
	Field   string
	Message string
}

// ItemField builds the path of a field inside a list element.
func ItemField(list string, index int, field string) string {
	return fmt.Sprintf("%s[%d].%s", list, index, field)
}

// ValidationError collects every rejected field of one request so the client
// can fix them all at once. It matches ErrValidation.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("validation: %s: %s", e.Errors[0].Field, e.Errors[0].Message)
	}
	return fmt.Sprintf("validation: %d errors", len(e.Errors))
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Errors: []FieldError{{Field: field, Message: message}},
	}
}

func NewValidationErrors(errs []FieldError) *ValidationError {
	return &ValidationError{Errors: errs}
}
