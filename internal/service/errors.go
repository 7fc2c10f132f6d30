package service

import (
	"errors"

	"go-orderdesk/pkg/validator"
)

var (
	ErrCustomerNotFound   = errors.New("customer not found")
	ErrProductNotFound    = errors.New("product not found")
	ErrOrderNotFound      = errors.New("order not found")
	ErrUserNotFound       = errors.New("user not found")
	ErrProductsMissing    = errors.New("some products not found")
	ErrEmailExists        = errors.New("email already exists")
	ErrUsernameTaken      = errors.New("username already taken")
	ErrCustomerHasOrders  = errors.New("customer has existing orders")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrWrongPassword      = errors.New("current password is incorrect")
)

// ValidationError carries field-level messages intended for display
// next to the corresponding form fields
type ValidationError struct {
	Message string
	Fields  map[string]string
}

func (e *ValidationError) Error() string { return e.Message }

func invalid(message string, errs []validator.FieldError) *ValidationError {
	return &ValidationError{Message: message, Fields: validator.Messages(errs)}
}

func invalidField(message, field, fieldMessage string) *ValidationError {
	return &ValidationError{Message: message, Fields: map[string]string{field: fieldMessage}}
}
