package validator

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type FieldError struct {
	Field string
	Tag   string
	Param string
	Kind  reflect.Kind
}

var validate = validator.New()

func init() {
	// Report fields under their json names so form clients can match
	// messages to inputs directly
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// Register custom validation for UUID
	validate.RegisterValidation("uuid_required", func(fl validator.FieldLevel) bool {
		if id, ok := fl.Field().Interface().(uuid.UUID); ok {
			return id != uuid.Nil
		}
		return false
	})
}

func ValidateStruct(data interface{}) []FieldError {
	var errs []FieldError
	err := validate.Struct(data)
	if err != nil {
		for _, err := range err.(validator.ValidationErrors) {
			errs = append(errs, FieldError{
				Field: err.Field(),
				Tag:   err.Tag(),
				Param: err.Param(),
				Kind:  err.Kind(),
			})
		}
	}
	return errs
}

// Messages renders field errors as a field -> message map for display
// next to the corresponding form field
func Messages(errs []FieldError) map[string]string {
	msgs := make(map[string]string, len(errs))
	for _, e := range errs {
		msgs[e.Field] = messageFor(e)
	}
	return msgs
}

func messageFor(e FieldError) string {
	switch e.Tag {
	case "required", "uuid_required":
		return "This field is required"
	case "email":
		return "Must be a valid email address"
	case "min":
		if e.Param == "" {
			return "Value is too small"
		}
		switch e.Kind {
		case reflect.Slice, reflect.Array, reflect.Map:
			if e.Param == "1" {
				return "Must contain at least 1 item"
			}
			return fmt.Sprintf("Must contain at least %s items", e.Param)
		default:
			return fmt.Sprintf("Must be at least %s characters long", e.Param)
		}
	case "oneof":
		return fmt.Sprintf("Must be one of: %s", strings.ReplaceAll(e.Param, " ", ", "))
	case "gt", "gte":
		return "Must not be negative"
	default:
		return fmt.Sprintf("Failed validation on '%s'", e.Tag)
	}
}
