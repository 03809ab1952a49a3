package utils

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report fields by their JSON name so error maps match the request body
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// PostgreSQL text columns cannot store NUL
	_ = v.RegisterValidation("nonul", func(fl validator.FieldLevel) bool {
		return !strings.ContainsRune(fl.Field().String(), 0)
	})

	return v
}

func ValidateStruct(data interface{}) map[string]string {
	err := validate.Struct(data)
	if err == nil {
		return nil
	}

	errors := make(map[string]string)
	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		for _, err := range validationErrors {
			errors[err.Field()] = getErrorMessage(err)
		}
	}

	return errors
}

// converts validator errors to human-readable messages
func getErrorMessage(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return "This field is required."
	case "email":
		return "Enter a valid email address."
	case "min":
		if err.Kind() == reflect.String {
			return fmt.Sprintf("Ensure this field has at least %s characters.", err.Param())
		}
		return fmt.Sprintf("Ensure this value is greater than or equal to %s.", err.Param())
	case "max":
		if err.Kind() == reflect.String {
			return fmt.Sprintf("Ensure this field has no more than %s characters.", err.Param())
		}
		return fmt.Sprintf("Ensure this value is less than or equal to %s.", err.Param())
	case "nonul":
		return "Null characters are not allowed."
	case "uuid", "uuid4":
		return "Must be a valid UUID."
	default:
		return fmt.Sprintf("Invalid %s field.", err.Field())
	}
}
