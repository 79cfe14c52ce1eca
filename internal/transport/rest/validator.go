package rest

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

// newValidator reports fields by their JSON names so errors match the
// payload the client sent.
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

func ValidateStruct(payload any) map[string]string {
	err := validate.Struct(payload)
	if err == nil {
		return nil
	}

	errors := make(map[string]string)

	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		for _, fieldError := range validationErrors {
			// Drop the root type name from e.g. "Snapshot.cpu_stat[0].cpu_name".
			_, field, _ := strings.Cut(fieldError.Namespace(), ".")
			switch fieldError.Tag() {
			case "required":
				errors[field] = fmt.Sprintf("The %s field is required.", field)
			default:
				errors[field] = fmt.Sprintf("The %s field is invalid.", field)
			}
		}
	}

	return errors
}
