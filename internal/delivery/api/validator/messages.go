package validator

import (
	"fmt"
	"reflect"
	"strings"

	"taskhub/internal/domain/entity"
	"taskhub/internal/domain/validation"

	"github.com/go-playground/validator/v10"
)

func jsonFieldName(field reflect.StructField) string {
	name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
	if name == "-" {
		return ""
	}
	if name == "" {
		return field.Name
	}

	return name
}

func message(fe validator.FieldError) string {
	label := validation.Label(fe.Field())

	switch fe.Tag() {
	case "required":
		return label + " is required"
	case "email":
		return validation.MsgInvalidEmail
	case "max":
		return fmt.Sprintf("%s must be at most %s characters long", label, fe.Param())
	case "min":
		return fmt.Sprintf("%s must be at least %s characters long", label, fe.Param())
	case "taskstatus":
		return "Status must be one of: " + entity.TaskStatusList()
	default:
		return label + " is invalid"
	}
}
