// Package validator adapts go-playground/validator to echo.
package validator

import (
	"taskhub/internal/domain/entity"
	domainerrors "taskhub/internal/domain/errors"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

// CustomValidator implements echo.Validator.
type CustomValidator struct {
	validate *validator.Validate
}

// New builds a validator with the taskhub-specific tags registered:
// taskstatus accepts any TaskStatus value (use with omitempty).
func New() *CustomValidator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.SetTagName("validate")
	v.RegisterTagNameFunc(jsonFieldName)

	_ = v.RegisterValidation("taskstatus", func(fl validator.FieldLevel) bool {
		return entity.TaskStatus(fl.Field().String()).IsValid()
	})

	return &CustomValidator{validate: v}
}

// Validate returns a VALIDATION_FAILED domain error listing every failing field.
// Status failures are reported as INVALID_STATUS.
func (cv *CustomValidator) Validate(i any) error {
	err := cv.validate.Struct(i)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return errors.Wrap(err, "validate request")
	}

	details := domainerrors.FieldErrors{}
	statusOnly := true
	for _, fe := range fieldErrs {
		details.Add(fe.Field(), message(fe))
		if fe.Tag() != "taskstatus" {
			statusOnly = false
		}
	}

	if statusOnly {
		return errors.WithStack(domainerrors.ErrInvalidStatus.WithDetails(details))
	}

	return errors.WithStack(domainerrors.ErrValidationFailed.WithDetails(details))
}
