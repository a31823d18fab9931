// Package validator binds go-playground/validator to echo and reports
// failures as VALIDATION_FAILED with per-field details.
package validator

import (
	"reflect"
	"strings"

	domainerrors "staffhub/internal/domain/errors"
	"staffhub/internal/errors"

	"github.com/go-playground/validator/v10"
)

// FieldError names one failed rule. Field is the JSON path of the value.
type FieldError struct {
	Field string `json:"field"`
	Rule  string `json:"rule"`
}

// CustomValidator implements echo.Validator.
type CustomValidator struct {
	validate *validator.Validate
}

// New builds a validator that reports fields by their JSON names.
func New() *CustomValidator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(jsonFieldName)

	return &CustomValidator{validate: v}
}

// Validate runs the struct rules on i.
func (cv *CustomValidator) Validate(i any) error {
	err := cv.validate.Struct(i)
	if err == nil {
		return nil
	}

	details := FieldErrors(err)
	if details == nil {
		return errors.Wrap(err, "failed to validate request")
	}

	return domainerrors.ErrValidationFailed.WithDetails(details)
}

// FieldErrors flattens validator errors into FieldError values, or returns
// nil when err did not come from the validator.
func FieldErrors(err error) []FieldError {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return nil
	}

	out := make([]FieldError, 0, len(validationErrs))
	for _, fe := range validationErrs {
		out = append(out, FieldError{
			Field: fieldPath(fe.Namespace()),
			Rule:  fe.Tag(),
		})
	}

	return out
}

// fieldPath drops the root struct name from a namespace such as
// "createEmployeeRequest.address.line1".
func fieldPath(namespace string) string {
	if _, rest, ok := strings.Cut(namespace, "."); ok {
		return rest
	}

	return namespace
}

func jsonFieldName(field reflect.StructField) string {
	name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
	switch name {
	case "-":
		return ""
	case "":
		return field.Name
	default:
		return name
	}
}
