package handler

import (
	"strings"

	domainerrors "catalog/internal/domain/errors"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

// asValidationError converts a struct validation failure into the domain
// ValidationError naming the first offending field.
func asValidationError(err error) error {
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		field := strings.ToLower(fieldErrs[0].Field())

		switch fieldErrs[0].Tag() {
		case "required":
			return domainerrors.NewValidationError(field, "is required")
		case "gte":
			return domainerrors.NewValidationError(field, "must be at least "+fieldErrs[0].Param())
		default:
			return domainerrors.NewValidationError(field, "is invalid")
		}
	}

	return errors.WithStack(err)
}
