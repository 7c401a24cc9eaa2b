package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/staff-directory/internal/api/dto"
	apperrors "github.com/spec-kit/staff-directory/pkg/util"
)

// validatable is implemented by request payloads that check their own fields.
type validatable interface {
	Validate(maxFieldLength int) error
}

// bindAndValidate parses the JSON body into payload and validates it. Both
// failures surface as VALIDATION_FAILED before any store access.
func bindAndValidate(c *fiber.Ctx, payload validatable, maxFieldLength int) error {
	if err := c.BodyParser(payload); err != nil {
		return apperrors.NewValidationError("invalid payload", map[string]any{
			"body": err.Error(),
		})
	}
	if err := payload.Validate(maxFieldLength); err != nil {
		return apperrors.NewValidationError("validation failed", fieldErrors(err))
	}
	return nil
}

func fieldErrors(err error) map[string]any {
	details := map[string]any{}
	var fieldErrs dto.FieldErrors
	if !errors.As(err, &fieldErrs) {
		details["body"] = err.Error()
		return details
	}
	for field, msg := range fieldErrs {
		details[field] = msg
	}
	return details
}
