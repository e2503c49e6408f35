package helpers

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/EzIsEzzy/Continue/src/core/apperr"
)

// ActorID extracts the authenticated user's id placed in the request
// context by the JWT middleware.
func ActorID(c *fiber.Ctx) (uuid.UUID, error) {
	raw, ok := c.Locals("user_id").(string)
	if !ok || raw == "" {
		return uuid.Nil, errors.New("missing user_id in request context")
	}
	return uuid.Parse(raw)
}

// Initialize a validator instance using go-playground's validator package
var Validator = validator.New()

// Validate checks the struct fields against the specified validation tags.
func Validate(val interface{}) error {
	return Validator.Struct(val)
}

// HandleSuccess sends a structured JSON response for successful requests.
func HandleSuccess(context *fiber.Ctx, statusCode int, message string, data interface{}) error {
	return context.Status(statusCode).JSON(fiber.Map{
		"status":  "success",
		"message": message,
		"error":   nil,
		"data":    data,
	})
}

// HandleError sends a structured JSON response for errors.
func HandleError(context *fiber.Ctx, statusCode int, message string, err error) error {
	var detail interface{}
	if err != nil {
		detail = err.Error()
	}
	return context.Status(statusCode).JSON(fiber.Map{
		"status":  "error",
		"message": message,
		"error":   detail,
		"data":    nil,
	})
}

// HandleServiceError maps a service-layer error onto an HTTP status and the
// standard error envelope. Authorization failures are reported generically,
// validation failures name the offending field.
func HandleServiceError(context *fiber.Ctx, err error) error {
	if ve, ok := apperr.AsValidation(err); ok {
		return HandleError(context, fiber.StatusBadRequest, "Invalid input data", ve)
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		return HandleError(context, fiber.StatusBadRequest, "Invalid input data", verrs)
	}

	switch {
	case errors.Is(err, apperr.ErrUnauthorized):
		return HandleError(context, fiber.StatusForbidden, "Unauthorized action", nil)
	case errors.Is(err, apperr.ErrConflict):
		return HandleError(context, fiber.StatusConflict, "Already exists", err)
	case errors.Is(err, apperr.ErrInvalidState):
		return HandleError(context, fiber.StatusUnprocessableEntity, "Invalid state for this action", err)
	case errors.Is(err, apperr.ErrNotFound):
		return HandleError(context, fiber.StatusNotFound, "Record not found", err)
	default:
		return HandleError(context, fiber.StatusInternalServerError, "Something went wrong", err)
	}
}
