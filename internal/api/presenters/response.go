package presenters

import (
	"Recipe-Share-Backend/domain"
	"errors"

	"github.com/gofiber/fiber/v2"
)

func SuccessResponse(c *fiber.Ctx, data any, code int, message string) error {
	payload := fiber.Map{
		"success": true,
		"message": message,
	}
	if data != nil {
		payload["data"] = data
	}
	return c.Status(code).JSON(payload)
}

func ErrorResponse(c *fiber.Ctx, code int, message string, err error) error {
	payload := fiber.Map{
		"success": false,
		"message": message,
	}
	if err != nil {
		payload["error"] = err.Error()
	}
	return c.Status(code).JSON(payload)
}

// StatusFromError maps domain errors onto the HTTP taxonomy: malformed
// input is 400, missing records are 404, bad tokens are 401, anything else
// is a 500 whose details stay server-side.
func StatusFromError(err error) int {
	switch {
	case errors.Is(err, domain.ErrParseUUID),
		errors.Is(err, domain.ErrRatingOutOfRange),
		errors.Is(err, domain.ErrNoFileUploaded),
		errors.Is(err, domain.ErrInvalidImage),
		errors.Is(err, domain.ErrEmailAlreadyExists),
		errors.Is(err, domain.ErrUsernameTaken):
		return fiber.StatusBadRequest
	case errors.Is(err, domain.ErrRecipeNotFound),
		errors.Is(err, domain.ErrCommentNotFound),
		errors.Is(err, domain.ErrUserNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, domain.ErrInvalidCredentials),
		errors.Is(err, domain.ErrTokenExpired),
		errors.Is(err, domain.ErrTokenInvalid),
		errors.Is(err, domain.ErrTokenNotFound):
		return fiber.StatusUnauthorized
	default:
		return fiber.StatusInternalServerError
	}
}

// HandleError hides internal error details on 500s while keeping the
// domain-level message for client errors.
func HandleError(c *fiber.Ctx, message string, err error) error {
	code := StatusFromError(err)
	if code == fiber.StatusInternalServerError {
		return ErrorResponse(c, code, message, nil)
	}
	return ErrorResponse(c, code, message, err)
}
