package middleware

import "github.com/gofiber/fiber/v2"

// ErrorResponse sends a plain error body: {"error": message}
func ErrorResponse(c *fiber.Ctx, statusCode int, message string) error {
	return c.Status(statusCode).JSON(fiber.Map{
		"error": message,
	})
}

// ValidationErrorResponse sends the full violation list alongside the
// summary error message, one entry per missing or malformed field.
func ValidationErrorResponse(c *fiber.Ctx, message string, violations []string) error {
	errs := make([]fiber.Map, 0, len(violations))
	for _, v := range violations {
		errs = append(errs, fiber.Map{"message": v})
	}
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"error":            message,
		"validationErrors": errs,
	})
}

// InternalErrorResponse sanitizes failure detail outside development mode.
func InternalErrorResponse(c *fiber.Ctx, message, detail string, development bool) error {
	body := fiber.Map{"error": message}
	if development && detail != "" {
		body["details"] = detail
	}
	return c.Status(fiber.StatusInternalServerError).JSON(body)
}
