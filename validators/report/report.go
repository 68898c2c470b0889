package reportValidator

import (
	"cms/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// DateRange checks the optional startDate/endDate query parameters.
// Either may be absent; a present value must be a calendar date.
func DateRange() fiber.Handler {
	return func(c *fiber.Ctx) error {
		for _, param := range []string{"startDate", "endDate"} {
			value := c.Query(param)
			if value == "" {
				continue
			}
			if err := validate.Var(value, "datetime=2006-01-02"); err != nil {
				return middleware.ErrorResponse(c, fiber.StatusBadRequest,
					"Invalid "+param+". Use the YYYY-MM-DD format.")
			}
		}
		return c.Next()
	}
}
