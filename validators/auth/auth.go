package authValidator

import (
	"strings"

	"cms/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// Login validator middleware
func Login() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Email    string `json:"email" form:"email"`
			Password string `json:"password" form:"password"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body!")
		}

		var violations []string
		if reqData.Email == "" || validate.Var(reqData.Email, "email") != nil {
			violations = append(violations, "A valid email is required")
		}
		if strings.TrimSpace(reqData.Password) == "" {
			violations = append(violations, "Password is required")
		}

		if len(violations) > 0 {
			return middleware.ValidationErrorResponse(c, "Invalid credentials payload", violations)
		}

		c.Locals("loginRequest", reqData)
		return c.Next()
	}
}
