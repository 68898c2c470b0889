package authRoutes

import (
	"cms/controllers/authControllers"
	authValidator "cms/validators/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupAuthRoutes(app *fiber.App, ac *authControllers.AuthController) {
	authGroup := app.Group("/auth")

	authGroup.Post("/login", authValidator.Login(), ac.Login)
}
