package memberRoutes

import (
	"cms/controllers/memberControllers"
	memberValidator "cms/validators/member"

	"github.com/gofiber/fiber/v2"
)

func SetupMemberRoutes(app *fiber.App, mc *memberControllers.MemberController) {
	app.Post("/register", memberValidator.Register(), mc.Register)
}
