package consentRoutes

import (
	"cms/controllers/consentControllers"

	"github.com/gofiber/fiber/v2"
)

func SetupConsentRoutes(app *fiber.App, cc *consentControllers.ConsentController) {
	app.Post("/consent", cc.Record)
}
