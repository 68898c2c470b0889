package reportRoutes

import (
	"cms/controllers/reportControllers"
	"cms/middleware"
	reportValidator "cms/validators/report"

	"github.com/gofiber/fiber/v2"
)

func SetupReportRoutes(app *fiber.App, rc *reportControllers.ReportController, jwtKey string) {
	reportGroup := app.Group("/reports", middleware.JWTMiddleware(jwtKey))

	reportGroup.Get("/", reportValidator.DateRange(), rc.GetSummary)
	reportGroup.Get("/export", reportValidator.DateRange(), rc.ExportSpreadsheet)
}
