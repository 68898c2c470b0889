package consentControllers

import (
	"log"

	"cms/middleware"
	"cms/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// ConsentController records consent audit rows.
type ConsentController struct {
	DB *gorm.DB
}

func New(db *gorm.DB) *ConsentController {
	return &ConsentController{DB: db}
}

// Record stores a consent decision keyed by the caller's IP and
// user agent. Absent or negative consent is rejected.
func (cc *ConsentController) Record(c *fiber.Ctx) error {
	reqData := new(struct {
		Consent     *bool  `json:"consent" form:"consent"`
		ConsentText string `json:"consent_text" form:"consent_text"`
	})
	if err := c.BodyParser(reqData); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid request body!",
		})
	}

	if reqData.Consent == nil || !*reqData.Consent {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Consent is required",
		})
	}

	consent := models.UserConsent{
		IPAddress:     c.IP(),
		UserAgent:     c.Get(fiber.HeaderUserAgent),
		ConsentText:   reqData.ConsentText,
		ConsentStatus: *reqData.Consent,
	}
	if err := cc.DB.Create(&consent).Error; err != nil {
		log.Printf("Error recording consent: %v", err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Error recording consent")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Consent recorded successfully",
	})
}
