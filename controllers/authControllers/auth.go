package authControllers

import (
	"log"

	"cms/config"
	"cms/middleware"
	"cms/models"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// AuthController issues admin tokens for the reporting endpoints.
type AuthController struct {
	DB  *gorm.DB
	Cfg *config.Config
}

func New(db *gorm.DB, cfg *config.Config) *AuthController {
	return &AuthController{DB: db, Cfg: cfg}
}

// Login authenticates an admin and returns a JWT
func (ac *AuthController) Login(c *fiber.Ctx) error {
	reqData, ok := c.Locals("loginRequest").(*struct {
		Email    string `json:"email" form:"email"`
		Password string `json:"password" form:"password"`
	})
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request data!")
	}

	var admin models.AdminUser
	if err := ac.DB.Where("email = ?", reqData.Email).First(&admin).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusUnauthorized, "Invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(reqData.Password)); err != nil {
		return middleware.ErrorResponse(c, fiber.StatusUnauthorized, "Invalid credentials")
	}

	token, err := middleware.GenerateJWT(&admin, ac.Cfg.JWTKey)
	if err != nil {
		log.Printf("Error generating token: %v", err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to process your request")
	}

	return c.JSON(fiber.Map{
		"message": "Login successful",
		"token":   token,
	})
}
