package memberControllers

import (
	"errors"
	"log"
	"path/filepath"
	"strings"
	"time"

	"cms/config"
	"cms/middleware"
	"cms/models"
	"cms/utils"
	memberValidator "cms/validators/member"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// MemberController handles member registration.
type MemberController struct {
	DB  *gorm.DB
	Cfg *config.Config
}

func New(db *gorm.DB, cfg *config.Config) *MemberController {
	return &MemberController{DB: db, Cfg: cfg}
}

// Register performs the registration transaction: email uniqueness
// pre-check, CV intake, and the atomic multi-table write. The validator
// middleware has already run and left the parsed form in Locals.
func (mc *MemberController) Register(c *fiber.Ctx) error {
	form, ok := c.Locals("registrationForm").(*models.RegistrationForm)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request data!")
	}

	// Advisory pre-check; the unique constraint is the authoritative
	// arbiter when two registrations race on the same email.
	email := strings.TrimSpace(form.Email)
	if err := mc.DB.Where("email = ?", email).First(&models.ContactInfo{}).Error; err == nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Email already registered")
	}

	// Store the CV before any row is written. A failed move must leave
	// no partial member behind.
	cvPath := ""
	if form.ProfessionalStatus == models.StatusNotWorking {
		file, err := c.FormFile("cvUpload")
		if err != nil || file == nil {
			return middleware.ValidationErrorResponse(c,
				"CV file is required for not working status",
				[]string{memberValidator.CVRequiredMessage})
		}
		if !utils.IsAllowedCVExtension(file.Filename) {
			return middleware.ValidationErrorResponse(c,
				"Invalid file type. Only PDF and Word documents are allowed.",
				[]string{"Invalid file type. Only PDF and Word documents are allowed."})
		}

		cvPath, err = utils.SaveUploadedFile(file, filepath.Join(mc.Cfg.UploadDir, "cvs"))
		if err != nil {
			log.Printf("File upload error: %v", err)
			return middleware.InternalErrorResponse(c, "Failed to upload CV file",
				err.Error(), mc.Cfg.Env == "development")
		}
	}

	dateOfBirth, err := time.Parse("2006-01-02", strings.TrimSpace(form.DateOfBirth))
	if err != nil {
		return middleware.ValidationErrorResponse(c, "Required fields are missing",
			[]string{"Date of Birth must be in YYYY-MM-DD format"})
	}

	var member models.Member
	err = mc.DB.Transaction(func(tx *gorm.DB) error {
		member = models.Member{
			FirstName:     strings.TrimSpace(form.FirstName),
			LastName:      strings.TrimSpace(form.LastName),
			DateOfBirth:   dateOfBirth,
			Gender:        strings.TrimSpace(form.Gender),
			MaritalStatus: strings.TrimSpace(form.MaritalStatus),
		}
		if err := tx.Create(&member).Error; err != nil {
			return err
		}

		// Checked platforms with a non-blank handle; everything else is
		// silently skipped.
		for _, platform := range models.Platforms {
			checked, handle := form.PlatformEntry(platform)
			if checked == "on" && strings.TrimSpace(handle) != "" {
				row := models.SocialMediaHandle{
					MemberID: member.ID,
					Platform: platform,
					Handle:   strings.TrimSpace(handle),
				}
				if err := tx.Create(&row).Error; err != nil {
					return err
				}
			}
		}

		contact := models.ContactInfo{
			MemberID:   member.ID,
			MobileNo:   strings.TrimSpace(form.MobileNo),
			Email:      email,
			HouseNo:    strings.TrimSpace(form.HouseNo),
			StreetName: strings.TrimSpace(form.StreetName),
			Country:    strings.TrimSpace(form.Country),
			City:       utils.NullIfBlank(form.City),
			State:      utils.NullIfBlank(form.State),
			LocalGovt:  utils.NullIfBlank(form.LocalGovt),
		}
		if err := tx.Create(&contact).Error; err != nil {
			return err
		}

		emergency := models.EmergencyContact{
			MemberID:     member.ID,
			Name:         strings.TrimSpace(form.EmergencyName),
			Relationship: strings.TrimSpace(form.EmergencyRelationship),
			Phone:        strings.TrimSpace(form.EmergencyPhone),
		}
		if err := tx.Create(&emergency).Error; err != nil {
			return err
		}

		if err := tx.Create(professionalRow(form, member.ID, cvPath)).Error; err != nil {
			return err
		}

		for _, name := range utils.SplitList(form.Certifications) {
			if err := tx.Create(&models.Certification{MemberID: member.ID, Name: name}).Error; err != nil {
				return err
			}
		}
		for _, name := range utils.SplitList(form.Skills) {
			if err := tx.Create(&models.Skill{MemberID: member.ID, Name: name}).Error; err != nil {
				return err
			}
		}

		if form.IsAvailableForSupport != "" {
			support := models.ChurchSupport{
				MemberID:    member.ID,
				IsAvailable: true,
				SupportArea: utils.NullIfBlank(form.SupportArea),
			}
			if err := tx.Create(&support).Error; err != nil {
				return err
			}
		}
		if form.IsEntrepreneur != "" {
			interest := models.EntrepreneurialInterest{
				MemberID:     member.ID,
				IsInterested: true,
				BusinessType: utils.NullIfBlank(form.BusinessType),
			}
			if err := tx.Create(&interest).Error; err != nil {
				return err
			}
		}

		return nil
	})

	if err != nil {
		// The relational rollback does not cover the file move.
		utils.RemoveFile(cvPath)
		return mc.failedRegistration(c, err)
	}

	go func(to, firstName string) {
		body := utils.WelcomeEmailBody(firstName)
		if err := utils.SendEmail(mc.Cfg, []string{to}, "Welcome to the family!", body); err != nil {
			log.Printf("Error sending welcome email to %s: %v", to, err)
		}
	}(email, member.FirstName)

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":  "Registration successful",
		"memberId": member.ID,
	})
}

// professionalRow builds the single professional_info row, leaving every
// column that does not apply to the submitted status as NULL.
func professionalRow(form *models.RegistrationForm, memberID uint, cvPath string) *models.ProfessionalInfo {
	row := &models.ProfessionalInfo{
		MemberID: memberID,
		Status:   form.ProfessionalStatus,
	}

	switch form.ProfessionalStatus {
	case models.StatusWorking:
		row.Profession = utils.NullIfBlank(form.Profession)
		row.WorkplaceName = utils.NullIfBlank(form.WorkplaceName)
		row.Position = utils.NullIfBlank(form.Position)
		row.ExperienceDuration = utils.NullIfBlank(form.ExperienceDuration)
	case models.StatusStudent:
		row.University = utils.NullIfBlank(form.University)
		row.CurrentLevel = utils.NullIfBlank(form.CurrentLevel)
	case models.StatusJustFinished:
		row.NyscStatus = utils.NullIfBlank(form.NyscStatus)
		if form.NyscStatus == models.NyscDoing {
			row.StateOfPosting = utils.NullIfBlank(form.StateOfPosting)
		}
	case models.StatusNotWorking:
		row.CvPath = utils.NullIfBlank(cvPath)
	}

	return row
}

// failedRegistration translates persistence failures: a uniqueness race
// becomes a conflict, a not-null violation becomes a field-specific
// validation message, anything else an opaque internal error.
func (mc *MemberController) failedRegistration(c *fiber.Ctx, err error) error {
	log.Printf("Registration database error: %v", err)

	if conflict, column := ClassifyDBError(err); conflict {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Email already registered")
	} else if column != "" {
		return middleware.ValidationErrorResponse(c, column+" cannot be empty",
			[]string{column + " is required"})
	}

	return middleware.InternalErrorResponse(c,
		"Failed to save registration information. Please try again.",
		err.Error(), mc.Cfg.Env == "development")
}

// ClassifyDBError reports whether the error is a unique-constraint
// conflict and, for not-null violations, which column was at fault.
func ClassifyDBError(err error) (conflict bool, nullColumn string) {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true, ""
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505":
			return true, ""
		case "23502":
			return false, pgErr.ColumnName
		}
	}

	return false, ""
}
