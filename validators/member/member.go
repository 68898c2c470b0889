package memberValidator

import (
	"strings"

	"cms/middleware"
	"cms/models"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// CVRequiredMessage is reported when a not_working applicant submits no CV.
const CVRequiredMessage = "CV file is required"

// InvalidStatusMessage is reported for professional status values outside
// the known set. Unknown statuses are rejected, not silently accepted.
const InvalidStatusMessage = "Professional Status is invalid"

var validate = validator.New()

// Field pairs a form field name with the label used in error messages.
type Field struct {
	Name  string
	Label string
}

// baseRequired is enforced on every submission.
var baseRequired = []Field{
	{"firstName", "First Name"},
	{"lastName", "Last Name"},
	{"dateOfBirth", "Date of Birth"},
	{"gender", "Gender"},
	{"maritalStatus", "Marital Status"},
	{"mobileNo", "Mobile Number"},
	{"email", "Email"},
	{"houseNo", "House Number"},
	{"streetName", "Street Name"},
	{"country", "Country of Residence"},
	{"emergencyName", "Emergency Contact Name"},
	{"emergencyRelationship", "Emergency Contact Relationship"},
	{"emergencyPhone", "Emergency Contact Phone Number"},
	{"professionalStatus", "Professional Status"},
}

// nigeriaRequired applies when the country of residence is Nigeria.
var nigeriaRequired = []Field{
	{"state", "State"},
	{"localGovt", "Local Government Area"},
}

// statusRequired maps each professional status to the additional fields
// it demands. not_working adds no text fields; it requires a CV file,
// which is checked before anything else.
var statusRequired = map[string][]Field{
	models.StatusWorking: {
		{"profession", "Profession"},
		{"workplaceName", "Workplace Name"},
		{"position", "Position"},
		{"experienceDuration", "Experience Duration"},
	},
	models.StatusStudent: {
		{"university", "University/Institution"},
		{"currentLevel", "Current Level"},
	},
	models.StatusJustFinished: {
		{"nyscStatus", "NYSC Status"},
	},
	models.StatusNotWorking: {},
}

func isBlank(value string) bool {
	return strings.TrimSpace(value) == ""
}

// RequiredFields computes the full required set for a submission.
func RequiredFields(form *models.RegistrationForm) []Field {
	required := make([]Field, 0, len(baseRequired)+6)
	required = append(required, baseRequired...)

	if strings.TrimSpace(form.Country) == "Nigeria" {
		required = append(required, nigeriaRequired...)
	}

	if extra, ok := statusRequired[form.ProfessionalStatus]; ok {
		required = append(required, extra...)
		if form.ProfessionalStatus == models.StatusJustFinished && form.NyscStatus == models.NyscDoing {
			required = append(required, Field{"stateOfPosting", "State of Posting"})
		}
	}

	return required
}

// Validate reports every violation in one pass. A not_working submission
// without an attached CV fails immediately with only the CV error.
func Validate(form *models.RegistrationForm, hasFile bool) []string {
	if form.ProfessionalStatus == models.StatusNotWorking && !hasFile {
		return []string{CVRequiredMessage}
	}

	var violations []string
	for _, field := range RequiredFields(form) {
		if isBlank(form.FieldValue(field.Name)) {
			violations = append(violations, field.Label+" is required")
		}
	}

	if _, known := statusRequired[form.ProfessionalStatus]; !known && !isBlank(form.ProfessionalStatus) {
		violations = append(violations, InvalidStatusMessage)
	}

	// Format checks run after the required pass so a missing field is
	// reported once, as missing.
	if !isBlank(form.Email) && validate.Var(strings.TrimSpace(form.Email), "email") != nil {
		violations = append(violations, "Email is invalid")
	}
	if !isBlank(form.DateOfBirth) && validate.Var(strings.TrimSpace(form.DateOfBirth), "datetime=2006-01-02") != nil {
		violations = append(violations, "Date of Birth must be in YYYY-MM-DD format")
	}

	return violations
}

// Register validates the registration form and passes the parsed form to
// the controller via Locals.
func Register() fiber.Handler {
	return func(c *fiber.Ctx) error {
		form := new(models.RegistrationForm)
		if err := c.BodyParser(form); err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body!")
		}

		file, err := c.FormFile("cvUpload")
		hasFile := err == nil && file != nil

		violations := Validate(form, hasFile)
		if len(violations) > 0 {
			message := "Required fields are missing"
			if violations[0] == CVRequiredMessage {
				message = "CV file is required for not working status"
			}
			return middleware.ValidationErrorResponse(c, message, violations)
		}

		c.Locals("registrationForm", form)
		return c.Next()
	}
}
