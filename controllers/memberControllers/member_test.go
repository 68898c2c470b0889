package memberControllers

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"cms/config"
	"cms/database"
	"cms/models"
	memberValidator "cms/validators/member"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return db
}

func newTestApp(t *testing.T) (*fiber.App, *gorm.DB, *config.Config) {
	t.Helper()
	db := newTestDB(t)
	cfg := &config.Config{Env: "production", UploadDir: t.TempDir(), MaxUploadSizeMB: 10}

	app := fiber.New()
	mc := New(db, cfg)
	app.Post("/register", memberValidator.Register(), mc.Register)

	return app, db, cfg
}

type fileSpec struct {
	field   string
	name    string
	content []byte
}

func postForm(t *testing.T, app *fiber.App, fields map[string]string, file *fileSpec) *http.Response {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	for key, value := range fields {
		require.NoError(t, writer.WriteField(key, value))
	}
	if file != nil {
		part, err := writer.CreateFormFile(file.field, file.name)
		require.NoError(t, err)
		_, err = part.Write(file.content)
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/register", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response) map[string]interface{} {
	t.Helper()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &body))
	return body
}

func workingFields(email string) map[string]string {
	return map[string]string{
		"firstName":             "John",
		"lastName":              "Doe",
		"dateOfBirth":           "1990-05-10",
		"gender":                models.GenderMale,
		"maritalStatus":         models.MaritalSingle,
		"mobileNo":              "08012345678",
		"email":                 email,
		"houseNo":               "12",
		"streetName":            "Allen Avenue",
		"country":               "Ghana",
		"emergencyName":         "Jane Doe",
		"emergencyRelationship": "Sister",
		"emergencyPhone":        "08087654321",
		"professionalStatus":    models.StatusWorking,
		"profession":            "Engineer",
		"workplaceName":         "Acme Ltd",
		"position":              "Lead",
		"experienceDuration":    "5",
	}
}

func notWorkingFields(email string) map[string]string {
	fields := workingFields(email)
	fields["professionalStatus"] = models.StatusNotWorking
	delete(fields, "profession")
	delete(fields, "workplaceName")
	delete(fields, "position")
	delete(fields, "experienceDuration")
	return fields
}

func TestRegister_Success(t *testing.T) {
	app, db, _ := newTestApp(t)

	resp := postForm(t, app, workingFields("john@example.com"), nil)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, "Registration successful", body["message"])
	assert.Greater(t, body["memberId"].(float64), float64(0))

	var member models.Member
	require.NoError(t, db.First(&member).Error)
	assert.Equal(t, "John", member.FirstName)

	var contact models.ContactInfo
	require.NoError(t, db.Where("member_id = ?", member.ID).First(&contact).Error)
	assert.Equal(t, "john@example.com", contact.Email)
	assert.Nil(t, contact.City)

	var prof models.ProfessionalInfo
	require.NoError(t, db.Where("member_id = ?", member.ID).First(&prof).Error)
	assert.Equal(t, models.StatusWorking, prof.Status)
	require.NotNil(t, prof.Profession)
	assert.Equal(t, "Engineer", *prof.Profession)
	assert.Nil(t, prof.University)
	assert.Nil(t, prof.CvPath)

	var emergency models.EmergencyContact
	require.NoError(t, db.Where("member_id = ?", member.ID).First(&emergency).Error)
	assert.Equal(t, "Jane Doe", emergency.Name)
}

func TestRegister_AllMissingFieldsEnumerated(t *testing.T) {
	app, db, _ := newTestApp(t)

	fields := workingFields("john@example.com")
	delete(fields, "firstName")
	delete(fields, "email")

	resp := postForm(t, app, fields, nil)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, "Required fields are missing", body["error"])

	violations := body["validationErrors"].([]interface{})
	require.Len(t, violations, 2)
	messages := []string{}
	for _, v := range violations {
		messages = append(messages, v.(map[string]interface{})["message"].(string))
	}
	assert.Contains(t, messages, "First Name is required")
	assert.Contains(t, messages, "Email is required")

	var count int64
	db.Model(&models.Member{}).Count(&count)
	assert.Zero(t, count)
}

func TestRegister_DuplicateEmailConflicts(t *testing.T) {
	app, db, _ := newTestApp(t)

	resp := postForm(t, app, workingFields("dup@example.com"), nil)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	resp = postForm(t, app, workingFields("dup@example.com"), nil)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, "Email already registered", body["error"])

	var count int64
	db.Model(&models.Member{}).Count(&count)
	assert.EqualValues(t, 1, count)
}

func TestRegister_NotWorkingRequiresCV(t *testing.T) {
	app, db, _ := newTestApp(t)

	resp := postForm(t, app, notWorkingFields("cv@example.com"), nil)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, "CV file is required for not working status", body["error"])
	violations := body["validationErrors"].([]interface{})
	require.Len(t, violations, 1)
	assert.Equal(t, memberValidator.CVRequiredMessage,
		violations[0].(map[string]interface{})["message"])

	var count int64
	db.Model(&models.Member{}).Count(&count)
	assert.Zero(t, count)
}

func TestRegister_RejectsBadCVExtension(t *testing.T) {
	app, db, cfg := newTestApp(t)

	file := &fileSpec{field: "cvUpload", name: "cv.txt", content: []byte("plain text")}
	resp := postForm(t, app, notWorkingFields("ext@example.com"), file)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, "Invalid file type. Only PDF and Word documents are allowed.", body["error"])

	var count int64
	db.Model(&models.Member{}).Count(&count)
	assert.Zero(t, count)

	// Nothing must have been written to storage.
	entries, err := os.ReadDir(filepath.Join(cfg.UploadDir, "cvs"))
	if err == nil {
		assert.Empty(t, entries)
	}
}

func TestRegister_NotWorkingStoresCV(t *testing.T) {
	app, db, _ := newTestApp(t)

	file := &fileSpec{field: "cvUpload", name: "my resume.PDF", content: []byte("%PDF-1.4")}
	resp := postForm(t, app, notWorkingFields("stored@example.com"), file)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var prof models.ProfessionalInfo
	require.NoError(t, db.First(&prof).Error)
	require.NotNil(t, prof.CvPath)
	assert.FileExists(t, *prof.CvPath)
	assert.Nil(t, prof.Profession)
}

func TestRegister_SplitsCertificationsAndSkills(t *testing.T) {
	app, db, _ := newTestApp(t)

	fields := workingFields("split@example.com")
	fields["certifications"] = "A, ,B,"
	fields["skills"] = " Piano ,, Ushering "

	resp := postForm(t, app, fields, nil)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var certs []models.Certification
	require.NoError(t, db.Order("id").Find(&certs).Error)
	require.Len(t, certs, 2)
	assert.Equal(t, "A", certs[0].Name)
	assert.Equal(t, "B", certs[1].Name)

	var skills []models.Skill
	require.NoError(t, db.Order("id").Find(&skills).Error)
	require.Len(t, skills, 2)
	assert.Equal(t, "Piano", skills[0].Name)
	assert.Equal(t, "Ushering", skills[1].Name)
}

func TestRegister_OptInRowsOnlyWhenOptedIn(t *testing.T) {
	app, db, _ := newTestApp(t)

	resp := postForm(t, app, workingFields("optout@example.com"), nil)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var supportCount, interestCount int64
	db.Model(&models.ChurchSupport{}).Count(&supportCount)
	db.Model(&models.EntrepreneurialInterest{}).Count(&interestCount)
	assert.Zero(t, supportCount)
	assert.Zero(t, interestCount)

	fields := workingFields("optin@example.com")
	fields["isAvailableForSupport"] = "on"
	fields["supportArea"] = "ushering"
	fields["isEntrepreneur"] = "on"
	fields["businessType"] = "Freelancer"

	resp = postForm(t, app, fields, nil)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var support models.ChurchSupport
	require.NoError(t, db.First(&support).Error)
	assert.True(t, support.IsAvailable)
	require.NotNil(t, support.SupportArea)
	assert.Equal(t, "ushering", *support.SupportArea)

	var interest models.EntrepreneurialInterest
	require.NoError(t, db.First(&interest).Error)
	assert.True(t, interest.IsInterested)
}

func TestRegister_SkipsUncheckedAndBlankHandles(t *testing.T) {
	app, db, _ := newTestApp(t)

	fields := workingFields("social@example.com")
	fields["instagram"] = "on"
	fields["instagramHandle"] = " @john "
	fields["twitterHandle"] = "@ghost" // not checked
	fields["tiktok"] = "on"            // checked, blank handle

	resp := postForm(t, app, fields, nil)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var handles []models.SocialMediaHandle
	require.NoError(t, db.Find(&handles).Error)
	require.Len(t, handles, 1)
	assert.Equal(t, models.PlatformInstagram, handles[0].Platform)
	assert.Equal(t, "@john", handles[0].Handle)
}

func TestRegister_RollbackLeavesNoMember(t *testing.T) {
	app, db, _ := newTestApp(t)

	// Force a mid-transaction failure after the member insert.
	require.NoError(t, db.Migrator().DropTable(&models.EmergencyContact{}))

	resp := postForm(t, app, workingFields("rollback@example.com"), nil)
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)

	var count int64
	db.Model(&models.Member{}).Count(&count)
	assert.Zero(t, count)
}

func TestRegister_RollbackRemovesStoredCV(t *testing.T) {
	app, db, cfg := newTestApp(t)

	// Force a mid-transaction failure after the CV has been stored.
	require.NoError(t, db.Migrator().DropTable(&models.EmergencyContact{}))

	file := &fileSpec{field: "cvUpload", name: "cv.pdf", content: []byte("%PDF-1.4")}
	resp := postForm(t, app, notWorkingFields("cvrollback@example.com"), file)
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)

	var count int64
	db.Model(&models.Member{}).Count(&count)
	assert.Zero(t, count)

	entries, err := os.ReadDir(filepath.Join(cfg.UploadDir, "cvs"))
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestClassifyDBError(t *testing.T) {
	tests := []struct {
		name         string
		err          error
		wantConflict bool
		wantColumn   string
	}{
		{"translated duplicate key", gorm.ErrDuplicatedKey, true, ""},
		{"postgres unique violation", &pgconn.PgError{Code: "23505"}, true, ""},
		{"postgres not-null violation", &pgconn.PgError{Code: "23502", ColumnName: "email"}, false, "email"},
		{"wrapped not-null violation", fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23502", ColumnName: "gender"}), false, "gender"},
		{"unrelated failure", errors.New("connection reset"), false, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conflict, column := ClassifyDBError(tt.err)
			assert.Equal(t, tt.wantConflict, conflict)
			assert.Equal(t, tt.wantColumn, column)
		})
	}
}
