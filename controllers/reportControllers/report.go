package reportControllers

import (
	"log"
	"strings"
	"time"

	"cms/middleware"
	"cms/models"
	"cms/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

// ReportController serves the read-only aggregate views.
type ReportController struct {
	DB *gorm.DB
}

func New(db *gorm.DB) *ReportController {
	return &ReportController{DB: db}
}

type PlatformStat struct {
	Platform string `json:"platform"`
	Count    int64  `json:"count"`
}

type GenderStat struct {
	Gender string `json:"gender"`
	Count  int64  `json:"count"`
}

type MaritalStat struct {
	MaritalStatus string `json:"marital_status"`
	Count         int64  `json:"count"`
}

type StatusStat struct {
	ProfessionalStatus string `json:"professional_status"`
	Count              int64  `json:"count"`
}

type ProfessionStat struct {
	Profession string `json:"profession"`
	Count      int64  `json:"count"`
}

type NyscStat struct {
	NyscStatus string `json:"nysc_status"`
	Count      int64  `json:"count"`
}

type UniversityStat struct {
	University string `json:"university"`
	Count      int64  `json:"count"`
}

type StatePostingStat struct {
	StatePosting string `json:"state_posting"`
	Count        int64  `json:"count"`
}

type reportData struct {
	TotalMembers           int64
	MembersWithSocialMedia int64
	PlatformStats          []PlatformStat
	GenderStats            []GenderStat
	MaritalStats           []MaritalStat
	StatusStats            []StatusStat
	ProfessionStats        []ProfessionStat
	NyscStats              []NyscStat
	UniversityStats        []UniversityStat
	StatePostingStats      []StatePostingStat
}

// memberWindow filters on the member creation timestamp, widened to
// cover the full start and end days. Applied only when both bounds are
// present.
func memberWindow(startDate, endDate string) func(*gorm.DB) *gorm.DB {
	return func(tx *gorm.DB) *gorm.DB {
		if startDate != "" && endDate != "" {
			return tx.Where("members.created_at BETWEEN ? AND ?",
				startDate+" 00:00:00", endDate+" 23:59:59")
		}
		return tx
	}
}

func (rc *ReportController) collect(startDate, endDate string) (*reportData, error) {
	window := memberWindow(startDate, endDate)
	data := &reportData{}

	if err := rc.DB.Model(&models.Member{}).Scopes(window).Count(&data.TotalMembers).Error; err != nil {
		return nil, err
	}

	if err := rc.DB.Model(&models.Member{}).
		Joins("JOIN social_media_handles sm ON sm.member_id = members.id AND sm.deleted_at IS NULL").
		Scopes(window).
		Distinct("members.id").
		Count(&data.MembersWithSocialMedia).Error; err != nil {
		return nil, err
	}

	if err := rc.DB.Model(&models.SocialMediaHandle{}).
		Select("social_media_handles.platform, COUNT(DISTINCT social_media_handles.member_id) AS count").
		Joins("JOIN members ON members.id = social_media_handles.member_id AND members.deleted_at IS NULL").
		Scopes(window).
		Group("social_media_handles.platform").
		Order("count DESC").
		Scan(&data.PlatformStats).Error; err != nil {
		return nil, err
	}

	if err := rc.DB.Model(&models.Member{}).
		Select("members.gender, COUNT(*) AS count").
		Scopes(window).
		Group("members.gender").
		Scan(&data.GenderStats).Error; err != nil {
		return nil, err
	}

	if err := rc.DB.Model(&models.Member{}).
		Select("members.marital_status, COUNT(*) AS count").
		Scopes(window).
		Group("members.marital_status").
		Scan(&data.MaritalStats).Error; err != nil {
		return nil, err
	}

	professional := func(dest interface{}, selectExpr, groupExpr string, filters ...func(*gorm.DB) *gorm.DB) error {
		query := rc.DB.Model(&models.ProfessionalInfo{}).
			Select(selectExpr).
			Joins("JOIN members ON members.id = professional_info.member_id AND members.deleted_at IS NULL").
			Scopes(window)
		for _, filter := range filters {
			query = query.Scopes(filter)
		}
		return query.Group(groupExpr).Order("count DESC").Scan(dest).Error
	}

	statusIs := func(status string) func(*gorm.DB) *gorm.DB {
		return func(tx *gorm.DB) *gorm.DB {
			return tx.Where("professional_info.status = ?", status)
		}
	}

	if err := professional(&data.StatusStats,
		"professional_info.status AS professional_status, COUNT(*) AS count",
		"professional_info.status"); err != nil {
		return nil, err
	}
	if err := professional(&data.ProfessionStats,
		"professional_info.profession, COUNT(*) AS count",
		"professional_info.profession", statusIs(models.StatusWorking)); err != nil {
		return nil, err
	}
	if err := professional(&data.NyscStats,
		"professional_info.nysc_status, COUNT(*) AS count",
		"professional_info.nysc_status", statusIs(models.StatusJustFinished)); err != nil {
		return nil, err
	}
	if err := professional(&data.UniversityStats,
		"professional_info.university, COUNT(*) AS count",
		"professional_info.university", statusIs(models.StatusStudent)); err != nil {
		return nil, err
	}
	if err := professional(&data.StatePostingStats,
		"professional_info.state_of_posting AS state_posting, COUNT(*) AS count",
		"professional_info.state_of_posting",
		func(tx *gorm.DB) *gorm.DB {
			return tx.Where("professional_info.nysc_status = ?", models.NyscDoing)
		}); err != nil {
		return nil, err
	}

	return data, nil
}

// GetSummary returns the aggregate dashboard counts, optionally limited
// to a creation-date window.
func (rc *ReportController) GetSummary(c *fiber.Ctx) error {
	startDate := c.Query("startDate")
	endDate := c.Query("endDate")

	data, err := rc.collect(startDate, endDate)
	if err != nil {
		log.Printf("Error fetching report data: %v", err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError,
			"Failed to fetch report data")
	}

	return c.JSON(fiber.Map{
		"totalMembers":             data.TotalMembers,
		"membersWithSocialMedia":   data.MembersWithSocialMedia,
		"socialMediaPlatformStats": data.PlatformStats,
		"genderStats":              data.GenderStats,
		"maritalStatusStats":       data.MaritalStats,
		"professionalStatusStats":  data.StatusStats,
		"statePostingStats":        data.StatePostingStats,
		"subReports": fiber.Map{
			"working":       data.ProfessionStats,
			"just_finished": data.NyscStats,
			"student":       data.UniversityStats,
		},
	})
}

// memberExportRow is one flat line of the Members sheet.
type memberExportRow struct {
	ID                 uint
	FirstName          string
	LastName           string
	Email              *string
	Phone              *string
	Gender             string
	MaritalStatus      string
	ProfessionalStatus *string
	Profession         *string
	NyscStatus         *string
	StatePosting       *string
	CreatedAt          time.Time
}

func (rc *ReportController) memberRows(startDate, endDate string) ([]memberExportRow, map[uint][]string, error) {
	var rows []memberExportRow
	err := rc.DB.Model(&models.Member{}).
		Select(`members.id, members.first_name, members.last_name, members.gender,
			members.marital_status, members.created_at,
			ci.email, ci.mobile_no AS phone,
			pi.status AS professional_status, pi.profession,
			pi.nysc_status, pi.state_of_posting AS state_posting`).
		Joins("LEFT JOIN contact_info ci ON ci.member_id = members.id AND ci.deleted_at IS NULL").
		Joins("LEFT JOIN professional_info pi ON pi.member_id = members.id AND pi.deleted_at IS NULL").
		Scopes(memberWindow(startDate, endDate)).
		Order("members.created_at DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, nil, err
	}

	var handles []models.SocialMediaHandle
	if err := rc.DB.Find(&handles).Error; err != nil {
		return nil, nil, err
	}
	platforms := make(map[uint][]string)
	for _, h := range handles {
		platforms[h.MemberID] = append(platforms[h.MemberID], h.Platform)
	}

	return rows, platforms, nil
}

// ExportSpreadsheet writes the xlsx workbook: a Dashboard summary sheet
// plus a flat per-member sheet.
func (rc *ReportController) ExportSpreadsheet(c *fiber.Ctx) error {
	startDate := c.Query("startDate")
	endDate := c.Query("endDate")

	data, err := rc.collect(startDate, endDate)
	if err != nil {
		log.Printf("Error exporting report: %v", err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to export report")
	}
	members, platforms, err := rc.memberRows(startDate, endDate)
	if err != nil {
		log.Printf("Error exporting report: %v", err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to export report")
	}

	f := excelize.NewFile()
	defer f.Close()

	f.SetSheetName("Sheet1", "Dashboard")
	dashboard := [][]interface{}{
		{"Report Summary"},
		{},
		{"Total Members", data.TotalMembers},
		{"Members with Social Media", data.MembersWithSocialMedia},
		{},
		{"Gender Distribution"},
		{"Gender", "Count"},
	}
	for _, s := range data.GenderStats {
		dashboard = append(dashboard, []interface{}{s.Gender, s.Count})
	}
	dashboard = append(dashboard, []interface{}{}, []interface{}{"Marital Status Distribution"}, []interface{}{"Status", "Count"})
	for _, s := range data.MaritalStats {
		dashboard = append(dashboard, []interface{}{s.MaritalStatus, s.Count})
	}
	dashboard = append(dashboard, []interface{}{}, []interface{}{"Professional Status Distribution"}, []interface{}{"Status", "Count"})
	for _, s := range data.StatusStats {
		dashboard = append(dashboard, []interface{}{s.ProfessionalStatus, s.Count})
	}
	dashboard = append(dashboard, []interface{}{}, []interface{}{"Profession Distribution"}, []interface{}{"Profession", "Count"})
	for _, s := range data.ProfessionStats {
		dashboard = append(dashboard, []interface{}{s.Profession, s.Count})
	}
	dashboard = append(dashboard, []interface{}{}, []interface{}{"NYSC Status Distribution"}, []interface{}{"Status", "Count"})
	for _, s := range data.NyscStats {
		dashboard = append(dashboard, []interface{}{s.NyscStatus, s.Count})
	}
	dashboard = append(dashboard, []interface{}{}, []interface{}{"State Posting Distribution (NYSC)"}, []interface{}{"State", "Count"})
	for _, s := range data.StatePostingStats {
		dashboard = append(dashboard, []interface{}{s.StatePosting, s.Count})
	}
	dashboard = append(dashboard, []interface{}{}, []interface{}{"Social Media Platform Distribution"}, []interface{}{"Platform", "Count"})
	for _, s := range data.PlatformStats {
		dashboard = append(dashboard, []interface{}{s.Platform, s.Count})
	}

	for i, row := range dashboard {
		cell, _ := excelize.CoordinatesToCellName(1, i+1)
		if err := f.SetSheetRow("Dashboard", cell, &row); err != nil {
			log.Printf("Error writing dashboard sheet: %v", err)
			return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to export report")
		}
	}

	if _, err := f.NewSheet("Members"); err != nil {
		log.Printf("Error creating members sheet: %v", err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to export report")
	}
	headers := []interface{}{
		"ID", "First Name", "Last Name", "Email", "Phone", "Gender",
		"Marital Status", "Professional Status", "Profession",
		"NYSC Status", "State Posting", "Social Media Platforms", "Created At",
	}
	f.SetSheetRow("Members", "A1", &headers)
	for i, m := range members {
		row := []interface{}{
			m.ID, m.FirstName, m.LastName,
			utils.StrOrEmpty(m.Email), utils.StrOrEmpty(m.Phone),
			m.Gender, m.MaritalStatus,
			utils.StrOrEmpty(m.ProfessionalStatus), utils.StrOrEmpty(m.Profession),
			utils.StrOrEmpty(m.NyscStatus), utils.StrOrEmpty(m.StatePosting),
			strings.Join(platforms[m.ID], ", "), m.CreatedAt.Format("2006-01-02 15:04:05"),
		}
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := f.SetSheetRow("Members", cell, &row); err != nil {
			log.Printf("Error writing members sheet: %v", err)
			return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to export report")
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		log.Printf("Error generating workbook: %v", err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to export report")
	}

	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, "attachment; filename=member_report.xlsx")
	return c.Send(buf.Bytes())
}
