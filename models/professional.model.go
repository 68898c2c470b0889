package models

import "gorm.io/gorm"

const (
	StatusWorking      = "working"
	StatusNotWorking   = "not_working"
	StatusStudent      = "student"
	StatusJustFinished = "just_finished"

	NyscAboutToGo     = "about_to_go"
	NyscDoing         = "doing_nysc"
	NyscAboutToFinish = "about_to_finish"
)

// ProfessionalInfo keeps one row per member. Which columns are populated
// depends on the professional status; columns that do not apply to the
// member's status stay NULL rather than empty.
type ProfessionalInfo struct {
	gorm.Model
	MemberID           uint    `gorm:"not null;index" json:"memberId"`
	Status             string  `gorm:"size:20;not null" json:"status"`
	Profession         *string `gorm:"size:100" json:"profession"`
	WorkplaceName      *string `gorm:"size:100" json:"workplaceName"`
	Position           *string `gorm:"size:100" json:"position"`
	ExperienceDuration *string `gorm:"size:50" json:"experienceDuration"`
	University         *string `gorm:"size:200" json:"university"`
	CurrentLevel       *string `gorm:"size:50" json:"currentLevel"`
	CvPath             *string `gorm:"size:255" json:"cvPath"`
	NyscStatus         *string `gorm:"size:20" json:"nyscStatus"`
	StateOfPosting     *string `gorm:"size:50" json:"stateOfPosting"`
}

func (ProfessionalInfo) TableName() string {
	return "professional_info"
}
