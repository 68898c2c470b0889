package models

import "gorm.io/gorm"

// UserConsent is an independent audit record keyed by the caller's
// network identity. It has no relation to Member.
type UserConsent struct {
	gorm.Model
	IPAddress     string `gorm:"size:45;not null" json:"ipAddress"`
	UserAgent     string `gorm:"size:255" json:"userAgent"`
	ConsentText   string `gorm:"type:text" json:"consentText"`
	ConsentStatus bool   `gorm:"not null;default:false" json:"consentStatus"`
}

func (UserConsent) TableName() string {
	return "user_consent"
}
