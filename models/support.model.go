package models

import "gorm.io/gorm"

// ChurchSupport is written only when the applicant opted in to serve.
type ChurchSupport struct {
	gorm.Model
	MemberID    uint    `gorm:"not null;index" json:"memberId"`
	IsAvailable bool    `gorm:"not null;default:false" json:"isAvailable"`
	SupportArea *string `gorm:"size:50" json:"supportArea"`
}

func (ChurchSupport) TableName() string {
	return "church_support"
}

// EntrepreneurialInterest is written only when the applicant opted in.
type EntrepreneurialInterest struct {
	gorm.Model
	MemberID     uint    `gorm:"not null;index" json:"memberId"`
	IsInterested bool    `gorm:"not null;default:false" json:"isInterested"`
	BusinessType *string `gorm:"size:50" json:"businessType"`
}

func (EntrepreneurialInterest) TableName() string {
	return "entrepreneurial_interests"
}
