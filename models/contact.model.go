package models

import "gorm.io/gorm"

// ContactInfo holds the member's contact details. Exactly one row per
// member, created together with it. Email is unique across all members.
type ContactInfo struct {
	gorm.Model
	MemberID   uint    `gorm:"not null;index" json:"memberId"`
	MobileNo   string  `gorm:"size:20;not null" json:"mobileNo"`
	Email      string  `gorm:"size:100;unique;not null" json:"email"`
	HouseNo    string  `gorm:"size:50;not null" json:"houseNo"`
	StreetName string  `gorm:"size:100;not null" json:"streetName"`
	Country    string  `gorm:"size:100;not null" json:"country"`
	City       *string `gorm:"size:50" json:"city"`
	State      *string `gorm:"size:50" json:"state"`
	LocalGovt  *string `gorm:"size:50" json:"localGovt"`
}

func (ContactInfo) TableName() string {
	return "contact_info"
}

// EmergencyContact is the member's single emergency contact.
type EmergencyContact struct {
	gorm.Model
	MemberID     uint   `gorm:"not null;index" json:"memberId"`
	Name         string `gorm:"size:100;not null" json:"name"`
	Relationship string `gorm:"size:50;not null" json:"relationship"`
	Phone        string `gorm:"size:20;not null" json:"phone"`
}

func (EmergencyContact) TableName() string {
	return "emergency_contacts"
}
