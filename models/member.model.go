package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	GenderMale   = "Male"
	GenderFemale = "Female"

	MaritalSingle  = "Single"
	MaritalMarried = "Married"
)

// Member is the root entity. Every other registration row references it
// and is created in the same transaction.
type Member struct {
	gorm.Model
	FirstName     string    `gorm:"size:50;not null" json:"firstName"`
	LastName      string    `gorm:"size:50;not null" json:"lastName"`
	DateOfBirth   time.Time `gorm:"type:date;not null" json:"dateOfBirth"`
	Gender        string    `gorm:"size:10;not null" json:"gender"`
	MaritalStatus string    `gorm:"size:10;not null" json:"maritalStatus"`
}

func (Member) TableName() string {
	return "members"
}
