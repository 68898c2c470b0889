package models

import "gorm.io/gorm"

// Certification rows come from the comma-separated certifications input,
// one row per non-blank segment.
type Certification struct {
	gorm.Model
	MemberID uint   `gorm:"not null;index" json:"memberId"`
	Name     string `gorm:"column:certification_name;size:200;not null" json:"name"`
}

func (Certification) TableName() string {
	return "certifications"
}

// Skill rows come from the comma-separated skills input.
type Skill struct {
	gorm.Model
	MemberID uint   `gorm:"not null;index" json:"memberId"`
	Name     string `gorm:"column:skill_name;size:100;not null" json:"name"`
}

func (Skill) TableName() string {
	return "skills"
}
