package models

import "gorm.io/gorm"

// AdminUser can log in and read the reporting endpoints. Accounts are
// seeded from the environment, there is no self-service signup.
type AdminUser struct {
	gorm.Model
	Name     string `gorm:"size:100" json:"name"`
	Email    string `gorm:"size:100;unique;not null" json:"email"`
	Password string `gorm:"not null" json:"-"`
}

func (AdminUser) TableName() string {
	return "admin_users"
}
