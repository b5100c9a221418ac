package models

import "gorm.io/gorm"

// User is a back-office account allowed to manage the catalog.
type User struct {
	gorm.Model
	Username string `json:"username" gorm:"uniqueIndex;type:varchar(100)" validate:"required,min=3,max=100"`
	Email    string `json:"email" gorm:"uniqueIndex;type:varchar(255)" validate:"required,email"`
	Password string `json:"-" gorm:"type:varchar(255)" validate:"required,min=6"`
}
