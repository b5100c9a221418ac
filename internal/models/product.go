package models

import "gorm.io/gorm"

// Product represents a catalog product and its current stock level.
type Product struct {
	gorm.Model
	Name        string  `json:"name" gorm:"type:varchar(100);not null"`
	Description string  `json:"description" gorm:"type:varchar(500)"`
	Details     string  `json:"details" gorm:"type:varchar(500)"`
	Price       float64 `json:"price"`
	Quantity    int     `json:"quantity"`
}
