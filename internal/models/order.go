package models

import (
	"time"

	"gorm.io/gorm"
)

// Order represents a placed order with its delivery address and line items.
type Order struct {
	gorm.Model
	Reference string      `json:"reference" gorm:"type:varchar(36);uniqueIndex"`
	Name      string      `json:"name" gorm:"type:varchar(100);not null"`
	Address   string      `json:"address" gorm:"type:varchar(200)"`
	City      string      `json:"city" gorm:"type:varchar(100)"`
	Zip       string      `json:"zip" gorm:"type:varchar(20)"`
	Country   string      `json:"country" gorm:"type:varchar(100)"`
	Date      time.Time   `json:"date"`
	Total     float64     `json:"total"`
	Lines     []OrderLine `json:"lines" gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// OrderLine is a single line of an order. Product name and price are
// snapshotted at order time so later catalog edits do not rewrite history.
type OrderLine struct {
	gorm.Model
	OrderID      uint    `json:"order_id" gorm:"index"`
	ProductID    uint    `json:"product_id"`
	ProductName  string  `json:"product_name" gorm:"type:varchar(100)"`
	ProductPrice float64 `json:"product_price"`
	Quantity     int     `json:"quantity"`
}
