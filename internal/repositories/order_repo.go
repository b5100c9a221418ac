package repositories

import (
	"boutique/internal/models"
)

// OrderRepository defines the interface for order data access.
type OrderRepository interface {
	GetAll() ([]models.Order, error)
	GetByID(id uint) (*models.Order, error)
	Create(order *models.Order) error
	// Orders are immutable once placed; there is no update or delete.
}
