package repositories

import (
	"context"

	"boutique/internal/models"
)

// ProductRepository defines the interface for product data access.
// FindAll and FindByID mirror GetAll and GetByID but carry a context so a
// handler can abandon the database round trip when the client disconnects.
type ProductRepository interface {
	GetAll() ([]models.Product, error)
	GetByID(id uint) (*models.Product, error)
	FindAll(ctx context.Context) ([]models.Product, error)
	FindByID(ctx context.Context, id uint) (*models.Product, error)
	Create(product *models.Product) error
	Update(product *models.Product) error
	Delete(id uint) error
}
