package repositories

import (
	"context"
	"fmt"
	"sync"

	"boutique/internal/models"
)

// InMemoryProductRepository is an in-memory implementation of
// ProductRepository used in tests and local development. Products are kept
// in insertion order, matching what the store returns.
type InMemoryProductRepository struct {
	products []models.Product
	nextID   uint
	mu       sync.RWMutex
}

// NewInMemoryProductRepository creates a new InMemoryProductRepository.
func NewInMemoryProductRepository() *InMemoryProductRepository {
	return &InMemoryProductRepository{nextID: 1}
}

// GetAll returns all products in insertion order.
func (r *InMemoryProductRepository) GetAll() ([]models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.Product, len(r.products))
	copy(out, r.products)
	return out, nil
}

// FindAll returns all products, honoring ctx cancellation.
func (r *InMemoryProductRepository) FindAll(ctx context.Context) ([]models.Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return r.GetAll()
}

// GetByID returns a product by its ID.
func (r *InMemoryProductRepository) GetByID(id uint) (*models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, p := range r.products {
		if p.ID == id {
			product := p
			return &product, nil
		}
	}
	return nil, fmt.Errorf("product with ID %d: %w", id, ErrProductNotFound)
}

// FindByID returns a product by its ID, honoring ctx cancellation.
func (r *InMemoryProductRepository) FindByID(ctx context.Context, id uint) (*models.Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return r.GetByID(id)
}

// Create adds a new product, assigning the next free ID.
func (r *InMemoryProductRepository) Create(product *models.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if product.ID == 0 {
		product.ID = r.nextID
	}
	if product.ID >= r.nextID {
		r.nextID = product.ID + 1
	}
	r.products = append(r.products, *product)
	return nil
}

// Update modifies an existing product.
func (r *InMemoryProductRepository) Update(product *models.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.products {
		if r.products[i].ID == product.ID {
			r.products[i] = *product
			return nil
		}
	}
	return fmt.Errorf("product with ID %d: %w", product.ID, ErrProductNotFound)
}

// Delete removes a product by its ID.
func (r *InMemoryProductRepository) Delete(id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.products {
		if r.products[i].ID == id {
			r.products = append(r.products[:i], r.products[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("product with ID %d: %w", id, ErrProductNotFound)
}
