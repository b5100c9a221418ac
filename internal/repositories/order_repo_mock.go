package repositories

import (
	"fmt"
	"sync"

	"boutique/internal/models"
)

// InMemoryOrderRepository is an in-memory implementation of OrderRepository.
type InMemoryOrderRepository struct {
	orders []models.Order
	nextID uint
	mu     sync.RWMutex
}

// NewInMemoryOrderRepository creates a new InMemoryOrderRepository.
func NewInMemoryOrderRepository() *InMemoryOrderRepository {
	return &InMemoryOrderRepository{nextID: 1}
}

// GetAll returns all orders in insertion order.
func (r *InMemoryOrderRepository) GetAll() ([]models.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.Order, len(r.orders))
	copy(out, r.orders)
	return out, nil
}

// GetByID returns an order by its ID.
func (r *InMemoryOrderRepository) GetByID(id uint) (*models.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, o := range r.orders {
		if o.ID == id {
			order := o
			return &order, nil
		}
	}
	return nil, fmt.Errorf("order with ID %d: %w", id, ErrOrderNotFound)
}

// Create adds a new order, assigning the next free ID.
func (r *InMemoryOrderRepository) Create(order *models.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if order.ID == 0 {
		order.ID = r.nextID
	}
	if order.ID >= r.nextID {
		r.nextID = order.ID + 1
	}
	for i := range order.Lines {
		order.Lines[i].OrderID = order.ID
	}
	r.orders = append(r.orders, *order)
	return nil
}
