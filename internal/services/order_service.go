package services

import (
	"encoding/json"
	"log"
	"time"

	"boutique/internal/models"
	"boutique/internal/repositories"

	"github.com/google/uuid"
)

// CheckoutPublisher publishes checkout events to the message broker.
// *rabbitmq.Client satisfies it; tests substitute a mock.
type CheckoutPublisher interface {
	Publish(exchange, routingKey string, body []byte) error
}

// OrderService handles business logic related to orders: turning a cart
// into a persisted order and adjusting product stock on the way.
type OrderService struct {
	orderRepo      repositories.OrderRepository
	productService *ProductService
	publisher      CheckoutPublisher
}

// NewOrderService creates a new OrderService. publisher may be nil, in
// which case checkout events are skipped.
func NewOrderService(orderRepo repositories.OrderRepository, productService *ProductService, publisher CheckoutPublisher) *OrderService {
	return &OrderService{
		orderRepo:      orderRepo,
		productService: productService,
		publisher:      publisher,
	}
}

// GetAllOrders retrieves all orders.
func (s *OrderService) GetAllOrders() ([]models.Order, error) {
	return s.orderRepo.GetAll()
}

// GetOrderByID retrieves a single order by its ID.
func (s *OrderService) GetOrderByID(id uint) (*models.Order, error) {
	return s.orderRepo.GetByID(id)
}

// SaveOrder checks out the cart: product quantities are decremented first,
// then an order is persisted with one snapshot line per cart line, then a
// checkout event is published best-effort.
//
// The view model is expected to have passed Validate already. If the stock
// adjustment fails no order is written; if the order write fails the stock
// decrement is not rolled back and the error propagates.
func (s *OrderService) SaveOrder(vm *models.OrderViewModel, cart *models.Cart) (*models.Order, error) {
	if err := s.productService.UpdateProductQuantities(cart); err != nil {
		return nil, err
	}

	order := &models.Order{
		Reference: uuid.New().String(),
		Name:      vm.Name,
		Address:   vm.Address,
		City:      vm.City,
		Zip:       vm.Zip,
		Country:   vm.Country,
		Date:      time.Now(),
		Total:     cart.TotalValue(),
	}
	for _, line := range cart.Lines {
		order.Lines = append(order.Lines, models.OrderLine{
			ProductID:    line.Product.ID,
			ProductName:  line.Product.Name,
			ProductPrice: line.Product.Price,
			Quantity:     line.Quantity,
		})
	}

	if err := s.orderRepo.Create(order); err != nil {
		return nil, err
	}

	s.publishCheckout(order)
	return order, nil
}

// publishCheckout emits an order.checkout event. Failures are logged, not
// returned: the order is already persisted and event delivery is
// best-effort.
func (s *OrderService) publishCheckout(order *models.Order) {
	if s.publisher == nil {
		log.Println("Checkout publisher is not configured. Skipping event publication.")
		return
	}

	event := map[string]interface{}{
		"orderID":   order.ID,
		"reference": order.Reference,
		"total":     order.Total,
		"lines":     len(order.Lines),
	}
	body, err := json.Marshal(event)
	if err != nil {
		log.Printf("Failed to marshal checkout event for order %d: %v", order.ID, err)
		return
	}
	if err := s.publisher.Publish("order", "order.checkout", body); err != nil {
		log.Printf("Warning: failed to publish checkout event for order %d: %v", order.ID, err)
		return
	}
	log.Printf("Published checkout event for order %d (%s)", order.ID, order.Reference)
}
