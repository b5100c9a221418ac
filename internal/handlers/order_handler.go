package handlers

import (
	"errors"
	"fmt"
	"log"

	"boutique/internal/models"
	"boutique/internal/repositories"
	"boutique/internal/services"

	"github.com/gofiber/fiber/v2"
)

// CheckoutItem is one requested line of a checkout: a product reference
// and how many units to buy.
type CheckoutItem struct {
	ProductID uint `json:"product_id"`
	Quantity  int  `json:"quantity"`
}

// CheckoutRequest is the body of a checkout POST: the delivery address
// plus the cart contents.
type CheckoutRequest struct {
	Name    string         `json:"name"`
	Address string         `json:"address"`
	City    string         `json:"city"`
	Zip     string         `json:"zip"`
	Country string         `json:"country"`
	Items   []CheckoutItem `json:"items"`
}

// OrderHandler handles HTTP requests for orders.
type OrderHandler struct {
	orderService   *services.OrderService
	productService *services.ProductService
}

// NewOrderHandler creates a new OrderHandler.
func NewOrderHandler(orderService *services.OrderService, productService *services.ProductService) *OrderHandler {
	return &OrderHandler{
		orderService:   orderService,
		productService: productService,
	}
}

// RegisterRoutes registers the public checkout route.
func (h *OrderHandler) RegisterRoutes(router fiber.Router) {
	orderRoutes := router.Group("/orders")
	orderRoutes.Post("/", h.HandleCheckout)
}

// RegisterAdminRoutes registers the order back-office routes.
func (h *OrderHandler) RegisterAdminRoutes(router fiber.Router) {
	orderRoutes := router.Group("/orders")
	orderRoutes.Get("/", h.HandleGetOrders)
	orderRoutes.Get("/:id", h.HandleGetOrderByID)
}

// HandleCheckout builds a cart from the request items and places the
// order.
func (h *OrderHandler) HandleCheckout(c *fiber.Ctx) error {
	var req CheckoutRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing checkout request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	cart := models.NewCart()
	for _, item := range req.Items {
		if item.Quantity <= 0 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": fmt.Sprintf("Quantity for product %d must be positive", item.ProductID),
			})
		}
		product, err := h.productService.GetProduct(c.UserContext(), item.ProductID)
		if err != nil {
			if errors.Is(err, repositories.ErrProductNotFound) {
				return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
					"message": fmt.Sprintf("Product with ID %d not found", item.ProductID),
				})
			}
			log.Printf("Error loading product %d for checkout: %v", item.ProductID, err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"message": "Could not load product",
				"error":   err.Error(),
			})
		}
		cart.AddItem(*product, item.Quantity)
	}

	vm := models.OrderViewModel{
		Name:    req.Name,
		Address: req.Address,
		City:    req.City,
		Zip:     req.Zip,
		Country: req.Country,
		Lines:   cart.Lines,
	}
	if fieldErrors := vm.Validate(); len(fieldErrors) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"errors":  fieldErrors,
		})
	}

	order, err := h.orderService.SaveOrder(&vm, cart)
	if err != nil {
		if errors.Is(err, services.ErrInsufficientStock) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Order failed due to insufficient stock",
				"error":   err.Error(),
			})
		}
		log.Printf("Error placing order: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not place order",
			"error":   err.Error(),
		})
	}
	return c.Status(fiber.StatusCreated).JSON(order)
}

// HandleGetOrders retrieves all orders.
func (h *OrderHandler) HandleGetOrders(c *fiber.Ctx) error {
	orders, err := h.orderService.GetAllOrders()
	if err != nil {
		log.Printf("Error getting all orders: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve orders",
			"error":   err.Error(),
		})
	}
	return c.JSON(orders)
}

// HandleGetOrderByID retrieves a single order by its ID.
func (h *OrderHandler) HandleGetOrderByID(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid order ID",
			"error":   err.Error(),
		})
	}

	order, err := h.orderService.GetOrderByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrOrderNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": fmt.Sprintf("Order with ID %d not found", id),
			})
		}
		log.Printf("Error getting order by ID %d: %v", id, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve order",
			"error":   err.Error(),
		})
	}
	return c.JSON(order)
}
