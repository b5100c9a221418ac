package services

import (
	"context"
	"errors"
	"fmt"

	"boutique/internal/models"
	"boutique/internal/repositories"
)

// ErrInsufficientStock is returned by UpdateProductQuantities under
// StockPolicyReject when a cart line asks for more units than are in store.
var ErrInsufficientStock = errors.New("insufficient stock")

// StockPolicy decides what happens when a cart line requests more units
// than the product has in stock.
type StockPolicy int

const (
	// StockPolicyReject refuses the adjustment and leaves the stored
	// quantity untouched. This is the default: stock never goes negative.
	StockPolicyReject StockPolicy = iota
	// StockPolicyClampZero applies the decrement but floors the result
	// at zero.
	StockPolicyClampZero
	// StockPolicyAllowNegative applies the decrement unconditionally,
	// matching stores that tolerate back orders.
	StockPolicyAllowNegative
)

// ParseStockPolicy maps a configuration string to a StockPolicy.
func ParseStockPolicy(s string) (StockPolicy, error) {
	switch s {
	case "", "reject":
		return StockPolicyReject, nil
	case "clamp":
		return StockPolicyClampZero, nil
	case "allow-negative":
		return StockPolicyAllowNegative, nil
	default:
		return StockPolicyReject, fmt.Errorf("unknown stock policy %q", s)
	}
}

// ProductService handles business logic related to products: view-model
// mapping, locale-aware field parsing, and cart-driven stock adjustment.
type ProductService struct {
	repo   repositories.ProductRepository
	policy StockPolicy
}

// NewProductService creates a new ProductService.
func NewProductService(repo repositories.ProductRepository, policy StockPolicy) *ProductService {
	return &ProductService{
		repo:   repo,
		policy: policy,
	}
}

// GetAllProducts retrieves all products in store order.
func (s *ProductService) GetAllProducts() ([]models.Product, error) {
	return s.repo.GetAll()
}

// GetAllProductsViewModel retrieves all products as form projections.
func (s *ProductService) GetAllProductsViewModel() ([]models.ProductViewModel, error) {
	products, err := s.repo.GetAll()
	if err != nil {
		return nil, err
	}
	viewModels := make([]models.ProductViewModel, 0, len(products))
	for i := range products {
		viewModels = append(viewModels, products[i].ToViewModel())
	}
	return viewModels, nil
}

// GetProductByID retrieves a single product by its ID. Absent products
// surface as repositories.ErrProductNotFound; callers must check.
func (s *ProductService) GetProductByID(id uint) (*models.Product, error) {
	return s.repo.GetByID(id)
}

// GetProductByIDViewModel retrieves a single product as a form projection.
func (s *ProductService) GetProductByIDViewModel(id uint) (*models.ProductViewModel, error) {
	product, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	vm := product.ToViewModel()
	return &vm, nil
}

// GetProducts is the context-carrying variant of GetAllProducts, for
// callers that want the query abandoned when the request is cancelled.
func (s *ProductService) GetProducts(ctx context.Context) ([]models.Product, error) {
	return s.repo.FindAll(ctx)
}

// GetProduct is the context-carrying variant of GetProductByID.
func (s *ProductService) GetProduct(ctx context.Context, id uint) (*models.Product, error) {
	return s.repo.FindByID(ctx, id)
}

// SaveProduct parses the string Price and Stock fields of a validated view
// model and creates the product, or updates it when the view model carries
// a non-zero ID. Validation is expected to have run already; parse failures
// here mean the caller skipped it.
func (s *ProductService) SaveProduct(vm *models.ProductViewModel) (*models.Product, error) {
	price, err := models.ParseDecimal(vm.Price)
	if err != nil {
		return nil, fmt.Errorf("invalid price %q: %w", vm.Price, err)
	}
	stock, err := models.ParseStock(vm.Stock)
	if err != nil {
		return nil, fmt.Errorf("invalid stock %q: %w", vm.Stock, err)
	}

	if vm.ID == 0 {
		product := &models.Product{
			Name:        vm.Name,
			Description: vm.Description,
			Details:     vm.Details,
			Price:       price,
			Quantity:    stock,
		}
		if err := s.repo.Create(product); err != nil {
			return nil, err
		}
		return product, nil
	}

	product, err := s.repo.GetByID(vm.ID)
	if err != nil {
		return nil, err
	}
	product.Name = vm.Name
	product.Description = vm.Description
	product.Details = vm.Details
	product.Price = price
	product.Quantity = stock
	if err := s.repo.Update(product); err != nil {
		return nil, err
	}
	return product, nil
}

// DeleteProduct removes a product by its ID. There is no guard against
// order lines referencing it; placed orders keep their own snapshot.
func (s *ProductService) DeleteProduct(id uint) error {
	return s.repo.Delete(id)
}

// UpdateProductQuantities decrements the stored quantity of every product
// in the cart by the quantity its line requests and persists each change.
// The cart is caller-owned; it is read, never mutated.
//
// Each line is read, decremented and written independently: there is no
// transaction across lines and no lock against a concurrent checkout of
// the same product, so two simultaneous checkouts can lose an update. A
// failed write stops the loop and leaves earlier lines applied.
func (s *ProductService) UpdateProductQuantities(cart *models.Cart) error {
	for _, line := range cart.Lines {
		product, err := s.repo.GetByID(line.Product.ID)
		if err != nil {
			return err
		}

		remaining := product.Quantity - line.Quantity
		if remaining < 0 {
			switch s.policy {
			case StockPolicyReject:
				return fmt.Errorf("product %q (requested %d, available %d): %w",
					product.Name, line.Quantity, product.Quantity, ErrInsufficientStock)
			case StockPolicyClampZero:
				remaining = 0
			case StockPolicyAllowNegative:
				// keep the negative result
			}
		}

		product.Quantity = remaining
		if err := s.repo.Update(product); err != nil {
			return fmt.Errorf("failed to adjust stock for product %d: %w", product.ID, err)
		}
	}
	return nil
}
