package models_test

import (
	"testing"

	"boutique/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestParseDecimal(t *testing.T) {
	tests := []struct {
		input string
		want  float64
	}{
		{"1,20", 1.20},
		{"1.20", 1.20},
		{"10", 10},
		{" 2,5 ", 2.5},
	}
	for _, tt := range tests {
		got, err := models.ParseDecimal(tt.input)
		assert.NoError(t, err, "input %q", tt.input)
		assert.Equal(t, tt.want, got, "input %q", tt.input)
	}

	_, err := models.ParseDecimal("abc")
	assert.Error(t, err)
	_, err = models.ParseDecimal("")
	assert.Error(t, err)
}

func TestProductViewModel_ValidateValid(t *testing.T) {
	vm := models.ProductViewModel{
		Name:        "Produit 1",
		Description: "Description du produit 1",
		Details:     "Details du produit 1",
		Price:       "1,20",
		Stock:       "20",
	}
	assert.Empty(t, vm.Validate())
}

func TestProductViewModel_ValidateErrors(t *testing.T) {
	tests := []struct {
		name     string
		vm       models.ProductViewModel
		field    string
		wantCode string
	}{
		{"missing name", models.ProductViewModel{Price: "1,20", Stock: "20"}, "Name", models.CodeMissingName},
		{"missing price", models.ProductViewModel{Name: "P", Stock: "20"}, "Price", models.CodeMissingPrice},
		{"price not a number", models.ProductViewModel{Name: "P", Price: "abc", Stock: "20"}, "Price", models.CodePriceNotANumber},
		{"price not greater than zero", models.ProductViewModel{Name: "P", Price: "0", Stock: "20"}, "Price", models.CodePriceNotGreaterThanZero},
		{"missing stock", models.ProductViewModel{Name: "P", Price: "1,20"}, "Stock", models.CodeMissingStock},
		{"stock not an integer", models.ProductViewModel{Name: "P", Price: "1,20", Stock: "2.5"}, "Stock", models.CodeStockNotAnInteger},
		{"stock not greater than zero", models.ProductViewModel{Name: "P", Price: "1,20", Stock: "0"}, "Stock", models.CodeStockNotGreaterThanZero},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := tt.vm.Validate()
			assert.Len(t, errs, 1)
			assert.Equal(t, tt.field, errs[0].Field)
			assert.Equal(t, tt.wantCode, errs[0].Code)
		})
	}
}

func TestProductViewModel_ValidateAllMissing(t *testing.T) {
	var vm models.ProductViewModel
	errs := vm.Validate()
	assert.Len(t, errs, 3)

	codes := make(map[string]string)
	for _, e := range errs {
		codes[e.Field] = e.Code
	}
	assert.Equal(t, models.CodeMissingName, codes["Name"])
	assert.Equal(t, models.CodeMissingPrice, codes["Price"])
	assert.Equal(t, models.CodeMissingStock, codes["Stock"])
}

func TestOrderViewModel_Validate(t *testing.T) {
	product := models.Product{Name: "Laptop", Price: 1200.00}
	product.ID = 1

	vm := models.OrderViewModel{
		Name:    "Jean Dupont",
		Address: "1 rue de la Paix",
		City:    "Paris",
		Zip:     "75001",
		Country: "France",
		Lines:   []models.CartLine{{Product: product, Quantity: 1}},
	}
	assert.Empty(t, vm.Validate())

	// Missing address fields and an empty cart are reported together
	empty := models.OrderViewModel{Name: "Jean Dupont"}
	errs := empty.Validate()
	codes := make(map[string]string)
	for _, e := range errs {
		codes[e.Field] = e.Code
	}
	assert.Equal(t, models.CodeMissingAddress, codes["Address"])
	assert.Equal(t, models.CodeMissingCity, codes["City"])
	assert.Equal(t, models.CodeMissingZipCode, codes["Zip"])
	assert.Equal(t, models.CodeMissingCountry, codes["Country"])
	assert.Equal(t, models.CodeEmptyCart, codes["Lines"])
}

func TestProduct_ToViewModel(t *testing.T) {
	product := models.Product{Name: "Produit 1", Description: "Desc", Details: "Det", Price: 1.2, Quantity: 20}
	product.ID = 7

	vm := product.ToViewModel()
	assert.Equal(t, uint(7), vm.ID)
	assert.Equal(t, "Produit 1", vm.Name)
	assert.Equal(t, "1.2", vm.Price)
	assert.Equal(t, "20", vm.Stock)

	// The projection parses straight back to the stored values
	price, err := models.ParseDecimal(vm.Price)
	assert.NoError(t, err)
	assert.Equal(t, 1.2, price)
	stock, err := models.ParseStock(vm.Stock)
	assert.NoError(t, err)
	assert.Equal(t, 20, stock)
}
