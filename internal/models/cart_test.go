package models_test

import (
	"testing"

	"boutique/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestCart_AddItem(t *testing.T) {
	cart := models.NewCart()
	laptop := models.Product{Name: "Laptop", Price: 1200.00, Quantity: 10}
	laptop.ID = 1
	mouse := models.Product{Name: "Mouse", Price: 25.00, Quantity: 50}
	mouse.ID = 2

	cart.AddItem(laptop, 1)
	cart.AddItem(mouse, 2)
	assert.Len(t, cart.Lines, 2)

	// Adding the same product again increments the existing line
	cart.AddItem(laptop, 3)
	assert.Len(t, cart.Lines, 2)
	line := cart.FindLine(1)
	assert.NotNil(t, line)
	assert.Equal(t, 4, line.Quantity)
}

func TestCart_RemoveLine(t *testing.T) {
	cart := models.NewCart()
	laptop := models.Product{Name: "Laptop", Price: 1200.00}
	laptop.ID = 1
	mouse := models.Product{Name: "Mouse", Price: 25.00}
	mouse.ID = 2

	cart.AddItem(laptop, 1)
	cart.AddItem(mouse, 2)

	cart.RemoveLine(1)
	assert.Len(t, cart.Lines, 1)
	assert.Nil(t, cart.FindLine(1))
	assert.NotNil(t, cart.FindLine(2))

	// Removing an absent product is a no-op
	cart.RemoveLine(99)
	assert.Len(t, cart.Lines, 1)
}

func TestCart_Clear(t *testing.T) {
	cart := models.NewCart()
	product := models.Product{Name: "Keyboard", Price: 75.00}
	product.ID = 1
	cart.AddItem(product, 2)

	cart.Clear()
	assert.Empty(t, cart.Lines)
	assert.Equal(t, 0.0, cart.TotalValue())
}

func TestCart_TotalAndAverageValue(t *testing.T) {
	cart := models.NewCart()
	assert.Equal(t, 0.0, cart.AverageValue())

	laptop := models.Product{Name: "Laptop", Price: 1200.00}
	laptop.ID = 1
	mouse := models.Product{Name: "Mouse", Price: 25.00}
	mouse.ID = 2

	cart.AddItem(laptop, 1)
	cart.AddItem(mouse, 2)

	assert.InDelta(t, 1250.00, cart.TotalValue(), 1e-9)
	assert.InDelta(t, 1250.00/3, cart.AverageValue(), 1e-9)
}
