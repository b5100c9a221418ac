package models

// CartLine pairs a product with the quantity the customer wants to buy.
type CartLine struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}

// Cart is the transient list of products a customer intends to purchase.
// It is a plain value owned by its caller: it is never persisted, carries
// no locking, and must not be shared between concurrent requests.
type Cart struct {
	Lines []CartLine `json:"lines"`
}

// NewCart creates an empty cart.
func NewCart() *Cart {
	return &Cart{}
}

// AddItem adds quantity units of product to the cart. If the cart already
// holds a line for that product the line quantity is incremented instead.
// No bound is enforced against current stock at add time.
func (c *Cart) AddItem(product Product, quantity int) {
	for i := range c.Lines {
		if c.Lines[i].Product.ID == product.ID {
			c.Lines[i].Quantity += quantity
			return
		}
	}
	c.Lines = append(c.Lines, CartLine{Product: product, Quantity: quantity})
}

// RemoveLine removes the line for the given product, if any.
func (c *Cart) RemoveLine(productID uint) {
	for i := range c.Lines {
		if c.Lines[i].Product.ID == productID {
			c.Lines = append(c.Lines[:i], c.Lines[i+1:]...)
			return
		}
	}
}

// FindLine returns the line for the given product, or nil.
func (c *Cart) FindLine(productID uint) *CartLine {
	for i := range c.Lines {
		if c.Lines[i].Product.ID == productID {
			return &c.Lines[i]
		}
	}
	return nil
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.Lines = nil
}

// TotalValue returns the sum of price times quantity over all lines.
func (c *Cart) TotalValue() float64 {
	var total float64
	for _, line := range c.Lines {
		total += line.Product.Price * float64(line.Quantity)
	}
	return total
}

// AverageValue returns the average value of one purchased unit,
// or zero for an empty cart.
func (c *Cart) AverageValue() float64 {
	var units int
	for _, line := range c.Lines {
		units += line.Quantity
	}
	if units == 0 {
		return 0
	}
	return c.TotalValue() / float64(units)
}
