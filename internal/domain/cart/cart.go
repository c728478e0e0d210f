package cart

import (
	"github.com/shop/storefront/internal/domain/catalog"
	"github.com/shop/storefront/internal/domain/shared"
	"github.com/shop/storefront/internal/domain/shared/valueobject"
)

// Entry is the durable, storage-local representation of a cart line.
// It intentionally excludes the product snapshot so catalog data is never
// duplicated in local storage.
type Entry struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

// Line is one product-and-quantity entry in the cart, hydrated with the
// product snapshot taken when the line was created or last reloaded.
type Line struct {
	ProductID string
	Quantity  int
	Product   *catalog.Product
}

// Subtotal returns quantity × unit price for this line
func (l Line) Subtotal() valueobject.Money {
	return l.Product.PriceMoney().MultiplyByInt(int64(l.Quantity))
}

// Cart is the in-memory cart aggregate. Uniqueness invariant: at most one
// line per product id; a quantity of zero or less is never stored, an
// update to <=0 removes the line. Totals are recomputed on every read.
type Cart struct {
	lines []Line
}

// New creates an empty cart
func New() *Cart {
	return &Cart{}
}

// FromLines builds a cart from an externally supplied line set (e.g. the
// server's canonical cart). Duplicate product ids are merged additively and
// non-positive quantities dropped, so the uniqueness and quantity
// invariants hold regardless of input.
func FromLines(lines []Line) *Cart {
	c := New()
	for _, l := range lines {
		if l.Product == nil || l.Quantity < 1 {
			continue
		}
		_ = c.Add(l.Product, l.Quantity)
	}
	return c
}

// Add inserts a new line for the product, or increments the existing
// line's quantity by the given amount.
func (c *Cart) Add(product *catalog.Product, quantity int) error {
	if product == nil || product.ID == "" {
		return shared.ErrInvalidInput
	}
	if quantity < 1 {
		return shared.ErrInvalidQuantity
	}
	for i := range c.lines {
		if c.lines[i].ProductID == product.ID {
			c.lines[i].Quantity += quantity
			c.lines[i].Product = product
			return nil
		}
	}
	c.lines = append(c.lines, Line{
		ProductID: product.ID,
		Quantity:  quantity,
		Product:   product,
	})
	return nil
}

// UpdateQuantity sets the quantity for a product's line. A quantity of
// zero or less removes the line. Returns true if the cart changed.
func (c *Cart) UpdateQuantity(productID string, quantity int) bool {
	if quantity <= 0 {
		return c.Remove(productID)
	}
	for i := range c.lines {
		if c.lines[i].ProductID == productID {
			c.lines[i].Quantity = quantity
			return true
		}
	}
	return false
}

// Remove deletes the line for the product. Removing an absent product is
// not an error; it returns false.
func (c *Cart) Remove(productID string) bool {
	for i := range c.lines {
		if c.lines[i].ProductID == productID {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			return true
		}
	}
	return false
}

// Clear empties the cart
func (c *Cart) Clear() {
	c.lines = nil
}

// Get returns the line for a product id
func (c *Cart) Get(productID string) (Line, bool) {
	for _, l := range c.lines {
		if l.ProductID == productID {
			return l, true
		}
	}
	return Line{}, false
}

// Lines returns a copy of the cart's lines
func (c *Cart) Lines() []Line {
	out := make([]Line, len(c.lines))
	copy(out, c.lines)
	return out
}

// Entries returns the simplified durable representation of the cart
func (c *Cart) Entries() []Entry {
	out := make([]Entry, 0, len(c.lines))
	for _, l := range c.lines {
		out = append(out, Entry{ProductID: l.ProductID, Quantity: l.Quantity})
	}
	return out
}

// Len returns the number of distinct lines
func (c *Cart) Len() int {
	return len(c.lines)
}

// IsEmpty returns true if the cart holds no lines
func (c *Cart) IsEmpty() bool {
	return len(c.lines) == 0
}

// TotalItems returns the sum of all line quantities
func (c *Cart) TotalItems() int {
	total := 0
	for _, l := range c.lines {
		total += l.Quantity
	}
	return total
}

// TotalPrice returns Σ(quantity × product price), recomputed on each call
func (c *Cart) TotalPrice() valueobject.Money {
	total := valueobject.ZeroUSD()
	for _, l := range c.lines {
		total = total.MustAdd(l.Subtotal())
	}
	return total
}
