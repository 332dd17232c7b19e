package inventory

import (
	"fmt"
	"strings"

	inverrors "github.com/retailkit/inventory/internal/errors"
)

// Catalog is an ordered collection of products keyed by unique id.
// Products are stored by value and returned as copies, so callers cannot
// bypass Sell/Restock to mutate stock. Catalog is not safe for concurrent
// use; the engine serializes access.
type Catalog struct {
	byID  map[string]*Product
	order []string
}

// NewCatalog creates an empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{
		byID: make(map[string]*Product),
	}
}

// Len returns the number of products in the catalog.
func (c *Catalog) Len() int {
	return len(c.byID)
}

// Add inserts a product, preserving insertion order for listings.
// Returns ErrDuplicateID if a product with the same id already exists.
func (c *Catalog) Add(p Product) error {
	if p.ID == "" {
		return inverrors.NewValidation("id", "must not be empty")
	}
	if _, exists := c.byID[p.ID]; exists {
		return fmt.Errorf("product %q: %w", p.ID, inverrors.ErrDuplicateID)
	}
	c.byID[p.ID] = &p
	c.order = append(c.order, p.ID)
	return nil
}

// Remove deletes a product by id and returns the removed product.
// Returns ErrProductNotFound if no product exists with the given id.
func (c *Catalog) Remove(id string) (Product, error) {
	p, ok := c.byID[id]
	if !ok {
		return Product{}, fmt.Errorf("product %q: %w", id, inverrors.ErrProductNotFound)
	}
	delete(c.byID, id)
	for i, oid := range c.order {
		if oid == id {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
	return *p, nil
}

// Get returns the product with the given id.
// Returns ErrProductNotFound if no product exists with the given id.
func (c *Catalog) Get(id string) (Product, error) {
	p, ok := c.byID[id]
	if !ok {
		return Product{}, fmt.Errorf("product %q: %w", id, inverrors.ErrProductNotFound)
	}
	return *p, nil
}

// All returns every product in insertion order. The returned slice is a
// fresh copy on each call and may be modified freely.
func (c *Catalog) All() []Product {
	list := make([]Product, 0, len(c.order))
	for _, id := range c.order {
		list = append(list, *c.byID[id])
	}
	return list
}

// Active returns every product that is not expired at the reference date,
// in insertion order. Expired products stay in the catalog; use
// SweepExpired to remove them.
func (c *Catalog) Active(ref Date) []Product {
	list := make([]Product, 0, len(c.order))
	for _, id := range c.order {
		if p := c.byID[id]; !p.IsExpired(ref) {
			list = append(list, *p)
		}
	}
	return list
}

// SearchByName returns products whose name contains the given substring,
// case-insensitive, in insertion order.
func (c *Catalog) SearchByName(substr string) []Product {
	needle := strings.ToLower(substr)
	var list []Product
	for _, id := range c.order {
		p := c.byID[id]
		if strings.Contains(strings.ToLower(p.Name), needle) {
			list = append(list, *p)
		}
	}
	return list
}

// SearchByCategory returns products of the given category in insertion order.
func (c *Catalog) SearchByCategory(cat Category) []Product {
	var list []Product
	for _, id := range c.order {
		if p := c.byID[id]; p.Category == cat {
			list = append(list, *p)
		}
	}
	return list
}

// Sell decrements a product's quantity by amount and returns the updated
// product. The operation is all-or-nothing: if amount exceeds the current
// quantity it fails with ErrInsufficientStock and the quantity is left
// unchanged. Returns ErrProductNotFound if the id is absent.
func (c *Catalog) Sell(id string, amount int) (Product, error) {
	if amount <= 0 {
		return Product{}, inverrors.NewValidation("amount", fmt.Sprintf("must be a positive integer, got %d", amount))
	}
	p, ok := c.byID[id]
	if !ok {
		return Product{}, fmt.Errorf("product %q: %w", id, inverrors.ErrProductNotFound)
	}
	if amount > p.Quantity {
		return Product{}, fmt.Errorf("product %q: cannot sell %d, only %d in stock: %w",
			id, amount, p.Quantity, inverrors.ErrInsufficientStock)
	}
	p.Quantity -= amount
	return *p, nil
}

// Restock increments a product's quantity by amount and returns the
// updated product. There is no upper bound on stock.
// Returns ErrProductNotFound if the id is absent.
func (c *Catalog) Restock(id string, amount int) (Product, error) {
	if amount <= 0 {
		return Product{}, inverrors.NewValidation("amount", fmt.Sprintf("must be a positive integer, got %d", amount))
	}
	p, ok := c.byID[id]
	if !ok {
		return Product{}, fmt.Errorf("product %q: %w", id, inverrors.ErrProductNotFound)
	}
	p.Quantity += amount
	return *p, nil
}

// TotalValue returns the sum of price * quantity over all products.
// An empty catalog has a total value of 0.
func (c *Catalog) TotalValue() float64 {
	var total float64
	for _, p := range c.byID {
		total += p.TotalValue()
	}
	return total
}

// SweepExpired removes every product expired at the reference date and
// returns the removed products in insertion order. Sweeping twice with
// the same date removes nothing the second time.
func (c *Catalog) SweepExpired(ref Date) []Product {
	var removed []Product
	remaining := c.order[:0]
	for _, id := range c.order {
		p := c.byID[id]
		if p.IsExpired(ref) {
			removed = append(removed, *p)
			delete(c.byID, id)
			continue
		}
		remaining = append(remaining, id)
	}
	c.order = remaining
	return removed
}
