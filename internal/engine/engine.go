// Package engine provides the inventory façade consumed by the front
// ends. It binds the in-memory catalog to a persistence store; front ends
// never touch the catalog or the file system directly.
package engine

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/retailkit/inventory/internal/inventory"
	"github.com/retailkit/inventory/internal/store"
)

// Inventory defines the operations exposed to the front ends (REST
// service, CLI). It abstracts the underlying catalog and persistence.
type Inventory interface {
	// AddProduct inserts a product, assigning a fresh id when the caller
	// supplies none. Returns ErrDuplicateID for a caller-supplied id that
	// already exists.
	AddProduct(p inventory.Product) (inventory.Product, error)

	// RemoveProduct deletes a product by id and returns it.
	// Returns ErrProductNotFound if the id is absent.
	RemoveProduct(id string) (inventory.Product, error)

	// Get returns a single product by id.
	// Returns ErrProductNotFound if the id is absent.
	Get(id string) (inventory.Product, error)

	// Sell decrements stock all-or-nothing. Returns ErrInsufficientStock
	// if amount exceeds the current quantity.
	Sell(id string, amount int) (inventory.Product, error)

	// Restock increments stock with no upper bound.
	Restock(id string, amount int) (inventory.Product, error)

	// ListAll returns all products in insertion order.
	ListAll() []inventory.Product

	// ListActive returns products not expired at the reference date,
	// without removing the expired ones.
	ListActive(ref inventory.Date) []inventory.Product

	// SearchByName returns products whose name contains the substring,
	// case-insensitive.
	SearchByName(substr string) []inventory.Product

	// SearchByCategory returns products of the given category.
	SearchByCategory(cat inventory.Category) []inventory.Product

	// TotalValue returns the catalog-wide sum of price * quantity.
	TotalValue() float64

	// RemoveExpired removes products expired at the reference date and
	// returns them. A second sweep with the same date removes nothing.
	RemoveExpired(ref inventory.Date) []inventory.Product

	// SaveToFile persists the catalog to the given path.
	SaveToFile(path string) error

	// LoadFromFile replaces the in-memory catalog with the file's content.
	// On failure the previous catalog is left untouched.
	LoadFromFile(path string) error
}

// Engine implements Inventory over a Catalog and a CatalogStore. The
// mutex serializes access because the HTTP front end handles requests
// concurrently; every operation is short-lived and synchronous.
type Engine struct {
	mu      sync.RWMutex
	catalog *inventory.Catalog
	store   store.CatalogStore
}

var _ Inventory = (*Engine)(nil)

// New creates an engine with an empty catalog backed by the given store.
func New(s store.CatalogStore) *Engine {
	return &Engine{
		catalog: inventory.NewCatalog(),
		store:   s,
	}
}

// AddProduct inserts a product, assigning a UUID when the caller supplies no id.
func (e *Engine) AddProduct(p inventory.Product) (inventory.Product, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	if err := e.catalog.Add(p); err != nil {
		return inventory.Product{}, err
	}
	return p, nil
}

// RemoveProduct deletes a product by id and returns the removed product.
func (e *Engine) RemoveProduct(id string) (inventory.Product, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.catalog.Remove(id)
}

// Get returns the product with the given id.
func (e *Engine) Get(id string) (inventory.Product, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.catalog.Get(id)
}

// Sell decrements a product's stock by amount, all-or-nothing.
func (e *Engine) Sell(id string, amount int) (inventory.Product, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.catalog.Sell(id, amount)
}

// Restock increments a product's stock by amount.
func (e *Engine) Restock(id string, amount int) (inventory.Product, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.catalog.Restock(id, amount)
}

// ListAll returns every product in insertion order.
func (e *Engine) ListAll() []inventory.Product {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.catalog.All()
}

// ListActive returns products that are not expired at the reference date.
func (e *Engine) ListActive(ref inventory.Date) []inventory.Product {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.catalog.Active(ref)
}

// SearchByName returns products whose name contains the substring.
func (e *Engine) SearchByName(substr string) []inventory.Product {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.catalog.SearchByName(substr)
}

// SearchByCategory returns products of the given category.
func (e *Engine) SearchByCategory(cat inventory.Category) []inventory.Product {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.catalog.SearchByCategory(cat)
}

// TotalValue returns the total stock value of the catalog.
func (e *Engine) TotalValue() float64 {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.catalog.TotalValue()
}

// RemoveExpired removes and returns products expired at the reference date.
func (e *Engine) RemoveExpired(ref inventory.Date) []inventory.Product {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.catalog.SweepExpired(ref)
}

// SaveToFile persists the current catalog to path.
func (e *Engine) SaveToFile(path string) error {
	e.mu.RLock()
	defer e.mu.RUnlock()
	if err := e.store.Save(e.catalog, path); err != nil {
		return fmt.Errorf("failed to save catalog: %w", err)
	}
	return nil
}

// LoadFromFile replaces the in-memory catalog wholesale with the content
// of path. The swap happens only after a fully validated load, so a
// failed load leaves the current catalog untouched.
func (e *Engine) LoadFromFile(path string) error {
	loaded, err := e.store.Load(path)
	if err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	e.catalog = loaded
	return nil
}
