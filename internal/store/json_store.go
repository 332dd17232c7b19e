package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	inverrors "github.com/retailkit/inventory/internal/errors"
	"github.com/retailkit/inventory/internal/inventory"
)

// JSONStore implements CatalogStore using a single JSON file: a UTF-8
// array of product records, each tagged with its category. Writes go
// through a temp file in the destination directory followed by a rename,
// so a crash mid-save never leaves a half-written catalog behind.
type JSONStore struct{}

// NewJSONStore creates a new JSON file store.
func NewJSONStore() *JSONStore {
	return &JSONStore{}
}

// record is the wire form of a product. Variant fields are omitted for
// categories they do not apply to; unknown fields in the file are ignored
// so newer schemas still load.
type record struct {
	ID       string             `json:"id"`
	Name     string             `json:"name"`
	Price    float64            `json:"price"`
	Quantity int                `json:"quantity"`
	Category inventory.Category `json:"category"`

	WarrantyMonths *int   `json:"warranty_months,omitempty"`
	Brand          string `json:"brand,omitempty"`
	ExpiryDate     string `json:"expiry_date,omitempty"`
	Size           string `json:"size,omitempty"`
	Material       string `json:"material,omitempty"`
}

// Save writes the catalog to path as an indented JSON array in insertion order.
func (s *JSONStore) Save(c *inventory.Catalog, path string) error {
	products := c.All()
	records := make([]record, 0, len(products))
	for _, p := range products {
		records = append(records, toRecord(p))
	}

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode catalog: %w", err)
	}

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file in %s: %w", dir, err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write catalog file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close catalog file: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("failed to replace catalog file %s: %w", path, err)
	}
	return nil
}

// Load reads and validates a catalog from path.
func (s *JSONStore) Load(path string) (*inventory.Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file %s: %w", path, err)
	}

	var records []record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("%s: %v: %w", path, err, inverrors.ErrCorruptData)
	}

	catalog := inventory.NewCatalog()
	for i, r := range records {
		p, err := r.toProduct()
		if err != nil {
			return nil, fmt.Errorf("%s: record %d (id %q): %v: %w", path, i, r.ID, err, inverrors.ErrCorruptData)
		}
		if err := catalog.Add(p); err != nil {
			return nil, fmt.Errorf("%s: record %d (id %q): %v: %w", path, i, r.ID, err, inverrors.ErrCorruptData)
		}
	}
	return catalog, nil
}

// toRecord converts a product to its wire form.
func toRecord(p inventory.Product) record {
	r := record{
		ID:       p.ID,
		Name:     p.Name,
		Price:    p.Price,
		Quantity: p.Quantity,
		Category: p.Category,
	}
	switch p.Category {
	case inventory.CategoryElectronics:
		warranty := p.WarrantyMonths
		r.WarrantyMonths = &warranty
		r.Brand = p.Brand
	case inventory.CategoryGrocery:
		r.ExpiryDate = p.Expiry.String()
	case inventory.CategoryClothing:
		r.Size = p.Size
		r.Material = p.Material
	}
	return r
}

// toProduct rebuilds a product from its wire form, running full
// construction-time validation.
func (r record) toProduct() (inventory.Product, error) {
	cat, err := inventory.ParseCategory(string(r.Category))
	if err != nil {
		return inventory.Product{}, err
	}
	switch cat {
	case inventory.CategoryElectronics:
		warranty := 0
		if r.WarrantyMonths != nil {
			warranty = *r.WarrantyMonths
		}
		return inventory.NewElectronics(r.ID, r.Name, r.Price, r.Quantity, warranty, r.Brand)
	case inventory.CategoryGrocery:
		expiry, err := inventory.ParseDate(r.ExpiryDate)
		if err != nil {
			return inventory.Product{}, err
		}
		return inventory.NewGrocery(r.ID, r.Name, r.Price, r.Quantity, expiry)
	default:
		return inventory.NewClothing(r.ID, r.Name, r.Price, r.Quantity, r.Size, r.Material)
	}
}
