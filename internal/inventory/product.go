// Package inventory implements the product taxonomy and the in-memory
// catalog of a retail inventory.
package inventory

import (
	"fmt"
	"strings"

	inverrors "github.com/retailkit/inventory/internal/errors"
)

// Category identifies which variant attributes apply to a product.
type Category string

const (
	CategoryElectronics Category = "electronics"
	CategoryGrocery     Category = "grocery"
	CategoryClothing    Category = "clothing"
)

// Categories lists all known product categories.
func Categories() []Category {
	return []Category{CategoryElectronics, CategoryGrocery, CategoryClothing}
}

// ParseCategory converts a case-insensitive category name to a Category.
func ParseCategory(s string) (Category, error) {
	switch Category(strings.ToLower(s)) {
	case CategoryElectronics:
		return CategoryElectronics, nil
	case CategoryGrocery:
		return CategoryGrocery, nil
	case CategoryClothing:
		return CategoryClothing, nil
	default:
		return "", inverrors.NewValidation("category", fmt.Sprintf("unknown category %q", s))
	}
}

// Product is a catalog entry. ID and Category are fixed at construction
// and must not be changed afterwards; Quantity is mutated only through
// Catalog.Sell and Catalog.Restock. Only the variant fields matching
// Category are meaningful.
type Product struct {
	ID       string
	Name     string
	Price    float64
	Quantity int
	Category Category

	// Electronics
	WarrantyMonths int
	Brand          string

	// Grocery
	Expiry Date

	// Clothing
	Size     string
	Material string
}

// NewElectronics creates an electronics product. The id may be empty; the
// engine assigns one before the product enters a catalog.
func NewElectronics(id, name string, price float64, quantity, warrantyMonths int, brand string) (Product, error) {
	p := Product{
		ID:             id,
		Name:           name,
		Price:          price,
		Quantity:       quantity,
		Category:       CategoryElectronics,
		WarrantyMonths: warrantyMonths,
		Brand:          brand,
	}
	if err := p.validate(); err != nil {
		return Product{}, err
	}
	return p, nil
}

// NewGrocery creates a grocery product with the given expiry date.
func NewGrocery(id, name string, price float64, quantity int, expiry Date) (Product, error) {
	p := Product{
		ID:       id,
		Name:     name,
		Price:    price,
		Quantity: quantity,
		Category: CategoryGrocery,
		Expiry:   expiry,
	}
	if err := p.validate(); err != nil {
		return Product{}, err
	}
	return p, nil
}

// NewClothing creates a clothing product.
func NewClothing(id, name string, price float64, quantity int, size, material string) (Product, error) {
	p := Product{
		ID:       id,
		Name:     name,
		Price:    price,
		Quantity: quantity,
		Category: CategoryClothing,
		Size:     size,
		Material: material,
	}
	if err := p.validate(); err != nil {
		return Product{}, err
	}
	return p, nil
}

// validate checks the shared attributes and the variant attributes
// required by the product's category.
func (p Product) validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return inverrors.NewValidation("name", "must not be empty")
	}
	if p.Price < 0 {
		return inverrors.NewValidation("price", fmt.Sprintf("must not be negative, got %v", p.Price))
	}
	if p.Quantity < 0 {
		return inverrors.NewValidation("quantity", fmt.Sprintf("must not be negative, got %d", p.Quantity))
	}
	switch p.Category {
	case CategoryElectronics:
		if p.WarrantyMonths < 0 {
			return inverrors.NewValidation("warranty_months", fmt.Sprintf("must not be negative, got %d", p.WarrantyMonths))
		}
	case CategoryGrocery:
		if p.Expiry.IsZero() {
			return inverrors.NewValidation("expiry_date", "required for grocery products")
		}
	case CategoryClothing:
		if strings.TrimSpace(p.Size) == "" {
			return inverrors.NewValidation("size", "required for clothing products")
		}
		if strings.TrimSpace(p.Material) == "" {
			return inverrors.NewValidation("material", "required for clothing products")
		}
	default:
		return inverrors.NewValidation("category", fmt.Sprintf("unknown category %q", p.Category))
	}
	return nil
}

// TotalValue returns the stock value of the product (price * quantity).
func (p Product) TotalValue() float64 {
	return p.Price * float64(p.Quantity)
}

// IsExpired reports whether the product is past its expiry date at the
// given reference date. Products without an expiry never expire.
func (p Product) IsExpired(ref Date) bool {
	return p.Category == CategoryGrocery && !p.Expiry.IsZero() && p.Expiry.Before(ref)
}
