package rest

import (
	"fmt"

	"github.com/araddon/dateparse"
	"github.com/retailkit/inventory/internal/inventory"
)

// productRequest is the payload for creating a product. The id is
// optional; the engine assigns one when it is empty. Variant fields are
// validated by the product constructors, which are authoritative.
type productRequest struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"     validate:"required,max=100"`
	Price    float64 `json:"price"    validate:"gte=0"`
	Quantity int     `json:"quantity" validate:"gte=0"`
	Category string  `json:"category" validate:"required"`

	WarrantyMonths int    `json:"warranty_months" validate:"gte=0"`
	Brand          string `json:"brand"`
	ExpiryDate     string `json:"expiry_date"`
	Size           string `json:"size"`
	Material       string `json:"material"`
}

// toProduct converts the request into a validated domain product.
// Expiry dates accept any format dateparse understands, not just ISO-8601.
func (req productRequest) toProduct() (inventory.Product, error) {
	cat, err := inventory.ParseCategory(req.Category)
	if err != nil {
		return inventory.Product{}, err
	}
	switch cat {
	case inventory.CategoryElectronics:
		return inventory.NewElectronics(req.ID, req.Name, req.Price, req.Quantity, req.WarrantyMonths, req.Brand)
	case inventory.CategoryGrocery:
		if req.ExpiryDate == "" {
			return inventory.NewGrocery(req.ID, req.Name, req.Price, req.Quantity, inventory.Date{})
		}
		t, err := dateparse.ParseAny(req.ExpiryDate)
		if err != nil {
			return inventory.Product{}, fmt.Errorf("invalid expiry_date %q: %w", req.ExpiryDate, err)
		}
		return inventory.NewGrocery(req.ID, req.Name, req.Price, req.Quantity, inventory.DateOf(t))
	default:
		return inventory.NewClothing(req.ID, req.Name, req.Price, req.Quantity, req.Size, req.Material)
	}
}

// amountRequest is the payload for sell and restock operations.
type amountRequest struct {
	Amount int `json:"amount" validate:"required,gt=0"`
}

// sweepRequest is the payload for the expiry sweep. An empty reference
// date means "today".
type sweepRequest struct {
	ReferenceDate string `json:"reference_date"`
}

// fileRequest is the payload for save and load operations. An empty path
// means the configured catalog file.
type fileRequest struct {
	Path string `json:"path"`
}

// productResponse is the wire form of a product returned by the API.
type productResponse struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
	Category string  `json:"category"`

	WarrantyMonths *int   `json:"warranty_months,omitempty"`
	Brand          string `json:"brand,omitempty"`
	ExpiryDate     string `json:"expiry_date,omitempty"`
	Size           string `json:"size,omitempty"`
	Material       string `json:"material,omitempty"`
}

// toResponse converts a domain product into its wire form.
func toResponse(p inventory.Product) productResponse {
	resp := productResponse{
		ID:       p.ID,
		Name:     p.Name,
		Price:    p.Price,
		Quantity: p.Quantity,
		Category: string(p.Category),
	}
	switch p.Category {
	case inventory.CategoryElectronics:
		warranty := p.WarrantyMonths
		resp.WarrantyMonths = &warranty
		resp.Brand = p.Brand
	case inventory.CategoryGrocery:
		resp.ExpiryDate = p.Expiry.String()
	case inventory.CategoryClothing:
		resp.Size = p.Size
		resp.Material = p.Material
	}
	return resp
}

// toResponseList converts a slice of domain products into wire form.
// Always returns a non-nil slice so empty results encode as [].
func toResponseList(products []inventory.Product) []productResponse {
	list := make([]productResponse, 0, len(products))
	for _, p := range products {
		list = append(list, toResponse(p))
	}
	return list
}
