// Package store persists the product catalog to disk.
package store

import (
	"github.com/retailkit/inventory/internal/inventory"
)

// CatalogStore abstracts catalog persistence, allowing different
// implementations (e.g. JSON file, database).
type CatalogStore interface {
	// Save writes the catalog to the given path, replacing any previous
	// content. Returns an error if the file cannot be written.
	Save(c *inventory.Catalog, path string) error

	// Load reads a catalog from the given path and validates every record.
	// Returns an error wrapping fs.ErrNotExist if the file is absent and
	// ErrCorruptData if the content is malformed or fails validation.
	Load(path string) (*inventory.Catalog, error)
}
