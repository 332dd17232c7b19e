package cli

import (
	"errors"
	"fmt"
	"io"
	"io/fs"

	"github.com/spf13/cobra"

	"github.com/retailkit/inventory/internal/engine"
	"github.com/retailkit/inventory/internal/inventory"
	"github.com/retailkit/inventory/internal/store"
)

// openEngine creates an engine backed by the catalog file of the command's
// --file flag. A missing file yields an empty catalog; any other load
// failure is reported.
func openEngine(cmd *cobra.Command) (*engine.Engine, string, error) {
	path, err := cmd.Flags().GetString("file")
	if err != nil {
		return nil, "", err
	}
	eng := engine.New(store.NewJSONStore())
	if err := eng.LoadFromFile(path); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, "", err
		}
	}
	return eng, path, nil
}

// printProduct writes a one-line description of a product.
func printProduct(w io.Writer, p inventory.Product) {
	switch p.Category {
	case inventory.CategoryElectronics:
		brand := ""
		if p.Brand != "" {
			brand = fmt.Sprintf(" (%s)", p.Brand)
		}
		fmt.Fprintf(w, "[electronics] %s: %s%s - %.2f, qty %d, warranty %d months\n",
			p.ID, p.Name, brand, p.Price, p.Quantity, p.WarrantyMonths)
	case inventory.CategoryGrocery:
		status := "fresh"
		if p.IsExpired(inventory.Today()) {
			status = "expired"
		}
		fmt.Fprintf(w, "[grocery] %s: %s - %.2f, qty %d, expires %s (%s)\n",
			p.ID, p.Name, p.Price, p.Quantity, p.Expiry, status)
	case inventory.CategoryClothing:
		fmt.Fprintf(w, "[clothing] %s: %s - %.2f, qty %d, size %s, %s\n",
			p.ID, p.Name, p.Price, p.Quantity, p.Size, p.Material)
	}
}

// printProducts writes one line per product, or a placeholder when the
// list is empty.
func printProducts(w io.Writer, products []inventory.Product) {
	if len(products) == 0 {
		fmt.Fprintln(w, "no products")
		return
	}
	for _, p := range products {
		printProduct(w, p)
	}
}
