package cli

import (
	"fmt"

	"github.com/araddon/dateparse"
	"github.com/spf13/cobra"

	"github.com/retailkit/inventory/internal/inventory"
)

func newAddCmd() *cobra.Command {
	var (
		id       string
		category string
		name     string
		price    float64
		quantity int
		warranty int
		brand    string
		expiry   string
		size     string
		material string
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a product to the catalog",
		Long:  "Add a product to the catalog. The category decides which extra flags apply: --warranty/--brand for electronics, --expiry for grocery, --size/--material for clothing. Without --id a fresh id is generated.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			eng, path, err := openEngine(cmd)
			if err != nil {
				return err
			}

			cat, err := inventory.ParseCategory(category)
			if err != nil {
				return err
			}

			var product inventory.Product
			switch cat {
			case inventory.CategoryElectronics:
				product, err = inventory.NewElectronics(id, name, price, quantity, warranty, brand)
			case inventory.CategoryGrocery:
				var expiryDate inventory.Date
				if expiry != "" {
					t, parseErr := dateparse.ParseAny(expiry)
					if parseErr != nil {
						return fmt.Errorf("invalid --expiry %q: %w", expiry, parseErr)
					}
					expiryDate = inventory.DateOf(t)
				}
				product, err = inventory.NewGrocery(id, name, price, quantity, expiryDate)
			default:
				product, err = inventory.NewClothing(id, name, price, quantity, size, material)
			}
			if err != nil {
				return err
			}

			added, err := eng.AddProduct(product)
			if err != nil {
				return err
			}
			if err := eng.SaveToFile(path); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "added:\n")
			printProduct(cmd.OutOrStdout(), added)
			return nil
		},
	}

	cmd.Flags().StringVar(&id, "id", "", "Product id (generated when empty)")
	cmd.Flags().StringVar(&category, "category", "", "Product category: electronics, grocery or clothing")
	cmd.Flags().StringVar(&name, "name", "", "Product name")
	cmd.Flags().Float64Var(&price, "price", 0, "Unit price")
	cmd.Flags().IntVar(&quantity, "qty", 0, "Initial stock quantity")
	cmd.Flags().IntVar(&warranty, "warranty", 0, "Warranty in months (electronics)")
	cmd.Flags().StringVar(&brand, "brand", "", "Brand (electronics)")
	cmd.Flags().StringVar(&expiry, "expiry", "", "Expiry date (grocery)")
	cmd.Flags().StringVar(&size, "size", "", "Size (clothing)")
	cmd.Flags().StringVar(&material, "material", "", "Material (clothing)")
	_ = cmd.MarkFlagRequired("category")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}
