package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/retailkit/inventory/internal/inventory"
)

func newSearchCmd() *cobra.Command {
	var (
		name     string
		category string
	)

	cmd := &cobra.Command{
		Use:   "search",
		Short: "Search products by name substring or by category",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if (name == "") == (category == "") {
				return fmt.Errorf("exactly one of --name or --category is required")
			}
			eng, _, err := openEngine(cmd)
			if err != nil {
				return err
			}
			if name != "" {
				printProducts(cmd.OutOrStdout(), eng.SearchByName(name))
				return nil
			}
			cat, err := inventory.ParseCategory(category)
			if err != nil {
				return err
			}
			printProducts(cmd.OutOrStdout(), eng.SearchByCategory(cat))
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Case-insensitive name substring")
	cmd.Flags().StringVar(&category, "category", "", "Product category")
	return cmd
}
