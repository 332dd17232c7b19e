package cli

import (
	"github.com/spf13/cobra"

	"github.com/retailkit/inventory/internal/inventory"
)

func newListCmd() *cobra.Command {
	var activeOnly bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List products in insertion order",
		RunE: func(cmd *cobra.Command, _ []string) error {
			eng, _, err := openEngine(cmd)
			if err != nil {
				return err
			}
			if activeOnly {
				printProducts(cmd.OutOrStdout(), eng.ListActive(inventory.Today()))
				return nil
			}
			printProducts(cmd.OutOrStdout(), eng.ListAll())
			return nil
		},
	}

	cmd.Flags().BoolVar(&activeOnly, "active", false, "Hide expired grocery products without removing them")
	return cmd
}
