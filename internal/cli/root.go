// Package cli implements the invctl command line interface. Every
// subcommand loads the catalog file, applies one engine operation, and
// saves the file back when the operation mutated the catalog.
package cli

import "github.com/spf13/cobra"

// defaultCatalogFile is used when --file is not given.
const defaultCatalogFile = "inventory.json"

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "invctl",
		Short:         "Manage a retail product catalog",
		Long:          "invctl manages a catalog of retail products (electronics, grocery, clothing) persisted as a JSON file: add and remove products, sell and restock units, search, value the stock, and prune expired goods.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().StringP("file", "f", defaultCatalogFile, "Path of the catalog JSON file")

	cmd.AddCommand(newAddCmd())
	cmd.AddCommand(newRemoveCmd())
	cmd.AddCommand(newListCmd())
	cmd.AddCommand(newSearchCmd())
	cmd.AddCommand(newSellCmd())
	cmd.AddCommand(newRestockCmd())
	cmd.AddCommand(newValueCmd())
	cmd.AddCommand(newSweepCmd())
	return cmd
}

func Execute() error {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		cmd.PrintErrln("Error:", err)
		return err
	}
	return nil
}
