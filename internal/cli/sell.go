package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func newSellCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sell <id> <amount>",
		Short: "Sell units of a product",
		Long:  "Sell units of a product. The sale is all-or-nothing: it fails without touching stock when fewer units are available than requested.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid amount %q: %w", args[1], err)
			}
			eng, path, err := openEngine(cmd)
			if err != nil {
				return err
			}
			updated, err := eng.Sell(args[0], amount)
			if err != nil {
				return err
			}
			if err := eng.SaveToFile(path); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "sold %d x %s, %d left in stock\n", amount, updated.Name, updated.Quantity)
			return nil
		},
	}
	return cmd
}
