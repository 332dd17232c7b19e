package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func newRestockCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "restock <id> <amount>",
		Short: "Restock units of a product",
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
			updated, err := eng.Restock(args[0], amount)
			if err != nil {
				return err
			}
			if err := eng.SaveToFile(path); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "restocked %d x %s, now %d in stock\n", amount, updated.Name, updated.Quantity)
			return nil
		},
	}
	return cmd
}
