package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newValueCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "value",
		Short: "Print the total stock value of the catalog",
		RunE: func(cmd *cobra.Command, _ []string) error {
			eng, _, err := openEngine(cmd)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "total value: %.2f\n", eng.TotalValue())
			return nil
		},
	}
	return cmd
}
