package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newRemoveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "remove <id>",
		Short: "Remove a product from the catalog",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			eng, path, err := openEngine(cmd)
			if err != nil {
				return err
			}
			removed, err := eng.RemoveProduct(args[0])
			if err != nil {
				return err
			}
			if err := eng.SaveToFile(path); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "removed %s (%s)\n", removed.ID, removed.Name)
			return nil
		},
	}
	return cmd
}
