package cli

import (
	"fmt"

	"github.com/araddon/dateparse"
	"github.com/spf13/cobra"

	"github.com/retailkit/inventory/internal/inventory"
)

func newSweepCmd() *cobra.Command {
	var asOf string

	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Remove expired grocery products",
		Long:  "Remove every grocery product whose expiry date lies before the reference date (today unless --as-of is given) and print what was removed.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ref := inventory.Today()
			if asOf != "" {
				t, err := dateparse.ParseAny(asOf)
				if err != nil {
					return fmt.Errorf("invalid --as-of %q: %w", asOf, err)
				}
				ref = inventory.DateOf(t)
			}

			eng, path, err := openEngine(cmd)
			if err != nil {
				return err
			}
			removed := eng.RemoveExpired(ref)
			if len(removed) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "no expired products")
				return nil
			}
			if err := eng.SaveToFile(path); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "removed %d expired product(s):\n", len(removed))
			printProducts(cmd.OutOrStdout(), removed)
			return nil
		},
	}

	cmd.Flags().StringVar(&asOf, "as-of", "", "Reference date for expiry (defaults to today)")
	return cmd
}
