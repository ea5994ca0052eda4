package cmd

import (
	"fmt"

	"catalog-sync/feature/integrity/checks"

	"github.com/spf13/cobra"
)

// storesCmd lists the configured stores.
var storesCmd = &cobra.Command{
	Use:   "stores",
	Short: "List configured stores",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := bootstrap(false)
		if err != nil {
			return err
		}

		fmt.Println("\n--- Stores ---")
		for _, r := range checks.CheckStores(d.registry.Profiles()) {
			status := colorize(okColor, "ready")
			if !r.Configured {
				status = colorize(failColor, "missing "+joinFields(r.Missing))
			}
			fmt.Printf("%-12s %-24s %s\n", r.Key, r.Name, status)
		}
		fmt.Println("--------------")
		return nil
	},
}

func init() {
	RootCmd.AddCommand(storesCmd)
}
