package cmd

import (
	"fmt"

	"catalog-sync/core/reconcile"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	fromStore      string
	toStore        string
	updateExisting bool
)

// importCmd copies one SKU between stores.
var importCmd = &cobra.Command{
	Use:   "import [sku]",
	Short: "Import a product from one store into another",
	Long: `Creates the product in the target store. An existing product is left
untouched unless --update is given.

Examples:
  import WA-470
  import WA-470 --from wilson_us --to wilson_ca --update`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := bootstrap(false)
		if err != nil {
			return err
		}

		sku := args[0]
		d.logger.Info("Importing product",
			zap.String("sku", sku),
			zap.String("from", fromStore),
			zap.String("to", toStore),
		)

		res, err := d.engine.Reconcile(cmd.Context(), reconcile.Request{
			Source:         fromStore,
			Destination:    toStore,
			SKU:            sku,
			UpdateIfExists: updateExisting,
		})
		if err != nil {
			return err
		}

		if !res.Success {
			fmt.Printf("\n%s %s\n", colorize(warnColor, "SKIPPED"), res.Message)
			fmt.Println("Use --update to overwrite the existing product.")
			return nil
		}
		fmt.Printf("\n%s %s (product %d)\n", colorize(okColor, string(res.Action)), res.Message, res.ProductID)
		return nil
	},
}

func init() {
	addStoreFlags(importCmd)
	importCmd.Flags().BoolVar(&updateExisting, "update", false, "Update the product when it already exists in the target store")
	RootCmd.AddCommand(importCmd)
}

func addStoreFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&fromStore, "from", "wilson_us", "Source store key")
	cmd.Flags().StringVar(&toStore, "to", "signal_ca", "Target store key")
}
