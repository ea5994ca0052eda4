package cmd

import (
	"fmt"

	"catalog-sync/core/mapping"

	"github.com/spf13/cobra"
)

var (
	compareStoreA string
	compareStoreB string
	compareSKUB   string
)

// compareCmd prints a SKU from two stores side by side.
var compareCmd = &cobra.Command{
	Use:   "compare [sku]",
	Short: "Compare a product between two stores",
	Long: `Reads the SKU from store A and store B and lists the fields that differ.
Nothing is written.

Examples:
  compare WA-470
  compare WA-470 --store-a wilson_us --store-b signal_us --sku-b SB-470`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := bootstrap(false)
		if err != nil {
			return err
		}

		cmp, err := d.engine.Compare(cmd.Context(), compareStoreA, compareStoreB, args[0], compareSKUB)
		if err != nil {
			return err
		}

		printRecord(cmp.StoreAName, cmp.RecordA)
		if cmp.RecordB == nil {
			fmt.Printf("\n%s %s not found in %s\n", colorize(warnColor, "MISSING"), cmp.SKUB, cmp.StoreBName)
			return nil
		}
		printRecord(cmp.StoreBName, cmp.RecordB)

		diffs := differences(cmp.RecordA, cmp.RecordB)
		if len(diffs) == 0 {
			fmt.Printf("\n%s\n", colorize(okColor, "Products match"))
			return nil
		}
		fmt.Println("\nDifferences:")
		for _, f := range diffs {
			fmt.Printf("- %s\n", f)
		}
		return nil
	},
}

func init() {
	compareCmd.Flags().StringVar(&compareStoreA, "store-a", "wilson_us", "Store A key")
	compareCmd.Flags().StringVar(&compareStoreB, "store-b", "signal_ca", "Store B key")
	compareCmd.Flags().StringVar(&compareSKUB, "sku-b", "", "SKU in store B (defaults to the store A SKU)")
	RootCmd.AddCommand(compareCmd)
}

// differences lists the syncable fields whose values differ.
func differences(a, b *mapping.Record) []string {
	var diffs []string
	add := func(field string, equal bool) {
		if !equal {
			diffs = append(diffs, field)
		}
	}
	add("name", a.Name == b.Name)
	add("price", a.Price.Equal(b.Price))
	add("brand", a.Brand == b.Brand)
	add("description", a.Description == b.Description)
	add("mpn", a.MPN == b.MPN)
	add("upc", a.UPC == b.UPC)
	add("gtin", a.GTIN == b.GTIN)
	add("weight", a.Weight == b.Weight)
	add("width", a.Width == b.Width)
	add("height", a.Height == b.Height)
	add("depth", a.Depth == b.Depth)
	add("availability", a.Availability == b.Availability)
	add("visible", a.Visible == b.Visible)
	add("custom_fields", len(a.CustomFields) == len(b.CustomFields))
	add("images", len(a.Images) == len(b.Images))
	return diffs
}
