package cmd

import (
	"fmt"
	"strings"

	"catalog-sync/core/mapping"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const (
	okColor    = "\033[32m"
	warnColor  = "\033[33m"
	failColor  = "\033[31m"
	resetColor = "\033[0m"
)

// getCmd shows one product as the reconciliation engine sees it.
var getCmd = &cobra.Command{
	Use:   "get [store] [sku]",
	Short: "Show the normalized product for a SKU",
	Long:  `Reads a SKU from one store and prints the normalized record, with its brand name resolved.`,
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := bootstrap(false)
		if err != nil {
			return err
		}

		store, sku := args[0], args[1]
		d.logger.Info("Looking up product...", zap.String("store", store), zap.String("sku", sku))

		rec, err := d.engine.Get(cmd.Context(), store, sku)
		if err != nil {
			return err
		}
		if rec == nil {
			fmt.Printf("\n%s %s not found in %s\n", colorize(failColor, "NOT FOUND"), sku, d.engine.DisplayName(store))
			return nil
		}

		printRecord(d.engine.DisplayName(store), rec)
		return nil
	},
}

func init() {
	RootCmd.AddCommand(getCmd)
}

func printRecord(title string, rec *mapping.Record) {
	fmt.Printf("\n--- %s ---\n", title)
	fmt.Printf("ID:             %d\n", rec.ID)
	fmt.Printf("SKU:            %s\n", rec.SKU)
	fmt.Printf("Name:           %s\n", rec.Name)
	fmt.Printf("Brand:          %s\n", rec.Brand)
	fmt.Printf("Price:          %s\n", rec.Price.StringFixed(2))
	fmt.Printf("Type:           %s\n", rec.Type)
	fmt.Printf("Weight:         %g\n", rec.Weight)
	fmt.Printf("Dimensions:     %g x %g x %g\n", rec.Width, rec.Height, rec.Depth)
	fmt.Printf("UPC/MPN/GTIN:   %s / %s / %s\n", rec.UPC, rec.MPN, rec.GTIN)
	fmt.Printf("Availability:   %s\n", rec.Availability)
	fmt.Printf("Visible:        %v\n", rec.Visible)
	fmt.Printf("Categories:     %v\n", rec.Categories)
	fmt.Printf("Custom Fields:  %d\n", len(rec.CustomFields))
	fmt.Printf("Images:         %d\n", len(rec.Images))
	fmt.Printf("URL:            %s\n", rec.URL)
	fmt.Println(strings.Repeat("-", len(title)+8))
}

func colorize(color, s string) string {
	return color + s + resetColor
}

func joinFields(fields []string) string {
	return strings.Join(fields, ", ")
}
