package cmd

import (
	"fmt"
	"strings"

	"catalog-sync/core/mapping"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var syncValues []string

// syncCmd writes selected fields to an existing product.
var syncCmd = &cobra.Command{
	Use:   "sync [store] [sku]",
	Short: "Update selected fields of an existing product",
	Long: `Writes only the given fields to the product. custom_fields and images take JSON.

Examples:
  sync signal_ca WA-470 --set price=199.99 --set visible=false
  sync signal_ca WA-470 --set 'images=[{"image_url":"https://cdn.example.com/a.jpg"}]'`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		values, err := parseAssignments(syncValues)
		if err != nil {
			return err
		}
		if len(values) == 0 {
			return fmt.Errorf("no fields given, use --set field=value")
		}

		d, err := bootstrap(false)
		if err != nil {
			return err
		}

		fields := make([]string, 0, len(values))
		for k := range values {
			fields = append(fields, k)
		}
		sel := mapping.NewSelection(fields...)

		store, sku := args[0], args[1]
		d.logger.Info("Syncing fields",
			zap.String("store", store),
			zap.String("sku", sku),
			zap.Strings("fields", sel.Fields()),
		)

		res, err := d.engine.ApplyFieldSync(cmd.Context(), store, sku, sel, values)
		if err != nil {
			return err
		}
		fmt.Printf("\n%s %s\n", colorize(okColor, string(res.Action)), res.Message)
		return nil
	},
}

func init() {
	syncCmd.Flags().StringArrayVar(&syncValues, "set", nil, "Field assignment field=value (repeatable)")
	RootCmd.AddCommand(syncCmd)
}

// parseAssignments splits field=value pairs. Only the first '=' separates.
func parseAssignments(pairs []string) (map[string]any, error) {
	values := make(map[string]any, len(pairs))
	for _, p := range pairs {
		field, value, ok := strings.Cut(p, "=")
		field = strings.TrimSpace(field)
		if !ok || field == "" {
			return nil, fmt.Errorf("invalid assignment %q, expected field=value", p)
		}
		values[field] = value
	}
	return values, nil
}
