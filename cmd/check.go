package cmd

import (
	"fmt"

	"catalog-sync/feature/integrity/checks"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	checkDatabase bool
	checkStorage  bool
)

// checkCmd verifies the runtime configuration without touching any store.
var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check store credentials and backends",
	Long: `Reports which store credentials are missing. With --database the
store_profiles table schema is verified, with --storage the SKU list bucket.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := bootstrap(checkDatabase)
		if err != nil {
			return err
		}

		failed := 0
		fmt.Println("\n--- Stores ---")
		for _, r := range checks.CheckStores(d.registry.Profiles()) {
			if r.Configured {
				fmt.Printf("%-12s %s\n", r.Key, colorize(okColor, "PASS"))
				continue
			}
			failed++
			fmt.Printf("%-12s %s missing %s\n", r.Key, colorize(failColor, "FAIL"), joinFields(r.Missing))
		}

		if checkDatabase {
			fmt.Println("\n--- Database ---")
			report, err := checks.CheckProfileTable(d.db)
			switch {
			case err != nil:
				failed++
				fmt.Printf("%s %v\n", colorize(failColor, "FAIL"), err)
			case report.Status != "ok":
				failed++
				fmt.Printf("%s %s missing columns %s %s\n", colorize(failColor, "FAIL"), report.Table, joinFields(report.MissingColumns), report.Error)
			default:
				fmt.Printf("%s %s\n", colorize(okColor, "PASS"), report.Table)
			}
		}

		if checkStorage {
			fmt.Println("\n--- Storage ---")
			client, err := d.storageClient()
			if err == nil {
				err = checks.CheckBucket(cmd.Context(), client, d.cfg.Storage.Bucket)
			}
			if err != nil {
				failed++
				fmt.Printf("%s %v\n", colorize(failColor, "FAIL"), err)
			} else {
				fmt.Printf("%s bucket %s\n", colorize(okColor, "PASS"), d.cfg.Storage.Bucket)
			}
		}
		fmt.Println("--------------")

		if failed > 0 {
			d.logger.Warn("Checks failed", zap.Int("count", failed))
			return fmt.Errorf("%d checks failed", failed)
		}
		return nil
	},
}

func init() {
	checkCmd.Flags().BoolVar(&checkDatabase, "database", false, "Verify the store_profiles table")
	checkCmd.Flags().BoolVar(&checkStorage, "storage", false, "Verify the storage bucket")
	RootCmd.AddCommand(checkCmd)
}
