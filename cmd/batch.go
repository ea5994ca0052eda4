package cmd

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"os"
	"strings"

	"catalog-sync/core/batch"
	"catalog-sync/core/reconcile"
	"catalog-sync/core/skulist"
	"catalog-sync/core/storage"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	batchFile         string
	batchObject       string
	batchDelayMS      int
	batchConcurrency  int
	batchReport       string
	batchReportObject string
	yesConfirm        bool
)

// batchCmd imports many SKUs between two stores.
var batchCmd = &cobra.Command{
	Use:   "batch [SKU...]",
	Short: "Import many products from one store into another",
	Long: `Imports every SKU given as arguments, in a local file or in a storage object.
Files hold one SKU per line (lines starting with # are ignored) or a CSV with a sku column.

Each SKU is processed independently; a failure never stops the run. The command
exits non-zero when any SKU failed.

Examples:
  batch WA-470 WA-471
  batch --file skus.txt
  batch --object lists/q3.csv --update --yes --report out.csv`,
	RunE: runBatch,
}

func init() {
	addStoreFlags(batchCmd)
	batchCmd.Flags().BoolVar(&updateExisting, "update", false, "Update products that already exist in the target store")
	batchCmd.Flags().StringVar(&batchFile, "file", "", "Read SKUs from a text or CSV file")
	batchCmd.Flags().StringVar(&batchObject, "object", "", "Read SKUs from an object in the storage bucket")
	batchCmd.Flags().IntVar(&batchDelayMS, "delay", -1, "Minimum milliseconds between SKUs (default from config)")
	batchCmd.Flags().IntVar(&batchConcurrency, "concurrency", 0, "SKUs processed at once (default from config)")
	batchCmd.Flags().StringVar(&batchReport, "report", "", "Write per-SKU outcomes to a CSV file")
	batchCmd.Flags().StringVar(&batchReportObject, "report-object", "", "Upload per-SKU outcomes as CSV to the storage bucket")
	batchCmd.Flags().BoolVar(&yesConfirm, "yes", false, "Auto-confirm overwriting existing products (non-interactive)")
	RootCmd.AddCommand(batchCmd)
}

func runBatch(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	d, err := bootstrap(false)
	if err != nil {
		return err
	}
	l := d.logger

	var store storage.Client
	if batchObject != "" || batchReportObject != "" {
		if store, err = d.storageClient(); err != nil {
			return err
		}
	}

	skus, err := collectSKUs(ctx, args, store, d.cfg.Storage.Bucket)
	if err != nil {
		return err
	}
	if len(skus) == 0 {
		return fmt.Errorf("no SKUs provided")
	}

	cfg := d.cfg.Batch
	if batchDelayMS >= 0 {
		cfg.DelayMS = batchDelayMS
	}
	if batchConcurrency > 0 {
		cfg.Concurrency = batchConcurrency
	}
	engine := reconcile.NewEngine(d.registry, batch.NewRunner(cfg, l), l)

	l.Info("Starting batch import",
		zap.Int("count", len(skus)),
		zap.String("from", engine.DisplayName(fromStore)),
		zap.String("to", engine.DisplayName(toStore)),
		zap.Strings("skus", skus),
	)

	if updateExisting && !confirmOverwrite(len(skus)) {
		l.Warn("Operation cancelled by user. No changes were made.")
		return nil
	}

	results := engine.ReconcileBatch(ctx, fromStore, toStore, skus, updateExisting)
	summary := batch.Summarize(results)
	printBatchSummary(results, summary)

	if err := writeReports(ctx, results, store, d.cfg.Storage.Bucket, l); err != nil {
		return err
	}

	if summary.Failed > 0 {
		return fmt.Errorf("%d of %d SKUs failed", summary.Failed, summary.Total)
	}
	return nil
}

// collectSKUs reads the SKU list from the object, the file or the arguments,
// in that order of precedence.
func collectSKUs(ctx context.Context, args []string, store storage.Client, bucket string) ([]string, error) {
	switch {
	case batchObject != "":
		return skulist.FromObject(ctx, store, bucket, batchObject)
	case batchFile != "":
		f, err := os.Open(batchFile)
		if err != nil {
			return nil, fmt.Errorf("failed to open %s: %w", batchFile, err)
		}
		defer f.Close()
		return skulist.ParseNamed(batchFile, f)
	default:
		return skulist.ParseArgs(args), nil
	}
}

func writeReports(ctx context.Context, results []batch.Result, store storage.Client, bucket string, l *zap.Logger) error {
	if batchReport == "" && batchReportObject == "" {
		return nil
	}

	var buf bytes.Buffer
	if err := batch.WriteCSV(&buf, results); err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}

	if batchReport != "" {
		if err := os.WriteFile(batchReport, buf.Bytes(), 0o644); err != nil {
			return fmt.Errorf("failed to write report: %w", err)
		}
		l.Info("Report written", zap.String("path", batchReport))
	}
	if batchReportObject != "" {
		if err := storage.Upload(ctx, store, bucket, batchReportObject, buf.Bytes(), "text/csv"); err != nil {
			return fmt.Errorf("failed to upload report: %w", err)
		}
		l.Info("Report uploaded", zap.String("bucket", bucket), zap.String("object", batchReportObject))
	}
	return nil
}

func printBatchSummary(results []batch.Result, s batch.Summary) {
	fmt.Printf("\n%s\n", strings.Repeat("=", 60))
	fmt.Println("BATCH IMPORT SUMMARY")
	fmt.Println(strings.Repeat("=", 60))

	for _, r := range results {
		status := colorize(okColor, "OK  ")
		detail := r.Message
		if !r.Success {
			status = colorize(failColor, "FAIL")
			if r.Error != "" {
				detail = r.Error
			}
		}
		fmt.Printf("%s %-20s %s\n", status, r.SKU, detail)
	}

	fmt.Printf("\nSuccessful imports: %d\n", s.Succeeded)
	fmt.Printf("Failed imports:     %d\n", s.Failed)
	fmt.Printf("Success rate:       %.1f%%\n", s.SuccessRate)

	if len(s.Failures) > 0 {
		fmt.Println("\nFailed SKUs:")
		for _, sku := range s.Failures {
			fmt.Printf("   - %s\n", sku)
		}
	}
}

// confirmOverwrite prompts the user for confirmation or uses --yes flag.
func confirmOverwrite(count int) bool {
	if yesConfirm {
		fmt.Println("\n✓ Auto-confirmed via --yes flag")
		return true
	}

	fmt.Printf("\n⚠️  Existing products among %d SKUs will be overwritten in %s. Type 'yes' to confirm: ", count, toStore)
	reader := bufio.NewReader(os.Stdin)
	response, err := reader.ReadString('\n')
	if err != nil {
		return false
	}

	return strings.TrimSpace(response) == "yes"
}
