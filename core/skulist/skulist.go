package skulist

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"path"
	"strings"

	"catalog-sync/core/storage"

	"github.com/gocarina/gocsv"
	"github.com/minio/minio-go/v7"
)

// Parse reads one SKU per line. Blank lines and lines starting with '#' are
// skipped; surrounding whitespace is trimmed.
func Parse(r io.Reader) ([]string, error) {
	var skus []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		skus = append(skus, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read sku list: %w", err)
	}
	return skus, nil
}

// ParseString is Parse over an in-memory list.
func ParseString(s string) []string {
	skus, _ := Parse(strings.NewReader(s))
	return skus
}

type csvRow struct {
	SKU string `csv:"sku"`
}

// ParseCSV reads the "sku" column of a CSV file with a header row.
func ParseCSV(r io.Reader) ([]string, error) {
	var rows []csvRow
	if err := gocsv.Unmarshal(r, &rows); err != nil {
		return nil, fmt.Errorf("failed to parse sku csv: %w", err)
	}

	skus := make([]string, 0, len(rows))
	for _, row := range rows {
		if sku := strings.TrimSpace(row.SKU); sku != "" && !strings.HasPrefix(sku, "#") {
			skus = append(skus, sku)
		}
	}
	return skus, nil
}

// ParseArgs cleans command line SKUs, dropping blanks and flag-like values.
func ParseArgs(args []string) []string {
	var skus []string
	for _, a := range args {
		a = strings.TrimSpace(a)
		if a == "" || strings.HasPrefix(a, "--") {
			continue
		}
		skus = append(skus, a)
	}
	return skus
}

// ParseNamed picks the CSV or plain text parser from the file name.
func ParseNamed(name string, r io.Reader) ([]string, error) {
	if strings.EqualFold(path.Ext(name), ".csv") {
		return ParseCSV(r)
	}
	return Parse(r)
}

// FromObject reads a SKU list stored in a bucket.
func FromObject(ctx context.Context, client storage.Client, bucket, object string) ([]string, error) {
	obj, err := client.GetObject(ctx, bucket, object, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to get %s/%s: %w", bucket, object, err)
	}
	defer obj.Close()

	return ParseNamed(object, obj)
}
