package checks

import (
	"context"
	"fmt"

	"catalog-sync/core/storage"
)

// CheckBucket verifies that the SKU list bucket is reachable and exists.
func CheckBucket(ctx context.Context, client storage.Client, bucket string) error {
	if client == nil {
		return fmt.Errorf("storage is not configured")
	}
	exists, err := client.BucketExists(ctx, bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket existence: %w", err)
	}
	if !exists {
		return fmt.Errorf("bucket %s does not exist", bucket)
	}
	return nil
}
