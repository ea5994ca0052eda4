// Package storage provides an abstraction layer for object storage services.
//
// It wraps the MinIO Go client so SKU lists can be read from, and batch
// reports written to, AWS S3 or a self-hosted MinIO instance.
//
// # Client Interface
//
// The Client interface abstracts the underlying storage provider, making it easier
// to mock storage interactions for unit testing (as seen in core/storage/mocks).
//
// # Operations
//
//   - BucketExists: Verifies access to the target bucket.
//   - MakeBucket: Creates a new bucket if needed.
//   - PutObject: Uploads content (with size and options).
//   - GetObject: Retrieves content as a stream.
//   - Upload: Ensures the bucket and writes a byte slice.
//
// # Usage
//
//	client, err := storage.NewClient(config)
//	err = storage.Upload(ctx, client, cfg.Bucket, "reports/run.csv", data, "text/csv")
package storage
