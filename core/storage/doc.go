// Package storage provides an abstraction layer for object storage services.
//
// It wraps the MinIO Go client to provide a simplified interface for the
// operations the ledger needs on s3:// locations. This abstraction supports both
// AWS S3 and self-hosted MinIO instances.
//
// # Client Interface
//
// The Client interface abstracts the underlying storage provider, making it easier
// to mock storage interactions for unit testing (as seen in core/storage/mocks).
//
// # Operations
//
//   - ReadObject: Downloads a whole object; missing objects map to ErrObjectNotFound.
//   - WriteObject: Uploads content, creating the bucket on first use.
//   - ObjectExists: Stats an object without downloading it.
//   - EnsureBucket: Creates a bucket if needed.
//
// # Usage
//
//	client, err := storage.NewClient(config)
//	data, err := storage.ReadObject(ctx, client, "ledgers", "debts.json")
package storage
