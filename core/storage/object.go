package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/minio/minio-go/v7"
)

// ErrObjectNotFound is returned when the requested object does not exist.
var ErrObjectNotFound = errors.New("object not found")

// IsNotFound reports whether err means the bucket or object is missing.
func IsNotFound(err error) bool {
	if errors.Is(err, ErrObjectNotFound) {
		return true
	}
	var resp minio.ErrorResponse
	if !errors.As(err, &resp) {
		return false
	}
	return resp.Code == "NoSuchKey" || resp.Code == "NoSuchBucket"
}

// ReadObject downloads the whole object.
// It returns ErrObjectNotFound when the object does not exist.
func ReadObject(ctx context.Context, client Client, bucket, objectName string) ([]byte, error) {
	obj, err := client.GetObject(ctx, bucket, objectName, minio.GetObjectOptions{})
	if err != nil {
		return nil, wrapObjectErr(bucket, objectName, err)
	}
	defer obj.Close()

	// MinIO reports missing objects on the first read, not on GetObject.
	data, err := io.ReadAll(obj)
	if err != nil {
		return nil, wrapObjectErr(bucket, objectName, err)
	}
	return data, nil
}

// WriteObject uploads data as objectName, creating the bucket first if needed.
func WriteObject(ctx context.Context, client Client, bucket, objectName string, data []byte, contentType string) error {
	if err := EnsureBucket(ctx, client, bucket); err != nil {
		return err
	}

	_, err := client.PutObject(ctx, bucket, objectName, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return fmt.Errorf("failed to upload %s/%s: %w", bucket, objectName, err)
	}
	return nil
}

// ObjectExists checks whether objectName exists in bucket.
func ObjectExists(ctx context.Context, client Client, bucket, objectName string) (bool, error) {
	_, err := client.StatObject(ctx, bucket, objectName, minio.StatObjectOptions{})
	if err == nil {
		return true, nil
	}
	if IsNotFound(err) {
		return false, nil
	}
	return false, fmt.Errorf("failed to stat %s/%s: %w", bucket, objectName, err)
}

// EnsureBucket creates bucket when it does not exist yet.
func EnsureBucket(ctx context.Context, client Client, bucket string) error {
	exists, err := client.BucketExists(ctx, bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket %s: %w", bucket, err)
	}
	if exists {
		return nil
	}
	if err := client.MakeBucket(ctx, bucket, minio.MakeBucketOptions{}); err != nil {
		return fmt.Errorf("failed to create bucket %s: %w", bucket, err)
	}
	return nil
}

func wrapObjectErr(bucket, objectName string, err error) error {
	if IsNotFound(err) {
		return fmt.Errorf("%s/%s: %w", bucket, objectName, ErrObjectNotFound)
	}
	return fmt.Errorf("failed to download %s/%s: %w", bucket, objectName, err)
}
