package storage

import "context"

// ObjectStore abstracts the bucket store holding raw scrape files and
// downloaded media. Put is idempotent: storing an existing key returns the
// canonical public URL without re-uploading.
type ObjectStore interface {
	// Put stores body under key and returns the stable public URL.
	Put(ctx context.Context, bucket, key string, body []byte, contentType string) (string, error)

	// Get fetches an object's bytes.
	Get(ctx context.Context, bucket, key string) ([]byte, error)

	// List returns all keys under prefix (pass "" for the whole bucket).
	List(ctx context.Context, bucket, prefix string) ([]string, error)

	// Move copies srcKey to dstKey and deletes the original.
	Move(ctx context.Context, bucket, srcKey, dstKey string) error

	// Delete removes a key; deleting a missing key is not an error.
	Delete(ctx context.Context, bucket, key string) error

	// Exists reports whether a key is present.
	Exists(ctx context.Context, bucket, key string) (bool, error)

	// PublicURL returns the stable public URL for a key without any I/O.
	PublicURL(bucket, key string) string
}
