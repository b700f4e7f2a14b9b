// Package cache provides the build cache used to skip rewriting
// rendered pages whose content has not changed between runs.
//
// The site generator stores the content hash of every file it writes,
// keyed by the file's output-relative path. On the next build a page
// whose rendered content hashes to the same value is left alone. The
// cache is strictly an optimization: clearing it (or using
// [NewNullCache]) only makes builds rewrite every file.
package cache

import (
	"context"
	"time"
)

// Cache is the storage interface for build cache backends.
type Cache interface {
	// Get retrieves a value. The second return is false on a miss.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value. A ttl of zero means no expiration.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases any resources held by the backend.
	Close() error
}

// PageKey builds the cache key for a rendered output file from its
// path relative to the output root.
func PageKey(relPath string) string {
	return "page:" + relPath
}
