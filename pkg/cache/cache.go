// Package cache stores rendered chart artifacts between runs.
//
// Artifacts are keyed by a hash of the chart description plus the output
// format and scale ([ArtifactKey]), so re-rendering an unchanged chart is a
// file read. [FileCache] persists entries on disk; [NullCache] disables
// caching.
package cache

import (
	"context"
	"time"
)

// Cache is a byte store with optional expiry.
type Cache interface {
	// Get returns the stored value and whether it was found. A corrupt or
	// expired entry counts as a miss.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	// Set stores data under key. A ttl <= 0 never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	// Delete removes key; deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
	Close() error
}
