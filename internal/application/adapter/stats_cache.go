// Package adapter defines interfaces for external dependencies of the application layer.
package adapter

import (
	"context"
	"time"
)

// StatsCache is a read-through cache for hot statistics payloads (the
// widget summary and monthly statistics). Values are derived data, so the
// cache is best-effort: implementations should degrade to misses rather
// than fail the read path.
type StatsCache interface {
	// Get unmarshals the cached value for key into dest and reports whether
	// the key was present.
	Get(ctx context.Context, key string, dest any) (bool, error)

	// Set stores value under key with the given TTL.
	Set(ctx context.Context, key string, value any, ttl time.Duration) error

	// InvalidateAll drops every cached statistics entry. Called after any
	// ledger or budget mutation.
	InvalidateAll(ctx context.Context) error
}
