package cache

import (
	"context"
	"time"

	"github.com/Avaria395/SmartExpenseTracker/internal/application/adapter"
)

// NoopCache implements adapter.StatsCache without storing anything. It is
// used when the statistics cache is disabled or Redis is unreachable; every
// read is a miss and every write succeeds.
type NoopCache struct{}

// NewNoopCache creates a new NoopCache instance.
func NewNoopCache() *NoopCache {
	return &NoopCache{}
}

// Get always reports a miss.
func (*NoopCache) Get(context.Context, string, any) (bool, error) {
	return false, nil
}

// Set discards the value.
func (*NoopCache) Set(context.Context, string, any, time.Duration) error {
	return nil
}

// InvalidateAll does nothing.
func (*NoopCache) InvalidateAll(context.Context) error {
	return nil
}

var _ adapter.StatsCache = (*NoopCache)(nil)
