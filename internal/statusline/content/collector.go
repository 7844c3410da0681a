package content

import (
	"time"
)

// BaseCollector provides common functionality for collectors
type BaseCollector struct {
	name     string
	cacheTTL time.Duration
	optional bool
}

// Name returns the collector name
func (b *BaseCollector) Name() string {
	return b.name
}

// CacheKey returns the collector name; collectors whose result depends on
// the input override it
func (b *BaseCollector) CacheKey(*StatusLineInput) string {
	return b.name
}

// CacheTTL returns the cache TTL
func (b *BaseCollector) CacheTTL() time.Duration {
	return b.cacheTTL
}

// Optional returns whether the content is optional
func (b *BaseCollector) Optional() bool {
	return b.optional
}

// NewBaseCollector creates a new base collector
func NewBaseCollector(name string, cacheTTL time.Duration, optional bool) *BaseCollector {
	return &BaseCollector{
		name:     name,
		cacheTTL: cacheTTL,
		optional: optional,
	}
}
