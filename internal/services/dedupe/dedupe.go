// Package dedupe suppresses repeat processing of redelivered webhook events.
// The vendor re-sends a POST when it does not get a timely acknowledgment, so
// the same message id can arrive more than once.
package dedupe

import (
	"time"

	"github.com/patrickmn/go-cache"
)

const (
	defaultExpiration = 10 * time.Minute
	cleanupInterval   = 15 * time.Minute
)

// Cache remembers recently seen message ids with a TTL.
type Cache struct {
	seen *cache.Cache
}

// New creates a message-id cache with the default TTL.
func New() *Cache {
	return &Cache{
		seen: cache.New(defaultExpiration, cleanupInterval),
	}
}

// Seen records messageID and reports whether it had already been recorded
// within the TTL. An empty id is never considered seen.
func (c *Cache) Seen(messageID string) bool {
	if messageID == "" {
		return false
	}
	if _, found := c.seen.Get(messageID); found {
		return true
	}
	c.seen.Set(messageID, struct{}{}, 0)
	return false
}
