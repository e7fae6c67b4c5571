// Package dedup guarantees at-most-once processing per notification
// fingerprint within a fixed expiry window. Entries age out by time, not
// by access; a periodic sweep purges them regardless of hit patterns.
package dedup

import (
	"context"
	"crypto/sha256"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"
)

type Cache struct {
	mu      sync.Mutex
	entries map[string]time.Time

	window time.Duration
	logger *zap.Logger
	now    func() time.Time
}

func New(window time.Duration, logger *zap.Logger) *Cache {
	if window <= 0 {
		window = 30 * time.Minute
	}
	return &Cache{
		entries: make(map[string]time.Time),
		window:  window,
		logger:  logger,
		now:     time.Now,
	}
}

// Fingerprint builds the composite dedup key for one notification event.
// The text hash catches apps that re-post the same content under a fresh
// notification id.
func Fingerprint(pkg string, notificationID int, postedAt time.Time, title, text string) string {
	h := sha256.Sum256([]byte(title + "\x00" + text))
	return fmt.Sprintf("%s|%d|%d|%x", pkg, notificationID, postedAt.UnixMilli(), h[:8])
}

// CheckAndInsert atomically records the fingerprint and reports whether it
// was first seen. A false return means the event was already processed
// within the window and must be skipped.
func (c *Cache) CheckAndInsert(fp string) bool {
	now := c.now()

	c.mu.Lock()
	defer c.mu.Unlock()

	if seen, ok := c.entries[fp]; ok && now.Sub(seen) < c.window {
		return false
	}
	c.entries[fp] = now
	return true
}

// Sweep removes entries older than the window and returns how many it
// dropped.
func (c *Cache) Sweep() int {
	now := c.now()

	c.mu.Lock()
	defer c.mu.Unlock()

	removed := 0
	for fp, seen := range c.entries {
		if now.Sub(seen) >= c.window {
			delete(c.entries, fp)
			removed++
		}
	}
	return removed
}

// Len reports the current number of live entries.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Run sweeps on a fixed interval until the context is cancelled.
func (c *Cache) Run(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = 5 * time.Minute
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			removed := c.Sweep()
			if removed > 0 {
				c.logger.Debug("dedup sweep",
					zap.Int("removed", removed),
					zap.Int("remaining", c.Len()),
				)
			}
		}
	}
}
