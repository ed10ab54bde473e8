package geo

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
)

// CampusCache is a read-through cache with exactly one entry: the full
// campus reference dataset. The key is unparameterized, so an expired entry
// triggers a re-fetch of the entire dataset — a known scaling limit that is
// acceptable at one institution's catalog size. When a refresh fails and a
// previous dataset exists, the stale value is served instead of the error.
type CampusCache struct {
	fetch func(context.Context) ([]Campus, error)
	ttl   time.Duration
	now   func() time.Time

	mu       sync.Mutex
	campuses []Campus
	expiry   time.Time
	primed   bool
}

// NewCampusCache wraps fetch with a TTL. A non-positive ttl disables caching.
func NewCampusCache(fetch func(context.Context) ([]Campus, error), ttl time.Duration) *CampusCache {
	return &CampusCache{
		fetch: fetch,
		ttl:   ttl,
		now:   time.Now,
	}
}

// Get returns the cached dataset, refreshing it when the entry has expired.
func (c *CampusCache) Get(ctx context.Context) ([]Campus, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.primed && c.now().Before(c.expiry) {
		return c.campuses, nil
	}

	campuses, err := c.fetch(ctx)
	if err != nil {
		if c.primed {
			log.Warn().Err(err).Msg("campus refresh failed, serving stale dataset")
			return c.campuses, nil
		}
		return nil, err
	}

	c.campuses = campuses
	c.expiry = c.now().Add(c.ttl)
	c.primed = true
	return c.campuses, nil
}
