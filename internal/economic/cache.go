package economic

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/finplan/finplan/internal/domain"
)

// DefaultTTL is how long a fetched snapshot stays fresh.
const DefaultTTL = 24 * time.Hour

// Source produces an indicator snapshot. *Client satisfies it.
type Source interface {
	Fetch(ctx context.Context) (domain.EconomicIndicators, error)
}

// Cache guards a shared indicator snapshot behind a TTL. Stale reads
// trigger a refresh; a failed refresh serves the previous snapshot, or
// the fallback constants when nothing was ever fetched.
type Cache struct {
	src Source
	ttl time.Duration
	log zerolog.Logger

	mu      sync.Mutex
	snap    domain.EconomicIndicators
	fetched time.Time
}

func NewCache(src Source, ttl time.Duration, log zerolog.Logger) *Cache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Cache{
		src: src,
		ttl: ttl,
		log: log.With().Str("component", "economic_cache").Logger(),
	}
}

// Latest returns the cached snapshot, refreshing it first when stale or
// never fetched. It never returns an error: fetch failures degrade to
// the last good snapshot or the fallback constants.
func (c *Cache) Latest(ctx context.Context) domain.EconomicIndicators {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.fetched.IsZero() && time.Since(c.fetched) < c.ttl {
		return c.snap
	}
	return c.refreshLocked(ctx)
}

// Refresh forces a fetch regardless of freshness.
func (c *Cache) Refresh(ctx context.Context) domain.EconomicIndicators {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.refreshLocked(ctx)
}

func (c *Cache) refreshLocked(ctx context.Context) domain.EconomicIndicators {
	ind, err := c.src.Fetch(ctx)
	if err != nil {
		c.log.Warn().Err(err).Msg("indicator refresh failed")
		if c.fetched.IsZero() {
			c.snap = domain.FallbackIndicators()
			c.fetched = time.Now()
		}
		// Keep serving the previous snapshot past its TTL.
		return c.snap
	}
	c.snap = ind
	c.fetched = time.Now()
	c.log.Info().
		Str("gdp_growth", ind.GDPGrowth.Value.String()).
		Str("cpi_inflation", ind.CPIInflation.Value.String()).
		Msg("refreshed economic snapshot")
	return c.snap
}
