package exercises

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/2beens/fittracker/internal/telemetry/metrics"

	"github.com/coocood/freecache"
	log "github.com/sirupsen/logrus"
)

const (
	megabyte              = 1024 * 1024
	systemCatalogCacheKey = "system-exercises"
)

// CatalogCache keeps the system exercise list in memory. Custom exercises are never cached.
type CatalogCache struct {
	cache          *freecache.Cache
	ttl            time.Duration
	metricsManager *metrics.Manager
}

func NewCatalogCache(sizeMB int, ttl time.Duration, metricsManager *metrics.Manager) *CatalogCache {
	if sizeMB <= 0 {
		sizeMB = 1
	}
	return &CatalogCache{
		// freecache enforces a 512KB minimum on its own
		cache:          freecache.NewCache(sizeMB * megabyte),
		ttl:            ttl,
		metricsManager: metricsManager,
	}
}

func (c *CatalogCache) Get() ([]Exercise, bool) {
	raw, err := c.cache.Get([]byte(systemCatalogCacheKey))
	if err != nil {
		if !errors.Is(err, freecache.ErrNotFound) {
			log.Errorf("catalog cache get: %s", err)
		}
		c.metricsManager.CounterExerciseCacheHits.WithLabelValues("miss").Inc()
		return nil, false
	}

	var exercises []Exercise
	if err := json.Unmarshal(raw, &exercises); err != nil {
		log.Errorf("catalog cache unmarshal: %s", err)
		c.cache.Del([]byte(systemCatalogCacheKey))
		c.metricsManager.CounterExerciseCacheHits.WithLabelValues("miss").Inc()
		return nil, false
	}

	c.metricsManager.CounterExerciseCacheHits.WithLabelValues("hit").Inc()
	return exercises, true
}

func (c *CatalogCache) Set(catalog []Exercise) error {
	raw, err := json.Marshal(catalog)
	if err != nil {
		return fmt.Errorf("marshal catalog: %w", err)
	}
	if err := c.cache.Set([]byte(systemCatalogCacheKey), raw, int(c.ttl.Seconds())); err != nil {
		return fmt.Errorf("set catalog: %w", err)
	}
	return nil
}

func (c *CatalogCache) Invalidate() {
	c.cache.Del([]byte(systemCatalogCacheKey))
}
