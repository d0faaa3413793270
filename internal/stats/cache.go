package stats

import (
	"encoding/json"
	"net/http"

	"github.com/2beens/fittrack/internal/telemetry/metrics"

	"github.com/coocood/freecache"
	log "github.com/sirupsen/logrus"
)

// Cache keeps computed view models for a short time. Entries are JSON encoded,
// freecache only stores bytes.
type Cache struct {
	fc         *freecache.Cache
	ttlSeconds int
	metrics    *metrics.Manager
}

func NewCache(sizeMB, ttlSeconds int, metrics *metrics.Manager) *Cache {
	return &Cache{
		fc:         freecache.NewCache(sizeMB * 1024 * 1024),
		ttlSeconds: ttlSeconds,
		metrics:    metrics,
	}
}

func (c *Cache) load(key string, dst any) bool {
	data, err := c.fc.Get([]byte(key))
	if err != nil {
		c.metrics.CounterStatsCache.WithLabelValues("miss").Inc()
		return false
	}
	if err := json.Unmarshal(data, dst); err != nil {
		log.Errorf("stats cache, decode [%s]: %s", key, err)
		c.metrics.CounterStatsCache.WithLabelValues("miss").Inc()
		return false
	}
	c.metrics.CounterStatsCache.WithLabelValues("hit").Inc()
	return true
}

func (c *Cache) store(key string, value any) {
	data, err := json.Marshal(value)
	if err != nil {
		log.Errorf("stats cache, encode [%s]: %s", key, err)
		return
	}
	if err := c.fc.Set([]byte(key), data, c.ttlSeconds); err != nil {
		// too large for the cache, computed again next time
		log.Warnf("stats cache, set [%s] (%d bytes): %s", key, len(data), err)
	}
}

func (c *Cache) Clear() {
	c.fc.Clear()
}

// InvalidateOnWrite clears the cache once any non GET/HEAD request has been handled,
// so pages never show numbers from before a write.
func (c *Cache) InvalidateOnWrite() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r)
			if r.Method != http.MethodGet && r.Method != http.MethodHead {
				c.Clear()
			}
		})
	}
}
