package collector

import (
	"sync"
	"time"

	"MetalWatch/internal/model"
)

// marketCache keeps fetched series and quotes for a short TTL so repeated
// refresh triggers do not hammer the upstream API. Keys are symbol plus
// window, so changing the lookback bypasses stale entries.
type marketCache struct {
	mu     sync.Mutex
	ttl    time.Duration
	series map[string]seriesEntry
	quotes map[string]quoteEntry
}

type seriesEntry struct {
	points   []model.PricePoint
	expireAt time.Time
}

type quoteEntry struct {
	quote    model.LatestQuote
	expireAt time.Time
}

func newMarketCache(ttl time.Duration) *marketCache {
	return &marketCache{
		ttl:    ttl,
		series: make(map[string]seriesEntry),
		quotes: make(map[string]quoteEntry),
	}
}

func (c *marketCache) getSeries(key string) ([]model.PricePoint, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.series[key]
	if !ok || time.Now().After(e.expireAt) {
		delete(c.series, key)
		return nil, false
	}
	return e.points, true
}

func (c *marketCache) setSeries(key string, points []model.PricePoint) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.series[key] = seriesEntry{points: points, expireAt: time.Now().Add(c.ttl)}
}

func (c *marketCache) getQuote(key string) (model.LatestQuote, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.quotes[key]
	if !ok || time.Now().After(e.expireAt) {
		delete(c.quotes, key)
		return model.LatestQuote{}, false
	}
	return e.quote, true
}

func (c *marketCache) setQuote(key string, quote model.LatestQuote) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.quotes[key] = quoteEntry{quote: quote, expireAt: time.Now().Add(c.ttl)}
}
