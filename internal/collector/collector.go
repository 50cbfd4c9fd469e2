package collector

import (
	"fmt"
	"log"
	"time"

	"MetalWatch/internal/archive"
	"MetalWatch/internal/model"
)

// MockFetcher returns controllable fixed data for development and testing.
type MockFetcher struct {
	SeriesBySymbol map[string][]model.PricePoint
	QuotesBySymbol map[string]model.LatestQuote
	Price          float64 // base price for synthesized data when maps are empty
	SeriesCalls    int
	QuoteCalls     int
}

func (m *MockFetcher) Name() string { return "mock" }

func (m *MockFetcher) FetchDailySeries(symbol string, days int) ([]model.PricePoint, error) {
	m.SeriesCalls++
	if m.SeriesBySymbol != nil {
		points, ok := m.SeriesBySymbol[symbol]
		if !ok {
			return nil, fmt.Errorf("mock: no series for %s", symbol)
		}
		return points, nil
	}
	return generateMockPoints(m.Price, days), nil
}

func (m *MockFetcher) FetchLatestQuote(symbol string) (model.LatestQuote, error) {
	m.QuoteCalls++
	if m.QuotesBySymbol != nil {
		q, ok := m.QuotesBySymbol[symbol]
		if !ok {
			return model.LatestQuote{}, fmt.Errorf("mock: no quote for %s", symbol)
		}
		return q, nil
	}
	return model.LatestQuote{Current: m.Price, Prev: m.Price * 0.99}, nil
}

func generateMockPoints(basePrice float64, count int) []model.PricePoint {
	points := make([]model.PricePoint, count)
	for i := 0; i < count; i++ {
		p := basePrice * (1 + float64(i-count/2)*0.001)
		points[i] = model.PricePoint{
			Date:   time.Now().AddDate(0, 0, -(count - i)),
			Close:  p,
			Volume: 1000000,
		}
	}
	return points
}

// Collector fetches price history and quotes for every tracked instrument
// and macro index, caching results for a short TTL.
type Collector struct {
	Fetcher     Fetcher
	Instruments []model.Instrument
	Indices     []model.Index
	Lookback    int
	Archive     archive.Archive

	cache *marketCache
}

// NewCollector creates a new Collector.
func NewCollector(fetcher Fetcher, instruments []model.Instrument, indices []model.Index, lookbackDays int, cacheTTL time.Duration, arc archive.Archive) *Collector {
	if arc == nil {
		arc = archive.NewNoopArchive()
	}
	return &Collector{
		Fetcher:     fetcher,
		Instruments: instruments,
		Indices:     indices,
		Lookback:    lookbackDays,
		Archive:     arc,
		cache:       newMarketCache(cacheTTL),
	}
}

// Collect fetches everything needed for one evaluation cycle. An instrument
// or index that fails to fetch is logged and excluded; the cycle continues
// with whatever could be fetched.
func (c *Collector) Collect() *model.MarketData {
	data := &model.MarketData{
		Metals:    make(map[string]*model.MetalData),
		Indices:   make(map[string]model.LatestQuote),
		FetchedAt: time.Now(),
	}

	for _, inst := range c.Instruments {
		md, err := c.collectInstrument(inst)
		if err != nil {
			log.Printf("[WARN] collect %s: %v, skipping", inst.Key, err)
			continue
		}
		data.Metals[inst.Key] = md
		data.Order = append(data.Order, inst.Key)
	}

	for _, idx := range c.Indices {
		q, err := c.quote(idx.Symbol)
		if err != nil {
			log.Printf("[WARN] collect index %s: %v, skipping", idx.Key, err)
			continue
		}
		data.Indices[idx.Key] = q
	}

	return data
}

func (c *Collector) collectInstrument(inst model.Instrument) (*model.MetalData, error) {
	points, err := c.dailySeries(inst.ETF)
	if err != nil {
		return nil, fmt.Errorf("fetch series %s: %w", inst.ETF, err)
	}
	if len(points) == 0 {
		return nil, fmt.Errorf("empty series for %s", inst.ETF)
	}

	futures, err := c.quote(inst.Futures)
	if err != nil {
		return nil, fmt.Errorf("fetch futures %s: %w", inst.Futures, err)
	}

	return &model.MetalData{
		Series: model.InstrumentSeries{
			Key:    inst.Key,
			Symbol: inst.ETF,
			Name:   inst.Name,
			Color:  inst.Color,
			Points: points,
		},
		Futures: futures,
	}, nil
}

func (c *Collector) dailySeries(symbol string) ([]model.PricePoint, error) {
	key := fmt.Sprintf("%s:%d", symbol, c.Lookback)
	if points, ok := c.cache.getSeries(key); ok {
		return points, nil
	}
	points, err := c.Fetcher.FetchDailySeries(symbol, c.Lookback)
	if err != nil {
		return nil, err
	}
	c.cache.setSeries(key, points)
	if err := c.Archive.RecordSeries(symbol, points); err != nil {
		log.Printf("[WARN] archive series %s: %v", symbol, err)
	}
	return points, nil
}

func (c *Collector) quote(symbol string) (model.LatestQuote, error) {
	if q, ok := c.cache.getQuote(symbol); ok {
		return q, nil
	}
	q, err := c.Fetcher.FetchLatestQuote(symbol)
	if err != nil {
		return model.LatestQuote{}, err
	}
	c.cache.setQuote(symbol, q)
	if err := c.Archive.RecordQuote(symbol, q); err != nil {
		log.Printf("[WARN] archive quote %s: %v", symbol, err)
	}
	return q, nil
}
