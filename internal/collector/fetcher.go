package collector

import "MetalWatch/internal/model"

// Fetcher defines the interface for pulling market data from an upstream source.
type Fetcher interface {
	// FetchDailySeries returns up to `days` end-of-day observations, oldest first.
	FetchDailySeries(symbol string, days int) ([]model.PricePoint, error)
	// FetchLatestQuote returns the latest two closes from a short recent window.
	FetchLatestQuote(symbol string) (model.LatestQuote, error)
	Name() string
}
