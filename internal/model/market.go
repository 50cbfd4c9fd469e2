package model

import "time"

// PricePoint is a single end-of-day observation.
type PricePoint struct {
	Date   time.Time
	Close  float64
	Volume float64
}

// InstrumentSeries holds the price history for one tracked instrument, oldest first.
type InstrumentSeries struct {
	Key    string // internal key, e.g. "gold"
	Symbol string // ETF ticker, e.g. "GLD"
	Name   string
	Color  string // presentation hint, not used by the analyzers
	Points []PricePoint
}

// LatestClose returns the most recent close, or 0 for an empty series.
func (s *InstrumentSeries) LatestClose() float64 {
	if len(s.Points) == 0 {
		return 0
	}
	return s.Points[len(s.Points)-1].Close
}

// PrevClose returns the second most recent close. With a single observation
// it falls back to that observation, so the day-over-day change reads as 0%.
func (s *InstrumentSeries) PrevClose() float64 {
	if len(s.Points) < 2 {
		return s.LatestClose()
	}
	return s.Points[len(s.Points)-2].Close
}

// LatestQuote carries the two most recent closes of a reference instrument
// or macro index. Prev equals Current when only one observation exists.
type LatestQuote struct {
	Current float64
	Prev    float64
}

// ChangePct returns the day-over-day change in percent.
func (q LatestQuote) ChangePct() float64 {
	if q.Prev == 0 {
		return 0
	}
	return (q.Current - q.Prev) / q.Prev * 100
}

// MetalData bundles everything fetched for one tracked metal.
type MetalData struct {
	Series  InstrumentSeries
	Futures LatestQuote
}

// MarketData is one refresh cycle's worth of fetched inputs. Instruments or
// indices that failed to fetch are simply absent.
type MarketData struct {
	Metals    map[string]*MetalData
	Order     []string // metal keys in configured order
	Indices   map[string]LatestQuote
	FetchedAt time.Time
}

// Instrument describes one tracked metal: the ETF ticker used for price
// history and the futures contract used for ratio pricing.
type Instrument struct {
	Key     string `yaml:"key"`
	Name    string `yaml:"name"`
	ETF     string `yaml:"etf"`
	Futures string `yaml:"futures"`
	Color   string `yaml:"color"`
}

// Index describes one macro reference index.
type Index struct {
	Key    string `yaml:"key"`
	Name   string `yaml:"name"`
	Symbol string `yaml:"symbol"`
}
