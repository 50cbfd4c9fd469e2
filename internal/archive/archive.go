package archive

import "MetalWatch/internal/model"

// Archive persists raw fetched price data for offline inspection. Computed
// signals are deliberately not persisted; they are recomputed every cycle.
type Archive interface {
	RecordSeries(symbol string, points []model.PricePoint) error
	RecordQuote(symbol string, quote model.LatestQuote) error
	Close() error
}
