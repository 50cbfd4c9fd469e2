package strategy

import (
	"errors"
	"time"

	"MetalWatch/internal/model"
)

// ErrNoMarketData is returned when no instrument produced any usable data,
// so no composite can be formed.
var ErrNoMarketData = errors.New("no market data available")

// Evaluate runs every analyzer over one refresh cycle's market data and
// returns the full signal snapshot. Record order is deterministic:
// gold/silver ratio, copper/gold ratio, per-instrument momentum in
// configured order, macro environment.
func Evaluate(data *model.MarketData) (*model.SignalSnapshot, error) {
	if data == nil || len(data.Metals) == 0 {
		return nil, ErrNoMarketData
	}

	var records []model.SignalRecord

	if gold, ok := data.Metals["gold"]; ok {
		if silver, ok := data.Metals["silver"]; ok {
			if rec := GoldSilverRatio(gold.Futures.Current, silver.Futures.Current); rec != nil {
				records = append(records, *rec)
			}
		}
	}

	if copper, ok := data.Metals["copper"]; ok {
		if gold, ok := data.Metals["gold"]; ok {
			if rec := CopperGoldRatio(copper.Futures.Current, gold.Futures.Current); rec != nil {
				records = append(records, *rec)
			}
		}
	}

	for _, key := range data.Order {
		md, ok := data.Metals[key]
		if !ok || len(md.Series.Points) == 0 {
			continue
		}
		records = append(records, ClassifyMomentum(&md.Series))
	}

	records = append(records, AggregateMacro(data.Indices))

	return &model.SignalSnapshot{
		Records:     records,
		Composite:   Combine(records),
		GeneratedAt: time.Now(),
	}, nil
}
