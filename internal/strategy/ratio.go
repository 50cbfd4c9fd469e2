package strategy

import (
	"fmt"

	"MetalWatch/internal/model"
)

// GoldSilverRatio classifies the gold/silver price ratio into a 5-level
// signal. Returns nil when the silver price is zero (no record, not an error).
// Bands are evaluated in order, first match wins:
//
//	> 90        strong_buy_silver (5)
//	> 82        buy_silver        (4)
//	< 60        strong_buy_gold   (5)
//	< 68        buy_gold          (4)
//	68..82      neutral           (3)
func GoldSilverRatio(goldPrice, silverPrice float64) *model.SignalRecord {
	if silverPrice == 0 {
		return nil
	}

	ratio := goldPrice / silverPrice
	rec := &model.SignalRecord{
		Key:   "gold_silver_ratio",
		Kind:  model.KindRatio,
		Ratio: &ratio,
	}

	switch {
	case ratio > 90:
		rec.Level = model.LevelStrongBuySilver
		rec.Label = "silver strong buy"
		rec.Rationale = fmt.Sprintf("gold/silver ratio %.1f - silver deeply undervalued", ratio)
		rec.Action = "accumulate silver ETF, consider trimming gold ETF"
		rec.Score = 5
	case ratio > 82:
		rec.Level = model.LevelBuySilver
		rec.Label = "silver buy"
		rec.Rationale = fmt.Sprintf("gold/silver ratio %.1f - silver undervalued", ratio)
		rec.Action = "silver ETF buying opportunity"
		rec.Score = 4
	case ratio < 60:
		rec.Level = model.LevelStrongBuyGold
		rec.Label = "gold strong buy"
		rec.Rationale = fmt.Sprintf("gold/silver ratio %.1f - gold deeply undervalued", ratio)
		rec.Action = "accumulate gold ETF, consider trimming silver ETF"
		rec.Score = 5
	case ratio < 68:
		rec.Level = model.LevelBuyGold
		rec.Label = "gold buy"
		rec.Rationale = fmt.Sprintf("gold/silver ratio %.1f - gold undervalued", ratio)
		rec.Action = "gold ETF buying opportunity"
		rec.Score = 4
	default:
		rec.Level = model.LevelNeutral
		rec.Label = "neutral"
		rec.Rationale = fmt.Sprintf("gold/silver ratio %.1f - normal range (68-82)", ratio)
		rec.Action = "hold or keep balance"
		rec.Score = 3
	}

	return rec
}

// CopperGoldRatio classifies the copper/gold ratio, a growth-sentiment
// gauge. Returns nil when the gold price is zero. The x1000 scaling bridges
// the very different quote scales of the two futures contracts.
func CopperGoldRatio(copperPrice, goldPrice float64) *model.SignalRecord {
	if goldPrice == 0 {
		return nil
	}

	ratio := (copperPrice / goldPrice) * 1000
	rec := &model.SignalRecord{
		Key:   "copper_gold_ratio",
		Kind:  model.KindRatio,
		Ratio: &ratio,
	}

	switch {
	case ratio > 1.5:
		rec.Level = model.LevelRiskOn
		rec.Label = "economic expansion"
		rec.Rationale = fmt.Sprintf("copper/gold ratio %.2f - risk on, growth optimism", ratio)
		rec.Action = "copper ETF strength, gold ETF weakness expected"
		rec.Score = 4
	case ratio < 0.8:
		rec.Level = model.LevelRiskOff
		rec.Label = "economic slowdown"
		rec.Rationale = fmt.Sprintf("copper/gold ratio %.2f - risk off, growth concerns", ratio)
		rec.Action = "gold ETF strength, copper ETF weakness expected"
		rec.Score = 2
	default:
		rec.Level = model.LevelBalanced
		rec.Label = "balanced"
		rec.Rationale = fmt.Sprintf("copper/gold ratio %.2f - balanced", ratio)
		rec.Action = "mixed signals, check other indicators"
		rec.Score = 3
	}

	return rec
}
