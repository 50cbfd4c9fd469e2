package strategy

import (
	"fmt"
	"strings"

	"MetalWatch/internal/model"
)

// Macro index keys the aggregator reads. Other indices in the input map
// (e.g. us10y) are fetched for display but carry no aggregation rule.
const (
	IndexDollar = "dxy"
	IndexVIX    = "vix"
	IndexEquity = "spx"
)

const macroNormalRange = "normal range"

// AggregateMacro combines dollar, volatility and equity index moves into a
// 3-level macro-environment signal. A strong dollar weighs on metals, a weak
// one supports them; VIX and equity moves are noted without moving the
// score. Absent indices are skipped.
func AggregateMacro(indices map[string]model.LatestQuote) model.SignalRecord {
	score := 3.0
	var factors []string

	if q, ok := indices[IndexDollar]; ok {
		change := q.ChangePct()
		if change > 1 {
			score--
			factors = append(factors, fmt.Sprintf("dollar strength %+.2f%%", change))
		} else if change < -1 {
			score++
			factors = append(factors, fmt.Sprintf("dollar weakness %+.2f%%", change))
		}
	}

	if q, ok := indices[IndexVIX]; ok {
		switch {
		case q.Current > 25:
			factors = append(factors, fmt.Sprintf("VIX high %.1f", q.Current))
		case q.Current < 15:
			factors = append(factors, fmt.Sprintf("VIX low %.1f", q.Current))
		}
	}

	if q, ok := indices[IndexEquity]; ok {
		change := q.ChangePct()
		if change > 1 {
			factors = append(factors, fmt.Sprintf("equities strong %+.2f%%", change))
		} else if change < -1 {
			factors = append(factors, fmt.Sprintf("equities weak %+.2f%%", change))
		}
	}

	rec := model.SignalRecord{
		Key:   "macro_environment",
		Kind:  model.KindMacro,
		Score: score,
	}
	switch {
	case score >= 4:
		rec.Level = model.LevelFavorable
		rec.Label = "favorable"
	case score <= 2:
		rec.Level = model.LevelUnfavorable
		rec.Label = "unfavorable"
	default:
		rec.Level = model.LevelNeutral
		rec.Label = "neutral"
	}
	if len(factors) > 0 {
		rec.Rationale = strings.Join(factors, " | ")
	} else {
		rec.Rationale = macroNormalRange
	}

	return rec
}
