package strategy

import (
	"fmt"

	"MetalWatch/internal/model"
)

// Lookbacks in trading-day observations. Series shorter than a lookback
// degrade to the earliest available point, so a "month change" over a
// 10-day series reads as change-since-series-start. That degradation is
// intentional and must not be corrected here.
const (
	monthLookback   = 20
	quarterLookback = 60
)

// Momentum tally thresholds in percent.
const (
	monthThreshold   = 5.0
	quarterThreshold = 10.0
	ytdThreshold     = 15.0
)

// ClassifyMomentum derives a momentum signal for one instrument series.
// The series must be non-empty.
func ClassifyMomentum(series *model.InstrumentSeries) model.SignalRecord {
	current := series.LatestClose()
	dayChange := pctChange(current, series.PrevClose())

	monthChange := pctChange(current, refClose(series.Points, monthLookback))
	quarterChange := pctChange(current, refClose(series.Points, quarterLookback))
	ytdChange := pctChange(current, series.Points[0].Close)

	tally := 0
	if monthChange > monthThreshold {
		tally++
	}
	if quarterChange > quarterThreshold {
		tally++
	}
	if ytdChange > ytdThreshold {
		tally++
	}

	var (
		level model.SignalLevel
		label string
		score float64
	)
	switch {
	case tally >= 2 && dayChange > 0:
		if tally == 3 {
			level, label, score = model.LevelStrongBuy, "strong buy", 5
		} else {
			level, label, score = model.LevelBuy, "buy", 4
		}
	case tally <= -2 && dayChange < 0:
		// Unreachable while the tally only counts positive thresholds;
		// kept to mirror the buy side until the sell rules are settled.
		level, label, score = model.LevelStrongSell, "strong sell", 1
	case dayChange < -2:
		level, label, score = model.LevelSell, "sell", 2
	default:
		level, label, score = model.LevelNeutral, "neutral", 3
	}

	return model.SignalRecord{
		Key:       series.Key + "_momentum",
		Kind:      model.KindMomentum,
		Level:     level,
		Label:     label,
		Rationale: fmt.Sprintf("1M %+.2f%% | 3M %+.2f%% | YTD %+.2f%%", monthChange, quarterChange, ytdChange),
		Action:    fmt.Sprintf("%s ETF %s", series.Name, recommendation(score)),
		Score:     score,
		DayChange: &dayChange,
	}
}

func recommendation(score float64) string {
	switch {
	case score >= 4:
		return "buy"
	case score <= 2:
		return "sell"
	default:
		return "hold/watch"
	}
}

// refClose returns the close `lookback` observations back from the end,
// or the earliest close when the series is shorter.
func refClose(points []model.PricePoint, lookback int) float64 {
	if len(points) >= lookback {
		return points[len(points)-lookback].Close
	}
	return points[0].Close
}

func pctChange(current, ref float64) float64 {
	if ref == 0 {
		return 0
	}
	return (current - ref) / ref * 100
}
