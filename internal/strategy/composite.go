package strategy

import "MetalWatch/internal/model"

// compositeBands maps the average score to the 5-level composite label,
// checked in descending order.
var compositeBands = []struct {
	MinScore float64
	Level    model.SignalLevel
	Label    string
}{
	{4.5, model.LevelStrongBuy, "strong buy"},
	{3.5, model.LevelBuy, "buy"},
	{2.5, model.LevelNeutral, "neutral"},
	{2.0, model.LevelSell, "sell"},
}

// Combine averages every component score into the overall composite signal.
// An empty record set defaults to a neutral 3.0.
func Combine(records []model.SignalRecord) model.CompositeSignal {
	avg := 3.0
	if len(records) > 0 {
		sum := 0.0
		for _, r := range records {
			sum += r.Score
		}
		avg = sum / float64(len(records))
	}

	for _, band := range compositeBands {
		if avg >= band.MinScore {
			return model.CompositeSignal{Score: avg, Level: band.Level, Label: band.Label}
		}
	}
	return model.CompositeSignal{Score: avg, Level: model.LevelStrongSell, Label: "strong sell"}
}
