package strategy

import (
	"testing"

	"MetalWatch/internal/model"
)

func records(scores ...float64) []model.SignalRecord {
	recs := make([]model.SignalRecord, len(scores))
	for i, s := range scores {
		recs[i] = model.SignalRecord{Score: s}
	}
	return recs
}

func TestCombine_EmptyDefaultsToNeutral(t *testing.T) {
	c := Combine(nil)
	if c.Score != 3.0 {
		t.Errorf("expected default score 3.0, got %.2f", c.Score)
	}
	if c.Level != model.LevelNeutral {
		t.Errorf("expected neutral, got %s", c.Level)
	}
}

func TestCombine_Average(t *testing.T) {
	c := Combine(records(5, 4, 3))
	if c.Score != 4.0 {
		t.Errorf("expected average 4.0, got %.2f", c.Score)
	}
	if c.Level != model.LevelBuy {
		t.Errorf("expected buy at 4.0, got %s", c.Level)
	}
}

func TestCombine_Bands(t *testing.T) {
	tests := []struct {
		scores []float64
		level  model.SignalLevel
	}{
		{[]float64{5, 5}, model.LevelStrongBuy},        // 5.0
		{[]float64{5, 4}, model.LevelStrongBuy},        // 4.5, inclusive
		{[]float64{4, 4, 5}, model.LevelBuy},           // 4.33
		{[]float64{3, 4}, model.LevelBuy},              // 3.5, inclusive
		{[]float64{3, 3}, model.LevelNeutral},          // 3.0
		{[]float64{2, 3}, model.LevelNeutral},          // 2.5, inclusive
		{[]float64{2, 2, 3}, model.LevelSell},          // 2.33
		{[]float64{2, 2}, model.LevelSell},             // 2.0, inclusive
		{[]float64{1, 2, 2, 2}, model.LevelStrongSell}, // 1.75
		{[]float64{1, 1}, model.LevelStrongSell},       // 1.0
	}
	for _, tt := range tests {
		c := Combine(records(tt.scores...))
		if c.Level != tt.level {
			t.Errorf("scores %v (avg %.2f): expected %s, got %s", tt.scores, c.Score, tt.level, c.Level)
		}
	}
}

func TestCombine_Deterministic(t *testing.T) {
	recs := records(5, 2, 3, 4)
	a := Combine(recs)
	b := Combine(recs)
	if a != b {
		t.Errorf("expected identical composites, got %+v and %+v", a, b)
	}
}
