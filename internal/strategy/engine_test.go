package strategy

import (
	"errors"
	"testing"

	"MetalWatch/internal/model"
)

func metalData(key, name string, closes []float64, futures model.LatestQuote) *model.MetalData {
	s := makeSeries(key, name, closes)
	return &model.MetalData{Series: *s, Futures: futures}
}

func fullMarketData() *model.MarketData {
	return &model.MarketData{
		Metals: map[string]*model.MetalData{
			"gold":   metalData("gold", "Gold", flatCloses(61, 185), model.LatestQuote{Current: 2000, Prev: 1990}),
			"silver": metalData("silver", "Silver", flatCloses(61, 22), model.LatestQuote{Current: 20, Prev: 20.5}),
			"copper": metalData("copper", "Copper", flatCloses(61, 40), model.LatestQuote{Current: 4.5, Prev: 4.4}),
		},
		Order: []string{"gold", "silver", "copper"},
		Indices: map[string]model.LatestQuote{
			"dxy": {Current: 104, Prev: 104},
			"vix": {Current: 18, Prev: 18},
			"spx": {Current: 5000, Prev: 5000},
		},
	}
}

func TestEvaluate_FullCycle(t *testing.T) {
	snap, err := Evaluate(fullMarketData())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	wantKeys := []string{
		"gold_silver_ratio",
		"copper_gold_ratio",
		"gold_momentum",
		"silver_momentum",
		"copper_momentum",
		"macro_environment",
	}
	if len(snap.Records) != len(wantKeys) {
		t.Fatalf("expected %d records, got %d", len(wantKeys), len(snap.Records))
	}
	for i, key := range wantKeys {
		if snap.Records[i].Key != key {
			t.Errorf("record %d: expected key %s, got %s", i, key, snap.Records[i].Key)
		}
	}

	// Gold futures 2000 / silver futures 20 -> ratio 100 -> silver strong buy.
	gs := snap.Record("gold_silver_ratio")
	if gs.Level != model.LevelStrongBuySilver || gs.Score != 5 {
		t.Errorf("expected strong_buy_silver score 5, got %s score %.0f", gs.Level, gs.Score)
	}
	if *gs.Ratio != 100.0 {
		t.Errorf("expected ratio 100.0, got %.2f", *gs.Ratio)
	}

	// Copper 4.5 / gold 2000 * 1000 = 2.25 -> risk on.
	cg := snap.Record("copper_gold_ratio")
	if cg.Level != model.LevelRiskOn || cg.Score != 4 {
		t.Errorf("expected risk_on score 4, got %s score %.0f", cg.Level, cg.Score)
	}

	// Flat series and quiet indices: momentum and macro are neutral.
	// Scores: 5 + 4 + 3 + 3 + 3 + 3 = 21 -> 3.5 -> buy.
	if snap.Composite.Score != 3.5 {
		t.Errorf("expected composite 3.5, got %.4f", snap.Composite.Score)
	}
	if snap.Composite.Level != model.LevelBuy {
		t.Errorf("expected composite buy, got %s", snap.Composite.Level)
	}
	if snap.GeneratedAt.IsZero() {
		t.Error("expected GeneratedAt to be set")
	}
}

func TestEvaluate_MissingSilverDropsGoldSilverRatio(t *testing.T) {
	data := fullMarketData()
	delete(data.Metals, "silver")
	data.Order = []string{"gold", "copper"}

	snap, err := Evaluate(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if snap.Record("gold_silver_ratio") != nil {
		t.Error("expected no gold/silver ratio record without silver data")
	}
	if snap.Record("copper_gold_ratio") == nil {
		t.Error("copper/gold ratio should survive a missing silver instrument")
	}
	if snap.Record("silver_momentum") != nil {
		t.Error("expected no momentum record for a missing instrument")
	}
}

func TestEvaluate_ZeroSilverPriceIsSoftAbsent(t *testing.T) {
	data := fullMarketData()
	data.Metals["silver"].Futures = model.LatestQuote{}

	snap, err := Evaluate(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if snap.Record("gold_silver_ratio") != nil {
		t.Error("expected soft-absent ratio record for zero silver price")
	}
}

func TestEvaluate_NoMetalsIsFatal(t *testing.T) {
	_, err := Evaluate(&model.MarketData{Metals: map[string]*model.MetalData{}})
	if !errors.Is(err, ErrNoMarketData) {
		t.Fatalf("expected ErrNoMarketData, got %v", err)
	}

	_, err = Evaluate(nil)
	if !errors.Is(err, ErrNoMarketData) {
		t.Fatalf("expected ErrNoMarketData for nil data, got %v", err)
	}
}

func TestEvaluate_NoIndicesStillProducesMacro(t *testing.T) {
	data := fullMarketData()
	data.Indices = nil

	snap, err := Evaluate(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	macro := snap.Record("macro_environment")
	if macro == nil {
		t.Fatal("expected a macro record even without index data")
	}
	if macro.Score != 3 || macro.Rationale != "normal range" {
		t.Errorf("expected neutral macro, got score %.0f rationale %q", macro.Score, macro.Rationale)
	}
}
