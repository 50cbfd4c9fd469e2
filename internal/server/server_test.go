package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"MetalWatch/internal/model"
)

type stubSource struct {
	snap *model.SignalSnapshot
}

func (s *stubSource) Latest() *model.SignalSnapshot { return s.snap }

func testSnapshot() *model.SignalSnapshot {
	ratio := 100.0
	return &model.SignalSnapshot{
		Records: []model.SignalRecord{
			{
				Key:       "gold_silver_ratio",
				Kind:      model.KindRatio,
				Level:     model.LevelStrongBuySilver,
				Label:     "silver strong buy",
				Rationale: "gold/silver ratio 100.0 - silver deeply undervalued",
				Score:     5,
				Ratio:     &ratio,
			},
		},
		Composite:   model.CompositeSignal{Score: 5, Level: model.LevelStrongBuy, Label: "strong buy"},
		GeneratedAt: time.Date(2025, 6, 2, 8, 0, 0, 0, time.UTC),
	}
}

func TestHealth(t *testing.T) {
	srv := New(":0", &stubSource{})
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/health", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestGetSignals(t *testing.T) {
	srv := New(":0", &stubSource{snap: testSnapshot()})
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/api/v1/signals", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d (%s)", rec.Code, rec.Body.String())
	}
	var snap model.SignalSnapshot
	if err := json.Unmarshal(rec.Body.Bytes(), &snap); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(snap.Records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(snap.Records))
	}
	if snap.Records[0].Level != model.LevelStrongBuySilver {
		t.Errorf("expected strong_buy_silver, got %s", snap.Records[0].Level)
	}
	if snap.Records[0].Ratio == nil || *snap.Records[0].Ratio != 100.0 {
		t.Errorf("expected ratio payload 100.0, got %v", snap.Records[0].Ratio)
	}
}

func TestGetSignals_NoDataYet(t *testing.T) {
	srv := New(":0", &stubSource{})
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/api/v1/signals", nil))

	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503 before first refresh, got %d", rec.Code)
	}
}

func TestGetComposite(t *testing.T) {
	srv := New(":0", &stubSource{snap: testSnapshot()})
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/api/v1/signals/composite", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var c model.CompositeSignal
	if err := json.Unmarshal(rec.Body.Bytes(), &c); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if c.Level != model.LevelStrongBuy || c.Score != 5 {
		t.Errorf("unexpected composite: %+v", c)
	}
}
