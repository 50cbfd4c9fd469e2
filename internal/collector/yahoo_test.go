package collector

import (
	"strings"
	"testing"
)

func TestParseChart_ShortIndicatorArrays(t *testing.T) {
	// Three timestamps but only two closes, as seen in truncated payloads.
	body := []byte(`{"chart":{"result":[{
		"timestamp":[1700000000,1700086400,1700172800],
		"indicators":{"quote":[{"close":[100.5,101.25],"volume":[1000,1100]}]}
	}]}}`)

	points, err := parseChart(body, "GLD")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(points) != 2 {
		t.Fatalf("expected 2 points, got %d", len(points))
	}
	if points[1].Close != 101.25 {
		t.Errorf("expected close 101.25, got %v", points[1].Close)
	}
}

func TestParseChart_SkipsNullBars(t *testing.T) {
	body := []byte(`{"chart":{"result":[{
		"timestamp":[1700000000,1700086400,1700172800],
		"indicators":{"quote":[{"close":[100.0,null,102.0],"volume":[1000,null,1200]}]}
	}]}}`)

	points, err := parseChart(body, "SLV")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(points) != 2 {
		t.Fatalf("expected null bar skipped, got %d points", len(points))
	}
	if points[0].Close != 100.0 || points[1].Close != 102.0 {
		t.Errorf("unexpected closes: %v, %v", points[0].Close, points[1].Close)
	}
}

func TestParseChart_SortsChronologically(t *testing.T) {
	body := []byte(`{"chart":{"result":[{
		"timestamp":[1700172800,1700000000],
		"indicators":{"quote":[{"close":[102.0,100.0],"volume":[1200,1000]}]}
	}]}}`)

	points, err := parseChart(body, "COPX")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(points) != 2 || !points[0].Date.Before(points[1].Date) {
		t.Fatalf("expected chronological order, got %+v", points)
	}
}

func TestParseChart_APIError(t *testing.T) {
	body := []byte(`{"chart":{"result":[],"error":{"code":"Not Found","description":"No data found, symbol may be delisted"}}}`)

	_, err := parseChart(body, "BOGUS")
	if err == nil {
		t.Fatal("expected error for api error response")
	}
	if !strings.Contains(err.Error(), "delisted") {
		t.Errorf("expected api description in error, got %v", err)
	}
}

func TestParseChart_NoData(t *testing.T) {
	body := []byte(`{"chart":{"result":[]}}`)

	if _, err := parseChart(body, "GLD"); err == nil {
		t.Fatal("expected error for empty result")
	}
}
