package collector

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"time"

	"MetalWatch/internal/model"
)

// YahooFetcher implements Fetcher using the Yahoo Finance public chart API.
type YahooFetcher struct {
	Client *http.Client
}

// NewYahooFetcher creates a new Yahoo Finance fetcher with optional proxy support.
func NewYahooFetcher(proxyURL string) *YahooFetcher {
	transport := &http.Transport{}
	if proxyURL != "" {
		if u, err := url.Parse(proxyURL); err == nil {
			transport.Proxy = http.ProxyURL(u)
		}
	}
	return &YahooFetcher{
		Client: &http.Client{
			Timeout:   30 * time.Second,
			Transport: transport,
		},
	}
}

func (f *YahooFetcher) Name() string { return "yahoo" }

// yahooChart is the response structure from the Yahoo Finance chart API.
type yahooChart struct {
	Chart struct {
		Result []struct {
			Timestamp  []int64 `json:"timestamp"`
			Indicators struct {
				Quote []struct {
					Close  []interface{} `json:"close"`
					Volume []interface{} `json:"volume"`
				} `json:"quote"`
			} `json:"indicators"`
		} `json:"result"`
		Error *struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		} `json:"error"`
	} `json:"chart"`
}

func toFloat(v interface{}) float64 {
	if v == nil {
		return 0
	}
	switch n := v.(type) {
	case float64:
		return n
	case int:
		return float64(n)
	default:
		return 0
	}
}

func (f *YahooFetcher) fetchChart(symbol, interval, rng string) ([]model.PricePoint, error) {
	u := fmt.Sprintf("https://query1.finance.yahoo.com/v8/finance/chart/%s?interval=%s&range=%s",
		url.PathEscape(symbol), interval, rng)

	req, err := http.NewRequest("GET", u, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", "Mozilla/5.0")

	resp, err := f.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("yahoo fetch: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("yahoo read body: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("yahoo: status %d, body: %s", resp.StatusCode, string(body))
	}

	return parseChart(body, symbol)
}

func parseChart(body []byte, symbol string) ([]model.PricePoint, error) {
	var chart yahooChart
	if err := json.Unmarshal(body, &chart); err != nil {
		return nil, fmt.Errorf("yahoo decode: %w", err)
	}
	if chart.Chart.Error != nil {
		return nil, fmt.Errorf("yahoo api error: %s", chart.Chart.Error.Description)
	}
	if len(chart.Chart.Result) == 0 || len(chart.Chart.Result[0].Timestamp) == 0 {
		return nil, fmt.Errorf("yahoo: no data returned for %s", symbol)
	}

	result := chart.Chart.Result[0]
	if len(result.Indicators.Quote) == 0 {
		return nil, fmt.Errorf("yahoo: no quote data for %s", symbol)
	}
	quote := result.Indicators.Quote[0]
	points := make([]model.PricePoint, 0, len(result.Timestamp))

	for i, ts := range result.Timestamp {
		if i >= len(quote.Close) || i >= len(quote.Volume) {
			break // malformed payload, indicator arrays shorter than timestamps
		}
		c := toFloat(quote.Close[i])
		if c == 0 {
			continue // skip null bars (holidays etc.)
		}
		points = append(points, model.PricePoint{
			Date:   time.Unix(ts, 0),
			Close:  c,
			Volume: toFloat(quote.Volume[i]),
		})
	}

	sort.Slice(points, func(i, j int) bool { return points[i].Date.Before(points[j].Date) })
	return points, nil
}

// FetchDailySeries fetches daily closes over the smallest Yahoo range that
// covers the requested number of days, trimmed to that count.
func (f *YahooFetcher) FetchDailySeries(symbol string, days int) ([]model.PricePoint, error) {
	rng := "2y"
	if days <= 30 {
		rng = "1mo"
	} else if days <= 90 {
		rng = "3mo"
	} else if days <= 180 {
		rng = "6mo"
	} else if days <= 365 {
		rng = "1y"
	}
	points, err := f.fetchChart(symbol, "1d", rng)
	if err != nil {
		return nil, err
	}
	if len(points) > days {
		points = points[len(points)-days:]
	}
	return points, nil
}

// FetchLatestQuote reduces a 5-day window to the latest two closes.
func (f *YahooFetcher) FetchLatestQuote(symbol string) (model.LatestQuote, error) {
	points, err := f.fetchChart(symbol, "1d", "5d")
	if err != nil {
		return model.LatestQuote{}, err
	}
	if len(points) == 0 {
		return model.LatestQuote{}, fmt.Errorf("yahoo: no price data for %s", symbol)
	}
	q := model.LatestQuote{Current: points[len(points)-1].Close}
	if len(points) >= 2 {
		q.Prev = points[len(points)-2].Close
	} else {
		q.Prev = q.Current
	}
	return q, nil
}
