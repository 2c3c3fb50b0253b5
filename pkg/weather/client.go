// pkg/weather/client.go
// Client for the National Weather Service API (api.weather.gov)

package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// ForecastPeriod is one entry of the NWS gridpoint forecast.
type ForecastPeriod struct {
	Name             string `json:"name"`
	Temperature      int    `json:"temperature"`
	TemperatureUnit  string `json:"temperatureUnit"`
	WindSpeed        string `json:"windSpeed"`
	WindDirection    string `json:"windDirection"`
	ShortForecast    string `json:"shortForecast"`
	DetailedForecast string `json:"detailedForecast"`
}

type Forecast struct {
	Periods []ForecastPeriod `json:"periods"`
}

// Alert is one active alert for a state.
type Alert struct {
	Event       string `json:"event"`
	AreaDesc    string `json:"area"`
	Severity    string `json:"severity"`
	Headline    string `json:"headline"`
	Description string `json:"description"`
	Instruction string `json:"instruction"`
}

type Alerts struct {
	Alerts []Alert `json:"alerts"`
}

type Client struct {
	BaseURL   string
	UserAgent string
	Client    *http.Client
}

// NewClient builds an NWS client. The HTTP client carries no timeout:
// upstream call duration is unbounded (callers run fetches on a worker
// pool, see internal/gateway).
func NewClient(baseURL, userAgent string) *Client {
	if baseURL == "" {
		baseURL = "https://api.weather.gov"
	}
	return &Client{
		BaseURL:   strings.TrimRight(baseURL, "/"),
		UserAgent: userAgent,
		Client:    &http.Client{},
	}
}

// GetForecast resolves the gridpoint for the coordinates and fetches its
// forecast periods. Two upstream round-trips: /points, then the forecast
// URL that response names.
func (c *Client) GetForecast(ctx context.Context, latitude, longitude float64) (*Forecast, error) {
	var points struct {
		Properties struct {
			Forecast string `json:"forecast"`
		} `json:"properties"`
	}
	url := fmt.Sprintf("%s/points/%.4f,%.4f", c.BaseURL, latitude, longitude)
	if err := c.getJSON(ctx, url, &points); err != nil {
		return nil, err
	}
	if points.Properties.Forecast == "" {
		return nil, fmt.Errorf("no forecast endpoint for point %.4f,%.4f", latitude, longitude)
	}

	var fc struct {
		Properties struct {
			Periods []ForecastPeriod `json:"periods"`
		} `json:"properties"`
	}
	if err := c.getJSON(ctx, points.Properties.Forecast, &fc); err != nil {
		return nil, err
	}
	return &Forecast{Periods: fc.Properties.Periods}, nil
}

// GetAlerts fetches active alerts for a state code. The code is forwarded
// as-is; an invalid code surfaces whatever error the upstream returns.
func (c *Client) GetAlerts(ctx context.Context, state string) (*Alerts, error) {
	var feed struct {
		Features []struct {
			Properties Alert `json:"properties"`
		} `json:"features"`
	}
	url := fmt.Sprintf("%s/alerts/active/area/%s", c.BaseURL, strings.ToUpper(state))
	if err := c.getJSON(ctx, url, &feed); err != nil {
		return nil, err
	}
	out := &Alerts{Alerts: make([]Alert, 0, len(feed.Features))}
	for _, f := range feed.Features {
		out.Alerts = append(out.Alerts, f.Properties)
	}
	return out, nil
}

func (c *Client) getJSON(ctx context.Context, url string, v any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("new request: %w", err)
	}
	req.Header.Set("User-Agent", c.UserAgent)
	req.Header.Set("Accept", "application/geo+json")

	resp, err := c.Client.Do(req)
	if err != nil {
		return fmt.Errorf("http do: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		b, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("weather API error: %s (%s)", resp.Status, strings.TrimSpace(string(b)))
	}
	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
