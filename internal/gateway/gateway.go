// internal/gateway/gateway.go
// Adapter between the HTTP layer and the external weather source.
// Fetches run on a bounded worker pool so a slow upstream call never
// occupies the goroutine serving the inbound request.

package gateway

import (
	"context"

	"github.com/rs/zerolog"

	"weather-mcp/internal/mcp"
	"weather-mcp/pkg/weather"
)

// WeatherClient is the external weather data source.
type WeatherClient interface {
	GetForecast(ctx context.Context, latitude, longitude float64) (*weather.Forecast, error)
	GetAlerts(ctx context.Context, state string) (*weather.Alerts, error)
}

const DefaultWorkers = 8

type Gateway struct {
	client WeatherClient
	jobs   chan job
	logger zerolog.Logger
}

type job struct {
	call func() (any, error)
	done chan result
}

type result struct {
	data any
	err  error
}

// New starts a gateway with the given number of pool workers. Workers
// run for the life of the process; there is no draining on shutdown.
func New(client WeatherClient, workers int, logger zerolog.Logger) *Gateway {
	if workers <= 0 {
		workers = DefaultWorkers
	}
	g := &Gateway{
		client: client,
		jobs:   make(chan job),
		logger: logger,
	}
	for i := 0; i < workers; i++ {
		go g.worker()
	}
	return g
}

func (g *Gateway) worker() {
	for j := range g.jobs {
		data, err := j.call()
		j.done <- result{data: data, err: err}
	}
}

// dispatch hands the call to the pool and blocks for its result. No
// timeout and no cancellation: once dispatched, the call runs to
// completion or failure and a hung upstream holds its worker slot.
func (g *Gateway) dispatch(call func() (any, error)) mcp.Response {
	done := make(chan result, 1)
	g.jobs <- job{call: call, done: done}
	res := <-done
	if res.err != nil {
		return mcp.Fail(res.err.Error())
	}
	return mcp.OK(res.data)
}

// FetchForecast returns the forecast for a coordinate pair, wrapped in
// the response envelope. Upstream failures become failure envelopes,
// never errors to the caller.
func (g *Gateway) FetchForecast(latitude, longitude float64) mcp.Response {
	g.logger.Info().
		Float64("latitude", latitude).
		Float64("longitude", longitude).
		Msg("getting forecast")
	return g.dispatch(func() (any, error) {
		return g.client.GetForecast(context.Background(), latitude, longitude)
	})
}

// FetchAlerts returns active alerts for a state code. The code is not
// validated here; an unknown code surfaces the upstream error verbatim
// in the envelope.
func (g *Gateway) FetchAlerts(state string) mcp.Response {
	g.logger.Info().
		Str("state", state).
		Msg("getting alerts")
	return g.dispatch(func() (any, error) {
		return g.client.GetAlerts(context.Background(), state)
	})
}
