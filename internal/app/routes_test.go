package app_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apppkg "weather-mcp/internal/app"
	mcphandlers "weather-mcp/internal/handlers/mcp"
	"weather-mcp/internal/mcp"
)

type fakeGateway struct {
	forecast mcp.Response
	alerts   mcp.Response

	gotLat, gotLon float64
	gotState       string
}

func (f *fakeGateway) FetchForecast(lat, lon float64) mcp.Response {
	f.gotLat, f.gotLon = lat, lon
	return f.forecast
}

func (f *fakeGateway) FetchAlerts(state string) mcp.Response {
	f.gotState = state
	return f.alerts
}

func newRouter(fake *fakeGateway) *mux.Router {
	mcphandlers.SetGateway(fake)
	apppkg.RegisterTools()
	r := mux.NewRouter()
	apppkg.RegisterRoutes(r)
	return r
}

func do(r *mux.Router, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestForecastSuccess(t *testing.T) {
	fake := &fakeGateway{forecast: mcp.OK(map[string]any{"periods": []any{"Today"}})}
	r := newRouter(fake)

	rec := do(r, http.MethodPost, "/forecast", `{"latitude":37.7749,"longitude":-122.4194}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Success bool           `json:"success"`
		Data    map[string]any `json:"data"`
		Error   string         `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, []any{"Today"}, resp.Data["periods"])
	assert.Empty(t, resp.Error)
	assert.Equal(t, 37.7749, fake.gotLat)
	assert.Equal(t, -122.4194, fake.gotLon)
}

func TestForecastUpstreamFailureStays200(t *testing.T) {
	fake := &fakeGateway{forecast: mcp.Fail("API Error")}
	r := newRouter(fake)

	rec := do(r, http.MethodPost, "/forecast", `{"latitude":37.7749,"longitude":-122.4194}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp mcp.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.Contains(t, resp.Error, "API Error")
}

func TestForecastMistypedFieldIs422(t *testing.T) {
	r := newRouter(&fakeGateway{})

	rec := do(r, http.MethodPost, "/forecast", `{"latitude":"invalid","longitude":-122.4194}`)
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "validation_error", body["error"])
	assert.Equal(t, "latitude", body["field"])
	assert.NotContains(t, body, "success")
}

func TestForecastMissingFieldIs422(t *testing.T) {
	r := newRouter(&fakeGateway{})

	rec := do(r, http.MethodPost, "/forecast", `{"longitude":-122.4194}`)
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), "latitude")
}

func TestAlertsSuccessAndValidation(t *testing.T) {
	fake := &fakeGateway{alerts: mcp.OK(map[string]any{"alerts": []any{}})}
	r := newRouter(fake)

	rec := do(r, http.MethodPost, "/alerts", `{"state":"CA"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "CA", fake.gotState)

	rec = do(r, http.MethodPost, "/alerts", `{"state":123}`)
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), "state")
}

func TestHealthAlwaysHealthy(t *testing.T) {
	r := newRouter(&fakeGateway{forecast: mcp.Fail("upstream down")})

	rec := do(r, http.MethodGet, "/health", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"healthy","service":"weather-mcp-server"}`, rec.Body.String())
}

func TestToolsListsExactlyTwoDescriptors(t *testing.T) {
	r := newRouter(&fakeGateway{})

	rec := do(r, http.MethodGet, "/tools", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Tools []struct {
			Name       string `json:"name"`
			Parameters struct {
				Required []string `json:"required"`
			} `json:"parameters"`
		} `json:"tools"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Tools, 2)
	assert.Equal(t, "get_forecast", body.Tools[0].Name)
	assert.Equal(t, []string{"latitude", "longitude"}, body.Tools[0].Parameters.Required)
	assert.Equal(t, "get_alerts", body.Tools[1].Name)
	assert.Equal(t, []string{"state"}, body.Tools[1].Parameters.Required)
}

func TestListPrompts(t *testing.T) {
	r := newRouter(&fakeGateway{})

	rec := do(r, http.MethodGet, "/prompts", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Success bool `json:"success"`
		Data    struct {
			Templates []struct {
				Name      string `json:"name"`
				Arguments []struct {
					Name string `json:"name"`
				} `json:"arguments"`
			} `json:"templates"`
			Total int `json:"total"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, 5, resp.Data.Total)
	require.Len(t, resp.Data.Templates, 5)
	assert.Equal(t, "weather_query", resp.Data.Templates[0].Name)
	require.Len(t, resp.Data.Templates[0].Arguments, 2)
	assert.Equal(t, "location", resp.Data.Templates[0].Arguments[0].Name)
	assert.Equal(t, "days", resp.Data.Templates[0].Arguments[1].Name)
}

func TestPromptCategoriesKeepEncounterOrder(t *testing.T) {
	r := newRouter(&fakeGateway{})

	rec := do(r, http.MethodGet, "/prompts/categories", "")
	require.Equal(t, http.StatusOK, rec.Code)

	body := rec.Body.String()
	last := -1
	for _, key := range []string{`"weather"`, `"analysis"`, `"report"`, `"alert"`, `"daily"`} {
		idx := strings.Index(body, key)
		require.Greater(t, idx, last, "category %s out of order in %s", key, body)
		last = idx
	}
}

func TestRenderPrompt(t *testing.T) {
	r := newRouter(&fakeGateway{})

	rec := do(r, http.MethodPost, "/prompts/weather_query",
		`{"parameters":{"location":"Paris","days":3}}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Success          bool    `json:"success"`
		RenderedTemplate *string `json:"rendered_template"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	require.NotNil(t, resp.RenderedTemplate)
	assert.Contains(t, *resp.RenderedTemplate, "Paris")
	assert.Contains(t, *resp.RenderedTemplate, "next 3 days")
	assert.NotContains(t, *resp.RenderedTemplate, "{")
}

func TestRenderPromptMissingParameterIs400(t *testing.T) {
	r := newRouter(&fakeGateway{})

	rec := do(r, http.MethodPost, "/prompts/weather_query", `{"parameters":{"days":3}}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "missing_parameter", body["error"])
	assert.Equal(t, "location", body["field"])
}

func TestPromptWithoutParametersSkipsRendering(t *testing.T) {
	r := newRouter(&fakeGateway{})

	rec := do(r, http.MethodPost, "/prompts/daily_briefing", `{"parameters":{}}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Success          bool    `json:"success"`
		RenderedTemplate *string `json:"rendered_template"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Nil(t, resp.RenderedTemplate)
}

func TestUnknownPromptIs404(t *testing.T) {
	r := newRouter(&fakeGateway{})

	rec := do(r, http.MethodPost, "/prompts/unknown_template", `{"parameters":{}}`)
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "unknown_template")
}

func TestToolDispatchByName(t *testing.T) {
	fake := &fakeGateway{alerts: mcp.OK("fine")}
	r := newRouter(fake)

	rec := do(r, http.MethodPost, "/mcp/get_alerts", `{"state":"CA"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "CA", fake.gotState)

	rec = do(r, http.MethodPost, "/mcp/no_such_tool", `{}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetRoutesAreByteIdentical(t *testing.T) {
	r := newRouter(&fakeGateway{})

	for _, path := range []string{"/prompts", "/prompts/categories", "/tools", "/health"} {
		first := do(r, http.MethodGet, path, "").Body.String()
		second := do(r, http.MethodGet, path, "").Body.String()
		assert.Equal(t, first, second, "GET %s not idempotent", path)
	}
}
