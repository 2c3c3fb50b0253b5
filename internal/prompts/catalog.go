// internal/prompts/catalog.go
// Static catalog of prompt templates for LLM clients.
// Built once at process start; never mutated afterwards, so no locking.

package prompts

import (
	"bytes"
	"encoding/json"
)

// Argument describes one named parameter of a template.
type Argument struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Required    bool   `json:"required"`
}

// Template is a named prompt with {identifier} placeholders.
type Template struct {
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Arguments   []Argument `json:"arguments"`
	Template    string     `json:"template"`
	Category    string     `json:"category"`
}

// catalog keeps registration order; byName is the lookup index.
var catalog = []Template{
	{
		Name:        "weather_query",
		Description: "Query current weather and forecast for a location",
		Arguments: []Argument{
			{Name: "location", Description: "Location name or coordinates", Required: true},
			{Name: "days", Description: "Number of forecast days (default 3)", Required: false},
		},
		Template: "Please look up the current weather for {location} and the forecast for " +
			"the next {days} days. Include temperature, humidity, wind speed and " +
			"precipitation probability.",
		Category: "weather",
	},
	{
		Name:        "weather_analysis",
		Description: "Analyze weather data and give professional advice",
		Arguments: []Argument{
			{Name: "location", Description: "Location name", Required: true},
			{Name: "data", Description: "Weather data", Required: true},
		},
		Template: "Based on the weather data below, provide a professional analysis for {location}:\n\n" +
			"{data}\n\n" +
			"Please cover:\n1. Weather trends\n2. Impact on travel\n3. Recommendations",
		Category: "analysis",
	},
	{
		Name:        "weather_report",
		Description: "Generate a professional weather report",
		Arguments: []Argument{
			{Name: "location", Description: "Location name", Required: true},
			{Name: "period", Description: "Reporting period", Required: true},
		},
		Template: "Please write a professional weather report for {location} covering {period}. " +
			"The report should include:\n\n" +
			"1. Overall conditions\n2. Temperature trends\n3. Precipitation statistics\n" +
			"4. Wind analysis\n5. Notable weather events\n6. Advice for residents",
		Category: "report",
	},
	{
		Name:        "alert_summary",
		Description: "Summarize active weather alerts",
		Arguments: []Argument{
			{Name: "state", Description: "State or region name", Required: true},
			{Name: "alerts", Description: "Alert data", Required: true},
		},
		Template: "Please summarize the weather alerts for {state}:\n\n" +
			"{alerts}\n\n" +
			"Include:\n1. Alert types\n2. Affected areas\n3. Expected duration\n4. Safety advice",
		Category: "alert",
	},
	{
		Name:        "daily_briefing",
		Description: "Generate a daily weather briefing",
		Arguments: []Argument{
			{Name: "location", Description: "Location name", Required: true},
		},
		Template: "Please write a daily weather briefing for {location}, including:\n\n" +
			"1. Today's conditions\n2. Temperature range\n3. Precipitation probability\n" +
			"4. Wind\n5. Air quality\n6. Travel advice\n7. Clothing advice",
		Category: "daily",
	},
}

var byName = func() map[string]*Template {
	m := make(map[string]*Template, len(catalog))
	for i := range catalog {
		m[catalog[i].Name] = &catalog[i]
	}
	return m
}()

// Get looks a template up by name.
func Get(name string) (Template, bool) {
	t, ok := byName[name]
	if !ok {
		return Template{}, false
	}
	return *t, true
}

// List returns all templates in registration order.
func List() []Template {
	out := make([]Template, len(catalog))
	copy(out, catalog)
	return out
}

// CategoryMap maps category -> template names and marshals its keys in
// first-encounter order (a plain map would serialize sorted).
type CategoryMap struct {
	keys []string
	m    map[string][]string
}

func (c CategoryMap) Get(category string) []string {
	return c.m[category]
}

func (c CategoryMap) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range c.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		kb, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		vb, err := json.Marshal(c.m[k])
		if err != nil {
			return nil, err
		}
		buf.Write(kb)
		buf.WriteByte(':')
		buf.Write(vb)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Categories groups template names by category, categories ordered by
// first encounter over the registration order.
func Categories() CategoryMap {
	c := CategoryMap{m: make(map[string][]string)}
	for _, t := range catalog {
		if _, seen := c.m[t.Category]; !seen {
			c.keys = append(c.keys, t.Category)
		}
		c.m[t.Category] = append(c.m[t.Category], t.Name)
	}
	return c
}
