// internal/config/config.go
// Configuration loader from environment variables (MCP_ prefix)

package config

import (
	"fmt"
	"net"
	"os"
	"strings"
)

type Config struct {
	Host  string
	Port  string
	Debug bool

	WeatherAPIBaseURL string
	UserAgent         string

	LogLevel string
	LogFile  string

	// GatewayWorkers bounds the pool that runs upstream weather calls.
	GatewayWorkers int
}

func Load() *Config {
	c := &Config{}
	c.Host = getEnv("MCP_HOST", "0.0.0.0")
	c.Port = getEnv("MCP_PORT", "8000")
	c.Debug = getEnvBool("MCP_DEBUG", false)

	c.WeatherAPIBaseURL = getEnv("MCP_WEATHER_API_BASE_URL", "https://api.weather.gov")
	c.UserAgent = getEnv("MCP_USER_AGENT", "WeatherMCP/0.1.0")

	c.LogLevel = getEnv("MCP_LOG_LEVEL", "info")
	c.LogFile = getEnv("MCP_LOG_FILE", "mcp_server.log")

	c.GatewayWorkers = getEnvInt("MCP_GATEWAY_WORKERS", 8)

	return c
}

// Addr is the host:port the HTTP server binds to.
func (c *Config) Addr() string {
	return net.JoinHostPort(c.Host, c.Port)
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		var i int
		_, err := fmt.Sscanf(v, "%d", &i)
		if err == nil {
			return i
		}
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	switch strings.ToLower(os.Getenv(key)) {
	case "1", "true", "yes", "on":
		return true
	case "0", "false", "no", "off":
		return false
	}
	return def
}
