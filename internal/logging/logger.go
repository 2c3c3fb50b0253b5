// internal/logging/logger.go
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"

	"weather-mcp/internal/config"
)

// New builds the process logger: JSON to stdout (console writer in
// debug mode) plus the configured log file, at the configured level.
func New(cfg *config.Config) (zerolog.Logger, error) {
	level, err := zerolog.ParseLevel(strings.ToLower(cfg.LogLevel))
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}

	var stdout io.Writer = os.Stdout
	if cfg.Debug {
		stdout = zerolog.ConsoleWriter{Out: os.Stdout}
	}

	writers := []io.Writer{stdout}
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return zerolog.Nop(), fmt.Errorf("open log file: %w", err)
		}
		writers = append(writers, f)
	}

	logger := zerolog.New(zerolog.MultiLevelWriter(writers...)).
		Level(level).
		With().
		Timestamp().
		Str("service", "weather-mcp-server").
		Logger()
	return logger, nil
}
