package logging

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var levelMapping = map[string]zerolog.Level{
	"debug":   zerolog.DebugLevel,
	"info":    zerolog.InfoLevel,
	"warning": zerolog.WarnLevel,
	"warn":    zerolog.WarnLevel,
	"error":   zerolog.ErrorLevel,
}

// ParseLevel maps a level name to a zerolog level.
func ParseLevel(level string) (zerolog.Level, error) {
	lev, ok := levelMapping[strings.ToLower(strings.TrimSpace(level))]
	if !ok {
		return zerolog.NoLevel, fmt.Errorf("invalid logging level: %s", level)
	}
	return lev, nil
}

// Setup configures the global logger. With an empty path it writes a
// human-readable stream to stderr. The returned closer releases the log
// file, if any.
func Setup(path, level string) (io.Closer, error) {
	lev, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}
	zerolog.SetGlobalLevel(lev)

	if path != "" {
		logf, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize log file %s: %w", path, err)
		}
		log.Logger = log.Output(logf)
		return logf, nil
	}
	log.Logger = log.Output(
		zerolog.ConsoleWriter{
			Out:        os.Stderr,
			TimeFormat: time.RFC3339,
		},
	)
	return nopCloser{}, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
