package config

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/adrg/xdg"
	"github.com/rs/zerolog"
)

var logFile = "termchess/termchess.log"

// LogLevel maps the configured level name to a zerolog level.
func (l LogConfig) LogLevel() zerolog.Level {
	switch l.Level {
	case "debug":
		return zerolog.DebugLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	case "disabled":
		return zerolog.Disabled
	default:
		return zerolog.InfoLevel
	}
}

// NewLogger returns a logger writing JSON lines to w at the configured level.
func (c *Config) NewLogger(w io.Writer) zerolog.Logger {
	return zerolog.New(w).Level(c.Log.LogLevel()).With().Timestamp().Logger()
}

// OpenLog opens the log file under the XDG state directory. The terminal
// belongs to the board, so nothing is logged to stdout.
// The returned closer must be closed on exit.
func OpenLog(c *Config) (zerolog.Logger, io.Closer, error) {
	if c.Log.LogLevel() == zerolog.Disabled {
		return zerolog.Nop(), io.NopCloser(nil), nil
	}
	path, err := xdg.StateFile(logFile)
	if err != nil {
		return zerolog.Nop(), io.NopCloser(nil), fmt.Errorf("locate log file: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return zerolog.Nop(), io.NopCloser(nil), fmt.Errorf("open log file: %w", err)
	}
	zerolog.TimeFieldFormat = time.RFC3339
	return c.NewLogger(f), f, nil
}

var historyFile = "termchess/history"

// HistoryFile returns the path of the line-mode input history.
func HistoryFile() (string, error) {
	return xdg.StateFile(historyFile)
}
