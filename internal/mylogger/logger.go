package mylogger

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
)

// Logger is a thin wrapper over slog that emits structured JSON and
// supports chaining: mylog.Action("order_created").Info("...").
type Logger struct {
	l *slog.Logger
}

// New creates a JSON logger writing to stdout. Level is one of
// DEBUG, INFO, WARN, ERROR (case-insensitive).
func New(level string) (Logger, error) {
	var lvl slog.Level
	switch strings.ToUpper(strings.TrimSpace(level)) {
	case "DEBUG":
		lvl = slog.LevelDebug
	case "INFO", "":
		lvl = slog.LevelInfo
	case "WARN":
		lvl = slog.LevelWarn
	case "ERROR":
		lvl = slog.LevelError
	default:
		return Logger{}, fmt.Errorf("unknown log level: %s", level)
	}

	h := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: lvl})
	hostname, _ := os.Hostname()
	return Logger{l: slog.New(h).With("hostname", hostname)}, nil
}

// Action tags every record produced by the returned logger.
func (lg Logger) Action(action string) Logger {
	return Logger{l: lg.l.With("action", action)}
}

func (lg Logger) With(args ...any) Logger {
	return Logger{l: lg.l.With(args...)}
}

func (lg Logger) WithGroup(name string) Logger {
	return Logger{l: lg.l.WithGroup(name)}
}

func (lg Logger) Debug(msg string, args ...any) {
	lg.l.Debug(msg, args...)
}

func (lg Logger) Info(msg string, args ...any) {
	lg.l.Info(msg, args...)
}

func (lg Logger) Warn(msg string, args ...any) {
	lg.l.Warn(msg, args...)
}

func (lg Logger) Error(msg string, err error, args ...any) {
	if err != nil {
		args = append([]any{"error", err.Error()}, args...)
	}
	lg.l.Error(msg, args...)
}
