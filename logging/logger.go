package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// LogLevel selects the minimum level a stockmesh logger emits.
type LogLevel int

const (
	LogLevelDebug LogLevel = iota
	LogLevelInfo
	LogLevelWarn
	LogLevelError
)

var levels = [...]struct {
	name string
	slog slog.Level
}{
	LogLevelDebug: {"DEBUG", slog.LevelDebug},
	LogLevelInfo:  {"INFO", slog.LevelInfo},
	LogLevelWarn:  {"WARN", slog.LevelWarn},
	LogLevelError: {"ERROR", slog.LevelError},
}

func (l LogLevel) valid() bool { return l >= 0 && int(l) < len(levels) }

// String returns the upper-case level name, or UNKNOWN.
func (l LogLevel) String() string {
	if !l.valid() {
		return "UNKNOWN"
	}
	return levels[l].name
}

func (l LogLevel) slogLevel() slog.Level {
	if !l.valid() {
		return slog.LevelInfo
	}
	return levels[l].slog
}

// ParseLogLevel reads the log.level config value. Empty means info and
// "warning" is accepted as an alias of warn.
func ParseLogLevel(s string) (LogLevel, error) {
	switch v := strings.ToUpper(strings.TrimSpace(s)); v {
	case "":
		return LogLevelInfo, nil
	case "WARNING":
		return LogLevelWarn, nil
	default:
		for i, lv := range levels {
			if lv.name == v {
				return LogLevel(i), nil
			}
		}
		return LogLevelInfo, fmt.Errorf("unknown log level %q", s)
	}
}

// Logger is what sessions, tools and the agent log through. Args are
// alternating key/value pairs; messages are dotted event names such as
// inventory.dispatch.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// SlogAdapter is a Logger over *slog.Logger.
type SlogAdapter struct {
	*slog.Logger
}

func (s *SlogAdapter) Debug(msg string, args ...any) { s.Logger.Debug(msg, args...) }
func (s *SlogAdapter) Info(msg string, args ...any)  { s.Logger.Info(msg, args...) }
func (s *SlogAdapter) Warn(msg string, args ...any)  { s.Logger.Warn(msg, args...) }
func (s *SlogAdapter) Error(msg string, args ...any) { s.Logger.Error(msg, args...) }

// With returns a child logger carrying args on every entry.
func (s *SlogAdapter) With(args ...any) Logger {
	return &SlogAdapter{Logger: s.Logger.With(args...)}
}

// LoggerConfig configures NewLogger. Format is "json" (default) or "text";
// Output defaults to stderr.
type LoggerConfig struct {
	Level     LogLevel
	Format    string
	Output    io.Writer
	AddSource bool
	// Component is attached as the "component" attribute when set.
	Component string
}

// NewLogger builds a slog backed Logger. A nil cfg logs info and above as
// JSON to stderr.
func NewLogger(cfg *LoggerConfig) Logger {
	c := LoggerConfig{Level: LogLevelInfo}
	if cfg != nil {
		c = *cfg
	}

	out := c.Output
	if out == nil {
		out = os.Stderr
	}

	opts := &slog.HandlerOptions{Level: c.Level.slogLevel(), AddSource: c.AddSource}

	var h slog.Handler = slog.NewJSONHandler(out, opts)
	if c.Format == "text" {
		h = slog.NewTextHandler(out, opts)
	}

	l := slog.New(h)
	if c.Component != "" {
		l = l.With("component", c.Component)
	}

	return &SlogAdapter{Logger: l}
}

// NewSlogLogger is NewLogger on stderr, the shape config.Config.Logger needs.
func NewSlogLogger(level LogLevel, format string, addSource bool) Logger {
	return NewLogger(&LoggerConfig{Level: level, Format: format, AddSource: addSource})
}

// With attaches args when l can carry them; other loggers pass through.
func With(l Logger, args ...any) Logger {
	if w, ok := l.(interface{ With(args ...any) Logger }); ok {
		return w.With(args...)
	}
	return l
}

// NoOpLogger drops everything. It is the default for every constructor.
type NoOpLogger struct{}

func (NoOpLogger) Debug(string, ...any) {}
func (NoOpLogger) Info(string, ...any)  {}
func (NoOpLogger) Warn(string, ...any)  {}
func (NoOpLogger) Error(string, ...any) {}
