// Package log wires component-tagged slog logging through the service:
// a logger carrying the subsystem name, request-scoped loggers threaded
// through context, and structured helpers for the HTTP and cell-edit
// log lines.
package log

import (
	"log/slog"
	"os"
)

// Logger is a slog.Logger tagged with the subsystem it logs for. The
// tag is attached once, at construction, so every record names its
// component without repeating the attribute per call.
type Logger struct {
	*slog.Logger
	handler   slog.Handler
	component string
}

// Config holds logger configuration.
type Config struct {
	Level     slog.Level
	Component string
	Handler   slog.Handler
}

// DefaultConfig returns text logging at Info level for the app component.
func DefaultConfig() Config {
	return Config{
		Level:     slog.LevelInfo,
		Component: ComponentApp,
	}
}

// New builds a logger from config. A nil Handler gets a text handler on
// stdout at the configured level.
func New(config Config) *Logger {
	handler := config.Handler
	if handler == nil {
		handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: config.Level})
	}
	return &Logger{
		Logger:    slog.New(handler).With(FieldComponent, config.Component),
		handler:   handler,
		component: config.Component,
	}
}

// With returns a logger with extra attributes, keeping the component tag.
func (l *Logger) With(args ...any) *Logger {
	return &Logger{
		Logger:    l.Logger.With(args...),
		handler:   l.handler,
		component: l.component,
	}
}

// WithComponent returns a logger tagged for another subsystem. It
// rebuilds from the handler so the old component attribute is replaced,
// not shadowed.
func (l *Logger) WithComponent(component string) *Logger {
	if l.handler == nil {
		return &Logger{
			Logger:    l.Logger.With(FieldComponent, component),
			component: component,
		}
	}
	return &Logger{
		Logger:    slog.New(l.handler).With(FieldComponent, component),
		handler:   l.handler,
		component: component,
	}
}

// Component returns the logger's component name.
func (l *Logger) Component() string { return l.component }

// SetDefault installs the logger as the process-wide slog default.
func SetDefault(logger *Logger) {
	slog.SetDefault(logger.Logger)
}
