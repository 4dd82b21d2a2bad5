package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
)

// LogEnvVar names a file that receives JSON logs at debug level.
const LogEnvVar = "CHIMERA_FORMAT_LOG_FILE"

// setupLogger returns a logger writing short human-readable lines to stderr
// and, when logPath is set, structured JSON records to logPath. If the log
// file cannot be opened the console logger is still returned along with the
// error.
func setupLogger(stderr io.Writer, level *slog.LevelVar, logPath string) (*slog.Logger, io.Closer, error) {
	console := &consoleHandler{w: stderr, level: level}
	if logPath == "" {
		return slog.New(console), nil, nil
	}

	f, err := os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return slog.New(console), nil, err
	}

	file := slog.NewJSONHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug})
	return slog.New(&fanoutHandler{handlers: []slog.Handler{file, console}}), f, nil
}

// fanoutHandler passes each record to every handler that accepts its level.
type fanoutHandler struct {
	handlers []slog.Handler
}

func (h *fanoutHandler) Enabled(ctx context.Context, level slog.Level) bool {
	for _, inner := range h.handlers {
		if inner.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

//nolint:gocritic // slog.Record is passed by value in the interface
func (h *fanoutHandler) Handle(ctx context.Context, record slog.Record) error {
	for _, inner := range h.handlers {
		if !inner.Enabled(ctx, record.Level) {
			continue
		}
		if err := inner.Handle(ctx, record.Clone()); err != nil {
			return err
		}
	}
	return nil
}

func (h *fanoutHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &fanoutHandler{handlers: h.each(func(inner slog.Handler) slog.Handler { return inner.WithAttrs(attrs) })}
}

func (h *fanoutHandler) WithGroup(name string) slog.Handler {
	return &fanoutHandler{handlers: h.each(func(inner slog.Handler) slog.Handler { return inner.WithGroup(name) })}
}

func (h *fanoutHandler) each(fn func(slog.Handler) slog.Handler) []slog.Handler {
	out := make([]slog.Handler, len(h.handlers))
	for i, inner := range h.handlers {
		out[i] = fn(inner)
	}
	return out
}

// consoleHandler prints the message only, plus attributes in debug mode.
// Errors attached under "error" or "err" are always shown.
type consoleHandler struct {
	w     io.Writer
	level *slog.LevelVar
	attrs []slog.Attr
}

func (c *consoleHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= c.level.Level()
}

//nolint:gocritic // slog.Record is passed by value in the interface
func (c *consoleHandler) Handle(_ context.Context, record slog.Record) error {
	prefix := ""
	switch {
	case record.Level >= slog.LevelError:
		prefix = "Error: "
	case record.Level >= slog.LevelWarn:
		prefix = "Warning: "
	}
	line := prefix + record.Message

	for _, a := range c.attrs {
		line += c.formatAttr(a)
	}
	record.Attrs(func(a slog.Attr) bool {
		line += c.formatAttr(a)
		return true
	})

	_, err := fmt.Fprintln(c.w, line)
	return err
}

func (c *consoleHandler) formatAttr(a slog.Attr) string {
	switch {
	case a.Key == "error" || a.Key == "err":
		return fmt.Sprintf(": %v", a.Value)
	case c.level.Level() <= slog.LevelDebug:
		return fmt.Sprintf(" %s=%v", a.Key, a.Value)
	default:
		return ""
	}
}

func (c *consoleHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &consoleHandler{
		w:     c.w,
		level: c.level,
		attrs: append(append([]slog.Attr(nil), c.attrs...), attrs...),
	}
}

// WithGroup is a no-op: console output is flat.
func (c *consoleHandler) WithGroup(_ string) slog.Handler {
	return c
}
