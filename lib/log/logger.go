package log

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
)

// Handler prints colourised, human-readable log lines. kwartel runs in a
// terminal next to an OpenGL window, so there is no JSON mode.
type Handler struct {
	level  slog.Level
	module string
	attrs  []slog.Attr
}

const (
	reset = "\033[0m"

	cyan        = 36
	lightGray   = 37
	darkGray    = 90
	lightRed    = 91
	lightYellow = 93
)

func colorize(colorCode int, v string) string {
	return fmt.Sprintf("\033[%sm%s%s", strconv.Itoa(colorCode), v, reset)
}

func (h *Handler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level
}

func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	n := &Handler{level: h.level, module: h.module}
	n.attrs = append(n.attrs, h.attrs...)
	for _, a := range attrs {
		if a.Key == "module" {
			n.module = a.Value.String()
			continue
		}
		n.attrs = append(n.attrs, a)
	}
	return n
}

func (h *Handler) WithGroup(name string) slog.Handler {
	// groups are not used anywhere in kwartel
	return h
}

func (h *Handler) Handle(_ context.Context, r slog.Record) error {
	level := r.Level.String() + " "

	switch r.Level {
	case slog.LevelDebug:
		level = colorize(darkGray, level)
	case slog.LevelInfo:
		level = colorize(cyan, level)
	case slog.LevelWarn:
		level = colorize(lightYellow, level)
	case slog.LevelError:
		level = colorize(lightRed, level)
	}

	module := h.module
	var rest string
	r.Attrs(func(a slog.Attr) bool {
		if a.Key == "module" {
			module = a.Value.String()
			return true
		}
		rest += fmt.Sprintf(" %s=%s", a.Key, a.Value)
		return true
	})
	for _, a := range h.attrs {
		rest += fmt.Sprintf(" %s=%s", a.Key, a.Value)
	}

	fmt.Print(colorize(lightGray, r.Time.Format("15:04:05.000 ")))
	fmt.Print(level)
	if module != "" {
		fmt.Print(colorize(lightGray, fmt.Sprintf("[%s] ", module)))
	}
	fmt.Println(r.Message + rest)
	return nil
}

// Setup installs the coloured handler as the default slog logger.
func Setup(debug bool) {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(&Handler{level: level}))
}

// For returns a logger tagged with a module name, e.g. "window" or "shaders".
func For(module string) *slog.Logger {
	return slog.Default().With("module", module)
}
