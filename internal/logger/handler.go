package logger

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"sync"
)

// ANSI цвета уровней
const (
	colorReset = "\033[0m"
	colorDebug = "\033[35m"
	colorInfo  = "\033[32m"
	colorWarn  = "\033[33m"
	colorError = "\033[31m"
	colorDim   = "\033[90m"
)

// ConsoleHandler печатает запись одной строкой: время и уровень в цвете,
// сообщение, затем атрибуты в формате slog.TextHandler.
// Группы и WithAttrs обрабатывает вложенный TextHandler.
type ConsoleHandler struct {
	attrs slog.Handler
	state *consoleState
}

// consoleState общий для всех производных handler'ов
type consoleState struct {
	out io.Writer
	buf bytes.Buffer
	mu  sync.Mutex
}

// NewConsoleHandler создает handler для интерактивного терминала
func NewConsoleHandler(w io.Writer, opts *slog.HandlerOptions) *ConsoleHandler {
	state := &consoleState{out: w}

	textOpts := &slog.HandlerOptions{ReplaceAttr: dropBuiltins}
	if opts != nil {
		textOpts.Level = opts.Level
		textOpts.AddSource = opts.AddSource
	}

	return &ConsoleHandler{
		attrs: slog.NewTextHandler(&state.buf, textOpts),
		state: state,
	}
}

// dropBuiltins убирает time, level и msg: их печатает сам ConsoleHandler
func dropBuiltins(groups []string, a slog.Attr) slog.Attr {
	if len(groups) == 0 {
		switch a.Key {
		case slog.TimeKey, slog.LevelKey, slog.MessageKey:
			return slog.Attr{}
		}
	}
	return a
}

func (h *ConsoleHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.attrs.Enabled(ctx, level)
}

func (h *ConsoleHandler) Handle(ctx context.Context, r slog.Record) error {
	s := h.state
	s.mu.Lock()
	defer s.mu.Unlock()

	s.buf.Reset()
	if err := h.attrs.Handle(ctx, r); err != nil {
		return err
	}
	rest := bytes.TrimRight(s.buf.Bytes(), "\n")

	var line bytes.Buffer
	line.WriteString(colorDim + r.Time.Format("15:04:05.000") + colorReset + " ")
	line.WriteString(levelColor(r.Level) + padLevel(r.Level.String()) + colorReset + " ")
	line.WriteString(r.Message)
	if len(rest) > 0 {
		line.WriteByte(' ')
		line.Write(rest)
	}
	line.WriteByte('\n')

	_, err := s.out.Write(line.Bytes())
	return err
}

func (h *ConsoleHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &ConsoleHandler{attrs: h.attrs.WithAttrs(attrs), state: h.state}
}

func (h *ConsoleHandler) WithGroup(name string) slog.Handler {
	return &ConsoleHandler{attrs: h.attrs.WithGroup(name), state: h.state}
}

func levelColor(l slog.Level) string {
	switch {
	case l >= slog.LevelError:
		return colorError
	case l >= slog.LevelWarn:
		return colorWarn
	case l >= slog.LevelInfo:
		return colorInfo
	default:
		return colorDebug
	}
}

func padLevel(s string) string {
	for len(s) < 5 {
		s += " "
	}
	return s
}
