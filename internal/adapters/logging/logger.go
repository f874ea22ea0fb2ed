package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
)

type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

func ParseLevel(s string) Level {
	switch strings.ToLower(s) {
	case "debug":
		return LevelDebug
	case "info":
		return LevelInfo
	case "warn", "warning":
		return LevelWarn
	case "error":
		return LevelError
	default:
		return LevelInfo
	}
}

func toSlogLevel(level Level) slog.Level {
	switch level {
	case LevelDebug:
		return slog.LevelDebug
	case LevelInfo:
		return slog.LevelInfo
	case LevelWarn:
		return slog.LevelWarn
	case LevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// lineHandler writes "[LEVEL] message" lines to a single writer. Chat
// output and log output share the terminal, so the format stays flat.
type lineHandler struct {
	level *slog.LevelVar
	mu    sync.Mutex
	out   io.Writer
}

func newLineHandler(level Level) *lineHandler {
	levelVar := &slog.LevelVar{}
	levelVar.Set(toSlogLevel(level))
	return &lineHandler{
		level: levelVar,
		out:   os.Stderr,
	}
}

func (h *lineHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

func (h *lineHandler) Handle(_ context.Context, r slog.Record) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := fmt.Fprintf(h.out, "[%s] %s\n", strings.ToUpper(r.Level.String()), r.Message)
	return err
}

func (h *lineHandler) WithAttrs(_ []slog.Attr) slog.Handler {
	return h
}

func (h *lineHandler) WithGroup(_ string) slog.Handler {
	return h
}

type Logger struct {
	slogger *slog.Logger
	handler *lineHandler
}

func New(level Level) *Logger {
	handler := newLineHandler(level)
	return &Logger{
		slogger: slog.New(handler),
		handler: handler,
	}
}

func NewFromString(levelStr string) *Logger {
	return New(ParseLevel(levelStr))
}

func (l *Logger) SetLevel(level Level) {
	l.handler.level.Set(toSlogLevel(level))
}

// SetOutput redirects log lines, mainly for tests.
func (l *Logger) SetOutput(w io.Writer) {
	l.handler.mu.Lock()
	l.handler.out = w
	l.handler.mu.Unlock()
}

func (l *Logger) Debugf(ctx context.Context, format string, args ...any) {
	l.slogger.DebugContext(ctx, fmt.Sprintf(format, args...))
}

func (l *Logger) Infof(ctx context.Context, format string, args ...any) {
	l.slogger.InfoContext(ctx, fmt.Sprintf(format, args...))
}

func (l *Logger) Warnf(ctx context.Context, format string, args ...any) {
	l.slogger.WarnContext(ctx, fmt.Sprintf(format, args...))
}

func (l *Logger) Errorf(ctx context.Context, format string, args ...any) {
	l.slogger.ErrorContext(ctx, fmt.Sprintf(format, args...))
}
