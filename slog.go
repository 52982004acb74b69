package logging

import (
	"context"
	"log/slog"
	"os"
)

// SlogObserver forwards emitted messages to a slog.Logger, bridging the
// facade to Go's structured logging. Registration events are ignored.
type SlogObserver struct {
	NoopObserver
	logger *slog.Logger
}

// NewSlogObserver creates an observer writing to the given logger. If
// logger is nil, a text handler on stderr is used.
func NewSlogObserver(logger *slog.Logger) *SlogObserver {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(os.Stderr, nil))
	}
	return &SlogObserver{logger: logger}
}

// NewTextSlogObserver creates an observer emitting human-readable text to
// stderr. level sets the minimum slog level to pass through.
func NewTextSlogObserver(level slog.Level) *SlogObserver {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	return &SlogObserver{logger: slog.New(handler)}
}

// NewJSONSlogObserver creates an observer emitting JSON to stderr.
func NewJSONSlogObserver(level slog.Level) *SlogObserver {
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	return &SlogObserver{logger: slog.New(handler)}
}

// MessageWritten implements Observer.
func (o *SlogObserver) MessageWritten(w *Writer, l *Level, text string) {
	attrs := []slog.Attr{
		slog.String("writer", w.Name()),
		slog.String("severity", l.Name()),
	}
	if w.Tags().Len() > 0 {
		attrs = append(attrs, slog.Any("tags", w.Tags().Names()))
	}
	o.logger.LogAttrs(context.Background(), slogLevel(l), text, attrs...)
}

// slogLevel maps a facade level onto the four slog levels. Severities more
// severe than Warning collapse to Error, aspect levels report as Info.
func slogLevel(l *Level) slog.Level {
	id := l.ID()
	switch {
	case id >= 0 && id <= LevelError.ID():
		return slog.LevelError
	case id == LevelWarning.ID():
		return slog.LevelWarn
	case id == LevelNotice.ID() || id == LevelInformational.ID():
		return slog.LevelInfo
	case id == LevelDebug.ID() || id == LevelTrace.ID():
		return slog.LevelDebug
	default:
		return slog.LevelInfo
	}
}
