package observe

import (
	"context"
	"log/slog"

	"github.com/tomasbasham/formflat"
)

// Logger writes every event as a debug record to an [slog.Logger].
type Logger struct {
	log *slog.Logger
}

// NewLogger returns a Logger writing to l, or to [slog.Default] if l is nil.
func NewLogger(l *slog.Logger) *Logger {
	if l == nil {
		l = slog.Default()
	}
	return &Logger{log: l}
}

// Observe implements [formflat.Observer].
func (l *Logger) Observe(e formflat.Event) {
	attrs := []slog.Attr{
		slog.String("stage", string(e.Stage)),
		slog.Int("count", e.Count),
	}
	switch e.Stage {
	case formflat.StageClean:
		attrs = append(attrs, slog.Int("removed", e.Removed))
	case formflat.StageAppend:
		attrs = append(attrs, slog.String("key", e.Key))
	}
	l.log.LogAttrs(context.Background(), slog.LevelDebug, "formflat", attrs...)
}
