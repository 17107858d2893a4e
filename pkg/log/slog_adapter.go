package log

import (
	"context"
	"log/slog"
)

// SlogAdapter writes trace events to an slog.Logger.
// Useful for development when you want to see conversions in the console.
type SlogAdapter struct {
	logger *slog.Logger
}

// NewSlogAdapter creates a new SlogAdapter that writes to the given slog.Logger.
func NewSlogAdapter(logger *slog.Logger) *SlogAdapter {
	return &SlogAdapter{logger: logger}
}

// Log writes the event to the slog logger. Successful operations are logged
// at Debug level, failures at Warn.
func (a *SlogAdapter) Log(event Event) {
	attrs := []slog.Attr{
		slog.String("session_id", event.SessionID),
		slog.String("op", event.Op.String()),
		slog.String("domain", event.Domain.String()),
	}

	if event.Channel != "" {
		attrs = append(attrs, slog.String("channel", event.Channel))
	}
	if event.Input != nil {
		attrs = append(attrs, quantityAttr("input", event.Input))
	}
	if event.Operand != nil {
		attrs = append(attrs, quantityAttr("operand", event.Operand))
	}
	if event.Target != "" {
		attrs = append(attrs, slog.String("target", event.Target))
	}
	if event.Output != nil {
		attrs = append(attrs, quantityAttr("output", event.Output))
	}

	level := slog.LevelDebug
	if event.Error != nil {
		level = slog.LevelWarn
		attrs = append(attrs,
			slog.String("error_kind", event.Error.Kind.String()),
			slog.String("error_msg", event.Error.Message),
		)
	}

	a.logger.LogAttrs(context.Background(), level, "conversion", attrs...)
}

func quantityAttr(key string, q *Quantity) slog.Attr {
	return slog.Group(key,
		slog.Float64("value", q.Value),
		slog.String("unit", q.Unit),
	)
}

// Compile-time interface satisfaction check.
var _ Logger = (*SlogAdapter)(nil)
