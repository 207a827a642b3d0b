package log

import (
	"context"
	"log/slog"
)

// SlogAdapter writes observation events to an slog.Logger.
// Useful for development when you want to see engine activity in console.
type SlogAdapter struct {
	logger *slog.Logger
}

// NewSlogAdapter creates a new SlogAdapter that writes to the given slog.Logger.
func NewSlogAdapter(logger *slog.Logger) *SlogAdapter {
	return &SlogAdapter{logger: logger}
}

// Log writes the event to the slog logger at Debug level.
func (a *SlogAdapter) Log(event Event) {
	attrs := []slog.Attr{
		slog.String("watcher_id", event.WatcherID),
		slog.String("kind", event.Kind.String()),
	}

	switch {
	case event.Watch != nil:
		attrs = append(attrs, slog.Uint64("handle", event.Watch.Handle))
		if event.Watch.Viewport {
			attrs = append(attrs, slog.Bool("viewport", true))
		} else {
			attrs = append(attrs,
				slog.String("target", event.Watch.Target),
				slog.Int("width", event.Watch.Width),
				slog.Int("height", event.Watch.Height),
			)
		}
	case event.Tick != nil:
		attrs = append(attrs, slog.Int("live", event.Tick.Live))
	case event.Notify != nil:
		attrs = append(attrs,
			slog.Uint64("handle", event.Notify.Handle),
			slog.Int("width", event.Notify.Width),
			slog.Int("height", event.Notify.Height),
		)
		if event.Notify.Viewport {
			attrs = append(attrs, slog.Bool("viewport", true))
		}
	}

	a.logger.LogAttrs(context.Background(), slog.LevelDebug, "resize", attrs...)
}

// Compile-time interface satisfaction check.
var _ Logger = (*SlogAdapter)(nil)
