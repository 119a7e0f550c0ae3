package log

import (
	"context"
	"log/slog"
)

// SlogAdapter writes observer events to an slog.Logger.
// Useful for development when you want to see observer events in console.
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
		slog.String("session_id", event.SessionID),
		slog.String("source", event.Source.String()),
		slog.String("category", event.Category.String()),
		slog.Int("sub_id", int(event.SubscriptionID)),
	}

	switch {
	case event.Lifecycle != nil:
		attrs = append(attrs,
			slog.String("action", event.Lifecycle.Action.String()),
			slog.Bool("permission", event.Lifecycle.PermissionGranted),
		)
		if event.Lifecycle.Reason != "" {
			attrs = append(attrs, slog.String("reason", event.Lifecycle.Reason))
		}
	case event.Binding != nil:
		attrs = append(attrs,
			slog.Int("old_sub_id", int(event.Binding.OldSubscriptionID)),
			slog.Int("new_sub_id", int(event.Binding.NewSubscriptionID)),
			slog.String("old_state", event.Binding.OldState),
			slog.String("new_state", event.Binding.NewState),
		)
	case event.Override != nil:
		attrs = append(attrs,
			slog.Int("raw", event.Override.Raw),
			slog.String("override", event.Override.Mapped),
		)
	case event.Capabilities != nil:
		attrs = append(attrs,
			slog.String("network", event.Capabilities.Network),
			slog.Any("transports", event.Capabilities.Transports),
			slog.Bool("ignored", event.Capabilities.Ignored),
		)
		if !event.Capabilities.Ignored {
			attrs = append(attrs,
				slog.Bool("temporarily_not_metered", event.Capabilities.TemporarilyNotMetered),
				slog.Bool("not_metered", event.Capabilities.NotMetered),
				slog.Int("down_kbps", event.Capabilities.DownstreamKbps),
				slog.Int("up_kbps", event.Capabilities.UpstreamKbps),
			)
		}
	case event.Status != nil:
		attrs = append(attrs,
			slog.Uint64("seq", event.Status.Sequence),
			slog.String("override", event.Status.OverrideType),
			slog.Bool("permission", event.Status.HasPermission),
			slog.Bool("observing", event.Status.Observing),
		)
	case event.Error != nil:
		attrs = append(attrs,
			slog.String("error_source", event.Error.Source.String()),
			slog.String("error_msg", event.Error.Message),
			slog.String("error_context", event.Error.Context),
		)
	}

	a.logger.LogAttrs(context.Background(), slog.LevelDebug, "observer", attrs...)
}

// Compile-time interface satisfaction check.
var _ Logger = (*SlogAdapter)(nil)
