// Package commands implements the cellwatch-log CLI commands.
package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/cellwatch/cellwatch-go/pkg/log"
)

const timestampLayout = "2006-01-02T15:04:05.000000Z"

// ViewFilter specifies criteria for filtering events in the view command.
type ViewFilter struct {
	Source   *log.Source
	Category *log.Category
}

// matches reports whether the event passes the filter.
func (f ViewFilter) matches(e log.Event) bool {
	if f.Source != nil && e.Source != *f.Source {
		return false
	}
	if f.Category != nil && e.Category != *f.Category {
		return false
	}
	return true
}

// formatEvent writes a human-readable representation of the event to w.
func formatEvent(w io.Writer, event log.Event) {
	// Header line: timestamp [session:id] SOURCE CATEGORY sub=N
	ts := event.Timestamp.UTC().Format(timestampLayout)
	fmt.Fprintf(w, "%s [session:%s] %-12s %s sub=%d\n",
		ts, shortenSessionID(event.SessionID), event.Source.String(),
		event.Category.String(), event.SubscriptionID)

	switch {
	case event.Lifecycle != nil:
		formatLifecycleDetails(w, event.Lifecycle)
	case event.Binding != nil:
		formatBindingDetails(w, event.Binding)
	case event.Override != nil:
		fmt.Fprintf(w, "  Override: %s (raw %d)\n", event.Override.Mapped, event.Override.Raw)
	case event.Capabilities != nil:
		formatCapabilitiesDetails(w, event.Capabilities)
	case event.Status != nil:
		formatStatusDetails(w, event.Status)
	case event.Error != nil:
		formatErrorDetails(w, event.Error)
	}

	fmt.Fprintln(w) // Blank line between events
}

// shortenSessionID returns the first 8 characters of the session ID.
func shortenSessionID(id string) string {
	if id == "" {
		return "-"
	}
	if len(id) >= 8 {
		return id[:8]
	}
	return id
}

func formatLifecycleDetails(w io.Writer, lc *log.LifecycleEvent) {
	fmt.Fprintf(w, "  Action: %s\n", lc.Action.String())
	fmt.Fprintf(w, "  Permission: %s\n", grantedLabel(lc.PermissionGranted))
	if lc.Reason != "" {
		fmt.Fprintf(w, "  Reason: %s\n", lc.Reason)
	}
}

func formatBindingDetails(w io.Writer, b *log.BindingEvent) {
	if b.OldState != "" {
		fmt.Fprintf(w, "  %s -> %s\n", b.OldState, b.NewState)
	} else {
		fmt.Fprintf(w, "  -> %s\n", b.NewState)
	}
	fmt.Fprintf(w, "  Subscription: %d -> %d\n", b.OldSubscriptionID, b.NewSubscriptionID)
}

func formatCapabilitiesDetails(w io.Writer, c *log.CapabilitiesEvent) {
	if c.Network != "" {
		fmt.Fprintf(w, "  Network: %s\n", c.Network)
	}
	if len(c.Transports) > 0 {
		fmt.Fprintf(w, "  Transports: %s\n", strings.Join(c.Transports, ","))
	}
	if c.Ignored {
		fmt.Fprintln(w, "  Ignored: not cellular")
		return
	}
	fmt.Fprintf(w, "  tnm=%t nm=%t down=%dkbps up=%dkbps\n",
		c.TemporarilyNotMetered, c.NotMetered, c.DownstreamKbps, c.UpstreamKbps)
}

func formatStatusDetails(w io.Writer, s *log.StatusEvent) {
	fmt.Fprintf(w, "  Seq: %d\n", s.Sequence)
	fmt.Fprintf(w, "  Override: %s\n", s.OverrideType)
	fmt.Fprintf(w, "  Permission: %s  Observing: %t\n", grantedLabel(s.HasPermission), s.Observing)
	fmt.Fprintf(w, "  tnm=%t nm=%t down=%dkbps up=%dkbps\n",
		s.TemporarilyNotMetered, s.NotMetered, s.DownstreamKbps, s.UpstreamKbps)
}

func formatErrorDetails(w io.Writer, err *log.ErrorEventData) {
	fmt.Fprintf(w, "  Source: %s\n", err.Source.String())
	fmt.Fprintf(w, "  Message: %s\n", err.Message)
	if err.Context != "" {
		fmt.Fprintf(w, "  Context: %s\n", err.Context)
	}
}

func grantedLabel(granted bool) string {
	if granted {
		return "granted"
	}
	return "denied"
}

// ParseSourceFlag parses a source string from command-line flag (case-insensitive).
func ParseSourceFlag(s string) (log.Source, error) {
	return parseSource(s)
}

// parseSource parses a source string (case-insensitive).
func parseSource(s string) (log.Source, error) {
	switch strings.ToLower(s) {
	case "host":
		return log.SourceHost, nil
	case "primary":
		return log.SourcePrimary, nil
	case "secondary":
		return log.SourceSecondary, nil
	case "capabilities", "caps":
		return log.SourceCapabilities, nil
	default:
		return 0, fmt.Errorf("invalid source: %s (must be host, primary, secondary or capabilities)", s)
	}
}

// ParseCategoryFlag parses a category string from command-line flag (case-insensitive).
func ParseCategoryFlag(s string) (log.Category, error) {
	return parseCategory(s)
}

// parseCategory parses a category string (case-insensitive).
func parseCategory(s string) (log.Category, error) {
	switch strings.ToLower(s) {
	case "lifecycle":
		return log.CategoryLifecycle, nil
	case "binding":
		return log.CategoryBinding, nil
	case "override":
		return log.CategoryOverride, nil
	case "capabilities", "caps":
		return log.CategoryCapabilities, nil
	case "status":
		return log.CategoryStatus, nil
	case "error":
		return log.CategoryError, nil
	default:
		return 0, fmt.Errorf("invalid category: %s (must be lifecycle, binding, override, capabilities, status or error)", s)
	}
}

// RunView executes the view command.
func RunView(path string, filter ViewFilter, output io.Writer) error {
	reader, err := log.NewReader(path)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer reader.Close()

	for {
		event, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to read event: %w", err)
		}
		if !filter.matches(event) {
			continue
		}
		formatEvent(output, event)
	}

	return nil
}
