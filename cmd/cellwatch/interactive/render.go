package interactive

import (
	"fmt"
	"io"

	"github.com/cellwatch/cellwatch-go/pkg/observer"
)

// RenderStatus writes the status screen.
func RenderStatus(w io.Writer, s observer.Status) {
	fmt.Fprintln(w, "  Override network type:   ", s.OverrideType.Label())
	fmt.Fprintln(w, "  Temporarily not metered: ", s.Capabilities.TemporarilyNotMetered)
	fmt.Fprintln(w, "  Not metered:             ", s.Capabilities.NotMetered)
	fmt.Fprintln(w, "  Bandwidth down (kbps):   ", s.Capabilities.DownstreamKbps)
	fmt.Fprintln(w, "  Bandwidth up (kbps):     ", s.Capabilities.UpstreamKbps)
	if !s.HasPermission {
		fmt.Fprintf(w, "  ** %s permission required **\n", observer.PermissionReadPhoneState)
	}
}

// StatusLine formats a status on one line.
func StatusLine(s observer.Status) string {
	line := fmt.Sprintf("sub=%s override=%s tnm=%t nm=%t down=%d up=%d",
		s.DataSubscription,
		s.OverrideType.Label(),
		s.Capabilities.TemporarilyNotMetered,
		s.Capabilities.NotMetered,
		s.Capabilities.DownstreamKbps,
		s.Capabilities.UpstreamKbps,
	)
	if !s.HasPermission {
		line += " (no permission)"
	}
	return line
}
