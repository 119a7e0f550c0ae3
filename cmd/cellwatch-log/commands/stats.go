package commands

import (
	"fmt"
	"io"
	"slices"
	"time"

	"github.com/cellwatch/cellwatch-go/pkg/log"
)

// Stats holds aggregate statistics about a log file.
type Stats struct {
	TotalEvents      int
	EventsBySource   map[log.Source]int
	EventsByCategory map[log.Category]int
	Sessions         map[string]*SessionStats
	Errors           int
	TimeRange        struct {
		Start time.Time
		End   time.Time
	}
}

// SessionStats holds statistics for one observing session.
type SessionStats struct {
	FirstSeen time.Time
	LastSeen  time.Time
	Events    int

	// Rebinds counts secondary watcher rebindings.
	Rebinds int

	// Ignored counts capabilities updates dropped as non-cellular.
	Ignored int

	// Subscriptions lists the bound subscriptions in first-seen order.
	Subscriptions []int32

	// LastStatus is the last published status of the session.
	LastStatus *log.StatusEvent
}

// RunStats analyzes the log file and prints statistics.
func RunStats(path string, w io.Writer) error {
	reader, err := log.NewReader(path)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer reader.Close()

	stats := &Stats{
		EventsBySource:   make(map[log.Source]int),
		EventsByCategory: make(map[log.Category]int),
		Sessions:         make(map[string]*SessionStats),
	}

	for {
		event, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to read event: %w", err)
		}
		stats.add(event)
	}

	printStats(w, stats)
	return nil
}

func (s *Stats) add(event log.Event) {
	s.TotalEvents++
	s.EventsBySource[event.Source]++
	s.EventsByCategory[event.Category]++

	if s.TimeRange.Start.IsZero() || event.Timestamp.Before(s.TimeRange.Start) {
		s.TimeRange.Start = event.Timestamp
	}
	if event.Timestamp.After(s.TimeRange.End) {
		s.TimeRange.End = event.Timestamp
	}

	if event.Error != nil {
		s.Errors++
	}

	// Events before the first session only count globally.
	if event.SessionID == "" {
		return
	}

	sess, ok := s.Sessions[event.SessionID]
	if !ok {
		sess = &SessionStats{
			FirstSeen: event.Timestamp,
			LastSeen:  event.Timestamp,
		}
		s.Sessions[event.SessionID] = sess
	}
	sess.Events++
	if event.Timestamp.After(sess.LastSeen) {
		sess.LastSeen = event.Timestamp
	}

	switch {
	case event.Binding != nil:
		sess.Rebinds++
		if id := event.Binding.NewSubscriptionID; id >= 0 && !slices.Contains(sess.Subscriptions, id) {
			sess.Subscriptions = append(sess.Subscriptions, id)
		}
	case event.Capabilities != nil:
		if event.Capabilities.Ignored {
			sess.Ignored++
		}
	case event.Status != nil:
		sess.LastStatus = event.Status
	}
}

func printStats(w io.Writer, stats *Stats) {
	fmt.Fprintln(w, "=== Cellwatch Observer Log Statistics ===")
	fmt.Fprintln(w)

	// Time range
	if stats.TotalEvents > 0 {
		fmt.Fprintf(w, "Time Range: %s to %s\n",
			stats.TimeRange.Start.Format(time.RFC3339),
			stats.TimeRange.End.Format(time.RFC3339))
		fmt.Fprintf(w, "Duration:   %s\n", stats.TimeRange.End.Sub(stats.TimeRange.Start).Round(time.Second))
		fmt.Fprintln(w)
	}

	fmt.Fprintf(w, "Total Events: %d\n", stats.TotalEvents)
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Events by Source:")
	for _, src := range []log.Source{log.SourceHost, log.SourcePrimary, log.SourceSecondary, log.SourceCapabilities} {
		if count := stats.EventsBySource[src]; count > 0 {
			fmt.Fprintf(w, "  %-14s %d\n", src.String()+":", count)
		}
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Events by Category:")
	for _, cat := range []log.Category{
		log.CategoryLifecycle, log.CategoryBinding, log.CategoryOverride,
		log.CategoryCapabilities, log.CategoryStatus, log.CategoryError,
	} {
		if count := stats.EventsByCategory[cat]; count > 0 {
			fmt.Fprintf(w, "  %-14s %d\n", cat.String()+":", count)
		}
	}
	fmt.Fprintln(w)

	fmt.Fprintf(w, "Sessions: %d\n", len(stats.Sessions))
	if len(stats.Sessions) > 0 {
		ids := make([]string, 0, len(stats.Sessions))
		for id := range stats.Sessions {
			ids = append(ids, id)
		}
		// Sort by first seen time
		slices.SortFunc(ids, func(a, b string) int {
			return stats.Sessions[a].FirstSeen.Compare(stats.Sessions[b].FirstSeen)
		})

		fmt.Fprintln(w)
		for _, id := range ids {
			ss := stats.Sessions[id]
			duration := ss.LastSeen.Sub(ss.FirstSeen).Round(time.Millisecond)
			fmt.Fprintf(w, "  [%s] %d events, duration %s\n", shortenSessionID(id), ss.Events, duration)
			if ss.Rebinds > 0 {
				fmt.Fprintf(w, "           Rebinds: %d (subscriptions %v)\n", ss.Rebinds, ss.Subscriptions)
			}
			if ss.Ignored > 0 {
				fmt.Fprintf(w, "           Ignored updates: %d\n", ss.Ignored)
			}
			if ss.LastStatus != nil {
				fmt.Fprintf(w, "           Last status: #%d %s down=%d up=%d\n",
					ss.LastStatus.Sequence, ss.LastStatus.OverrideType,
					ss.LastStatus.DownstreamKbps, ss.LastStatus.UpstreamKbps)
			}
		}
	}

	if stats.Errors > 0 {
		fmt.Fprintln(w)
		fmt.Fprintf(w, "Errors: %d\n", stats.Errors)
	}
}
