package commands

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/cellwatch/cellwatch-go/pkg/log"
)

// RunExport exports the log file to the specified format.
func RunExport(path, format, output string) error {
	reader, err := log.NewReader(path)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer reader.Close()

	// Determine output writer
	var w io.Writer = os.Stdout
	if output != "" {
		f, err := os.Create(output)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		w = f
	}

	switch format {
	case "jsonl":
		return exportJSONL(reader, w)
	case "csv":
		return exportCSV(reader, w)
	default:
		return fmt.Errorf("unknown format: %s (supported: jsonl, csv)", format)
	}
}

func exportJSONL(reader *log.Reader, w io.Writer) error {
	encoder := json.NewEncoder(w)
	for {
		event, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to read event: %w", err)
		}
		if err := encoder.Encode(event); err != nil {
			return fmt.Errorf("failed to encode event: %w", err)
		}
	}
	return nil
}

var csvHeader = []string{"timestamp", "session_id", "source", "category", "subscription_id", "detail"}

func exportCSV(reader *log.Reader, w io.Writer) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for {
		event, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to read event: %w", err)
		}

		row := []string{
			event.Timestamp.UTC().Format(timestampLayout),
			event.SessionID,
			event.Source.String(),
			event.Category.String(),
			strconv.Itoa(int(event.SubscriptionID)),
			eventDetail(event),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write row: %w", err)
		}
	}
	return cw.Error()
}

// eventDetail summarizes the payload in one cell.
func eventDetail(event log.Event) string {
	switch {
	case event.Lifecycle != nil:
		return event.Lifecycle.Action.String()
	case event.Binding != nil:
		return fmt.Sprintf("%d->%d", event.Binding.OldSubscriptionID, event.Binding.NewSubscriptionID)
	case event.Override != nil:
		return event.Override.Mapped
	case event.Capabilities != nil:
		if event.Capabilities.Ignored {
			return "ignored"
		}
		return fmt.Sprintf("%d/%d", event.Capabilities.DownstreamKbps, event.Capabilities.UpstreamKbps)
	case event.Status != nil:
		return fmt.Sprintf("#%d %s", event.Status.Sequence, event.Status.OverrideType)
	case event.Error != nil:
		return event.Error.Message
	default:
		return ""
	}
}
