package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/engunit/engunit-go/pkg/log"
	"github.com/engunit/engunit-go/pkg/measure"
	"github.com/engunit/engunit-go/pkg/unit"
)

// formatEvent writes a human-readable representation of the event to w.
func formatEvent(w io.Writer, event log.Event) {
	// Header line: timestamp [session:id] OP Domain [channel]
	ts := event.Timestamp.UTC().Format("2006-01-02T15:04:05.000000Z")
	fmt.Fprintf(w, "%s [session:%s] %-7s %s", ts, shortenSessionID(event.SessionID), event.Op, event.Domain)
	if event.Channel != "" {
		fmt.Fprintf(w, " %s", event.Channel)
	}
	fmt.Fprintln(w)

	if event.Input != nil {
		fmt.Fprintf(w, "  Input:   %s\n", formatQuantity(event.Input))
	}
	if event.Operand != nil {
		fmt.Fprintf(w, "  Operand: %s\n", formatQuantity(event.Operand))
	}
	if event.Target != "" {
		fmt.Fprintf(w, "  Target:  %s\n", event.Target)
	}
	if event.Output != nil {
		fmt.Fprintf(w, "  Output:  %s\n", formatQuantity(event.Output))
	}
	if event.Error != nil {
		fmt.Fprintf(w, "  Error:   %s: %s\n", event.Error.Kind, event.Error.Message)
	}

	fmt.Fprintln(w) // Blank line between events
}

// formatQuantity prefers the rendered display form.
func formatQuantity(q *log.Quantity) string {
	if q.Display != "" {
		return fmt.Sprintf("%s (%s)", q.Display, q.Unit)
	}
	return measure.FormatValue(q.Value) + " " + q.Unit
}

// shortenSessionID returns the first 8 characters of the session ID.
func shortenSessionID(id string) string {
	if len(id) >= 8 {
		return id[:8]
	}
	return id
}

// ParseOpFlag parses an operation string from command-line flag (case-insensitive).
func ParseOpFlag(s string) (log.Op, error) {
	switch strings.ToLower(s) {
	case "convert":
		return log.OpConvert, nil
	case "add":
		return log.OpAdd, nil
	case "sub":
		return log.OpSub, nil
	case "read":
		return log.OpRead, nil
	default:
		return 0, fmt.Errorf("invalid op: %s (must be convert, add, sub, or read)", s)
	}
}

// ParseDomainFlag parses a domain string from command-line flag (case-insensitive).
func ParseDomainFlag(s string) (unit.Domain, error) {
	return unit.ParseDomain(s)
}

// RunView executes the view command.
func RunView(path string, filter log.Filter, output io.Writer) error {
	reader, err := log.NewFilteredReader(path, filter)
	if err != nil {
		return fmt.Errorf("failed to open trace file: %w", err)
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
		formatEvent(output, event)
	}

	return nil
}
