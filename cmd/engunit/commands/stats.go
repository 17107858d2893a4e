package commands

import (
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/engunit/engunit-go/pkg/log"
	"github.com/engunit/engunit-go/pkg/unit"
)

// Stats holds aggregate statistics about a trace file.
type Stats struct {
	TotalEvents    int
	EventsByOp     map[log.Op]int
	EventsByDomain map[unit.Domain]int
	ErrorsByKind   map[log.ErrorKind]int
	Channels       map[string]*ChannelStats
	Sessions       map[string]int
	Errors         int
	TimeRange      struct {
		Start time.Time
		End   time.Time
	}
}

// ChannelStats holds statistics for a single catalog channel.
type ChannelStats struct {
	Reads  int
	Errors int
	Min    float64
	Max    float64
	Unit   string
}

// collectStats reads all events and aggregates them.
func collectStats(reader *log.Reader) (*Stats, error) {
	stats := &Stats{
		EventsByOp:     make(map[log.Op]int),
		EventsByDomain: make(map[unit.Domain]int),
		ErrorsByKind:   make(map[log.ErrorKind]int),
		Channels:       make(map[string]*ChannelStats),
		Sessions:       make(map[string]int),
	}

	for {
		event, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read event: %w", err)
		}

		stats.TotalEvents++
		stats.EventsByOp[event.Op]++
		stats.EventsByDomain[event.Domain]++
		stats.Sessions[event.SessionID]++

		if stats.TimeRange.Start.IsZero() || event.Timestamp.Before(stats.TimeRange.Start) {
			stats.TimeRange.Start = event.Timestamp
		}
		if event.Timestamp.After(stats.TimeRange.End) {
			stats.TimeRange.End = event.Timestamp
		}

		if event.Error != nil {
			stats.Errors++
			stats.ErrorsByKind[event.Error.Kind]++
		}

		if event.Op != log.OpRead || event.Channel == "" {
			continue
		}
		ch, ok := stats.Channels[event.Channel]
		if !ok {
			ch = &ChannelStats{}
			stats.Channels[event.Channel] = ch
		}
		if event.Error != nil {
			ch.Errors++
			continue
		}
		if event.Output == nil {
			continue
		}
		v := event.Output.Value
		if ch.Reads == 0 || v < ch.Min {
			ch.Min = v
		}
		if ch.Reads == 0 || v > ch.Max {
			ch.Max = v
		}
		ch.Reads++
		ch.Unit = event.Output.Unit
	}

	return stats, nil
}

// RunStats analyzes the trace file and prints statistics.
func RunStats(path string, w io.Writer) error {
	reader, err := log.NewReader(path)
	if err != nil {
		return fmt.Errorf("failed to open trace file: %w", err)
	}
	defer reader.Close()

	stats, err := collectStats(reader)
	if err != nil {
		return err
	}

	printStats(w, stats)
	return nil
}

func printStats(w io.Writer, stats *Stats) {
	fmt.Fprintf(w, "Total events: %d\n", stats.TotalEvents)
	fmt.Fprintf(w, "Sessions:     %d\n", len(stats.Sessions))
	fmt.Fprintf(w, "Errors:       %d\n", stats.Errors)
	if !stats.TimeRange.Start.IsZero() {
		fmt.Fprintf(w, "Time range:   %s - %s (%s)\n",
			stats.TimeRange.Start.UTC().Format(time.RFC3339),
			stats.TimeRange.End.UTC().Format(time.RFC3339),
			stats.TimeRange.End.Sub(stats.TimeRange.Start).Round(time.Millisecond))
	}

	fmt.Fprintln(w, "\nBy operation:")
	for _, op := range []log.Op{log.OpConvert, log.OpAdd, log.OpSub, log.OpRead} {
		if n := stats.EventsByOp[op]; n > 0 {
			fmt.Fprintf(w, "  %-8s %d\n", op, n)
		}
	}

	fmt.Fprintln(w, "\nBy domain:")
	for _, d := range unit.Domains {
		if n := stats.EventsByDomain[d]; n > 0 {
			fmt.Fprintf(w, "  %-20s %d\n", d, n)
		}
	}

	if len(stats.ErrorsByKind) > 0 {
		fmt.Fprintln(w, "\nErrors by kind:")
		kinds := make([]log.ErrorKind, 0, len(stats.ErrorsByKind))
		for k := range stats.ErrorsByKind {
			kinds = append(kinds, k)
		}
		sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })
		for _, k := range kinds {
			fmt.Fprintf(w, "  %-24s %d\n", k, stats.ErrorsByKind[k])
		}
	}

	if len(stats.Channels) > 0 {
		fmt.Fprintln(w, "\nChannels:")
		names := make([]string, 0, len(stats.Channels))
		for name := range stats.Channels {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			ch := stats.Channels[name]
			fmt.Fprintf(w, "  %-12s reads=%d errors=%d", name, ch.Reads, ch.Errors)
			if ch.Reads > 0 {
				fmt.Fprintf(w, " min=%g max=%g %s", ch.Min, ch.Max, ch.Unit)
			}
			fmt.Fprintln(w)
		}
	}
}
