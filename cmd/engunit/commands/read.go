package commands

import (
	"encoding/hex"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/engunit/engunit-go/pkg/catalog"
	"github.com/engunit/engunit-go/pkg/measure"
	"github.com/engunit/engunit-go/pkg/wire"
)

// RunChannels lists the channels of the catalog.
func RunChannels(cat *catalog.Catalog, w io.Writer) error {
	if cat == nil {
		return fmt.Errorf("no catalog loaded (use -catalog)")
	}

	if cat.Name != "" {
		fmt.Fprintf(w, "Catalog: %s\n", cat.Name)
	}
	for _, name := range cat.Names() {
		ch, err := cat.Channel(name)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "  %-12s %-14s %s -> %s", ch.Name, ch.Kind, ch.InputUnit(), ch.OutputUnit())
		if ch.Range != nil {
			fmt.Fprintf(w, " [%s, %s] %s",
				measure.FormatValue(ch.Range.Low), measure.FormatValue(ch.Range.High), ch.Label)
		}
		if ch.Description != "" {
			fmt.Fprintf(w, "  %s", ch.Description)
		}
		fmt.Fprintln(w)
	}
	return nil
}

// RunRead converts a raw reading of one channel.
func RunRead(conv *catalog.Converter, name string, raw float64, w io.Writer) error {
	m, err := conv.Read(name, raw)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "%s: %s\n", name, m)
	return nil
}

// ParseAssignments parses NAME=VALUE arguments.
func ParseAssignments(args []string) (map[string]float64, error) {
	raw := make(map[string]float64, len(args))
	for _, arg := range args {
		name, value, ok := strings.Cut(arg, "=")
		if !ok || name == "" {
			return nil, fmt.Errorf("invalid reading %q (want NAME=VALUE)", arg)
		}
		v, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid reading %q: %w", arg, err)
		}
		raw[name] = v
	}
	return raw, nil
}

// RunSnapshot reads several channels and writes them in the given format:
// text, cbor (raw bytes) or hex (hex-encoded CBOR).
func RunSnapshot(conv *catalog.Converter, raw map[string]float64, format string, w io.Writer) error {
	snap, err := conv.Snapshot(raw)
	if err != nil {
		return err
	}

	switch format {
	case "", "text":
		for _, r := range snap.Readings {
			m, err := r.Measure()
			if err != nil {
				return err
			}
			fmt.Fprintf(w, "%s\t%s\n", m.Domain(), m)
		}
		return nil
	case "cbor", "hex":
		data, err := wire.EncodeSnapshot(snap)
		if err != nil {
			return err
		}
		if format == "hex" {
			_, err = fmt.Fprintln(w, hex.EncodeToString(data))
			return err
		}
		_, err = w.Write(data)
		return err
	default:
		return fmt.Errorf("unknown format: %s (supported: text, cbor, hex)", format)
	}
}
