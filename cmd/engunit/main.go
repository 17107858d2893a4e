// Command engunit converts engineering units and sensor readings.
//
// Usage:
//
//	engunit <command> [flags] [args]
//
// Commands:
//
//	convert   Convert a value between units of one domain
//	add       Add two quantities
//	sub       Subtract two quantities
//	units     List domains and units
//	channels  List the channels of a catalog
//	read      Convert a raw channel reading
//	snapshot  Read several channels (text, cbor or hex output)
//	view      View a trace file in human-readable format
//	export    Export a trace file to JSONL or CSV
//	stats     Show statistics about a trace file
//	shell     Start the interactive shell
//
// Examples:
//
//	# Convert 283.15 K to Celsius
//	engunit convert -domain temperature 283.15 K C
//
//	# Scale a 4-20 mA loop onto 0..250 kPa
//	engunit convert -domain analog -range 0:250 -label kPa 12 mA_4_20 MEASURE
//
//	# Read a catalog channel and record a trace
//	engunit read -catalog plant.yaml -trace plant.elog PT-101 12
//
//	# Show failed operations from a trace
//	engunit view -failed plant.elog
//
//	# Interactive shell that follows catalog edits
//	engunit shell -catalog plant.yaml -watch
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/engunit/engunit-go/cmd/engunit/commands"
	"github.com/engunit/engunit-go/cmd/engunit/interactive"
	"github.com/engunit/engunit-go/pkg/catalog"
	"github.com/engunit/engunit-go/pkg/log"
	"github.com/engunit/engunit-go/pkg/unit"
)

const usage = `engunit - Engineering Unit Converter

Usage:
  engunit <command> [flags] [args]

Commands:
  convert   Convert a value between units of one domain
  add       Add two quantities
  sub       Subtract two quantities
  units     List domains and units
  channels  List the channels of a catalog
  read      Convert a raw channel reading
  snapshot  Read several channels (text, cbor or hex output)
  view      View a trace file in human-readable format
  export    Export a trace file to JSONL or CSV
  stats     Show statistics about a trace file
  shell     Start the interactive shell

Use "engunit <command> -help" for more information about a command.
`

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(1)
	}

	cmd := os.Args[1]
	args := os.Args[2:]

	switch cmd {
	case "convert":
		runConvert(args)
	case "add", "sub":
		runArith(cmd, args)
	case "units":
		runUnits(args)
	case "channels":
		runChannels(args)
	case "read":
		runRead(args)
	case "snapshot":
		runSnapshot(args)
	case "view":
		runView(args)
	case "export":
		runExport(args)
	case "stats":
		runStats(args)
	case "shell":
		runShell(args)
	case "-h", "-help", "--help", "help":
		fmt.Print(usage)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", cmd)
		fmt.Fprint(os.Stderr, usage)
		os.Exit(1)
	}
}

// session holds the flags shared by commands that convert.
type session struct {
	catalogPath string
	tracePath   string
	logLevel    string

	trace *log.FileLogger
}

func (s *session) register(fs *flag.FlagSet) {
	fs.StringVar(&s.catalogPath, "catalog", "", "Channel catalog (YAML)")
	fs.StringVar(&s.tracePath, "trace", "", "Append conversion trace events to this file (.elog)")
	fs.StringVar(&s.logLevel, "log-level", "warn", "Log level: debug, info, warn, error")
}

// open sets up logging and returns the converter.
func (s *session) open() *catalog.Converter {
	level, err := parseLevel(s.logLevel)
	if err != nil {
		fatal(err)
	}
	slogger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(slogger)

	var cat *catalog.Catalog
	if s.catalogPath != "" {
		if cat, err = catalog.Load(s.catalogPath); err != nil {
			fatal(err)
		}
		slog.Info("catalog loaded", "name", cat.Name, "channels", len(cat.Channels))
	}

	loggers := []log.Logger{log.NewSlogAdapter(slogger)}
	if s.tracePath != "" {
		if s.trace, err = log.NewFileLogger(s.tracePath); err != nil {
			fatal(fmt.Errorf("failed to open trace file: %w", err))
		}
		loggers = append(loggers, s.trace)
	}

	conv := catalog.NewConverter(cat, log.NewMultiLogger(loggers...))
	slog.Debug("session started", "session_id", conv.SessionID())
	return conv
}

func (s *session) close() {
	if s.trace != nil {
		if err := s.trace.Close(); err != nil {
			slog.Warn("failed to close trace file", "error", err)
		}
	}
}

func parseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return 0, fmt.Errorf("invalid log level: %s", s)
	}
	return level, nil
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}

func newFlagSet(name, synopsis, help string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "engunit %s - %s\n\nUsage:\n  engunit %s\n\nFlags:\n", name, help, synopsis)
		fs.PrintDefaults()
	}
	return fs
}

// parseRange parses "low:high".
func parseRange(s, label string) (*unit.Scale, error) {
	if s == "" {
		return nil, nil
	}
	lo, hi, ok := strings.Cut(s, ":")
	if !ok {
		return nil, fmt.Errorf("invalid range %q (want low:high)", s)
	}
	low, err := strconv.ParseFloat(lo, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid range low: %w", err)
	}
	high, err := strconv.ParseFloat(hi, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid range high: %w", err)
	}
	return &unit.Scale{Low: low, High: high, Label: label}, nil
}

func parseValue(s string) float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		fatal(fmt.Errorf("invalid value %q", s))
	}
	return v
}

func runConvert(args []string) {
	fs := newFlagSet("convert", "convert [flags] <value> <from> <to>", "Convert a value between units of one domain")
	var sess session
	sess.register(fs)
	domain := fs.String("domain", "", "Domain: temperature, thermoresistor, analog, pressure, massflow")
	rng := fs.String("range", "", "Physical range of an analog signal (low:high)")
	label := fs.String("label", "", "Physical unit label of the range (e.g. kPa)")
	verbose := fs.Bool("v", false, "Print the reference value too")

	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}
	if fs.NArg() != 3 || *domain == "" {
		fmt.Fprintln(os.Stderr, "Error: -domain, value, from and to units required")
		fs.Usage()
		os.Exit(1)
	}

	scale, err := parseRange(*rng, *label)
	if err != nil {
		fatal(err)
	}

	conv := sess.open()
	defer sess.close()

	req := commands.ConvertRequest{
		Domain:  *domain,
		From:    commands.Quantity{Value: parseValue(fs.Arg(0)), Unit: fs.Arg(1)},
		To:      fs.Arg(2),
		Scale:   scale,
		Verbose: *verbose,
	}
	if err := commands.RunConvert(conv, req, os.Stdout); err != nil {
		sess.close()
		fatal(err)
	}
}

func runArith(op string, args []string) {
	fs := newFlagSet(op, op+" [flags] <v1> <u1> <v2> <u2>", "Combine two quantities; the result uses the first unit")
	var sess session
	sess.register(fs)
	domain := fs.String("domain", "", "Domain: temperature, thermoresistor, analog, pressure, massflow")
	rng := fs.String("range", "", "Physical range of analog signals (low:high)")
	label := fs.String("label", "", "Physical unit label of the range")
	verbose := fs.Bool("v", false, "Print the reference value too")

	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}
	if fs.NArg() != 4 || *domain == "" {
		fmt.Fprintln(os.Stderr, "Error: -domain and two quantities required")
		fs.Usage()
		os.Exit(1)
	}

	scale, err := parseRange(*rng, *label)
	if err != nil {
		fatal(err)
	}

	conv := sess.open()
	defer sess.close()

	req := commands.ArithRequest{
		Domain:  *domain,
		Op:      op,
		Left:    commands.Quantity{Value: parseValue(fs.Arg(0)), Unit: fs.Arg(1)},
		Right:   commands.Quantity{Value: parseValue(fs.Arg(2)), Unit: fs.Arg(3)},
		Scale:   scale,
		Verbose: *verbose,
	}
	if err := commands.RunArith(conv, req, os.Stdout); err != nil {
		sess.close()
		fatal(err)
	}
}

func runUnits(args []string) {
	fs := newFlagSet("units", "units [domain]", "List domains and units")
	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}
	if err := commands.RunUnits(fs.Arg(0), os.Stdout); err != nil {
		fatal(err)
	}
}

func runChannels(args []string) {
	fs := newFlagSet("channels", "channels -catalog <file.yaml>", "List the channels of a catalog")
	path := fs.String("catalog", "", "Channel catalog (YAML)")
	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}
	if *path == "" {
		fmt.Fprintln(os.Stderr, "Error: -catalog required")
		fs.Usage()
		os.Exit(1)
	}

	cat, err := catalog.Load(*path)
	if err != nil {
		fatal(err)
	}
	if err := commands.RunChannels(cat, os.Stdout); err != nil {
		fatal(err)
	}
}

func runRead(args []string) {
	fs := newFlagSet("read", "read -catalog <file.yaml> [flags] <channel> <raw>", "Convert a raw channel reading")
	var sess session
	sess.register(fs)
	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}
	if fs.NArg() != 2 || sess.catalogPath == "" {
		fmt.Fprintln(os.Stderr, "Error: -catalog, channel and raw value required")
		fs.Usage()
		os.Exit(1)
	}

	conv := sess.open()
	defer sess.close()

	if err := commands.RunRead(conv, fs.Arg(0), parseValue(fs.Arg(1)), os.Stdout); err != nil {
		sess.close()
		fatal(err)
	}
}

func runSnapshot(args []string) {
	fs := newFlagSet("snapshot", "snapshot -catalog <file.yaml> [flags] <channel=raw>...", "Read several channels")
	var sess session
	sess.register(fs)
	format := fs.String("format", "text", "Output format: text, cbor, hex")
	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}
	if fs.NArg() == 0 || sess.catalogPath == "" {
		fmt.Fprintln(os.Stderr, "Error: -catalog and at least one channel=raw reading required")
		fs.Usage()
		os.Exit(1)
	}

	raw, err := commands.ParseAssignments(fs.Args())
	if err != nil {
		fatal(err)
	}

	conv := sess.open()
	defer sess.close()

	if err := commands.RunSnapshot(conv, raw, *format, os.Stdout); err != nil {
		sess.close()
		fatal(err)
	}
}

func runView(args []string) {
	fs := newFlagSet("view", "view [flags] <file.elog>", "View a trace file in human-readable format")
	sessionID := fs.String("session", "", "Filter by session ID")
	op := fs.String("op", "", "Filter by operation (convert, add, sub, read)")
	domain := fs.String("domain", "", "Filter by domain")
	channel := fs.String("channel", "", "Filter by channel")
	failed := fs.Bool("failed", false, "Only show failed operations")
	since := fs.Duration("since", 0, "Only show events newer than this (e.g. 1h)")

	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}
	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Error: trace file path required")
		fs.Usage()
		os.Exit(1)
	}

	filter := log.Filter{
		SessionID:  *sessionID,
		Channel:    *channel,
		FailedOnly: *failed,
	}
	if *op != "" {
		o, err := commands.ParseOpFlag(*op)
		if err != nil {
			fatal(err)
		}
		filter.Op = &o
	}
	if *domain != "" {
		d, err := commands.ParseDomainFlag(*domain)
		if err != nil {
			fatal(err)
		}
		filter.Domain = &d
	}
	if *since > 0 {
		start := time.Now().Add(-*since)
		filter.TimeStart = &start
	}

	if err := commands.RunView(fs.Arg(0), filter, os.Stdout); err != nil {
		fatal(err)
	}
}

func runExport(args []string) {
	fs := newFlagSet("export", "export [flags] <file.elog>", "Export a trace file to JSONL or CSV")
	format := fs.String("format", "jsonl", "Output format: jsonl, csv")
	output := fs.String("o", "", "Output file (default: stdout)")

	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}
	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Error: trace file path required")
		fs.Usage()
		os.Exit(1)
	}

	if err := commands.RunExport(fs.Arg(0), *format, *output); err != nil {
		fatal(err)
	}
}

func runStats(args []string) {
	fs := newFlagSet("stats", "stats <file.elog>", "Show statistics about a trace file")
	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}
	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Error: trace file path required")
		fs.Usage()
		os.Exit(1)
	}

	if err := commands.RunStats(fs.Arg(0), os.Stdout); err != nil {
		fatal(err)
	}
}

func runShell(args []string) {
	fs := newFlagSet("shell", "shell [flags]", "Start the interactive shell")
	var sess session
	sess.register(fs)
	watch := fs.Bool("watch", false, "Reload the catalog when its file changes")
	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}

	conv := sess.open()
	defer sess.close()

	sh, err := interactive.New(conv)
	if err != nil {
		sess.close()
		fatal(err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if *watch && sess.catalogPath != "" {
		go func() {
			err := catalog.Watch(ctx, sess.catalogPath,
				func(cat *catalog.Catalog) {
					conv.SetCatalog(cat)
					fmt.Fprintf(sh.Stdout(), "Catalog reloaded: %d channels\n", len(cat.Channels))
				},
				func(err error) {
					slog.Warn("catalog reload failed", "error", err)
				})
			if err != nil {
				slog.Warn("catalog watch stopped", "error", err)
			}
		}()
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		select {
		case <-sigCh:
			cancel()
		case <-ctx.Done():
		}
	}()

	sh.Run(ctx, cancel)
}
