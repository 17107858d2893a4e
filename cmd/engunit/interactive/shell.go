// Package interactive provides the interactive conversion shell for engunit.
package interactive

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/chzyer/readline"
	"github.com/engunit/engunit-go/cmd/engunit/commands"
	"github.com/engunit/engunit-go/pkg/catalog"
	"github.com/engunit/engunit-go/pkg/unit"
)

// Shell handles interactive mode for engunit.
type Shell struct {
	conv *catalog.Converter
	rl   *readline.Instance
	out  io.Writer
}

// New creates a new interactive shell over conv.
func New(conv *catalog.Converter) (*Shell, error) {
	s := &Shell{conv: conv}

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "engunit> ",
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
		AutoComplete:    s.completer(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create readline: %w", err)
	}

	s.rl = rl
	s.out = rl.Stdout()
	return s, nil
}

// Stdout returns a writer that properly coordinates with the readline input.
func (s *Shell) Stdout() io.Writer {
	return s.rl.Stdout()
}

// Run starts the interactive command loop.
func (s *Shell) Run(ctx context.Context, cancel context.CancelFunc) {
	defer s.rl.Close()

	s.printHelp()

	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		line, err := s.rl.Readline()
		if err != nil {
			// EOF or interrupt
			if err == readline.ErrInterrupt {
				continue
			}
			fmt.Fprintln(s.out, "Exiting...")
			cancel()
			return
		}

		if !s.Execute(line) {
			fmt.Fprintln(s.out, "Exiting...")
			cancel()
			return
		}
	}
}

// Execute runs one command line. It returns false when the shell should exit.
func (s *Shell) Execute(line string) bool {
	parts := strings.Fields(strings.TrimSpace(line))
	if len(parts) == 0 {
		return true
	}
	cmd := strings.ToLower(parts[0])
	args := parts[1:]

	var err error
	switch cmd {
	case "help", "?":
		s.printHelp()

	case "convert", "c":
		err = s.cmdConvert(args)

	case "add", "sub":
		err = s.cmdArith(cmd, args)

	case "units", "u":
		domain := ""
		if len(args) > 0 {
			domain = args[0]
		}
		err = commands.RunUnits(domain, s.out)

	case "channels", "ch":
		err = commands.RunChannels(s.conv.Catalog(), s.out)

	case "read", "r":
		err = s.cmdRead(args)

	case "snapshot", "snap":
		err = s.cmdSnapshot(args)

	case "session":
		fmt.Fprintf(s.out, "Session: %s\n", s.conv.SessionID())

	case "quit", "exit", "q":
		return false

	default:
		fmt.Fprintf(s.out, "Unknown command: %s (type 'help' for commands)\n", cmd)
	}

	if err != nil {
		fmt.Fprintf(s.out, "Error: %v\n", err)
	}
	return true
}

func (s *Shell) printHelp() {
	fmt.Fprintln(s.out, `
engunit Commands:
  Conversion:
    convert <domain> <value> <from> <to> [low high [label]]
                         - Convert a value (range for analog MEASURE/percent)
    add <domain> <v1> <u1> <v2> <u2>
                         - Add two quantities (result in u1)
    sub <domain> <v1> <u1> <v2> <u2>
                         - Subtract two quantities (result in u1)
    units [domain]       - List units

  Catalog:
    channels             - List catalog channels
    read <channel> <raw> - Convert a raw channel reading
    snapshot <ch=raw>... - Read several channels

  Other:
    session              - Show the trace session ID
    help                 - Show this help
    quit                 - Exit`)
}

func (s *Shell) cmdConvert(args []string) error {
	if len(args) != 4 && len(args) != 6 && len(args) != 7 {
		return fmt.Errorf("usage: convert <domain> <value> <from> <to> [low high [label]]")
	}
	v, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		return fmt.Errorf("invalid value: %w", err)
	}

	req := commands.ConvertRequest{
		Domain: args[0],
		From:   commands.Quantity{Value: v, Unit: args[2]},
		To:     args[3],
	}
	if len(args) > 4 {
		if req.Scale, err = parseScale(args[4:]); err != nil {
			return err
		}
	}
	return commands.RunConvert(s.conv, req, s.out)
}

func (s *Shell) cmdArith(op string, args []string) error {
	if len(args) != 5 {
		return fmt.Errorf("usage: %s <domain> <v1> <u1> <v2> <u2>", op)
	}
	a, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		return fmt.Errorf("invalid value: %w", err)
	}
	b, err := strconv.ParseFloat(args[3], 64)
	if err != nil {
		return fmt.Errorf("invalid value: %w", err)
	}

	return commands.RunArith(s.conv, commands.ArithRequest{
		Domain: args[0],
		Op:     op,
		Left:   commands.Quantity{Value: a, Unit: args[2]},
		Right:  commands.Quantity{Value: b, Unit: args[4]},
	}, s.out)
}

func (s *Shell) cmdRead(args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("usage: read <channel> <raw>")
	}
	raw, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		return fmt.Errorf("invalid value: %w", err)
	}
	return commands.RunRead(s.conv, args[0], raw, s.out)
}

func (s *Shell) cmdSnapshot(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: snapshot <channel=raw>...")
	}
	raw, err := commands.ParseAssignments(args)
	if err != nil {
		return err
	}
	return commands.RunSnapshot(s.conv, raw, "text", s.out)
}

// parseScale parses "low high [label]".
func parseScale(args []string) (*unit.Scale, error) {
	low, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return nil, fmt.Errorf("invalid range low: %w", err)
	}
	high, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		return nil, fmt.Errorf("invalid range high: %w", err)
	}
	s := &unit.Scale{Low: low, High: high}
	if len(args) > 2 {
		s.Label = args[2]
	}
	return s, nil
}

// completer offers command names, domains and channel names.
func (s *Shell) completer() *readline.PrefixCompleter {
	domains := func(string) []string {
		names := make([]string, len(unit.Domains))
		for i, d := range unit.Domains {
			names[i] = strings.ToLower(d.String())
		}
		return names
	}
	channels := func(string) []string {
		return s.conv.Catalog().Names()
	}

	return readline.NewPrefixCompleter(
		readline.PcItem("convert", readline.PcItemDynamic(domains)),
		readline.PcItem("add", readline.PcItemDynamic(domains)),
		readline.PcItem("sub", readline.PcItemDynamic(domains)),
		readline.PcItem("units", readline.PcItemDynamic(domains)),
		readline.PcItem("channels"),
		readline.PcItem("read", readline.PcItemDynamic(channels)),
		readline.PcItem("snapshot"),
		readline.PcItem("session"),
		readline.PcItem("help"),
		readline.PcItem("quit"),
	)
}
