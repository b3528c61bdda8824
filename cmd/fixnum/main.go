// Command fixnum is a calculator for the fixed-width integers in the fixnum
// package. It is the checked layer over the library: malformed input is
// reported here instead of being quietly wrapped, truncated or zeroed.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"

	"github.com/fatih/color"
	"github.com/urfave/cli/v2"
)

const (
	categoryArith   = "ARITHMETIC"
	categoryBitwise = "BITWISE"
	categoryConvert = "CONVERSION"
)

const (
	widthFlag     = "width"
	strictFlag    = "strict"
	logLevelFlag  = "log-level"
	logFormatFlag = "log-format"
	noColorFlag   = "no-color"
)

// newFlags builds fresh flag values for each app. urfave/cli writes parsed
// and env-sourced values back into the flag structs, so they can't be shared.
func newFlags() []cli.Flag {
	return []cli.Flag{
		&cli.IntFlag{
			Name:    widthFlag,
			Aliases: []string{"w"},
			Usage:   "Integer width in bits (160, 256 or 512)",
			Value:   256,
			EnvVars: []string{"FIXNUM_WIDTH"},
		},
		&cli.BoolFlag{
			Name:    strictFlag,
			Usage:   "Reject hex input that would be truncated or partially ignored",
			EnvVars: []string{"FIXNUM_STRICT"},
		},
		&cli.StringFlag{
			Name:    logLevelFlag,
			Usage:   "Log level (debug|info|warn|error)",
			Value:   "warn",
			EnvVars: []string{"FIXNUM_LOG_LEVEL"},
		},
		&cli.StringFlag{
			Name:    logFormatFlag,
			Usage:   "Log format (text|json)",
			Value:   "text",
			EnvVars: []string{"FIXNUM_LOG_FORMAT"},
		},
		&cli.BoolFlag{
			Name:    noColorFlag,
			Usage:   "Disable coloured output",
			EnvVars: []string{"FIXNUM_NO_COLOR"},
		},
	}
}

func main() {
	if err := run(os.Args, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, color.RedString("%v", err))
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	return newApp(stdout, stderr).Run(args)
}

// session is populated by the app's Before hook and shared by every command.
type session struct {
	log  *slog.Logger
	calc calculator
}

func newApp(stdout, stderr io.Writer) *cli.App {
	s := &session{}

	app := &cli.App{
		Name:      "fixnum",
		Usage:     "fixed-width unsigned integer calculator",
		Writer:    stdout,
		ErrWriter: stderr,
		Flags:     newFlags(),
		Before: func(c *cli.Context) error {
			if c.Bool(noColorFlag) {
				color.NoColor = true
			}
			s.log = newLogger(logConfig{
				Level:  c.String(logLevelFlag),
				Format: c.String(logFormatFlag),
			}, c.App.ErrWriter)

			cl, err := newCalculator(c.Int(widthFlag), c.Bool(strictFlag))
			if err != nil {
				return err
			}
			s.calc = cl
			s.log.Debug("calculator ready", "width", cl.Bits(), "strict", c.Bool(strictFlag))
			return nil
		},
		Commands: []*cli.Command{
			s.unaryCommand("hex", "Normalise a value to its fixed-length hex form", categoryConvert),
			s.decimalCommand(),
			s.binaryCommand("add", "Add two values, wrapping on overflow", categoryArith),
			s.binaryCommand("sub", "Subtract the second value from the first, wrapping on underflow", categoryArith),
			s.binaryCommand("and", "Bitwise AND", categoryBitwise),
			s.binaryCommand("or", "Bitwise OR", categoryBitwise),
			s.binaryCommand("xor", "Bitwise XOR", categoryBitwise),
			s.unaryCommand("not", "Bitwise complement", categoryBitwise),
			s.unaryCommand("neg", "Two's complement negation", categoryArith),
			s.unaryCommand("inc", "Add one, wrapping on overflow", categoryArith),
			s.decrementCommand(),
			s.shiftCommand("shl", "Shift left by N bits"),
			s.shiftCommand("shr", "Shift right by N bits"),
			s.cmpCommand(),
			s.floatCommand(),
			s.wordCommand(),
			s.encodeCommand(),
			s.decodeCommand(),
			s.trimCommand(),
		},
	}
	return app
}

func expectArgs(c *cli.Context, n int) error {
	if c.NArg() != n {
		return fmt.Errorf("fixnum: %s: expected %d argument(s), got %d", c.Command.Name, n, c.NArg())
	}
	return nil
}

func (s *session) print(c *cli.Context, v any) error {
	_, err := fmt.Fprintln(c.App.Writer, v)
	return err
}

func (s *session) unaryCommand(name, usage, category string) *cli.Command {
	return s.unaryCommandOp(name, name, usage, category)
}

func (s *session) unaryCommandOp(name, op, usage, category string) *cli.Command {
	return &cli.Command{
		Name:      name,
		Usage:     usage,
		ArgsUsage: "<hex>",
		Category:  category,
		Action: func(c *cli.Context) error {
			if err := expectArgs(c, 1); err != nil {
				return err
			}
			s.log.Debug("unary", "op", op, "a", c.Args().Get(0))
			out, err := s.calc.Unary(op, c.Args().Get(0))
			if err != nil {
				return fmt.Errorf("%s: %w", name, err)
			}
			return s.print(c, out)
		},
	}
}

func (s *session) decrementCommand() *cli.Command {
	return s.unaryCommandOp("dec", "dec", "Subtract one, wrapping on underflow", categoryArith)
}

func (s *session) binaryCommand(name, usage, category string) *cli.Command {
	return &cli.Command{
		Name:      name,
		Usage:     usage,
		ArgsUsage: "<hex> <hex>",
		Category:  category,
		Action: func(c *cli.Context) error {
			if err := expectArgs(c, 2); err != nil {
				return err
			}
			a, b := c.Args().Get(0), c.Args().Get(1)
			s.log.Debug("binary", "op", name, "a", a, "b", b)
			out, err := s.calc.Binary(name, a, b)
			if err != nil {
				return fmt.Errorf("%s: %w", name, err)
			}
			return s.print(c, out)
		},
	}
}

func (s *session) shiftCommand(name, usage string) *cli.Command {
	return &cli.Command{
		Name:      name,
		Usage:     usage,
		ArgsUsage: "<hex> <bits>",
		Category:  categoryBitwise,
		Action: func(c *cli.Context) error {
			if err := expectArgs(c, 2); err != nil {
				return err
			}
			out, err := s.calc.Shift(name, c.Args().Get(0), c.Args().Get(1))
			if err != nil {
				return fmt.Errorf("%s: %w", name, err)
			}
			return s.print(c, out)
		},
	}
}

func (s *session) decimalCommand() *cli.Command {
	return &cli.Command{
		Name:      "decimal",
		Usage:     "Print a value in decimal",
		ArgsUsage: "<hex>",
		Category:  categoryConvert,
		Action: func(c *cli.Context) error {
			if err := expectArgs(c, 1); err != nil {
				return err
			}
			out, err := s.calc.Decimal(c.Args().Get(0))
			if err != nil {
				return fmt.Errorf("decimal: %w", err)
			}
			return s.print(c, out)
		},
	}
}

var (
	lessColor    = color.New(color.FgRed)
	equalColor   = color.New(color.FgYellow)
	greaterColor = color.New(color.FgGreen)
)

func (s *session) cmpCommand() *cli.Command {
	return &cli.Command{
		Name:      "cmp",
		Usage:     "Compare two values, printing <, = or >",
		ArgsUsage: "<hex> <hex>",
		Category:  categoryArith,
		Action: func(c *cli.Context) error {
			if err := expectArgs(c, 2); err != nil {
				return err
			}
			r, err := s.calc.Cmp(c.Args().Get(0), c.Args().Get(1))
			if err != nil {
				return fmt.Errorf("cmp: %w", err)
			}
			var out string
			switch {
			case r < 0:
				out = lessColor.Sprint("<")
			case r > 0:
				out = greaterColor.Sprint(">")
			default:
				out = equalColor.Sprint("=")
			}
			return s.print(c, out)
		},
	}
}

func (s *session) floatCommand() *cli.Command {
	return &cli.Command{
		Name:      "float",
		Usage:     "Print a floating point approximation",
		ArgsUsage: "<hex>",
		Category:  categoryConvert,
		Action: func(c *cli.Context) error {
			if err := expectArgs(c, 1); err != nil {
				return err
			}
			f, err := s.calc.Float(c.Args().Get(0))
			if err != nil {
				return fmt.Errorf("float: %w", err)
			}
			return s.print(c, strconv.FormatFloat(f, 'g', -1, 64))
		},
	}
}

func (s *session) wordCommand() *cli.Command {
	return &cli.Command{
		Name:      "word",
		Usage:     "Print the N-th 64-bit word, least significant first",
		ArgsUsage: "<hex> <n>",
		Category:  categoryConvert,
		Action: func(c *cli.Context) error {
			if err := expectArgs(c, 2); err != nil {
				return err
			}
			w, err := s.calc.Word(c.Args().Get(0), c.Args().Get(1))
			if err != nil {
				return fmt.Errorf("word: %w", err)
			}
			return s.print(c, fmt.Sprintf("0x%016x", w))
		},
	}
}

func (s *session) encodeCommand() *cli.Command {
	return &cli.Command{
		Name:      "encode",
		Usage:     "Print the fixed-size byte image as plain hex",
		ArgsUsage: "<hex>",
		Category:  categoryConvert,
		Action: func(c *cli.Context) error {
			if err := expectArgs(c, 1); err != nil {
				return err
			}
			out, err := s.calc.Encode(c.Args().Get(0))
			if err != nil {
				return fmt.Errorf("encode: %w", err)
			}
			return s.print(c, out)
		},
	}
}

func (s *session) decodeCommand() *cli.Command {
	return &cli.Command{
		Name:      "decode",
		Usage:     "Read a byte image produced by encode",
		ArgsUsage: "<bytes-hex>",
		Category:  categoryConvert,
		Action: func(c *cli.Context) error {
			if err := expectArgs(c, 1); err != nil {
				return err
			}
			out, err := s.calc.Decode(c.Args().Get(0))
			if err != nil {
				return fmt.Errorf("decode: %w", err)
			}
			return s.print(c, out)
		},
	}
}

func (s *session) trimCommand() *cli.Command {
	return &cli.Command{
		Name:      "trim256",
		Usage:     "Keep the low 256 bits of a 512-bit value",
		ArgsUsage: "<hex>",
		Category:  categoryConvert,
		Action: func(c *cli.Context) error {
			if err := expectArgs(c, 1); err != nil {
				return err
			}
			out, err := s.calc.Trim256(c.Args().Get(0))
			if err != nil {
				return fmt.Errorf("trim256: %w", err)
			}
			s.log.Debug("trim256", "a", c.Args().Get(0), "out", out)
			return s.print(c, out)
		},
	}
}
