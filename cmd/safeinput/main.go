package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/lmittmann/tint"
	"golang.org/x/term"

	"github.com/bustyanimebabesdotcom/safeinput/pkg/diag"
	"github.com/bustyanimebabesdotcom/safeinput/pkg/form"
	"github.com/bustyanimebabesdotcom/safeinput/pkg/safeinput"
)

var version = "dev"

const description = `Read validated, typed values from standard input.

Malformed lines are reported on stderr and read again; the command only
exits once a valid value is read or input ends.`

type CLI struct {
	Verbose     int    `help:"Log verbosity (-v info, -vv debug)" short:"v" type:"counter"`
	Prompts     string `help:"When to show prompts on stderr" enum:"auto,always,never" default:"auto" env:"SAFEINPUT_PROMPTS"`
	Diagnostics string `help:"How to report rejected input: text or log" enum:"text,log" default:"text" env:"SAFEINPUT_DIAGNOSTICS"`

	Read    ReadCmd    `cmd:"" help:"Read one value and print it"`
	Form    FormCmd    `cmd:"" help:"Ask the questions in a form file"`
	Version VersionCmd `cmd:"" help:"Print the version"`
}

// Env holds the process streams so commands can run against buffers in tests.
type Env struct {
	Stdin      io.Reader
	Stdout     io.Writer
	Stderr     io.Writer
	IsTerminal func() bool // Reports whether Stdin is interactive
	ColorLogs  func() bool // Reports whether Stderr is a terminal

	Prompt   io.Writer
	Reporter diag.Reporter
}

func stdEnv() *Env {
	return &Env{
		Stdin:      os.Stdin,
		Stdout:     os.Stdout,
		Stderr:     os.Stderr,
		IsTerminal: func() bool { return term.IsTerminal(int(os.Stdin.Fd())) },
		ColorLogs:  func() bool { return term.IsTerminal(int(os.Stderr.Fd())) },
	}
}

// scanner builds the Scanner every command reads from.
func (e *Env) scanner() *safeinput.Scanner {
	return safeinput.New(e.Stdin, safeinput.WithReporter(e.Reporter))
}

func main() {
	if err := run(os.Args[1:], stdEnv()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, env *Env) error {
	var cli CLI
	parser, err := kong.New(&cli,
		kong.Name("safeinput"),
		kong.Description(description),
		kong.Writers(env.Stdout, env.Stderr),
		kong.UsageOnError(),
		kong.Vars{"types": strings.Join(form.Types(), ",")},
	)
	if err != nil {
		return err
	}

	kctx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	logger := newLogger(env.Stderr, cli.Verbose, env.ColorLogs())
	env.Prompt = cli.promptWriter(env)
	env.Reporter = cli.reporter(env, logger)

	logger.Debug("command", "name", kctx.Command(), "prompts", cli.Prompts, "diagnostics", cli.Diagnostics)
	return kctx.Run(logger, env)
}

func newLogger(w io.Writer, verbosity int, color bool) *slog.Logger {
	level := slog.LevelWarn
	switch verbosity {
	case 0:
	case 1:
		level = slog.LevelInfo
	default: // 2+
		level = slog.LevelDebug
	}

	return slog.New(tint.NewHandler(w, &tint.Options{
		Level:      level,
		TimeFormat: "15:04:05",
		NoColor:    !color,
	}))
}

func (c *CLI) promptWriter(env *Env) io.Writer {
	switch c.Prompts {
	case "always":
		return env.Stderr
	case "never":
		return io.Discard
	default:
		if env.IsTerminal() {
			return env.Stderr
		}
		return io.Discard
	}
}

func (c *CLI) reporter(env *Env, logger *slog.Logger) diag.Reporter {
	if c.Diagnostics == "log" {
		return diag.NewSlog(logger)
	}
	return diag.NewWriter(env.Stderr)
}

type VersionCmd struct{}

func (v *VersionCmd) Run(env *Env) error {
	_, err := fmt.Fprintln(env.Stdout, version)
	return err
}
