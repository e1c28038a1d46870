// Released under an MIT license. See LICENSE.

// Package options parses sprig's command line.
package options

import (
	"os"

	"github.com/docopt/docopt-go"
	"github.com/mattn/go-isatty"
)

// Version is reported by --version.
const Version = "sprig 0.1.0"

//nolint:gochecknoglobals
var (
	args        []string
	command     string
	config      string
	interactive bool
	namespace   string
	script      string
	trace       bool
	usage       = `sprig

Usage:
  sprig [options] SCRIPT [ARGUMENTS...]
  sprig [options] -e EXPR [ARGUMENTS...]
  sprig [options] [-i]
  sprig -h
  sprig -v

Arguments:
  ARGUMENTS  Bound, as strings, to *command-line-args*.
  SCRIPT     Path to a sprig script.

Options:
  -c, --config=FILE   Read settings from FILE instead of $SPRIG_CONFIG.
  -e, --eval=EXPR     Evaluate EXPR and print its value.
  -i, --interactive   Invert interactive mode.
  -n, --ns=NS         Start in namespace NS.
  -t, --trace         Log each analyzed top-level form to stderr.
  -h, --help          Display this help.
  -v, --version       Print sprig version.

If sprig's stdin is a TTY, and sprig was invoked with neither a SCRIPT nor
an EXPR, it starts an interactive session. Otherwise, forms are read from
SCRIPT, EXPR, or stdin.
`
)

// Args returns the positional arguments following SCRIPT or EXPR.
func Args() []string {
	return args
}

// Command returns the expression passed with --eval.
func Command() string {
	return command
}

// Config returns the path passed with --config.
func Config() string {
	return config
}

// Interactive returns true if sprig should start a REPL.
func Interactive() bool {
	return interactive
}

// Namespace returns the namespace passed with --ns.
func Namespace() string {
	return namespace
}

// Parse parses os.Args.
func Parse() {
	ParseArgs(os.Args[1:], isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd()))
}

// ParseArgs parses argv. The value of tty decides whether a session with
// nothing to run is interactive. A nil argv means no arguments.
func ParseArgs(argv []string, tty bool) {
	if argv == nil {
		// docopt reads os.Args when argv is nil.
		argv = []string{}
	}

	parser := &docopt.Parser{HelpHandler: docopt.PrintHelpAndExit}

	opts, err := parser.ParseArgs(usage, argv, Version)
	if err != nil {
		// Error in the usage doc. This should never happen.
		panic(err.Error())
	}

	command, _ = opts.String("--eval")
	config, _ = opts.String("--config")
	namespace, _ = opts.String("--ns")
	script, _ = opts.String("SCRIPT")
	trace, _ = opts.Bool("--trace")

	interactive = script == "" && command == "" && tty

	invertInteractive, _ := opts.Bool("--interactive")
	interactive = interactive != invertInteractive

	args, _ = opts["ARGUMENTS"].([]string)
}

// Script returns the path of the script to run, if any.
func Script() string {
	return script
}

// Trace returns true if analyzed forms should be logged.
func Trace() bool {
	return trace
}
