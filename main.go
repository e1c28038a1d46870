// Released under an MIT license. See LICENSE.

// Sprig is a small Clojure-family language.
//
// With no arguments on a terminal, sprig starts an interactive session.
// Otherwise it evaluates a script, an expression passed with -e, or the
// forms read from stdin.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/sprig-lang/sprig/internal/common/interface/literal"
	"github.com/sprig-lang/sprig/internal/common/type/list"
	"github.com/sprig-lang/sprig/internal/engine"
	"github.com/sprig-lang/sprig/internal/system/config"
	"github.com/sprig-lang/sprig/internal/system/history"
	"github.com/sprig-lang/sprig/internal/system/options"
	"github.com/sprig-lang/sprig/internal/ui"
)

func main() {
	options.Parse()

	if err := run(); err != nil {
		println(err.Error())
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load(options.Config())
	if err != nil {
		return err
	}

	var logger *slog.Logger
	if options.Trace() || cfg.Trace {
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}

	ns := cfg.Namespace
	if options.Namespace() != "" {
		ns = options.Namespace()
	}

	e, err := engine.New(engine.Options{Logger: logger, Namespace: ns, Out: os.Stdout})
	if err != nil {
		return err
	}

	args := make([]any, len(options.Args()))
	for i, a := range options.Args() {
		args[i] = a
	}

	e.Define("*command-line-args*", list.New(args...))

	for _, path := range cfg.Prelude {
		if _, err = e.Load(path); err != nil {
			return err
		}
	}

	switch {
	case options.Script() != "":
		_, err = e.Load(options.Script())
	case options.Command() != "":
		var v any

		v, err = e.EvalString("-e", options.Command())
		if err == nil && v != nil {
			fmt.Println(literal.String(v))
		}
	case options.Interactive():
		err = ui.Run(e, history.Path(cfg.History))
	default:
		err = ui.Script(e, "stdin", os.Stdin)
	}

	return err
}
