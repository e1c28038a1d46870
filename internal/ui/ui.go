// Released under an MIT license. See LICENSE.

// Package ui provides a command-line interface for the sprig language.
package ui

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/peterh/liner"
	"github.com/sprig-lang/sprig/internal/common/interface/literal"
	"github.com/sprig-lang/sprig/internal/reader"
	"github.com/sprig-lang/sprig/internal/system/history"
)

// Evaluator is the interface for things that want to process parsed forms.
type Evaluator interface {
	Eval(form any) (any, error)
	Names() []string
	Namespace() string
}

// Run launches the UI which sends forms to the Evaluator. History is read
// from and written back to path.
func Run(e Evaluator, path string) error {
	cooked, err := liner.TerminalMode()
	if err != nil {
		return err
	}

	cli := liner.NewLiner()
	defer cli.Close()

	uncooked, err := liner.TerminalMode()
	if err != nil {
		return err
	}

	// A missing history file is normal on first use.
	_ = history.Load(path, cli.ReadHistory)

	cli.SetCtrlCAborts(true)
	cli.SetWordCompleter(completer(e))

	r := reader.New("repl")

	for {
		if err = uncooked.ApplyMode(); err != nil {
			return err
		}

		line, err := cli.Prompt(prompt(e.Namespace(), r.Pending()))

		if merr := cooked.ApplyMode(); merr != nil {
			return merr
		}

		switch {
		case err == nil:
			if strings.TrimSpace(line) != "" {
				cli.AppendHistory(line)
			}
		case errors.Is(err, liner.ErrPromptAborted):
			r.Reset()

			continue
		default:
			os.Stdout.Write([]byte("\n"))

			return history.Save(path, cli.WriteHistory)
		}

		feed(e, r, line, os.Stdout, os.Stderr)
	}
}

// Script evaluates every form read from in, stopping at the first error.
func Script(e Evaluator, name string, in io.Reader) error {
	b, err := io.ReadAll(in)
	if err != nil {
		return err
	}

	forms, err := reader.ReadAll(name, string(b))
	if err != nil {
		return err
	}

	for _, form := range forms {
		if _, err = e.Eval(form); err != nil {
			return err
		}
	}

	return nil
}

func completer(e Evaluator) liner.WordCompleter {
	return func(line string, pos int) (head string, cs []string, tail string) {
		head, tail = line[:pos], line[pos:]

		start := strings.LastIndexAny(head, " \t,;()[]{}'\"") + 1
		prefix := head[start:]

		if prefix == "" {
			return head, nil, tail
		}

		for _, name := range e.Names() {
			if strings.HasPrefix(name, prefix) {
				cs = append(cs, name)
			}
		}

		sort.Strings(cs)

		return head[:start], cs, tail
	}
}

// feed reads line and evaluates each form it completes, printing values to
// out and failures to errs.
func feed(e Evaluator, r *reader.T, line string, out, errs io.Writer) {
	forms, err := r.Scan(line + "\n")

	for _, form := range forms {
		v, eerr := e.Eval(form)
		if eerr != nil {
			fmt.Fprintln(errs, eerr.Error())

			continue
		}

		fmt.Fprintln(out, literal.String(v))
	}

	if err != nil {
		fmt.Fprintln(errs, err.Error())
	}
}

func prompt(ns string, pending bool) string {
	if pending {
		return strings.Repeat(" ", max(len(ns)-2, 0)) + "#_=> "
	}

	return ns + "=> "
}
