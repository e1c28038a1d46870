// Released under an MIT license. See LICENSE.

// Package engine provides an evaluator for parsed sprig code.
package engine

import (
	"io"
	"log/slog"
	"os"
	"slices"
	"sort"

	"github.com/joomcode/errorx"
	"github.com/sprig-lang/sprig/internal/common/failure"
	"github.com/sprig-lang/sprig/internal/common/interface/literal"
	"github.com/sprig-lang/sprig/internal/engine/analyzer"
	"github.com/sprig-lang/sprig/internal/engine/boot"
	"github.com/sprig-lang/sprig/internal/engine/commands"
	"github.com/sprig-lang/sprig/internal/engine/node"
	"github.com/sprig-lang/sprig/internal/host"
	"github.com/sprig-lang/sprig/internal/namespace"
	"github.com/sprig-lang/sprig/internal/reader"
)

const (
	// Core is the namespace holding natives, macros, and the boot script.
	Core = "sprig.core"
	// User is the namespace current after start up unless told otherwise.
	User = "user"
)

// Options configures a new engine.
type Options struct {
	Logger    *slog.Logger // Receives a trace of analyzed forms, if set.
	Namespace string       // Namespace made current after boot.
	Out       io.Writer    // Destination for print and friends.
}

// T (engine) is a facade in front of the machinery for evaluating sprig code.
type T struct {
	analyzer *analyzer.T
	host     *host.Registry
	log      *slog.Logger
	store    *namespace.Store
}

// New creates a new T with the core namespace installed and booted.
func New(o Options) (*T, error) {
	if o.Out == nil {
		o.Out = os.Stdout
	}

	if o.Namespace == "" {
		o.Namespace = User
	}

	store := namespace.NewStore(Core)
	registry := host.New()

	e := &T{
		analyzer: analyzer.New(store, registry),
		host:     registry,
		log:      o.Logger,
		store:    store,
	}

	env := &commands.Env{
		Eval:   e.Eval,
		Expand: e.analyzer.Macroexpand1,
		Host:   registry,
		Out:    o.Out,
		Store:  store,
	}

	core := store.Core()

	for k, fn := range commands.Functions(env) {
		core.LookupOrIntern(k, true).Set(node.NewNative(k, fn))
	}

	for k, fn := range commands.Macros() {
		v := core.LookupOrIntern(k, true)
		v.Set(node.NewNative(k, fn))
		v.SetMacro(true)
	}

	if _, err := e.EvalString(boot.Name, boot.Script()); err != nil {
		return nil, errorx.Decorate(err, "while booting")
	}

	store.InNamespace(o.Namespace)

	return e, nil
}

// Eval analyzes and runs one top-level form.
func (e *T) Eval(form any) (any, error) {
	m, err := e.analyzer.Analyze(form)
	if err != nil {
		if e.log != nil {
			e.log.Debug("rejected", "ns", e.Namespace(), "form", literal.String(form), "error", failure.Message(err))
		}

		return nil, err
	}

	if e.log != nil {
		e.log.Debug("analyzed", "ns", e.Namespace(), "form", literal.String(form), "slots", m.Slots)
	}

	return m.Call()
}

// EvalString reads every form in text and evaluates each in turn. It
// returns the value of the last form or the first error.
func (e *T) EvalString(name, text string) (any, error) {
	forms, err := reader.ReadAll(name, text)
	if err != nil {
		return nil, err
	}

	var v any

	for _, form := range forms {
		v, err = e.Eval(form)
		if err != nil {
			return nil, err
		}
	}

	return v, nil
}

// Load evaluates the file at path.
func (e *T) Load(path string) (any, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, failure.Interop.Wrap(err, "load")
	}

	return e.EvalString(path, string(b))
}

// Namespace returns the name of the current namespace.
func (e *T) Namespace() string {
	return e.store.Current().Text()
}

// Define binds name to v in the current namespace.
func (e *T) Define(name string, v any) {
	e.store.Current().LookupOrIntern(name, true).Set(v)
}

// Host returns the engine's host class registry.
func (e *T) Host() *host.Registry {
	return e.host
}

// Names returns the sorted names visible, unqualified, from the current
// namespace.
func (e *T) Names() []string {
	current := e.store.Current()
	names := current.Names()

	core := e.store.Core()
	if core != current {
		for _, k := range core.Names() {
			if !core.Lookup(k).IsPrivate() {
				names = append(names, k)
			}
		}
	}

	sort.Strings(names)

	return slices.Compact(names)
}
