// Released under an MIT license. See LICENSE.

// Package commands provides the native functions and macros of the
// sprig.core namespace.
package commands

import (
	"io"

	"github.com/sprig-lang/sprig/internal/host"
	"github.com/sprig-lang/sprig/internal/namespace"
)

// Env holds what natives need from the engine that installs them.
type Env struct {
	Eval   func(form any) (any, error) // Analyzes and runs form.
	Expand func(form any) (any, error) // Expands form once.
	Host   *host.Registry
	Out    io.Writer
	Store  *namespace.Store
}

// Functions returns the native functions of the core namespace.
func Functions(e *Env) map[string]func([]any) (any, error) {
	return map[string]func([]any) (any, error){
		"*":             mul,
		"+":             add,
		"-":             sub,
		"<":             lt,
		"<=":            le,
		"=":             eq,
		"==":            numEq,
		">":             gt,
		">=":            ge,
		"alias":         e.alias,
		"apply":         apply,
		"assoc":         assoc,
		"class":         e.class,
		"conj":          conj,
		"cons":          cons,
		"count":         count,
		"deref":         deref,
		"empty?":        isEmpty,
		"eval":          e.eval,
		"ex-data":       exData,
		"ex-info":       exInfo,
		"ex-message":    exMessage,
		"first":         first,
		"gensym":        gensym,
		"get":           get,
		"hash-map":      hashMap,
		"identity":      identity,
		"in-ns":         e.inNs,
		"instance?":     isInstance,
		"keyword":       keyword,
		"list":          makeList,
		"macroexpand-1": e.macroexpand1,
		"next":          next,
		"nil?":          isNil,
		"not=":          notEq,
		"nth":           nth,
		"pr-str":        prStr,
		"print":         e.print,
		"println":       e.println,
		"prn":           e.prn,
		"quot":          quot,
		"rem":           rem,
		"rest":          rest,
		"seq":           seq,
		"set-macro!":    setMacro,
		"set-private!":  setPrivate,
		"slurp":         slurp,
		"spit":          spit,
		"str":           str,
		"symbol":        symbol,
		"type":          typeOf,
		"var-get":       deref,
		"vector":        vector,
	}
}

// Macros returns the native macros of the core namespace. Each is called
// with the whole form and an environment argument that is always nil.
func Macros() map[string]func([]any) (any, error) {
	return map[string]func([]any) (any, error){
		"defmacro": defmacro,
		"defn":     defn,
		"defn-":    defnPrivate,
		"fn":       fn,
		"let":      let,
		"ns":       ns,
	}
}
