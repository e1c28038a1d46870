// Released under an MIT license. See LICENSE.

// Package lexer provides a lexical scanner for sprig source text.
//
// The lexer adapts the state function approach used by Go's text/template
// lexer and described in detail in Rob Pike's talk "Lexical Scanning in Go".
// See https://talks.golang.org/2011/lex.slide for more information.
//
// Scanning is incremental. Text is handed to the lexer with Scan and tokens
// are pulled with Token. A token that is cut off by the end of the available
// text is finished when more text arrives.
package lexer

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/sprig-lang/sprig/internal/common/struct/loc"
	"github.com/sprig-lang/sprig/internal/common/struct/token"
)

// T holds the state of the scanner.
type T struct {
	bytes string   // Buffer being scanned.
	first int      // Index of the current token's first byte.
	index int      // Index of the current byte.
	queue []string // Buffers waiting to be scanned.
	saved action   // Escaped action.
	state action   // Current action.

	cursor loc.T // Location of the current byte.
	source loc.T // Location of the current token's first byte.

	label  string
	tokens []*token.T
}

// New creates a new T. Label can be a file name or other identifier.
func New(label string) *T {
	l := &T{cursor: loc.New(label), label: label}

	l.source = l.cursor
	l.state = skipWhitespace

	return l
}

// Label returns the name the lexer was created with.
func (l *T) Label() string {
	return l.label
}

// Pending returns true if the lexer holds text that is not yet a token.
func (l *T) Pending() bool {
	return len(l.queue) > 0 || l.first < len(l.bytes)
}

// Scan passes a text buffer to the lexer for scanning.
// If a buffer is currently being scanned, the new buffer will
// be appended to the list of buffers waiting to be scanned.
func (l *T) Scan(text string) {
	l.queue = append(l.queue, text)
}

// Text is used to return the text corresponding to the current token.
func (l *T) Text() string {
	return l.bytes[l.first:l.index]
}

// Token returns the next scanned token, or nil if no token is available.
func (l *T) Token() *token.T {
	for {
		if len(l.tokens) > 0 {
			t := l.tokens[0]
			l.tokens = l.tokens[1:]

			return t
		}

		l.gather()

		state := l.state(l)
		if state == nil {
			return nil
		}

		l.state = state
	}
}

type action func(*T) action

const eof = -1

func (l *T) accept(r token.Class, w int) {
	l.cursor.Advance(rune(r))
	l.index += w
}

func (l *T) emit(c token.Class, v string) {
	l.tokens = append(l.tokens, token.New(c, v, l.source))
	l.skip()
}

func (l *T) escape(escaped, a action) action {
	l.saved = escaped
	return a
}

func (l *T) gather() {
	if len(l.queue) == 0 {
		return
	}

	l.bytes = l.bytes[l.first:] + strings.Join(l.queue, "")
	l.index -= l.first
	l.first = 0
	l.queue = nil
}

func (l *T) peek() (token.Class, int) {
	r, w := rune(eof), 0
	if l.index < len(l.bytes) {
		r, w = utf8.DecodeRuneInString(l.bytes[l.index:])
	}
	return token.Class(r), w
}

func (l *T) resume() action {
	resumed := l.saved
	l.saved = nil
	return resumed
}

func (l *T) skip() {
	l.source = l.cursor
	l.first = l.index
}

// T states.

func afterHash(l *T) action {
	r, w := l.peek()

	switch r {
	case eof:
		return nil
	case '\'':
		l.accept(r, w)
		l.emit(token.VarQuote, l.Text())
	default:
		l.accept(r, w)
		l.emit(token.Error, "unsupported dispatch macro: "+l.Text())
	}

	return skipWhitespace
}

func escapeNextCharacter(l *T) action {
	r, w := l.peek()
	if r == eof {
		return nil
	}

	l.accept(r, w)
	return l.resume()
}

func scanAtom(l *T) action {
	for {
		r, w := l.peek()

		switch {
		case r == eof:
			return nil
		case delimiter(r):
			l.emit(token.Atom, l.Text())
			return skipWhitespace
		default:
			l.accept(r, w)
		}
	}
}

func scanString(l *T) action {
	for {
		r, w := l.peek()

		switch r {
		case eof:
			return nil
		case '"':
			l.accept(r, w)
			l.emit(token.String, l.Text())
			return skipWhitespace
		case '\\':
			l.accept(r, w)
			return l.escape(scanString, escapeNextCharacter)
		default:
			l.accept(r, w)
		}
	}
}

func skipComment(l *T) action {
	for {
		r, w := l.peek()

		switch r {
		case eof:
			return nil
		case '\n':
			l.accept(r, w)
			l.skip()
			return skipWhitespace
		default:
			l.accept(r, w)
		}
	}
}

func skipWhitespace(l *T) action {
	for {
		r, w := l.peek()

		switch {
		case r == eof:
			return nil
		case r == ',' || unicode.IsSpace(rune(r)):
			l.accept(r, w)
			l.skip()
		case r == ';':
			l.accept(r, w)
			return skipComment
		case strings.ContainsRune("()[]{}'", rune(r)):
			l.accept(r, w)
			l.emit(r, l.Text())
			return skipWhitespace
		case r == '#':
			l.accept(r, w)
			return afterHash
		case r == '"':
			l.accept(r, w)
			return scanString
		default:
			return scanAtom
		}
	}
}

// Helper functions (well, function).

func delimiter(r token.Class) bool {
	return unicode.IsSpace(rune(r)) || strings.ContainsRune(`,;()[]{}"`, rune(r))
}
