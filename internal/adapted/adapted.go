// Use of code in this package is governed by Go's BSD-style license.

// Package adapted contains functions adapted from Go's standard library.
//nolint:gomnd,nakedret,nlreturn,wsl
package adapted

import (
	"strconv"
	"unicode/utf8"
)

// ActualBytes converts any escape-sequence in s to the bytes they
// represent and returns the resulting sequence of actual bytes.
//
// The escapes understood are those of sprig string literals:
// \b \f \n \r \t \" \\, \uXXXX, and three-digit octal \ooo.
func ActualBytes(s string) (string, error) {
	buf := make([]byte, 0, len(s)) // Unescaped text is never longer.

	for len(s) > 0 {
		c, multibyte, ss, err := unquote(s)
		if err != nil {
			return "", err
		}

		s = ss

		if c < utf8.RuneSelf || !multibyte {
			buf = append(buf, byte(c))
		} else {
			buf = utf8.AppendRune(buf, c)
		}
	}

	return string(buf), nil
}

func unhex(b byte) (v rune, ok bool) {
	c := rune(b)
	switch {
	case '0' <= c && c <= '9':
		return c - '0', true
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10, true
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10, true
	}
	return
}

func unquote(s string) (value rune, multibyte bool, tail string, err error) {
	switch c := s[0]; {
	case c >= utf8.RuneSelf:
		r, size := utf8.DecodeRuneInString(s)
		return r, true, s[size:], nil
	case c != '\\':
		return rune(s[0]), false, s[1:], nil
	}

	if len(s) <= 1 {
		err = strconv.ErrSyntax
		return
	}
	c := s[1]
	s = s[2:]

	switch c {
	case 'b':
		value = '\b'
	case 'f':
		value = '\f'
	case 'n':
		value = '\n'
	case 'r':
		value = '\r'
	case 't':
		value = '\t'
	case 'u':
		if len(s) < 4 {
			err = strconv.ErrSyntax
			return
		}
		var v rune
		for j := 0; j < 4; j++ {
			x, ok := unhex(s[j])
			if !ok {
				err = strconv.ErrSyntax
				return
			}
			v = v<<4 | x
		}
		s = s[4:]
		value = v
		multibyte = true
	case '0', '1', '2', '3':
		v := rune(c) - '0'
		if len(s) < 2 {
			err = strconv.ErrSyntax
			return
		}
		for j := 0; j < 2; j++ {
			x := rune(s[j]) - '0'
			if x < 0 || x > 7 {
				err = strconv.ErrSyntax
				return
			}
			v = (v << 3) | x
		}
		s = s[2:]
		value = v
		multibyte = v >= utf8.RuneSelf
	case '\\', '"':
		value = rune(c)
	default:
		err = strconv.ErrSyntax
		return
	}
	tail = s
	return
}
