// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jtext

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a lexical error. Each kind is itself an error, so
// callers may check for a kind using errors.Is:
//
//	if errors.Is(err, jtext.StringControlChar) { ... }
type ErrorKind int

// Constants defining the kinds of lexical error reported by a Scanner.
const (
	NumberInvalid          ErrorKind = iota + 1 // malformed number literal
	NumberOverflow                              // number literal too long
	NumberConversionFailed                      // literal not representable
	StringUnterminated                          // input ended inside a string
	StringControlChar                           // raw control character in a string
	EscapeInvalid                               // unknown \-escape
	UnicodeEscapeInvalid                        // non-hex digit in \u escape
	UnicodeEscapeZero                           // \u0000
	UnicodeEscapeSurrogate                      // \ud800 through \udfff
	LiteralInvalid                              // malformed true, false, or null
	TokenInvalid                                // unexpected leading character
)

var kindStr = [...]string{
	NumberInvalid:          "invalid number",
	NumberOverflow:         "number literal too long",
	NumberConversionFailed: "number out of range",
	StringUnterminated:     "unterminated string",
	StringControlChar:      "unescaped control character in string",
	EscapeInvalid:          "invalid escape sequence",
	UnicodeEscapeInvalid:   "invalid Unicode escape",
	UnicodeEscapeZero:      "Unicode escape of zero code point",
	UnicodeEscapeSurrogate: "Unicode escape of surrogate code point",
	LiteralInvalid:         "invalid literal",
	TokenInvalid:           "invalid token",
}

// Error satisfies the error interface.
func (k ErrorKind) Error() string {
	if k <= 0 || int(k) >= len(kindStr) {
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
	return kindStr[k]
}

// kindError attaches detail text to an error kind.
type kindError struct {
	kind ErrorKind
	msg  string
}

func (e kindError) Error() string { return e.kind.Error() + ": " + e.msg }

func (e kindError) Unwrap() error { return e.kind }

// errorf returns an error of the given kind with a formatted detail message.
func (k ErrorKind) errorf(msg string, args ...any) error {
	return kindError{kind: k, msg: fmt.Sprintf(msg, args...)}
}

// kindOf reports the ErrorKind of err, or 0 if err does not have one.
func kindOf(err error) ErrorKind {
	var k ErrorKind
	if errors.As(err, &k) {
		return k
	}
	return 0
}

// SyntaxError is the concrete type of lexical errors reported by a Scanner.
type SyntaxError struct {
	Location Location  // where the error was detected
	Kind     ErrorKind // what kind of error occurred

	err error
}

// Error satisfies the error interface.
func (s *SyntaxError) Error() string {
	return fmt.Sprintf("at %s: %v", s.Location.First, s.err)
}

// Unwrap supports error wrapping.
func (s *SyntaxError) Unwrap() error { return s.err }
