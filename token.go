// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jtext

import (
	"fmt"
	"strconv"
)

// Kind is the type of a lexical token in the JSON grammar.
type Kind byte

// Constants defining the valid Kind values.
const (
	Invalid    Kind = iota // invalid token
	LBrace                 // left brace "{"
	RBrace                 // right brace "}"
	LSquare                // left square bracket "["
	RSquare                // right square bracket "]"
	Comma                  // comma ","
	Colon                  // colon ":"
	True                   // constant: true
	False                  // constant: false
	Null                   // constant: null
	String                 // quoted string
	Number                 // number, integer or floating-point
	EndOfInput             // end of input
)

var kindNames = [...]string{
	Invalid:    "invalid token",
	LBrace:     `"{"`,
	RBrace:     `"}"`,
	LSquare:    `"["`,
	RSquare:    `"]"`,
	Comma:      `","`,
	Colon:      `":"`,
	True:       "true",
	False:      "false",
	Null:       "null",
	String:     "string",
	Number:     "number",
	EndOfInput: "end of input",
}

func (k Kind) String() string {
	if int(k) >= len(kindNames) {
		return kindNames[Invalid]
	}
	return kindNames[k]
}

// A Token is a single lexical unit of JSON text with its decoded payload.
// The zero Token is empty, with kind Invalid.
type Token struct {
	Kind Kind

	// Str is the decoded contents of a String token.
	Str string

	// NumType reports which of Int or Float holds the value of a Number
	// token, and is NumNone for other kinds.
	NumType NumberType
	Int     int64
	Float   float64

	// Text is the literal text of a Number token as written.
	Text string
}

// String renders a human-readable summary of t.
func (t Token) String() string {
	switch t.Kind {
	case String:
		return "string " + strconv.Quote(t.Str)
	case Number:
		return fmt.Sprintf("number %s (%v)", t.Text, t.NumType)
	}
	return t.Kind.String()
}

var structural = [...]Kind{
	'{': LBrace,
	'}': RBrace,
	'[': LSquare,
	']': RSquare,
	',': Comma,
	':': Colon,
}

func structuralKind(ch rune) (Kind, bool) {
	if 0 <= ch && int(ch) < len(structural) {
		if k := structural[ch]; k != Invalid {
			return k, true
		}
	}
	return Invalid, false
}
