// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package value

import (
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/creachadair/jtext"
)

// Parse parses and returns the JSON values from r. In case of error, any
// complete values already parsed are returned along with the error.
func Parse(r io.Reader) ([]Value, error) {
	p := newParser(r)
	var vs []Value
	for {
		v, err := p.parseOne()
		if err == io.EOF {
			return vs, nil
		} else if err != nil {
			return vs, err
		}
		vs = append(vs, v)
	}
}

// ParseSingle parses and returns a single JSON value from r. If r contains
// data after the value, apart from whitespace, it reports an error.
func ParseSingle(r io.Reader) (Value, error) {
	p := newParser(r)
	v, err := p.parseOne()
	if err == io.EOF {
		return nil, errors.New("no value found")
	} else if err != nil {
		return nil, err
	}
	if err := p.expectEnd(); err != nil {
		return nil, err
	}
	return v, nil
}

// ParseError is the concrete type of errors reported by the parser. Lexical
// errors from the scanner are wrapped, and may be recovered using errors.As
// with a target of type *jtext.SyntaxError.
type ParseError struct {
	Location jtext.LineCol
	Message  string

	err error
}

// Error satisfies the error interface.
func (p *ParseError) Error() string {
	return fmt.Sprintf("at %s: %s", p.Location, p.Message)
}

// Unwrap supports error wrapping.
func (p *ParseError) Unwrap() error { return p.err }

type parser struct {
	s *jtext.Scanner
}

func newParser(r io.Reader) *parser { return &parser{s: jtext.NewScanner(r)} }

func (p *parser) recoverParseError(errp *error) {
	if perr := recover(); perr != nil {
		if err, ok := perr.(*ParseError); ok {
			*errp = err
			return
		}
		panic(perr)
	}
}

// parseOne parses the next complete value, or reports io.EOF if the input
// has no further values.
func (p *parser) parseOne() (_ Value, err error) {
	defer p.recoverParseError(&err)

	if p.advance() == jtext.EndOfInput {
		return nil, io.EOF
	}
	return p.parseElement(), nil
}

func (p *parser) expectEnd() (err error) {
	defer p.recoverParseError(&err)
	p.advance(jtext.EndOfInput)
	return nil
}

// parseElement consumes a single value of any type.
// Precondition: the current token begins the value.
func (p *parser) parseElement() Value {
	switch tok := p.s.Token(); tok.Kind {
	case jtext.LBrace:
		return p.parseMembers()
	case jtext.LSquare:
		return p.parseElements()
	case jtext.True:
		return Bool(true)
	case jtext.False:
		return Bool(false)
	case jtext.Null:
		return Null{}
	case jtext.String:
		return String(tok.Str)
	case jtext.Number:
		if tok.NumType == jtext.NumInt {
			return NewInt(tok.Int)
		}
		return NewFloat(tok.Float)
	default:
		p.syntaxError(nil, "unexpected %v", tok.Kind)
		panic("unreachable")
	}
}

// parseMembers consumes zero or more key:value object members.
// Precondition: token == LBrace.
// Postcondition: token == RBrace.
func (p *parser) parseMembers() *Object {
	obj := new(Object)
	if p.advance(jtext.RBrace, jtext.String) == jtext.RBrace {
		return obj // empty object
	}
	for {
		key := String(p.s.Token().Str)
		p.advance(jtext.Colon)
		p.advance()
		obj.Members = append(obj.Members, &Member{Key: key, Value: p.parseElement()})

		if p.advance(jtext.RBrace, jtext.Comma) == jtext.RBrace {
			return obj
		}
		p.advance(jtext.String)
	}
}

// parseElements consumes zero or more comma-separated array values.
// Precondition: token == LSquare.
// Postcondition: token == RSquare.
func (p *parser) parseElements() *Array {
	arr := new(Array)
	if p.advance() == jtext.RSquare {
		return arr // empty array
	}
	for {
		arr.Values = append(arr.Values, p.parseElement())
		if p.advance(jtext.RSquare, jtext.Comma) == jtext.RSquare {
			return arr
		}
		p.advance()
	}
}

// advance scans the next token, which must be one of kinds if any are given.
func (p *parser) advance(kinds ...jtext.Kind) jtext.Kind {
	if err := p.s.Scan(); err != nil {
		var serr *jtext.SyntaxError
		if errors.As(err, &serr) {
			panic(&ParseError{Location: serr.Location.First, Message: serr.Unwrap().Error(), err: err})
		}
		p.syntaxError(err, "%v", err)
	}
	tok := p.s.Token().Kind
	if len(kinds) != 0 && !slices.Contains(kinds, tok) {
		p.syntaxError(nil, "%v", kindLabel(kinds, tok))
	}
	return tok
}

func (p *parser) syntaxError(err error, msg string, args ...any) {
	panic(&ParseError{
		Location: p.s.Location().First,
		Message:  fmt.Sprintf(msg, args...),
		err:      err,
	})
}

// kindLabel makes a human-readable summary string for the given token kinds.
func kindLabel(kinds []jtext.Kind, got jtext.Kind) string {
	var exp string
	if len(kinds) == 1 {
		exp = kinds[0].String()
	} else {
		last := len(kinds) - 1
		ss := make([]string, last)
		for i, k := range kinds[:last] {
			ss[i] = k.String()
		}
		exp = strings.Join(ss, ", ") + " or " + kinds[last].String()
	}
	return fmt.Sprintf("expected %s, got %v", exp, got)
}
