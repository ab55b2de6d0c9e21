// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jtext

import (
	"errors"
	"io"
)

// A Scanner reads lexical tokens from a Source. Each call to Scan advances
// the scanner to the next token, or reports an error.
//
// A Scanner that reports a syntax error marks its source bad, and every
// subsequent call to Scan reports the same error.
type Scanner struct {
	src Source
	tok Token
	err error

	nbuf []byte        // number literal buffer
	dec  stringDecoder // string automaton

	first LineCol // start of the current token
	pos   int
}

// NewScanner constructs a new lexical scanner that consumes input from r.
func NewScanner(r io.Reader) *Scanner { return NewSourceScanner(NewInput(r)) }

// NewSourceScanner constructs a new lexical scanner that consumes input from
// src.
func NewSourceScanner(src Source) *Scanner {
	return &Scanner{src: src, nbuf: make([]byte, 0, numberBufSize)}
}

// Scan advances s to the next token of the input, or reports an error.  At
// the end of the input, Scan succeeds with a token of kind EndOfInput.
//
// In case of a lexical error, Scan returns an error of concrete type
// [*SyntaxError]. If the source fails for any other reason, Scan returns the
// error reported by its Err method, if it has one.
func (s *Scanner) Scan() error {
	s.tok = Token{}
	if s.err != nil {
		return s.err
	}
	if s.src.Health() == Bad {
		return s.setErr(s.sourceErr())
	}

	ch := s.src.Next()
	for isSpace(ch) {
		ch = s.src.Next()
	}
	if s.src.Health() == Bad {
		return s.setErr(s.sourceErr())
	}
	loc := s.src.Location()
	s.first, s.pos = loc.First, loc.Pos

	if err := s.scanToken(ch); err != nil {
		return s.fail(err)
	}
	return nil
}

// Token returns the current token. It is empty before the first call to Scan,
// and after Scan reports an error.
func (s *Scanner) Token() Token { return s.tok }

// Err returns the error that terminated scanning, or nil.
func (s *Scanner) Err() error { return s.err }

// Location returns the location of the current token.
func (s *Scanner) Location() Location {
	end := s.src.Location()
	return Location{
		Span:  Span{Pos: s.pos, End: end.End},
		First: s.first,
		Last:  end.Last,
	}
}

// scanToken dispatches on the first rune of a token.
func (s *Scanner) scanToken(ch rune) error {
	if k, ok := structuralKind(ch); ok {
		s.tok.Kind = k
		return nil
	}
	switch ch {
	case EOF:
		s.tok.Kind = EndOfInput
		return nil
	case 't':
		s.tok.Kind = True
		return s.scanLiteral("true")
	case 'f':
		s.tok.Kind = False
		return s.scanLiteral("false")
	case 'n':
		s.tok.Kind = Null
		return s.scanLiteral("null")
	case '"':
		s.tok.Kind = String
		return s.scanString()
	case '-', '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		s.src.Unread()
		s.tok.Kind = Number
		return s.scanNumber()
	}
	return TokenInvalid.errorf("unexpected %q", ch)
}

// scanLiteral matches the remaining runes of word, whose first rune has
// already been consumed.
func (s *Scanner) scanLiteral(word string) error {
	for _, want := range word[1:] {
		if ch := s.src.Next(); ch != want {
			return LiteralInvalid.errorf("got %q, want %q in %q", ch, want, word)
		}
	}
	return nil
}

func (s *Scanner) scanString() error {
	if err := readString(s.src, &s.dec); err != nil {
		return err
	}
	s.tok.Str = string(s.dec.buf)
	return nil
}

func (s *Scanner) scanNumber() error {
	text, typ, err := readNumber(s.src, s.nbuf[:0])
	s.nbuf = text[:0]
	if err != nil {
		return err
	}
	iv, fv, err := parseNumber(text, typ)
	if err != nil {
		return err
	}
	s.tok.NumType, s.tok.Int, s.tok.Float = typ, iv, fv
	s.tok.Text = string(text)
	return nil
}

func (s *Scanner) setErr(err error) error {
	s.err = err
	return err
}

// fail records a lexical error at the current location of the source, and
// marks the source as bad so that no further tokens are read. If the source
// itself failed, its error is reported instead.
func (s *Scanner) fail(err error) error {
	s.tok = Token{}
	if s.src.Health() == Bad {
		return s.setErr(s.sourceErr())
	}
	s.src.MarkBad()
	return s.setErr(&SyntaxError{
		Location: s.src.Location(),
		Kind:     kindOf(err),
		err:      err,
	})
}

// errSourceFailed is reported when a bad source does not say why.
var errSourceFailed = errors.New("input source failed")

func (s *Scanner) sourceErr() error {
	if es, ok := s.src.(interface{ Err() error }); ok {
		if err := es.Err(); err != nil {
			return err
		}
	}
	return errSourceFailed
}

func isSpace(ch rune) bool {
	return ch == ' ' || ch == '\r' || ch == '\n' || ch == '\t'
}
