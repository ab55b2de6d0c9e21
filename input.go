// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jtext

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"unicode/utf8"
)

// EOF is the rune returned by a Source when no further input is available,
// either because the input is exhausted or because the source has failed.
const EOF rune = -1

// Health describes the state of a Source.
type Health byte

// Constants defining the valid Health values.
const (
	Good Health = iota // input is available
	End                // the input is exhausted
	Bad                // the input has failed
)

var healthStr = [...]string{Good: "good", End: "end of input", Bad: "bad"}

func (h Health) String() string {
	if int(h) >= len(healthStr) {
		return fmt.Sprintf("Health(%d)", h)
	}
	return healthStr[h]
}

// A Source supplies runes to a Scanner one at a time.
type Source interface {
	// Next returns the next rune of the input, or EOF.
	Next() rune

	// Unread pushes back the rune most recently returned by Next, so that the
	// next call to Next returns it again. Only one rune may be pushed back.
	Unread()

	// Health reports the current state of the source.
	Health() Health

	// MarkBad puts the source into the Bad state. Once bad, a source does not
	// recover.
	MarkBad()

	// Location reports the location of the rune most recently returned by
	// Next. After Unread, it reports an empty span at the pushed-back rune.
	Location() Location
}

// ErrInvalidUTF8 is reported by an Input whose data are not valid UTF-8.
var ErrInvalidUTF8 = errors.New("invalid UTF-8 encoding")

// errMarkedBad is reported by an Input that was failed by its consumer.
var errMarkedBad = errors.New("input marked bad")

type cursor struct {
	off  int
	line int // 0-based
	col  int
}

func (c cursor) lineCol() LineCol { return LineCol{Line: c.line + 1, Column: c.col} }

// An Input is a Source that decodes UTF-8 text from an io.Reader.
type Input struct {
	r      *bufio.Reader
	health Health
	err    error

	last   rune // the rune most recently returned by Next
	pushed bool // last has been pushed back

	prev, cur, next cursor
}

// NewInput constructs an Input that consumes data from r.
func NewInput(r io.Reader) *Input {
	br, ok := r.(*bufio.Reader)
	if !ok {
		br = bufio.NewReader(r)
	}
	return &Input{r: br, last: EOF}
}

// Next implements part of the Source interface.
func (in *Input) Next() rune {
	if in.pushed {
		in.pushed = false
		in.prev, in.cur = in.cur, in.next
		return in.last
	}
	in.prev = in.cur
	if in.health != Good {
		in.last = EOF
		return EOF
	}

	ch, nb, err := in.r.ReadRune()
	if err == io.EOF {
		in.health = End
		in.last = EOF
		return EOF
	} else if err != nil {
		in.fail(err)
		return EOF
	} else if ch == utf8.RuneError && nb == 1 {
		in.fail(fmt.Errorf("offset %d: %w", in.cur.off, ErrInvalidUTF8))
		return EOF
	}

	in.cur.off += nb
	if ch == '\n' {
		in.cur.line++
		in.cur.col = 0
	} else {
		in.cur.col += nb
	}
	in.last = ch
	return ch
}

// Unread implements part of the Source interface. Calling Unread twice
// without an intervening Next has no further effect.
func (in *Input) Unread() {
	if in.pushed {
		return
	}
	in.pushed = true
	in.next, in.cur = in.cur, in.prev
}

// Health implements part of the Source interface.
func (in *Input) Health() Health { return in.health }

// MarkBad implements part of the Source interface.
func (in *Input) MarkBad() {
	if in.health != Bad {
		in.fail(errMarkedBad)
	}
}

// Location implements part of the Source interface.
func (in *Input) Location() Location {
	return Location{
		Span:  Span{Pos: in.prev.off, End: in.cur.off},
		First: in.prev.lineCol(),
		Last:  in.cur.lineCol(),
	}
}

// Err reports the error that caused in to become Bad, or nil.
func (in *Input) Err() error { return in.err }

func (in *Input) fail(err error) {
	in.health = Bad
	in.last = EOF
	if in.err == nil {
		in.err = err
	}
}
