// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jtext_test

import (
	"errors"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/creachadair/jtext"
)

func TestInput(t *testing.T) {
	in := jtext.NewInput(strings.NewReader("aé\nb"))
	if h := in.Health(); h != jtext.Good {
		t.Fatalf("Health: got %v, want %v", h, jtext.Good)
	}

	next := func(want rune, loc string) {
		t.Helper()
		if got := in.Next(); got != want {
			t.Errorf("Next: got %q, want %q", got, want)
		}
		if got := in.Location().String(); got != loc {
			t.Errorf("Location after %q: got %s, want %s", want, got, loc)
		}
	}
	next('a', "1:0-1")
	next('é', "1:1-3")

	// Pushback returns the same rune again, at the same location.
	in.Unread()
	in.Unread() // no effect
	next('é', "1:1-3")
	next('\n', "1:3-2:0")
	next('b', "2:0-1")
	next(jtext.EOF, "2:1-1")
	if h := in.Health(); h != jtext.End {
		t.Errorf("Health: got %v, want %v", h, jtext.End)
	}

	in.Unread()
	next(jtext.EOF, "2:1-1")
	next(jtext.EOF, "2:1-1")
	if err := in.Err(); err != nil {
		t.Errorf("Err: got %v, want nil", err)
	}

	in.MarkBad()
	if h := in.Health(); h != jtext.Bad {
		t.Errorf("Health after MarkBad: got %v, want %v", h, jtext.Bad)
	}
}

func TestInputErrors(t *testing.T) {
	t.Run("ReadError", func(t *testing.T) {
		bad := errors.New("bad reader")
		in := jtext.NewInput(iotest.ErrReader(bad))
		if got := in.Next(); got != jtext.EOF {
			t.Errorf("Next: got %q, want EOF", got)
		}
		if h := in.Health(); h != jtext.Bad {
			t.Errorf("Health: got %v, want %v", h, jtext.Bad)
		}
		if err := in.Err(); !errors.Is(err, bad) {
			t.Errorf("Err: got %v, want %v", err, bad)
		}

		// The scanner reports the failure of the source.
		s := jtext.NewSourceScanner(in)
		if err := s.Scan(); !errors.Is(err, bad) {
			t.Errorf("Scan: got %v, want %v", err, bad)
		}
	})

	t.Run("InvalidUTF8", func(t *testing.T) {
		in := jtext.NewInput(strings.NewReader("a\xc0b"))
		in.Next()
		if got := in.Next(); got != jtext.EOF {
			t.Errorf("Next: got %q, want EOF", got)
		}
		if err := in.Err(); !errors.Is(err, jtext.ErrInvalidUTF8) {
			t.Errorf("Err: got %v, want %v", err, jtext.ErrInvalidUTF8)
		}
		if got := in.Next(); got != jtext.EOF {
			t.Errorf("Next after failure: got %q, want EOF", got)
		}
	})

	t.Run("MarkedBad", func(t *testing.T) {
		in := jtext.NewInput(strings.NewReader("[1]"))
		s := jtext.NewSourceScanner(in)
		in.MarkBad()
		if err := s.Scan(); err == nil {
			t.Error("Scan on bad source: got nil, want error")
		} else if tok := s.Token(); tok.Kind != jtext.Invalid {
			t.Errorf("Token: got %v, want empty", tok)
		}
	})

	t.Run("StringAtReadError", func(t *testing.T) {
		r := iotest.TimeoutReader(strings.NewReader(`"abc`))
		s := jtext.NewScanner(r)
		err := s.Scan()
		if !errors.Is(err, iotest.ErrTimeout) {
			t.Errorf("Scan: got %v, want %v", err, iotest.ErrTimeout)
		}
	})
}
