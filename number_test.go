// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jtext

import (
	"strings"
	"testing"
)

// numberLiterals generates valid number literals from combinations of the
// optional parts of the number grammar.
func numberLiterals() []string {
	var out []string
	for _, sign := range []string{"", "-"} {
		for _, whole := range []string{"0", "1", "9", "10", "123456789", "900"} {
			for _, frac := range []string{"", ".0", ".5", ".000", ".0123456789"} {
				for _, exp := range []string{"", "e0", "E1", "e+2", "E-3", "e010", "E+00"} {
					out = append(out, sign+whole+frac+exp)
				}
			}
		}
	}
	return out
}

func TestNumberAutomaton(t *testing.T) {
	for _, lit := range numberLiterals() {
		// Each literal is followed by a delimiter, which must be pushed back.
		src := NewInput(strings.NewReader(lit + ","))
		text, typ, err := readNumber(src, nil)
		if err != nil {
			t.Errorf("readNumber(%q): unexpected error: %v", lit, err)
			continue
		}
		if string(text) != lit {
			t.Errorf("readNumber(%q): got text %q", lit, text)
		}
		want := NumInt
		if strings.ContainsAny(lit, ".eE") {
			want = NumFloat
		}
		if typ != want {
			t.Errorf("readNumber(%q): got type %v, want %v", lit, typ, want)
		}
		if ch := src.Next(); ch != ',' {
			t.Errorf("readNumber(%q): next rune is %q, want ','", lit, ch)
		}
	}
}

func TestNumberStep(t *testing.T) {
	// Walk the automaton over each input and check the final state. The last
	// rune of each input is the one that decides the outcome.
	tests := []struct {
		input string
		want  numState
	}{
		{"0 ", numDone},
		{"00", numError},
		{"01", numError},
		{"-0x", numDone},
		{"-a", numError},
		{"12a", numDone},
		{"1.x", numError},
		{"1.5x", numDone},
		{"1ex", numError},
		{"1e+x", numError},
		{"1e-x", numError},
		{"1e9x", numDone},
		{"1.5e", numE},
		{"-", numMinus},
		{"+", numError},
	}
	for _, test := range tests {
		st := numStart
		for _, ch := range test.input {
			st = numberStep(st, classifyNum(ch))
			if st == numDone || st == numError {
				break
			}
		}
		if st != test.want {
			t.Errorf("Input %q: got state %d, want %d", test.input, st, test.want)
		}
	}
}

func TestNumberStepTerminal(t *testing.T) {
	// Done and Error have no outgoing transitions.
	for c := numOther; c <= numExp; c++ {
		for _, st := range []numState{numDone, numError} {
			if got := numberStep(st, c); got != numError {
				t.Errorf("numberStep(%d, %d): got %d, want %d", st, c, got, numError)
			}
		}
	}
}

func TestParseNumber(t *testing.T) {
	if iv, _, err := parseNumber([]byte("-42"), NumInt); err != nil || iv != -42 {
		t.Errorf("parseNumber(-42): got %v, %v", iv, err)
	}
	if _, fv, err := parseNumber([]byte("2.5e-1"), NumFloat); err != nil || fv != 0.25 {
		t.Errorf("parseNumber(2.5e-1): got %v, %v", fv, err)
	}
	if _, _, err := parseNumber([]byte("1"), NumNone); kindOf(err) != NumberConversionFailed {
		t.Errorf("parseNumber(NumNone): got %v, want %v", err, NumberConversionFailed)
	}
}
