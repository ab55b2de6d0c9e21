// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jtext

import "strconv"

// numberBufSize is the capacity of the number literal buffer, counting a
// terminator. Literals of numberBufSize bytes or longer are rejected.
const numberBufSize = 1024

// numState is a state of the number automaton.
type numState byte

const (
	numStart numState = iota
	numMinus
	numIntZero
	numIntDigit
	numIntDigit19
	numDecPoint
	numFracDigit
	numE
	numEPlus
	numEMinus
	numEDigit
	numDone
	numError
)

// numClass is an input event of the number automaton.
type numClass byte

const (
	numOther   numClass = iota
	numZero             // 0
	numDigit19          // 1-9
	numSignM            // -
	numSignP            // +
	numPoint            // .
	numExp              // e E
)

func classifyNum(ch rune) numClass {
	switch {
	case ch == '0':
		return numZero
	case '1' <= ch && ch <= '9':
		return numDigit19
	case ch == '-':
		return numSignM
	case ch == '+':
		return numSignP
	case ch == '.':
		return numPoint
	case ch == 'e' || ch == 'E':
		return numExp
	}
	return numOther
}

// numberStep is the transition function of the number automaton.
// It reports numDone where the literal may end before c, and numError where
// c is not allowed and the literal is incomplete.
func numberStep(st numState, c numClass) numState {
	isDigit := c == numZero || c == numDigit19
	switch st {
	case numStart:
		switch c {
		case numSignM:
			return numMinus
		case numZero:
			return numIntZero
		case numDigit19:
			return numIntDigit19
		}
		return numError

	case numMinus:
		switch c {
		case numZero:
			return numIntZero
		case numDigit19:
			return numIntDigit19
		}
		return numError

	case numIntZero:
		switch {
		case c == numPoint:
			return numDecPoint
		case c == numExp:
			return numE
		case isDigit:
			return numError // redundant leading zero
		}
		return numDone

	case numIntDigit, numIntDigit19:
		switch {
		case c == numPoint:
			return numDecPoint
		case c == numExp:
			return numE
		case isDigit:
			return numIntDigit
		}
		return numDone

	case numDecPoint:
		if isDigit {
			return numFracDigit
		}
		return numError

	case numFracDigit:
		switch {
		case c == numExp:
			return numE
		case isDigit:
			return numFracDigit
		}
		return numDone

	case numE:
		switch {
		case c == numSignM:
			return numEMinus
		case c == numSignP:
			return numEPlus
		case isDigit:
			return numEDigit
		}
		return numError

	case numEPlus, numEMinus:
		if isDigit {
			return numEDigit
		}
		return numError

	case numEDigit:
		if isDigit {
			return numEDigit
		}
		return numDone
	}
	return numError
}

// NumberType classifies the numeric payload of a token.
type NumberType byte

// Constants defining the valid NumberType values.
const (
	NumNone  NumberType = iota // no numeric value
	NumInt                     // integer: no fraction or exponent
	NumFloat                   // number with fraction and/or exponent
)

var numTypeStr = [...]string{NumNone: "none", NumInt: "int", NumFloat: "float"}

func (n NumberType) String() string {
	if int(n) >= len(numTypeStr) {
		return numTypeStr[NumNone]
	}
	return numTypeStr[n]
}

// readNumber consumes the longest valid number literal from src into buf, and
// reports its type. The rune following the literal is pushed back.
func readNumber(src Source, buf []byte) ([]byte, NumberType, error) {
	st, typ := numStart, NumInt
	for {
		ch := src.Next()
		switch st = numberStep(st, classifyNum(ch)); st {
		case numError:
			if ch == EOF {
				return buf, NumNone, NumberInvalid.errorf("incomplete number %q", buf)
			}
			return buf, NumNone, NumberInvalid.errorf("unexpected %q after %q", ch, buf)
		case numDone:
			src.Unread()
			return buf, typ, nil
		case numDecPoint, numE:
			typ = NumFloat
		}
		buf = append(buf, byte(ch))
		if len(buf) == numberBufSize {
			return buf, NumNone, NumberOverflow.errorf("more than %d bytes", numberBufSize-1)
		}
	}
}

// parseNumber converts a literal accepted by readNumber to its value.
func parseNumber(text []byte, typ NumberType) (int64, float64, error) {
	switch typ {
	case NumInt:
		v, err := strconv.ParseInt(string(text), 10, 64)
		if err != nil {
			return 0, 0, kindError{kind: NumberConversionFailed, msg: err.Error()}
		}
		return v, 0, nil
	case NumFloat:
		v, err := strconv.ParseFloat(string(text), 64)
		if err != nil {
			return 0, 0, kindError{kind: NumberConversionFailed, msg: err.Error()}
		}
		return 0, v, nil
	}
	return 0, 0, NumberConversionFailed.errorf("no numeric value")
}
