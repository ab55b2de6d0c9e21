// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jtext

import "unicode/utf8"

// strState is a state of the string automaton.
type strState byte

const (
	strRegular strState = iota // ordinary characters
	strEscaped                 // after a backslash
	strUEscape                 // inside the hex digits of a \u escape
	strDone                    // closing quotation mark seen
)

// A stringDecoder decodes the body of a JSON string literal one rune at a
// time, starting after the opening quotation mark. Decoded text accumulates
// as UTF-8 in buf.
type stringDecoder struct {
	state strState
	buf   []byte

	nhex int    // hex digits seen in the current \u escape
	unit uint16 // value of the current \u escape
}

func (d *stringDecoder) reset() {
	d.state = strRegular
	d.buf = d.buf[:0]
	d.nhex, d.unit = 0, 0
}

func (d *stringDecoder) done() bool { return d.state == strDone }

// step advances the decoder by one rune.
func (d *stringDecoder) step(ch rune) error {
	switch d.state {
	case strRegular:
		return d.regular(ch)
	case strEscaped:
		return d.escaped(ch)
	case strUEscape:
		return d.uescape(ch)
	}
	return nil
}

func (d *stringDecoder) regular(ch rune) error {
	switch {
	case ch == '"':
		d.state = strDone
	case ch == '\\':
		d.state = strEscaped
	case 0 <= ch && ch <= 0x1f:
		return StringControlChar.errorf("%q", ch)
	default:
		d.buf = utf8.AppendRune(d.buf, ch)
	}
	return nil
}

// escapeValue maps the letter of a single-character escape to its value.
var escapeValue = [...]byte{
	'"':  '"',
	'/':  '/',
	'\\': '\\',
	'b':  '\b',
	'f':  '\f',
	'n':  '\n',
	'r':  '\r',
	't':  '\t',
}

func (d *stringDecoder) escaped(ch rune) error {
	if ch == 'u' {
		d.state = strUEscape
		return nil
	}
	if 0 <= ch && int(ch) < len(escapeValue) {
		if b := escapeValue[ch]; b != 0 {
			d.buf = append(d.buf, b)
			d.state = strRegular
			return nil
		}
	}
	return EscapeInvalid.errorf(`"\%c"`, ch)
}

func (d *stringDecoder) uescape(ch rune) error {
	v, ok := hexValue(ch)
	if !ok {
		return UnicodeEscapeInvalid.errorf("not a hex digit: %q", ch)
	}
	d.unit = d.unit<<4 | uint16(v)
	if d.nhex++; d.nhex < 4 {
		return nil
	}

	u := d.unit
	d.nhex, d.unit = 0, 0
	switch {
	case u == 0:
		return UnicodeEscapeZero
	case 0xd800 <= u && u <= 0xdfff:
		return UnicodeEscapeSurrogate.errorf(`"\u%04x"`, u)
	}
	// Outside the surrogate range this gives the 1, 2, or 3 byte encodings.
	d.buf = utf8.AppendRune(d.buf, rune(u))
	d.state = strRegular
	return nil
}

func hexValue(ch rune) (byte, bool) {
	switch {
	case '0' <= ch && ch <= '9':
		return byte(ch - '0'), true
	case 'a' <= ch && ch <= 'f':
		return byte(ch-'a') + 10, true
	case 'A' <= ch && ch <= 'F':
		return byte(ch-'A') + 10, true
	}
	return 0, false
}

// readString consumes the remainder of a string literal from src, whose
// opening quotation mark has already been read.
func readString(src Source, d *stringDecoder) error {
	d.reset()
	for !d.done() {
		ch := src.Next()
		if src.Health() != Good {
			return StringUnterminated
		}
		if err := d.step(ch); err != nil {
			return err
		}
	}
	return nil
}
