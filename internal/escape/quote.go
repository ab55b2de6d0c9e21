// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

// Package escape handles quoting of JSON strings.
package escape

import "go4.org/mem"

var controlEsc = [...]byte{
	'\b': 'b',
	'\f': 'f',
	'\n': 'n',
	'\r': 'r',
	'\t': 't',
	' ':  ' ', // sentinel
}

var hexDigit = []byte("0123456789abcdef")

// needsEscape reports whether b must be escaped inside a JSON string.
func needsEscape(b byte) bool { return b < ' ' || b == '"' || b == '\\' }

// AppendQuote appends src to dst as a quoted JSON string, and returns the
// extended slice. Control characters, quotation marks, and backslashes are
// escaped; all other bytes are copied unchanged, without checking that src is
// valid UTF-8.
func AppendQuote(dst []byte, src mem.RO) []byte {
	dst = append(dst, '"')
	dst = AppendEscaped(dst, src)
	return append(dst, '"')
}

// AppendEscaped appends the escaped contents of src to dst without enclosing
// quotation marks, and returns the extended slice.
func AppendEscaped(dst []byte, src mem.RO) []byte {
	start := 0
	for i := 0; i < src.Len(); i++ {
		b := src.At(i)
		if !needsEscape(b) {
			continue
		}
		dst = mem.Append(dst, src.Slice(start, i))
		start = i + 1

		if b == '"' || b == '\\' {
			dst = append(dst, '\\', b)
		} else if c := controlEsc[b]; c != 0 {
			dst = append(dst, '\\', c)
		} else {
			dst = append(dst, '\\', 'u', '0', '0', hexDigit[b>>4], hexDigit[b&15])
		}
	}
	return mem.Append(dst, src.SliceFrom(start))
}
