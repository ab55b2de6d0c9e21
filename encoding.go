// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jtext

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/creachadair/jtext/internal/escape"

	"go4.org/mem"
)

// Quote encodes src as a JSON string value. The contents are escaped and
// double quotation marks are added.
func Quote(src string) string {
	return string(escape.AppendQuote(nil, mem.S(src)))
}

// Unquote decodes a JSON string value. Double quotation marks are removed,
// and escape sequences are replaced with their unescaped equivalents.
//
// Unquote applies the same rules as the Scanner, and reports an error of the
// same kind the Scanner would for a malformed string.
func Unquote(src string) (string, error) {
	body, ok := strings.CutPrefix(src, `"`)
	if !ok {
		return "", errors.New("missing quotations")
	}
	var d stringDecoder
	for i, ch := range body {
		if ch == utf8.RuneError {
			if _, n := utf8.DecodeRuneInString(body[i:]); n == 1 {
				return "", fmt.Errorf("offset %d: %w", i+1, ErrInvalidUTF8)
			}
		}
		if err := d.step(ch); err != nil {
			return "", err
		} else if d.done() {
			if i+1 != len(body) {
				return "", errors.New("extra data after closing quotation")
			}
			return string(d.buf), nil
		}
	}
	return "", StringUnterminated
}
