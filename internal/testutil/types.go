// Package testutil defines support code for unit tests.
package testutil

import (
	"strings"

	"github.com/creachadair/jtext"
)

// ScanAll scans all the tokens of input, not including the final EndOfInput
// token. In case of error, it returns the tokens scanned before the error
// along with the error.
func ScanAll(input string) ([]jtext.Token, error) {
	s := jtext.NewScanner(strings.NewReader(input))
	var toks []jtext.Token
	for {
		if err := s.Scan(); err != nil {
			return toks, err
		}
		tok := s.Token()
		if tok.Kind == jtext.EndOfInput {
			return toks, nil
		}
		toks = append(toks, tok)
	}
}

// MustScanString scans input, which must consist of a single string token,
// and returns its decoded contents. It panics if scanning fails.
func MustScanString(input string) string {
	toks, err := ScanAll(input)
	if err != nil {
		panic(err)
	} else if len(toks) != 1 || toks[0].Kind != jtext.String {
		panic("input is not a single string")
	}
	return toks[0].Str
}
