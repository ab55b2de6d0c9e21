// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

// Package jtext implements a strict lexical scanner for JSON text.
//
// # Scanning
//
// The Scanner type converts a stream of runes into JSON tokens. Construct a
// scanner from an io.Reader and call its Scan method to advance through the
// input. Scan reports nil and updates the current token, or reports an error:
//
//	s := jtext.NewScanner(input)
//	for {
//	   if err := s.Scan(); err != nil {
//	      log.Fatalf("Scan failed: %v", err)
//	   }
//	   tok := s.Token()
//	   if tok.Kind == jtext.EndOfInput {
//	      break
//	   }
//	   log.Printf("Next token: %v", tok)
//	}
//
// String tokens are decoded as they are scanned, and number tokens are
// converted to an int64 (NumInt) or a float64 (NumFloat) according to whether
// the literal has a fraction or exponent.
//
// The scanner accepts only RFC 8259 JSON: there are no comments, no trailing
// commas, and no relaxed number or string syntax. In addition, \u escapes
// for the zero code point or for UTF-16 surrogates are rejected, so
// characters outside the Basic Multilingual Plane must be written literally.
//
// # Errors
//
// A lexical error is reported as a [*SyntaxError] giving the location where
// it was detected. Its Kind field, also reachable through errors.Is, tells
// what went wrong:
//
//	if errors.Is(err, jtext.UnicodeEscapeSurrogate) { ... }
//
// After an error, a Scanner marks its input bad and does not recover: every
// later call to Scan reports the same error.
//
// # Sources
//
// A Scanner reads runes from a Source. The Input type implements Source for
// UTF-8 text from an io.Reader, with one rune of pushback and line and column
// tracking. Other implementations may be provided with NewSourceScanner.
package jtext
