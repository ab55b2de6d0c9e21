// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

package main

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/creachadair/jtext"
	"github.com/google/go-cmp/cmp"
	"go.uber.org/zap"
)

func TestProcess(t *testing.T) {
	tests := []struct {
		name  string
		s     settings
		input string
		want  string
	}{
		{"Indented", settings{Indent: "\t"}, `{"a":1,"b":[true,null]}`,
			"{\n\t\"a\": 1,\n\t\"b\": [\n\t\ttrue,\n\t\tnull\n\t]\n}\n"},
		{"Compact", settings{Compact: true}, `{"a":1,"b":[true,null]}`,
			`{"a": 1, "b": [true, null]}` + "\n"},
		{"IndentUnit", settings{Indent: "  "}, `[1,[]]`,
			"[\n  1,\n  []\n]\n"},
		{"Multiple", settings{Compact: true}, "1 \"x\"\n[2]", "1\n\"x\"\n[2]\n"},
		{"HuJSON", settings{Compact: true, HuJSON: true}, `{
  // comment
  "a": [1, 2,], /* more */
}`, `{"a": [1, 2]}` + "\n"},
		{"Tokens", settings{Tokens: true}, `{"a": -1.5}`,
			"1:0-1\t\"{\"\n" +
				"1:1-4\tstring \"a\"\n" +
				"1:4-5\t\":\"\n" +
				"1:6-10\tnumber -1.5 (float)\n" +
				"1:10-11\t\"}\"\n"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var buf strings.Builder
			if err := tc.s.process(zap.NewNop(), &buf, []byte(tc.input)); err != nil {
				t.Fatalf("process: unexpected error: %v", err)
			}
			if diff := cmp.Diff(tc.want, buf.String()); diff != "" {
				t.Errorf("Output (-want, +got):\n%s", diff)
			}
		})
	}
}

func TestProcessErrors(t *testing.T) {
	var s settings
	var buf strings.Builder
	err := s.process(zap.NewNop(), &buf, []byte(`{"a": // no comments}`))
	if !errors.Is(err, jtext.TokenInvalid) {
		t.Errorf("process: got %v, want %v", err, jtext.TokenInvalid)
	}

	s.Tokens = true
	err = s.process(zap.NewNop(), &buf, []byte(`[01]`))
	if !errors.Is(err, jtext.NumberInvalid) {
		t.Errorf("process: got %v, want %v", err, jtext.NumberInvalid)
	}
}

func TestCommand(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "input.json")
	if err := os.WriteFile(path, []byte(`[1, {"b": "x"}]`), 0600); err != nil {
		t.Fatal(err)
	}

	var buf strings.Builder
	cmd := newCommand(&buf)
	cmd.SetArgs([]string{"--compact", path})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute: unexpected error: %v", err)
	}
	if got, want := buf.String(), `[1, {"b": "x"}]`+"\n"; got != want {
		t.Errorf("Output: got %#q, want %#q", got, want)
	}

	cmd = newCommand(&buf)
	cmd.SetArgs([]string{filepath.Join(dir, "nonesuch.json")})
	if err := cmd.Execute(); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Execute: got %v, want %v", err, os.ErrNotExist)
	}
}
