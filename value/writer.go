// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

package value

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/creachadair/jtext/internal/escape"

	"go4.org/mem"
)

// A Writer renders values as JSON text to an underlying io.Writer.
//
// Non-empty arrays and objects are rendered either indented, with one element
// per line, or compact, on a single line. A new Writer is indented, with a
// tab per level. The layout is a property of the Writer, and changing it does
// not affect any other Writer.
type Writer struct {
	w       io.Writer
	compact bool
	unit    string
}

// NewWriter constructs a Writer that renders values to w.
func NewWriter(w io.Writer) *Writer { return &Writer{w: w, unit: "\t"} }

// SetIndented selects the indented layout for w.
func (w *Writer) SetIndented() { w.compact = false }

// SetCompact selects the compact layout for w.
func (w *Writer) SetCompact() { w.compact = true }

// IsCompact reports whether w uses the compact layout.
func (w *Writer) IsCompact() bool { return w.compact }

// SetIndentUnit sets the text added for each level of indentation in the
// indented layout. The default is a single tab.
func (w *Writer) SetIndentUnit(unit string) { w.unit = unit }

// Write renders v to the underlying writer. It reports an error only if the
// underlying writer does.
//
// Write panics if v contains a nil Value or a Number of kind InvalidNumber.
// A Float that is NaN or infinite is written as NaN, +Inf, or -Inf, which is
// not valid JSON.
func (w *Writer) Write(v Value) error {
	bw := bufio.NewWriter(w.w)
	w.writeValue(bw, v)
	return bw.Flush()
}

// Format renders v in the indented layout and returns the result.
func Format(v Value) string { return format(v, false) }

// FormatCompact renders v in the compact layout and returns the result.
func FormatCompact(v Value) string { return format(v, true) }

func format(v Value, compact bool) string {
	var sb strings.Builder
	w := NewWriter(&sb)
	w.compact = compact
	w.Write(v) // writes to a strings.Builder do not fail
	return sb.String()
}

// writeValue renders v to out. Errors are not checked here: out is either a
// *bufio.Writer, whose errors are sticky and reported by Flush, or an
// indenter that forwards to one.
func (w *Writer) writeValue(out io.Writer, v Value) {
	if v == nil {
		panic("value: nil Value")
	}
	switch t := v.(type) {
	case Null:
		io.WriteString(out, "null")
	case Bool:
		io.WriteString(out, strconv.FormatBool(bool(t)))
	case *Number:
		out.Write(appendNumber(nil, t))
	case String:
		out.Write(escape.AppendQuote(nil, mem.S(string(t))))
	case *Array:
		writeContainer(w, out, "[]", t.Values, w.writeValue)
	case *Object:
		writeContainer(w, out, "{}", t.Members, w.writeMember)
	default:
		panic(fmt.Sprintf("value: unknown value type %T", v))
	}
}

func (w *Writer) writeMember(out io.Writer, m *Member) {
	out.Write(escape.AppendQuote(nil, mem.S(string(m.Key))))
	io.WriteString(out, ": ")
	w.writeValue(out, m.Value)
}

// writeContainer renders the items of an array or object between the given
// delimiters, in the layout selected for w.
func writeContainer[T any](w *Writer, out io.Writer, delim string, items []T, put func(io.Writer, T)) {
	if len(items) == 0 {
		io.WriteString(out, delim)
		return
	}
	if w.compact {
		io.WriteString(out, delim[:1])
		for i, item := range items {
			if i > 0 {
				io.WriteString(out, ", ")
			}
			put(out, item)
		}
		io.WriteString(out, delim[1:])
		return
	}

	io.WriteString(out, delim[:1]+"\n")
	in := &indenter{w: out, unit: []byte(w.unit), lineStart: true}
	for i, item := range items {
		if i > 0 {
			io.WriteString(in, ",\n")
		}
		put(in, item)
	}
	io.WriteString(out, "\n"+delim[1:])
}

// appendNumber appends the text of n to buf. Floating-point values are
// always written in fixed notation with six fractional digits.
func appendNumber(buf []byte, n *Number) []byte {
	switch n.kind {
	case Int:
		return strconv.AppendInt(buf, n.i, 10)
	case Uint:
		return strconv.AppendUint(buf, n.u, 10)
	case Float:
		return strconv.AppendFloat(buf, n.f, 'f', 6, 64)
	}
	panic("value: invalid number")
}

// An indenter is an io.Writer that adds one level of indentation to every
// line written through it. The indentation for a line is written just before
// its first byte other than a newline, so that empty lines are not indented.
// Indenters stack: writing through an indenter whose destination is another
// indenter adds two levels.
type indenter struct {
	w         io.Writer
	unit      []byte
	lineStart bool
}

func (in *indenter) Write(data []byte) (int, error) {
	var nw int
	for len(data) != 0 {
		if in.lineStart && data[0] != '\n' {
			if _, err := in.w.Write(in.unit); err != nil {
				return nw, err
			}
		}
		line := data
		if i := bytes.IndexByte(data, '\n'); i >= 0 {
			line = data[:i+1]
		}
		in.lineStart = line[len(line)-1] == '\n'
		n, err := in.w.Write(line)
		nw += n
		if err != nil {
			return nw, err
		}
		data = data[len(line):]
	}
	return nw, nil
}
