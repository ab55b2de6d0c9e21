// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

// Package value defines an in-memory representation of JSON values, a parser
// that constructs values from JSON source, and a Writer that renders values
// as JSON text.
package value

import "fmt"

// Tag identifies the variant of a Value.
type Tag byte

// Constants defining the valid Tag values.
const (
	TagInvalid Tag = iota
	TagNull
	TagTrue
	TagFalse
	TagNumber
	TagString
	TagObject
	TagArray
)

var tagStr = [...]string{
	TagInvalid: "invalid",
	TagNull:    "null",
	TagTrue:    "true",
	TagFalse:   "false",
	TagNumber:  "number",
	TagString:  "string",
	TagObject:  "object",
	TagArray:   "array",
}

func (t Tag) String() string {
	if int(t) >= len(tagStr) {
		return tagStr[TagInvalid]
	}
	return tagStr[t]
}

// A Value is an arbitrary JSON value. The concrete type of a Value is one of
// Null, Bool, *Number, String, *Object, or *Array, and Tag reports which.
type Value interface {
	Tag() Tag
}

// Null represents the null constant.
type Null struct{}

// Tag satisfies the Value interface.
func (Null) Tag() Tag { return TagNull }

// A Bool is a Boolean constant, true or false.
type Bool bool

// Tag satisfies the Value interface.
func (b Bool) Tag() Tag {
	if b {
		return TagTrue
	}
	return TagFalse
}

// A String is a string value. Its contents are the decoded text, not the
// quoted JSON form.
type String string

// Tag satisfies the Value interface.
func (String) Tag() Tag { return TagString }

// NumberKind identifies the representation of a Number.
type NumberKind byte

// Constants defining the valid NumberKind values.
const (
	InvalidNumber NumberKind = iota // not a valid number
	Int                             // signed integer
	Uint                            // unsigned integer
	Float                           // floating-point
)

var numberKindStr = [...]string{
	InvalidNumber: "invalid",
	Int:           "int",
	Uint:          "uint",
	Float:         "float",
}

func (k NumberKind) String() string {
	if int(k) >= len(numberKindStr) {
		return numberKindStr[InvalidNumber]
	}
	return numberKindStr[k]
}

// A Number is a numeric value. The zero Number is invalid.
type Number struct {
	kind NumberKind
	i    int64
	u    uint64
	f    float64
}

// Tag satisfies the Value interface.
func (*Number) Tag() Tag { return TagNumber }

// NewInt returns a signed integer Number with value v.
func NewInt(v int64) *Number { return &Number{kind: Int, i: v} }

// NewUint returns an unsigned integer Number with value v.
func NewUint(v uint64) *Number { return &Number{kind: Uint, u: v} }

// NewFloat returns a floating-point Number with value v.
func NewFloat(v float64) *Number { return &Number{kind: Float, f: v} }

// Kind reports the representation of n.
func (n *Number) Kind() NumberKind { return n.kind }

// Int64 returns the value of a signed integer Number.
// It panics if n is not of kind Int.
func (n *Number) Int64() int64 { n.mustBe(Int); return n.i }

// Uint64 returns the value of an unsigned integer Number.
// It panics if n is not of kind Uint.
func (n *Number) Uint64() uint64 { n.mustBe(Uint); return n.u }

// Float64 returns the value of a floating-point Number.
// It panics if n is not of kind Float.
func (n *Number) Float64() float64 { n.mustBe(Float); return n.f }

func (n *Number) mustBe(k NumberKind) {
	if n.kind != k {
		panic(fmt.Sprintf("number is %v, not %v", n.kind, k))
	}
}

// An Object is a collection of key-value members. The order of members is
// preserved, and keys need not be unique.
type Object struct {
	Members []*Member
}

// Tag satisfies the Value interface.
func (*Object) Tag() Tag { return TagObject }

// Find returns the first member of o with the given key, or nil.
func (o *Object) Find(key string) *Member {
	for _, m := range o.Members {
		if string(m.Key) == key {
			return m
		}
	}
	return nil
}

// A Member is a single key-value pair belonging to an Object.
type Member struct {
	Key   String
	Value Value
}

// An Array is a sequence of values.
type Array struct {
	Values []Value
}

// Tag satisfies the Value interface.
func (*Array) Tag() Tag { return TagArray }

// Field constructs an object member with the given key and value.
func Field(key string, val Value) *Member {
	return &Member{Key: String(key), Value: val}
}

// ObjectOf constructs an object from the given members.
func ObjectOf(mems ...*Member) *Object { return &Object{Members: mems} }

// ArrayOf constructs an array from the given values.
func ArrayOf(vals ...Value) *Array { return &Array{Values: vals} }
