// Copyright (C) 2024 The jsontree Authors. All Rights Reserved.

// Package ast defines an abstract syntax tree for JSON values,
// and a parser that constructs syntax trees from JSON source.
//
// Every node records the half-open byte span of its own production in the
// original input, including delimiters such as quotes and brackets but
// excluding surrounding whitespace. Nodes are never modified once the
// parser returns; a tree may be shared freely between readers.
package ast

import (
	"errors"
	"strconv"
	"strings"

	"github.com/parsekit/jsontree"
)

// A Value is an arbitrary JSON value.
type Value interface{ Span() jsontree.Span }

func newSpan(pos, end int) jsontree.Span { return jsontree.Span{Pos: pos, End: end} }

// An Object is a collection of key-value members. Members preserve source
// order, and duplicate keys are legal at this level: every occurrence is
// retained, and Decode resolves duplicates in favor of the last.
type Object struct {
	pos, end int

	Members []*Member
}

// Span satisfies the Value interface.
func (o *Object) Span() jsontree.Span { return newSpan(o.pos, o.end) }

// Len reports the number of members in o.
func (o *Object) Len() int { return len(o.Members) }

// Find returns the first member of o whose key is key, or nil.
func (o *Object) Find(key string) *Member {
	for _, m := range o.Members {
		if m.Key.Text() == key {
			return m
		}
	}
	return nil
}

// A Member is a single key-value pair belonging to an Object. Its span
// runs from the first character of its key through the last character of
// its value.
type Member struct {
	pos, end int

	Key   *String
	Value Value
}

// Span satisfies the Value interface.
func (m *Member) Span() jsontree.Span { return newSpan(m.pos, m.end) }

// An Array is a sequence of values.
type Array struct {
	pos, end int

	Values []Value
}

// Span satisfies the Value interface.
func (a *Array) Span() jsontree.Span { return newSpan(a.pos, a.end) }

// Len reports the number of elements in a.
func (a *Array) Len() int { return len(a.Values) }

// A String is a string value. It holds the decoded content of the string;
// the raw escaped source text is not retained.
type String struct {
	pos, end int
	text     string
}

// Span satisfies the Value interface.
func (s *String) Span() jsontree.Span { return newSpan(s.pos, s.end) }

// Text returns the content of s with all escape sequences resolved.
func (s *String) Text() string { return s.text }

// Len reports the length of the content of s in bytes.
func (s *String) Len() int { return len(s.text) }

// A Number is a numeric value. It retains the decomposed lexical form of
// the number rather than a computed value, so arbitrarily long digit
// strings survive parsing intact; coercion to a float happens only in
// Float64 (and hence Decode).
type Number struct {
	pos, end int

	neg    bool
	digits string // integer part digits
	frac   string // fraction digits, empty if absent
	expNeg bool
	exp    string // exponent digits, empty if absent
}

// Span satisfies the Value interface.
func (n *Number) Span() jsontree.Span { return newSpan(n.pos, n.end) }

// Negative reports whether n carries a leading minus sign.
func (n *Number) Negative() bool { return n.neg }

// Integer returns the digits of the integer part of n.
func (n *Number) Integer() string { return n.digits }

// Fraction returns the digits of the fractional part of n, or "" if the
// number has no fraction.
func (n *Number) Fraction() string { return n.frac }

// ExpNegative reports whether the exponent of n carries a minus sign.
func (n *Number) ExpNegative() bool { return n.expNeg }

// Exponent returns the digits of the exponent of n, or "" if the number
// has no exponent.
func (n *Number) Exponent() string { return n.exp }

// Text returns the canonical lexical form of n, reassembled from its
// parts. An explicit positive exponent sign from the source is not
// preserved.
func (n *Number) Text() string {
	var buf strings.Builder
	if n.neg {
		buf.WriteByte('-')
	}
	buf.WriteString(n.digits)
	if n.frac != "" {
		buf.WriteByte('.')
		buf.WriteString(n.frac)
	}
	if n.exp != "" {
		buf.WriteByte('e')
		if n.expNeg {
			buf.WriteByte('-')
		}
		buf.WriteString(n.exp)
	}
	return buf.String()
}

// Float64 returns the value of n as a binary64 floating point number.
// Values outside the representable range lose precision accordingly, up to
// and including saturating at 0 or ±Inf.
func (n *Number) Float64() float64 {
	v, err := strconv.ParseFloat(n.Text(), 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		panic(err)
	}
	return v
}

// A Bool is a Boolean constant, true or false.
type Bool struct {
	pos, end int
	value    bool
}

// Span satisfies the Value interface.
func (b *Bool) Span() jsontree.Span { return newSpan(b.pos, b.end) }

// Value reports the truth value of b.
func (b *Bool) Value() bool { return b.value }

// Null represents the null constant.
type Null struct {
	pos, end int
}

// Span satisfies the Value interface.
func (z *Null) Span() jsontree.Span { return newSpan(z.pos, z.end) }
