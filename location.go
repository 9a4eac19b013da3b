// Copyright (C) 2024 The jsontree Authors. All Rights Reserved.

package jsontree

// A Span describes a contiguous span of a source input.
type Span struct {
	Pos int // the start offset, 0-based
	End int // the end offset, 0-based (noninclusive)
}

// Contains reports whether s fully contains t.
func (s Span) Contains(t Span) bool { return s.Pos <= t.Pos && t.End <= s.End }

// Len reports the length of the span in bytes.
func (s Span) Len() int { return s.End - s.Pos }
