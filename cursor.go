// Copyright (C) 2024 The jsontree Authors. All Rights Reserved.

package jsontree

import "unicode/utf8"

// EOF is the sentinel reported by Cursor.Rune when the input is exhausted.
const EOF rune = -1

// A Cursor is a mutable scan position over an input string. The zero value
// is a cursor over the empty input; use NewCursor to scan a document.
//
// Offsets are byte offsets. The cursor decodes runes, so multi-byte
// characters (including the non-ASCII whitespace accepted between values)
// advance by their encoded width.
type Cursor struct {
	src string
	pos int
}

// NewCursor constructs a cursor positioned at the start of src.
func NewCursor(src string) *Cursor { return &Cursor{src: src} }

// Input returns the complete input text the cursor scans over.
func (c *Cursor) Input() string { return c.src }

// Pos reports the current byte offset of the cursor.
func (c *Cursor) Pos() int { return c.pos }

// AtEnd reports whether the cursor has consumed the entire input.
func (c *Cursor) AtEnd() bool { return c.pos >= len(c.src) }

// Rune reports the rune at the current position without consuming it, or
// EOF if the input is exhausted. Invalid UTF-8 is reported as
// utf8.RuneError and consumed one byte at a time.
func (c *Cursor) Rune() rune {
	if c.AtEnd() {
		return EOF
	}
	r, _ := utf8.DecodeRuneInString(c.src[c.pos:])
	return r
}

// Advance moves the cursor past the current rune. At the end of input it
// has no effect.
func (c *Cursor) Advance() {
	if c.AtEnd() {
		return
	}
	_, n := utf8.DecodeRuneInString(c.src[c.pos:])
	c.pos += n
}

// Expect consumes the rune want at the current position. If the current
// rune differs, or the input is exhausted, the cursor does not move and
// Expect reports a *SyntaxError at the current offset.
func (c *Cursor) Expect(want rune) error {
	got := c.Rune()
	if got == EOF {
		return Errorf(c.pos, "unexpected end of input, want %q", want)
	} else if got != want {
		return Errorf(c.pos, "unexpected character %q, want %q", got, want)
	}
	c.Advance()
	return nil
}

// SkipSpace advances the cursor past any run of insignificant whitespace.
func (c *Cursor) SkipSpace() {
	for IsSpace(c.Rune()) {
		c.Advance()
	}
}
