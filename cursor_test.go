// Copyright (C) 2024 The jsontree Authors. All Rights Reserved.

package jsontree_test

import (
	"errors"
	"testing"

	"github.com/parsekit/jsontree"
)

func TestCursor(t *testing.T) {
	c := jsontree.NewCursor("ab")

	if got := c.Rune(); got != 'a' {
		t.Errorf("Rune: got %q, want 'a'", got)
	}
	if c.AtEnd() {
		t.Error("AtEnd: got true, want false")
	}
	c.Advance()
	if got := c.Pos(); got != 1 {
		t.Errorf("Pos: got %d, want 1", got)
	}
	if got := c.Rune(); got != 'b' {
		t.Errorf("Rune: got %q, want 'b'", got)
	}
	c.Advance()
	if !c.AtEnd() {
		t.Error("AtEnd: got false, want true")
	}
	if got := c.Rune(); got != jsontree.EOF {
		t.Errorf("Rune at end: got %q, want EOF", got)
	}

	// Advancing past the end must not move the cursor.
	c.Advance()
	if got := c.Pos(); got != 2 {
		t.Errorf("Pos after advance at end: got %d, want 2", got)
	}
}

func TestCursor_multibyte(t *testing.T) {
	c := jsontree.NewCursor("é　x")
	if got := c.Rune(); got != 'é' {
		t.Errorf("Rune: got %q, want 'é'", got)
	}
	c.Advance()
	if got := c.Pos(); got != 2 {
		t.Errorf("Pos after 2-byte rune: got %d, want 2", got)
	}
	c.SkipSpace()
	if got := c.Rune(); got != 'x' {
		t.Errorf("Rune after SkipSpace: got %q, want 'x'", got)
	}
	if got := c.Pos(); got != 5 {
		t.Errorf("Pos after SkipSpace: got %d, want 5", got)
	}
}

func TestCursor_expect(t *testing.T) {
	c := jsontree.NewCursor("{}")
	if err := c.Expect('{'); err != nil {
		t.Fatalf("Expect '{': unexpected error: %v", err)
	}

	err := c.Expect(']')
	if err == nil {
		t.Fatal("Expect ']': got nil, want error")
	}
	var serr *jsontree.SyntaxError
	if !errors.As(err, &serr) {
		t.Fatalf("Expect ']': error is %T, want *SyntaxError", err)
	}
	if serr.Offset != 1 {
		t.Errorf("Error offset: got %d, want 1", serr.Offset)
	}
	// The cursor must not move on a failed expectation.
	if got := c.Pos(); got != 1 {
		t.Errorf("Pos after failed Expect: got %d, want 1", got)
	}

	if err := c.Expect('}'); err != nil {
		t.Fatalf("Expect '}': unexpected error: %v", err)
	}
	err = c.Expect('x')
	if !errors.As(err, &serr) {
		t.Fatalf("Expect at EOF: error is %T, want *SyntaxError", err)
	}
	if serr.Offset != 2 {
		t.Errorf("Error offset at EOF: got %d, want 2", serr.Offset)
	}
}

func TestSkipSpace(t *testing.T) {
	tests := []struct {
		input string
		pos   int // offset after skipping leading whitespace
	}{
		{"", 0},
		{"x", 0},
		{"  x", 2},
		{"\t\r\n\f\v x", 6},
		{" x", 2},
		{" x", 3},
		{"   x", 9},
		{"  x", 6},
		{"  　x", 9},
		{"\uFEFFx", 3}, // byte order mark
	}
	for _, tc := range tests {
		c := jsontree.NewCursor(tc.input)
		c.SkipSpace()
		if got := c.Pos(); got != tc.pos {
			t.Errorf("SkipSpace %q: got pos %d, want %d", tc.input, got, tc.pos)
		}
	}
}

func TestClassifiers(t *testing.T) {
	for _, r := range "\f\n\r\t\v          　\uFEFF" {
		if !jsontree.IsSpace(r) {
			t.Errorf("IsSpace(%q): got false, want true", r)
		}
	}
	for _, r := range "a0-​⁠x" { // zero-width space and word joiner are not whitespace
		if jsontree.IsSpace(r) {
			t.Errorf("IsSpace(%q): got true, want false", r)
		}
	}

	for _, r := range "0123456789" {
		if !jsontree.IsDigit(r) {
			t.Errorf("IsDigit(%q): got false, want true", r)
		}
	}
	if jsontree.IsDigit('a') || jsontree.IsDigit(jsontree.EOF) {
		t.Error("IsDigit accepted a non-digit")
	}
	if jsontree.IsDigitNonZero('0') {
		t.Error("IsDigitNonZero('0'): got true, want false")
	}
	if !jsontree.IsDigitNonZero('7') {
		t.Error("IsDigitNonZero('7'): got false, want true")
	}

	for _, r := range "09afAF" {
		if !jsontree.IsHexDigit(r) {
			t.Errorf("IsHexDigit(%q): got false, want true", r)
		}
	}
	for _, r := range "gG-é" {
		if jsontree.IsHexDigit(r) {
			t.Errorf("IsHexDigit(%q): got true, want false", r)
		}
	}
}
