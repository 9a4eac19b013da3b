// Copyright (C) 2024 The jsontree Authors. All Rights Reserved.

package jsontree

// IsSpace reports whether r is insignificant whitespace between values.
//
// The accepted set is wider than RFC 8259: besides space, tab, CR and LF it
// includes FF, VT, the Unicode space characters (NBSP, Ogham space mark, the
// en-quad through hair-space block, line and paragraph separators, narrow
// no-break space, medium mathematical space, ideographic space), and the
// byte order mark.
func IsSpace(r rune) bool {
	switch r {
	case '\f', '\n', '\r', '\t', '\v', ' ',
		' ', ' ', ' ', ' ',
		' ', ' ', '　', '\uFEFF':
		return true
	}
	return r >= ' ' && r <= ' '
}

// IsDigit reports whether r is a decimal digit.
func IsDigit(r rune) bool { return '0' <= r && r <= '9' }

// IsDigitNonZero reports whether r is a decimal digit other than zero.
func IsDigitNonZero(r rune) bool { return '1' <= r && r <= '9' }

// IsHexDigit reports whether r is a hexadecimal digit.
func IsHexDigit(r rune) bool {
	return ('0' <= r && r <= '9') || ('a' <= r && r <= 'f') || ('A' <= r && r <= 'F')
}
