// Copyright (C) 2024 The jsontree Authors. All Rights Reserved.

// Package jsontree provides the shared plumbing for a strict JSON parser
// that produces position-annotated syntax trees.
//
// The parser itself lives in the ast subpackage. This package defines the
// pieces every grammar recognizer depends on: the Span type describing the
// source extent of a node, the SyntaxError type reported for grammar
// violations, and the Cursor type that tracks the scan position over an
// input document.
//
// # Cursors
//
// A Cursor is a read head over an input string. Rune reports the character
// under the cursor without consuming it, Advance moves past it, and Expect
// consumes a specific required character or fails with a positioned error:
//
//	c := jsontree.NewCursor(`{"a": 1}`)
//	if err := c.Expect('{'); err != nil {
//	   log.Fatal(err)
//	}
//
// Each recognizer in the ast package consumes exactly one grammar production
// through a shared cursor, so the cursor position after a recognizer returns
// is always the end offset of the node it produced.
//
// # Errors
//
// All grammar violations are reported as *SyntaxError values carrying the
// byte offset at which scanning stopped. Errors are terminal: a failed parse
// leaves no partial state behind, and callers should treat any failure as
// "input is not valid JSON".
package jsontree
