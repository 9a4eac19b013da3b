// Copyright (C) 2024 The jsontree Authors. All Rights Reserved.

package ast

import (
	"github.com/parsekit/jsontree"
	"github.com/parsekit/jsontree/internal/escape"

	"go4.org/mem"
)

// Parse parses src as a single JSON document and returns its root value.
// The document must consist of exactly one value; anything other than
// whitespace before or after it is an error. All errors have concrete type
// *jsontree.SyntaxError.
func Parse(src string) (Value, error) {
	c := jsontree.NewCursor(src)
	v, err := parseValue(c)
	if err != nil {
		return nil, err
	}
	if !c.AtEnd() {
		return nil, jsontree.Errorf(c.Pos(), "unexpected character %q", c.Rune())
	}
	return v, nil
}

// ParseBytes parses data as a single JSON document. It is shorthand for
// Parse(string(data)).
func ParseBytes(data []byte) (Value, error) { return Parse(string(data)) }

// parseValue consumes one value of any type, along with the whitespace
// around it. It dispatches on the first significant character; each
// recognizer it delegates to consumes exactly its own production, so on
// return the cursor rests on the first character after the value and its
// trailing whitespace.
func parseValue(c *jsontree.Cursor) (Value, error) {
	c.SkipSpace()

	var v Value
	var err error
	switch r := c.Rune(); {
	case r == '{':
		v, err = parseObject(c)
	case r == '[':
		v, err = parseArray(c)
	case r == '"':
		v, err = parseString(c)
	case r == '-' || jsontree.IsDigit(r):
		v, err = parseNumber(c)
	case r == 't' || r == 'f':
		v, err = parseBool(c)
	case r == 'n':
		v, err = parseNull(c)
	case r == jsontree.EOF:
		return nil, jsontree.Errorf(c.Pos(), "unexpected end of input")
	default:
		return nil, jsontree.Errorf(c.Pos(), "invalid value")
	}
	if err != nil {
		return nil, err
	}
	c.SkipSpace()
	return v, nil
}

// parseObject consumes an object. Precondition: the cursor is on '{'.
func parseObject(c *jsontree.Cursor) (*Object, error) {
	obj := &Object{pos: c.Pos()}
	c.Advance()
	c.SkipSpace()
	if c.Rune() == '}' {
		c.Advance()
		obj.end = c.Pos()
		return obj, nil
	}
	for {
		// After '{' or ',' the only valid content is a member key. A dangling
		// comma fails here because '}' cannot start a key.
		key, err := parseString(c)
		if err != nil {
			return nil, err
		}
		c.SkipSpace()
		if err := c.Expect(':'); err != nil {
			return nil, err
		}
		val, err := parseValue(c)
		if err != nil {
			return nil, err
		}
		obj.Members = append(obj.Members, &Member{
			pos: key.pos, end: val.Span().End, Key: key, Value: val,
		})

		switch r := c.Rune(); r {
		case ',':
			c.Advance()
			c.SkipSpace()
		case '}':
			c.Advance()
			obj.end = c.Pos()
			return obj, nil
		case jsontree.EOF:
			return nil, jsontree.Errorf(c.Pos(), "unexpected end of input, want ',' or '}'")
		default:
			return nil, jsontree.Errorf(c.Pos(), "unexpected character %q, want ',' or '}'", r)
		}
	}
}

// parseArray consumes an array. Precondition: the cursor is on '['.
func parseArray(c *jsontree.Cursor) (*Array, error) {
	arr := &Array{pos: c.Pos()}
	c.Advance()
	c.SkipSpace()
	if c.Rune() == ']' {
		c.Advance()
		arr.end = c.Pos()
		return arr, nil
	}
	for {
		v, err := parseValue(c)
		if err != nil {
			return nil, err
		}
		arr.Values = append(arr.Values, v)

		switch r := c.Rune(); r {
		case ',':
			c.Advance()
		case ']':
			c.Advance()
			arr.end = c.Pos()
			return arr, nil
		case jsontree.EOF:
			return nil, jsontree.Errorf(c.Pos(), "unexpected end of input, want ',' or ']'")
		default:
			return nil, jsontree.Errorf(c.Pos(), "unexpected character %q, want ',' or ']'", r)
		}
	}
}

// parseString consumes a string value. The scan validates escape sequences
// in place; decoding them is delegated to the escape package once the
// closing quote is found. Strings without escapes share the input's
// backing store.
func parseString(c *jsontree.Cursor) (*String, error) {
	pos := c.Pos()
	if err := c.Expect('"'); err != nil {
		return nil, err
	}
	var hasEsc bool
	for {
		switch r := c.Rune(); r {
		case jsontree.EOF:
			return nil, jsontree.Errorf(c.Pos(), "unterminated string")
		case '"':
			c.Advance()
			end := c.Pos()
			text := c.Input()[pos+1 : end-1]
			if hasEsc {
				dec, err := escape.Unquote(mem.S(text))
				if err != nil {
					return nil, jsontree.Errorf(pos, "invalid string: %v", err)
				}
				text = string(dec)
			}
			return &String{pos: pos, end: end, text: text}, nil
		case '\\':
			hasEsc = true
			c.Advance()
			if err := parseEscape(c); err != nil {
				return nil, err
			}
		default:
			c.Advance()
		}
	}
}

// parseEscape validates the tail of an escape sequence, with the cursor
// positioned just after the backslash.
func parseEscape(c *jsontree.Cursor) error {
	switch r := c.Rune(); r {
	case '"', '\\', '/', 'b', 'f', 'n', 'r', 't':
		c.Advance()
	case 'u':
		c.Advance()
		for i := 0; i < 4; i++ {
			if !jsontree.IsHexDigit(c.Rune()) {
				return jsontree.Errorf(c.Pos(), "invalid unicode escape")
			}
			c.Advance()
		}
	case jsontree.EOF:
		return jsontree.Errorf(c.Pos(), "unterminated string")
	default:
		return jsontree.Errorf(c.Pos(), "invalid escape character %q", r)
	}
	return nil
}

// parseNumber consumes a number and records its decomposed lexical form.
// Precondition: the cursor is on '-' or a digit.
func parseNumber(c *jsontree.Cursor) (*Number, error) {
	n := &Number{pos: c.Pos()}
	if c.Rune() == '-' {
		n.neg = true
		c.Advance()
	}

	// Integer part: a single zero, or a nonzero digit followed by any run of
	// digits. Extra leading zeroes are disallowed: 0.1 is OK, 01.2 is not.
	switch r := c.Rune(); {
	case r == '0':
		c.Advance()
		n.digits = "0"
		if jsontree.IsDigit(c.Rune()) {
			return nil, jsontree.Errorf(c.Pos(), "invalid number")
		}
	case jsontree.IsDigitNonZero(r):
		n.digits = scanDigits(c)
	default:
		return nil, jsontree.Errorf(c.Pos(), "invalid number")
	}

	if c.Rune() == '.' {
		c.Advance()
		if !jsontree.IsDigit(c.Rune()) {
			return nil, jsontree.Errorf(c.Pos(), "invalid fractional parameter")
		}
		n.frac = scanDigits(c)
	}

	if r := c.Rune(); r == 'e' || r == 'E' {
		c.Advance()
		switch c.Rune() {
		case '-':
			n.expNeg = true
			c.Advance()
		case '+':
			c.Advance()
		}
		if !jsontree.IsDigit(c.Rune()) {
			return nil, jsontree.Errorf(c.Pos(), "invalid exponent parameter")
		}
		n.exp = scanDigits(c)
	}

	n.end = c.Pos()
	return n, nil
}

// scanDigits consumes a run of decimal digits and returns them.
func scanDigits(c *jsontree.Cursor) string {
	start := c.Pos()
	for jsontree.IsDigit(c.Rune()) {
		c.Advance()
	}
	return c.Input()[start:c.Pos()]
}

// parseBool consumes one of the literals "true" or "false", selected by
// the lookahead character. Matching is exact and case-sensitive.
func parseBool(c *jsontree.Cursor) (*Bool, error) {
	pos := c.Pos()
	lit, value := "true", true
	if c.Rune() == 'f' {
		lit, value = "false", false
	}
	for _, r := range lit {
		if c.Rune() != r {
			return nil, jsontree.Errorf(c.Pos(), "invalid boolean")
		}
		c.Advance()
	}
	return &Bool{pos: pos, end: c.Pos(), value: value}, nil
}

// parseNull consumes the literal "null".
func parseNull(c *jsontree.Cursor) (*Null, error) {
	pos := c.Pos()
	for _, r := range "null" {
		if err := c.Expect(r); err != nil {
			return nil, err
		}
	}
	return &Null{pos: pos, end: c.Pos()}, nil
}
