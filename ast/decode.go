// Copyright (C) 2024 The jsontree Authors. All Rights Reserved.

package ast

import "fmt"

// Decode converts the syntax tree rooted at v into plain Go values:
//
//	JSON type | Go type
//	--------- | --------------------------------
//	object    | map[string]any
//	array     | []any
//	string    | string (decoded content)
//	number    | float64
//	boolean   | bool
//	null      | nil
//
// Object members are decoded in source order, so when an object contains
// duplicate keys the last occurrence wins. A Member decodes as its value.
// Numbers outside the binary64 range lose precision accordingly.
//
// Decode panics if v is not a node type produced by Parse.
func Decode(v Value) any {
	switch t := v.(type) {
	case *Object:
		out := make(map[string]any, len(t.Members))
		for _, m := range t.Members {
			out[m.Key.Text()] = Decode(m.Value)
		}
		return out
	case *Member:
		return Decode(t.Value)
	case *Array:
		out := make([]any, len(t.Values))
		for i, elt := range t.Values {
			out[i] = Decode(elt)
		}
		return out
	case *String:
		return t.Text()
	case *Number:
		return t.Float64()
	case *Bool:
		return t.Value()
	case *Null:
		return nil
	default:
		panic(fmt.Sprintf("unknown node type %T", v))
	}
}
