package jpath_test

import (
	"testing"

	"github.com/parsekit/jsontree/ast"
	"github.com/parsekit/jsontree/jpath"
)

func TestParse(t *testing.T) {
	tests := []struct {
		input string
		want  string // canonical rendering; "" means the input itself
	}{
		{"$", "$"},
		{"$.alpha", ""},
		{"$.alpha.bravo", ""},
		{"$[0]", ""},
		{"$[-2]", ""},
		{"$.a[1].b[2]", ""},
		{"$['quoted name']", "$.quoted name"},
		{"$[name]", "$.name"},
		{"$.a['b c'][3]", "$.a.b c[3]"},
	}
	for _, tc := range tests {
		e, err := jpath.Parse(tc.input)
		if err != nil {
			t.Errorf("Parse %q: unexpected error: %v", tc.input, err)
			continue
		}
		want := tc.want
		if want == "" {
			want = tc.input
		}
		if got := e.String(); got != want {
			t.Errorf("Parse %q: got %q, want %q", tc.input, got, want)
		}
	}
}

func TestParse_errors(t *testing.T) {
	tests := []string{
		"",          // missing root marker
		"alpha",     // missing root marker
		"$.",        // invalid name
		"$x",        // invalid path step
		"$[",        // invalid selector
		"$[]",       // invalid selector
		"$[0",       // missing close bracket
		"$['open",   // invalid selector
		"$.a..b",    // invalid name
	}
	for _, input := range tests {
		if e, err := jpath.Parse(input); err == nil {
			t.Errorf("Parse %q: got %v, want error", input, e)
		}
	}
}

func TestEval(t *testing.T) {
	root, err := ast.Parse(`{
  "episodes": [
    {"title": "one", "tags": ["a", "b"]},
    {"title": "two", "tags": []}
  ],
  "feed": {"title": "Mostly Computable", "itemCount": 2}
}`)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	tests := []struct {
		path string
		want any
		fail bool
	}{
		{"$", nil, false},
		{"$.feed.title", "Mostly Computable", false},
		{"$.feed['itemCount']", float64(2), false},
		{"$.episodes[0].title", "one", false},
		{"$.episodes[-1].title", "two", false},
		{"$.episodes[0].tags[1]", "b", false},
		{"$.episodes[5]", nil, true},
		{"$.nonesuch", nil, true},
		{"$.feed.title[0]", nil, true},
	}
	for _, tc := range tests {
		e, err := jpath.Parse(tc.path)
		if err != nil {
			t.Fatalf("Parse %q: %v", tc.path, err)
		}
		v, err := e.Eval(root)
		if tc.fail {
			if err == nil {
				t.Errorf("Eval %q: got %v, want error", tc.path, v)
			}
			continue
		}
		if err != nil {
			t.Errorf("Eval %q: unexpected error: %v", tc.path, err)
			continue
		}
		if tc.path == "$" {
			if v != root {
				t.Errorf("Eval $: got %v, want the root", v)
			}
			continue
		}
		if got := ast.Decode(v); got != tc.want {
			t.Errorf("Eval %q: got %v, want %v", tc.path, got, tc.want)
		}
	}
}
