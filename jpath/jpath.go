// Package jpath implements a minimal path expression syntax for addressing
// nodes in a JSON syntax tree.
package jpath

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/parsekit/jsontree/ast"
	"github.com/parsekit/jsontree/ast/cursor"
)

/*
Grammar:

  expr = root steps
  root = "$"
 steps = step [steps]
  step = "." name
  step = "[" name "]"
  step = "[" INDEX "]"
  name = WORD
  name = "'" QTEXT "'"

  WORD = RE `\w+`
 QTEXT = RE `([^'])*`
 INDEX = RE `-?\d+`

This is the selection subset of the common JSONPath syntax: member lookups
and element indices. Wildcards, slices, filters, and scripts produce
synthesized values rather than selecting nodes of the source tree, so they
are deliberately not part of this grammar.
*/

// An Expr is a parsed path expression.
type Expr []Step

// Parse parses s as a path expression.
func Parse(s string) (Expr, error) {
	t, ok := strings.CutPrefix(s, "$")
	if !ok {
		return nil, errors.New("missing root marker")
	}
	var steps Expr
	for t != "" {
		step, rest, err := parseStep(t)
		if err != nil {
			return nil, err
		}
		steps = append(steps, step)
		t = rest
	}
	return steps, nil
}

func (e Expr) String() string {
	var buf strings.Builder
	buf.WriteString("$")
	for _, s := range e {
		switch s.Op {
		case Member:
			fmt.Fprintf(&buf, ".%s", s.Name)
		case Index:
			fmt.Fprintf(&buf, "[%d]", s.Index)
		}
	}
	return buf.String()
}

// Eval resolves e against the structure of root and returns the value it
// addresses. A member step that ends the path resolves to the member's
// value.
func (e Expr) Eval(root ast.Value) (ast.Value, error) {
	path := make([]any, len(e))
	for i, s := range e {
		switch s.Op {
		case Member:
			path[i] = s.Name
		case Index:
			path[i] = s.Index
		default:
			return nil, fmt.Errorf("invalid step %v", s.Op)
		}
	}
	c := cursor.New(root).Down(path...)
	if err := c.Err(); err != nil {
		return nil, err
	}
	if m, ok := c.Value().(*ast.Member); ok {
		return m.Value, nil
	}
	return c.Value(), nil
}

// A Step is a single selection step of a path expression.
type Step struct {
	Op    Op
	Name  string // the member name, when Op == Member
	Index int    // the element index, when Op == Index
}

func parseStep(s string) (_ Step, rest string, _ error) {
	if t, ok := strings.CutPrefix(s, "."); ok {
		name, u, err := parseName(t)
		if err != nil {
			return Step{}, s, fmt.Errorf("invalid .name: %w", err)
		}
		return Step{Op: Member, Name: name}, u, nil
	}
	if t, ok := strings.CutPrefix(s, "["); ok {
		step, u, err := parseSelector(t)
		if err != nil {
			return Step{}, t, err
		}
		u, ok := strings.CutPrefix(u, "]")
		if !ok {
			return Step{}, u, errors.New("missing close bracket")
		}
		return step, u, nil
	}
	return Step{}, s, errors.New("invalid path step")
}

func parseName(s string) (name, rest string, _ error) {
	if m := wordRE.FindStringSubmatch(s); m != nil {
		return m[1], s[len(m[0]):], nil
	}
	if m := quoteRE.FindStringSubmatch(s); m != nil {
		return m[1], s[len(m[0]):], nil
	}
	return "", s, errors.New("invalid name")
}

func parseSelector(s string) (_ Step, rest string, _ error) {
	if m := indexRE.FindStringSubmatch(s); m != nil {
		idx, err := strconv.Atoi(m[1])
		if err != nil {
			return Step{}, s, fmt.Errorf("invalid index: %w", err)
		}
		return Step{Op: Index, Index: idx}, s[len(m[0]):], nil
	}
	if name, rest, err := parseName(s); err == nil {
		return Step{Op: Member, Name: name}, rest, nil
	}
	return Step{}, s, fmt.Errorf("invalid selector: %q", s)
}

var (
	wordRE  = regexp.MustCompile(`^(\w+)`)
	indexRE = regexp.MustCompile(`^(-?\d+)`)
	quoteRE = regexp.MustCompile(`^'([^']*)'`)
)

// An Op is a path operator.
type Op byte

const (
	Invalid Op = iota // invalid operator
	Member            // member lookup (.)
	Index             // array or object index lookup
)

func (o Op) String() string {
	switch o {
	case Member:
		return "member"
	case Index:
		return "index"
	}
	return "invalid"
}
