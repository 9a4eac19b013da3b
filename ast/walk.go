// Copyright (C) 2024 The jsontree Authors. All Rights Reserved.

package ast

// A PathStep records one edge of the path from the root of a walk to the
// value being visited: the container the edge leaves from, and the member
// key (a string) or element index (an int) it follows.
type PathStep struct {
	Owner Value // the enclosing *Object or *Array
	Key   any   // string for a member key, int for an array index
}

// A Visitor is called by Walk for each value in a syntax tree, together
// with the path from the root of the walk to that value. If it returns
// false the children of v are skipped; the walk continues with the next
// sibling either way.
//
// The path slice is only valid for the duration of the call; a visitor
// that retains it must make a copy.
type Visitor func(v Value, path []PathStep) bool

// Walk traverses the tree rooted at v depth-first in preorder, calling
// visit for each value in document order. The root may be any node,
// including a *Member.
//
// For each member of an object both the *Member and its value are visited,
// in that order, sharing a single path step made of the owning object and
// the member's key. Elements of an array are visited with a step made of
// the owning array and the element's index.
//
// Walk never modifies the tree, and repeated walks over the same tree
// visit the same values with the same paths.
func Walk(v Value, visit Visitor) { walk(v, nil, visit) }

func walk(v Value, path []PathStep, visit Visitor) {
	if visit(v, path) {
		walkChildren(v, path, visit)
	}
}

func walkChildren(v Value, path []PathStep, visit Visitor) {
	switch t := v.(type) {
	case *Object:
		for _, m := range t.Members {
			walk(m, pushStep(path, PathStep{Owner: t, Key: m.Key.Text()}), visit)
		}
	case *Member:
		// The value shares the member's own path step.
		walk(t.Value, path, visit)
	case *Array:
		for i, elt := range t.Values {
			walk(elt, pushStep(path, PathStep{Owner: t, Key: i}), visit)
		}
	}
}

// pushStep extends path without sharing its backing array with siblings.
func pushStep(path []PathStep, step PathStep) []PathStep {
	return append(path[:len(path):len(path)], step)
}
