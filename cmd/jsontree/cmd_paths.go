package main

import (
	"fmt"
	"strings"

	"github.com/parsekit/jsontree/ast"
	"github.com/spf13/cobra"
)

func newPathsCmd() *cobra.Command {
	var maxDepth int

	cmd := &cobra.Command{
		Use:   "paths <file>",
		Short: "Print the structural path and source span of every node",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := readInput(args[0])
			if err != nil {
				return err
			}
			root, err := ast.Parse(src)
			if err != nil {
				return fmt.Errorf("parse %s: %w", args[0], err)
			}

			out := cmd.OutOrStdout()
			ast.Walk(root, func(v ast.Value, path []ast.PathStep) bool {
				if maxDepth > 0 && len(path) >= maxDepth {
					return false
				}
				if _, ok := v.(*ast.Member); ok {
					// The member's value follows with the same path.
					return true
				}
				span := v.Span()
				fmt.Fprintf(out, "%-40s %-7s [%d..%d)\n", formatPath(path), kindOf(v), span.Pos, span.End)
				return true
			})
			return nil
		},
	}
	cmd.Flags().IntVar(&maxDepth, "max-depth", 0, "Descend at most this many levels (0 for no limit)")
	return cmd
}

func formatPath(path []ast.PathStep) string {
	var buf strings.Builder
	buf.WriteString("$")
	for _, step := range path {
		switch k := step.Key.(type) {
		case string:
			fmt.Fprintf(&buf, ".%s", k)
		case int:
			fmt.Fprintf(&buf, "[%d]", k)
		}
	}
	return buf.String()
}

func kindOf(v ast.Value) string {
	switch v.(type) {
	case *ast.Object:
		return "object"
	case *ast.Member:
		return "member"
	case *ast.Array:
		return "array"
	case *ast.String:
		return "string"
	case *ast.Number:
		return "number"
	case *ast.Bool:
		return "bool"
	case *ast.Null:
		return "null"
	}
	return "unknown"
}
