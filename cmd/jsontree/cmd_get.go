package main

import (
	"encoding/json"
	"fmt"

	"github.com/parsekit/jsontree/ast"
	"github.com/parsekit/jsontree/jpath"
	"github.com/spf13/cobra"
)

func newGetCmd() *cobra.Command {
	var withSpan bool

	cmd := &cobra.Command{
		Use:   "get <path> <file>",
		Short: "Select a value by path expression",
		Long: `Get resolves a path expression such as $.episodes[0].title against a
document and prints the value it addresses. Negative indices count from
the end of an array.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			expr, err := jpath.Parse(args[0])
			if err != nil {
				return fmt.Errorf("parse path %q: %w", args[0], err)
			}
			src, err := readInput(args[1])
			if err != nil {
				return err
			}
			root, err := ast.Parse(src)
			if err != nil {
				return fmt.Errorf("parse %s: %w", args[1], err)
			}

			v, err := expr.Eval(root)
			if err != nil {
				return fmt.Errorf("eval %v: %w", expr, err)
			}
			out := cmd.OutOrStdout()
			if withSpan {
				span := v.Span()
				fmt.Fprintf(out, "[%d..%d) ", span.Pos, span.End)
			}
			data, err := json.Marshal(ast.Decode(v))
			if err != nil {
				return fmt.Errorf("encode: %w", err)
			}
			fmt.Fprintln(out, string(data))
			return nil
		},
	}
	cmd.Flags().BoolVar(&withSpan, "span", false, "Prefix output with the source span of the value")
	return cmd
}
