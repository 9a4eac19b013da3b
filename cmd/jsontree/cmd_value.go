package main

import (
	"encoding/json"
	"fmt"

	"github.com/parsekit/jsontree/ast"
	"github.com/spf13/cobra"
)

func newValueCmd() *cobra.Command {
	var compact bool

	cmd := &cobra.Command{
		Use:   "value <file>",
		Short: "Parse a document and print its decoded value",
		Long: `Value parses a document, converts the syntax tree to plain values,
and re-encodes the result as JSON on stdout. Duplicate object keys resolve
to the last occurrence, and member order is not preserved.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := readInput(args[0])
			if err != nil {
				return err
			}
			root, err := ast.Parse(src)
			if err != nil {
				return fmt.Errorf("parse %s: %w", args[0], err)
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			if !compact {
				enc.SetIndent("", "  ")
			}
			if err := enc.Encode(ast.Decode(root)); err != nil {
				return fmt.Errorf("encode: %w", err)
			}
			return nil
		},
	}
	cmd.Flags().BoolVarP(&compact, "compact", "c", false, "Emit compact output")
	return cmd
}
