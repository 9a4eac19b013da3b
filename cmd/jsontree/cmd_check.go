package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/parsekit/jsontree"
	"github.com/parsekit/jsontree/ast"
	"github.com/spf13/cobra"
)

func newCheckCmd() *cobra.Command {
	var quiet bool

	cmd := &cobra.Command{
		Use:   "check <file>...",
		Short: "Check documents for strict JSON validity",
		Long: `Check parses each document and reports the first grammar violation
found, with its byte offset. Use "-" to read from stdin.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			bad := color.New(color.FgRed, color.Bold)
			ok := color.New(color.FgGreen)

			var failed int
			for _, path := range args {
				src, err := readInput(path)
				if err != nil {
					return err
				}
				if _, err := ast.Parse(src); err != nil {
					failed++
					var serr *jsontree.SyntaxError
					if errors.As(err, &serr) {
						bad.Fprintf(os.Stderr, "%s: %v\n", path, serr)
					} else {
						bad.Fprintf(os.Stderr, "%s: %v\n", path, err)
					}
					continue
				}
				if !quiet {
					ok.Fprintf(cmd.OutOrStdout(), "%s: ok\n", path)
				}
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d documents invalid", failed, len(args))
			}
			return nil
		},
	}
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Report only invalid documents")
	return cmd
}
