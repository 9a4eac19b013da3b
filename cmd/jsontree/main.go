// Command jsontree is a small front end for the jsontree parser: it checks
// documents for strict JSON validity, prints their decoded values, and
// reports the structural paths and source spans of their nodes.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:           "jsontree",
		Short:         "Inspect JSON documents through their syntax trees",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(newCheckCmd())
	rootCmd.AddCommand(newValueCmd())
	rootCmd.AddCommand(newPathsCmd())
	rootCmd.AddCommand(newGetCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// readInput returns the contents of the file at path, or of stdin if path
// is "-".
func readInput(path string) (string, error) {
	if path == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
