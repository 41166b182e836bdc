// Command poly1305ref is the command-line driver around the
// internal/poly1305 reference model: it is pure glue, not part of the
// core, and exists to produce and check test vectors and traces for
// validating a hardware implementation.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var traceEnabled bool

func main() {
	rootCmd := &cobra.Command{
		Use:   "poly1305ref",
		Short: "Poly1305 reference model: test vectors and state traces",
	}
	rootCmd.PersistentFlags().BoolVar(&traceEnabled, "trace", false, "print a state dump after each 16-byte step of input")

	rootCmd.AddCommand(
		newSumCmd(),
		newStreamCmd(),
		newVerifyCmd(),
		newVectorCmd(),
		newSelftestCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
