// @MX:ANCHOR: [AUTO] main is the entry point of the scaffold binary. Errors exit with status 1.
// @MX:REASON: [AUTO] the only entry point of the executable; delegates to the CLI command tree
package main

import (
	"fmt"
	"os"

	"github.com/modu-ai/scaffold/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
