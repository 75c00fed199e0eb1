// Command nodegraph lays out and drives graph nodes described in scene files.
package main

import (
	"fmt"
	"os"

	"github.com/go-drift/nodegraph/cmd/nodegraph/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
