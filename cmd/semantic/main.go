// Command semantic queries, merges and transforms JSON and YAML documents
// with the semantic collection types.
package main

import (
	"fmt"
	"os"

	"github.com/hasbyte1/go-semantic-collections/internal/cli"
)

func main() {
	v := cli.NewViper("semantic")
	cmd, err := newRootCommand(v, os.Stdout, os.Stderr)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
