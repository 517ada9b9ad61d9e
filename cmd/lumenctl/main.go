// Command lumenctl is a diagnostic CLI for the Lumen runtime core: it
// exercises the allocator and collector directly, without a compiler or
// bytecode interpreter attached, and reports what it sees.
package main

import (
	"fmt"
	"os"

	"github.com/mwantia/lumen/cmd/lumenctl/cli"
)

var (
	version = "0.0.1-dev"
	commit  = "main"
)

func main() {
	root := cli.NewRootCommand(cli.VersionInfo{
		Version: version,
		Commit:  commit,
	})

	if err := root.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
