// Command casedup finds file names that collide when letter case is ignored
// and interactively deletes the ones the operator picks.
package main

import (
	"os"

	"github.com/backmassage/casedup/internal/cli"
)

// version and commit are set at build time via -ldflags.
var (
	version = "0.1.0-dev"
	commit  = "unknown"
)

func main() {
	os.Exit(cli.Execute(version, commit))
}
