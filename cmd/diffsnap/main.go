// diffsnap captures git diffs into a file: either the local unstaged
// and staged changes of a repository, or the diff between a target
// branch and a feature branch.
package main

import (
	"os"

	"github.com/schmitthub/diffsnap/internal/diffsnap"
)

func main() {
	os.Exit(diffsnap.Main())
}
