package cmdutil

import (
	"fmt"

	"github.com/schmitthub/diffsnap/internal/iostreams"
)

// PrintHelpHint prints a contextual hint pointing the user at the
// command's help after a usage error.
func PrintHelpHint(ios *iostreams.IOStreams, commandPath string) {
	fmt.Fprintf(ios.ErrOut, "Run '%s --help' for usage.\n", commandPath)
}
