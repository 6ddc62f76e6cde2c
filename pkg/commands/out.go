package commands

import (
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// outFor is the writer for user output: color.Output unless the command's
// output was redirected.
func outFor(cmd *cobra.Command) io.Writer {
	if w := cmd.OutOrStdout(); w != os.Stdout {
		return w
	}
	return color.Output
}
