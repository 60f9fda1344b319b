package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/go-git/go-billy/v5/osfs"
	"github.com/spf13/cobra"

	cerrors "github.com/crcf-labs/crcf/internal/errors"
	"github.com/crcf-labs/crcf/internal/output"
	"github.com/crcf-labs/crcf/internal/scaffold"
)

// runCreate materializes one component per name argument and reports each
// outcome in argument order.
func runCreate(cmd *cobra.Command, opts *rootOptions, args []string) error {
	if len(args) == 0 {
		return cerrors.NewValidationError("no component name given", "", "pass at least one name, e.g. "+cmd.Root().Name()+" Button")
	}

	timer := output.StartTimer("create")
	defer timer.Stop()

	m := scaffold.New(osfs.New(opts.workDir))
	outcomes := m.Batch(cmd.Context(), args, opts.component)

	w := cmd.OutOrStdout()
	for _, o := range outcomes {
		printOutcome(w, o)
	}

	failed := scaffold.Failed(outcomes)
	fmt.Fprintln(w, output.FormatSummary(len(outcomes)-len(failed), len(failed)))

	if len(failed) > 0 {
		return batchError(len(failed), len(outcomes), failed[0].Err)
	}
	return nil
}

func printOutcome(w io.Writer, o scaffold.Outcome) {
	if o.Err != nil {
		fmt.Fprintln(w, output.FormatComponentLine(o.Arg, output.StatusFailed))
		for _, line := range strings.Split(o.Err.Error(), "\n") {
			fmt.Fprintln(w, output.StyleDim.Render("  "+line))
		}
		return
	}
	fmt.Fprintln(w, output.FormatComponentLine(o.Result.OutputDir, output.StatusCreated))
	fmt.Fprint(w, output.FormatFileList(o.Result.Files))
}
