package cli

import (
	"errors"
	"fmt"

	"github.com/go-git/go-billy/v5/osfs"
	"github.com/spf13/cobra"

	"github.com/crcf-labs/crcf/internal/barrel"
	cerrors "github.com/crcf-labs/crcf/internal/errors"
	"github.com/crcf-labs/crcf/internal/output"
)

// runCreateIndex writes the re-export index for a directory of components.
func runCreateIndex(cmd *cobra.Command, opts *rootOptions, args []string) error {
	if len(args) != 1 {
		return cerrors.NewValidationError(
			fmt.Sprintf("--createindex takes exactly one directory, got %d arguments", len(args)),
			"", "component names cannot be combined with --createindex")
	}

	timer := output.StartTimer("createindex")
	defer timer.Stop()

	path, err := barrel.New(osfs.New(opts.workDir)).Aggregate(cmd.Context(), args[0])
	if errors.Is(err, cerrors.ErrAlreadyExists) {
		output.Warn(err.Error())
		return &reportedError{err: err}
	}
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), output.FormatCheckmark("wrote "+output.StyleNoun.Render(path)))
	return nil
}
