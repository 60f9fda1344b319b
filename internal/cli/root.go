package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/crcf-labs/crcf/internal/branding"
	"github.com/crcf-labs/crcf/internal/component"
	"github.com/crcf-labs/crcf/internal/config"
	cerrors "github.com/crcf-labs/crcf/internal/errors"
	"github.com/crcf-labs/crcf/internal/output"
	"github.com/crcf-labs/crcf/internal/updater"
)

// BuildInfo is injected via ldflags.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// rootOptions holds the state of one command tree.
type rootOptions struct {
	build   BuildInfo
	workDir string

	verbose       bool
	noColor       bool
	noUpdateCheck bool
	createIndex   bool

	loader    *config.Loader
	component component.Config
}

// NewRootCmd creates the root command.
func NewRootCmd(build BuildInfo) *cobra.Command {
	return newRootCmd(build, "")
}

// newRootCmd builds the command tree against workDir; empty means the
// process working directory.
func newRootCmd(build BuildInfo, workDir string) *cobra.Command {
	opts := &rootOptions{build: build, workDir: workDir}

	rootCmd := &cobra.Command{
		Use:   branding.CLIName() + " [flags] <name>...",
		Short: branding.Description(),
		Long: branding.DisplayName() + ` creates one folder per component name containing the
component source, an index re-export, a test and a stylesheet.

With --createindex it instead writes an index.js re-exporting every
component folder found in the given directory.`,
		Example: `  ` + branding.CLIName() + ` Button
  ` + branding.CLIName() + ` --typescript --notest src/components/Modal Tooltip
  ` + branding.CLIName() + ` --createindex src/components`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.initialize(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.createIndex {
				return runCreateIndex(cmd, opts, args)
			}
			return runCreate(cmd, opts, args)
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.BoolVarP(&opts.verbose, "verbose", "v", false, "Enable debug output")
	pf.BoolVar(&opts.noColor, "no-color", false, "Disable colored output")
	pf.BoolVar(&opts.noUpdateCheck, config.KeyNoUpdateCheck, false, "Skip the new-version notice (env: "+branding.EnvVar("NO_UPDATE_CHECK")+")")

	f := rootCmd.Flags()
	f.Bool(config.KeyTypeScript, false, "Generate TypeScript (.tsx) files")
	f.Bool(config.KeyNoStyle, false, "Do not generate a stylesheet")
	f.Bool(config.KeyNoTest, false, "Do not generate a test file")
	f.Bool(config.KeyNative, false, "Generate React Native components (implies --nocss)")
	f.Bool(config.KeyLess, false, "Use .less for the stylesheet")
	f.Bool(config.KeySCSS, false, "Use .scss for the stylesheet")
	f.Bool(config.KeySass, false, "Alias of --scss")
	f.Bool(config.KeyPropTypes, false, "Declare prop-types (ignored with --typescript)")
	f.Bool(config.KeyUppercase, false, "Capitalize every generated filename except index")
	f.BoolVar(&opts.createIndex, "createindex", false, "Write an index.js re-exporting the component folders of <dir>")

	rootCmd.AddCommand(newVersionCmd(opts))
	rootCmd.AddCommand(newConfigCmd())

	return rootCmd
}

// initialize sets up logging, resolves configuration and prints the
// update notice.
func (o *rootOptions) initialize(cmd *cobra.Command) error {
	output.SetupLogging(output.LogConfig{
		Verbose: o.verbose,
		NoColor: o.noColor,
		Writer:  cmd.ErrOrStderr(),
	})

	if o.workDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("resolving working directory: %w", err)
		}
		o.workDir = wd
	}

	o.loader = config.New(o.workDir)
	if err := o.loader.Load(); err != nil {
		return err
	}
	if err := o.loader.BindFlags(cmd.Flags()); err != nil {
		return fmt.Errorf("binding flags: %w", err)
	}

	cfg, err := o.loader.Resolve()
	if err != nil {
		return err
	}
	o.component = cfg
	output.Debug("resolved options", "config", fmt.Sprintf("%+v", cfg), "workdir", o.workDir)

	if !o.loader.Bool(config.KeyNoUpdateCheck) {
		updater.New(o.build.Version).CheckAndPrintBanner(cmd.ErrOrStderr(), config.Dir())
	}
	return nil
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	return execute(NewRootCmd(BuildInfo{Version: version, Commit: commit, Date: date}))
}

// execute runs cmd, logs errors not already shown to the user and records
// the exit code the process will end with.
func execute(cmd *cobra.Command) error {
	err := cmd.Execute()
	if err == nil {
		return nil
	}
	if !isReported(err) {
		output.Error(err.Error())
	}
	code := cerrors.ExitCode(err)
	output.Debug("exiting", "code", code, "reason", cerrors.ExitCodeName(code))
	return err
}
