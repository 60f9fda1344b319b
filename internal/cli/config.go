package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/crcf-labs/crcf/internal/branding"
	"github.com/crcf-labs/crcf/internal/config"
)

func newConfigCmd() *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage user defaults",
		Long: `Read and write default options stored at ~/` + branding.HomeDir() + `/config.yaml.

Keys match the flag names (typescript, nocss, notest, reactnative, proptypes,
uppercase, less, scss, sass, no-update-check) plus style (css, less, sass).
A ` + branding.RCFile() + ` file in the working directory overrides these
defaults, and flags override both.`,
	}

	configCmd.AddCommand(&cobra.Command{
		Use:   "set <key> <value>",
		Short: "Set a configuration value",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			key, value := args[0], args[1]
			if err := config.Set(key, value); err != nil {
				return fmt.Errorf("setting config key %q: %w", key, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Set %s = %s\n", key, value)
			return nil
		},
	})

	configCmd.AddCommand(&cobra.Command{
		Use:   "get <key>",
		Short: "Get a configuration value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			value, err := config.Get(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), value)
			return nil
		},
	})

	configCmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Print the user config file path",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), config.FilePath())
			return nil
		},
	})

	return configCmd
}
