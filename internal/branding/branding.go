// Package branding provides compile-time identity values for the CLI.
//
// Forkers edit branding.yaml in this package before building. Go's
// //go:embed bakes it into the binary.
package branding

import (
	_ "embed"
	"strings"
	"sync"

	"go.yaml.in/yaml/v3"
)

//go:embed branding.yaml
var rawBranding []byte

var (
	once     sync.Once
	defaults brand
)

type brand struct {
	CLIName     string `yaml:"cli_name"`
	DisplayName string `yaml:"display_name"`
	Description string `yaml:"description"`
	HomeDir     string `yaml:"home_dir"`
	EnvPrefix   string `yaml:"env_prefix"`
	GoModule    string `yaml:"go_module"`
	GitHubRepo  string `yaml:"github_repo"`
	RCFile      string `yaml:"rc_file"`
}

func load() {
	once.Do(func() {
		// Hard defaults in case the embedded file is missing or empty.
		defaults = brand{
			CLIName:     "crcf",
			DisplayName: "crcf",
			Description: "Scaffold React component folders from the command line",
			HomeDir:     ".crcf",
			EnvPrefix:   "CRCF",
			GoModule:    "github.com/crcf-labs/crcf",
			GitHubRepo:  "crcf-labs/crcf",
			RCFile:      ".crcfrc.yaml",
		}
		_ = yaml.Unmarshal(rawBranding, &defaults)
	})
}

// CLIName returns the root command name (e.g., "crcf").
func CLIName() string { load(); return defaults.CLIName }

// DisplayName returns the human-readable product name.
func DisplayName() string { load(); return defaults.DisplayName }

// Description returns the short product description.
func Description() string { load(); return defaults.Description }

// HomeDir returns the dot-directory name under $HOME (e.g., ".crcf").
func HomeDir() string { load(); return defaults.HomeDir }

// EnvPrefix returns the environment variable prefix (e.g., "CRCF").
func EnvPrefix() string { load(); return defaults.EnvPrefix }

// GoModule returns the Go module path, used in the update banner's install
// command.
func GoModule() string { load(); return defaults.GoModule }

// GitHubRepo returns the "owner/repo" string used by the update check.
func GitHubRepo() string { load(); return defaults.GitHubRepo }

// RCFile returns the project-level defaults file name (e.g., ".crcfrc.yaml").
func RCFile() string { load(); return defaults.RCFile }

// EnvVar returns a fully qualified env var name, e.g., EnvVar("HOME") → "CRCF_HOME".
func EnvVar(suffix string) string {
	load()
	return defaults.EnvPrefix + "_" + strings.ToUpper(suffix)
}
