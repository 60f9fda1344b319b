// Package cli defines the Cobra command tree for the crcf CLI. The root
// command scaffolds components; subcommands cover version and settings.
// Commands delegate to internal packages for the work and only handle flag
// parsing, configuration resolution and console output.
package cli
