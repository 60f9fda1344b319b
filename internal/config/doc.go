// Package config resolves the component options of one invocation. Values
// are layered, lowest first: the user file ~/.crcf/config.yaml, the project
// file .crcfrc.yaml in the working directory, CRCF_* environment variables
// and command-line flags. The project file is validated against an embedded
// JSON schema before it is merged.
package config
