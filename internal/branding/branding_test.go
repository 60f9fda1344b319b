package branding

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEmbeddedValues(t *testing.T) {
	assert.Equal(t, "crcf", CLIName())
	assert.Equal(t, ".crcf", HomeDir())
	assert.Equal(t, "CRCF", EnvPrefix())
	assert.Equal(t, ".crcfrc.yaml", RCFile())
	assert.Equal(t, "crcf-labs/crcf", GitHubRepo())
	assert.Equal(t, "github.com/crcf-labs/crcf", GoModule())
}

func TestEnvVar(t *testing.T) {
	assert.Equal(t, "CRCF_NO_UPDATE_CHECK", EnvVar("no_update_check"))
	assert.Equal(t, "CRCF_HOME", EnvVar("home"))
}
