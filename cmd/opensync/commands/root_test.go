package commands

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opensync/opensync/internal/config"
	"github.com/opensync/opensync/internal/errors"
)

// swapGlobals installs test values for the package-level command state and
// restores the originals when the test ends.
func swapGlobals(t *testing.T, c *config.Config, loadErr error) {
	t.Helper()
	origCfg, origErr, origScope := cfg, configLoadErr, scopeFlag
	t.Cleanup(func() {
		cfg, configLoadErr, scopeFlag = origCfg, origErr, origScope
	})
	cfg, configLoadErr, scopeFlag = c, loadErr, ""
}

func TestValidateGlobalFlags_RejectsInvalidConfig(t *testing.T) {
	swapGlobals(t, &config.Config{Version: 1, DefaultScope: "bogus"}, nil)

	err := validateGlobalFlags(&cobra.Command{Use: "list"}, nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrInvalidConfig))
	assert.Contains(t, err.Error(), "default_scope")

	var exitErr *errors.ExitError
	require.True(t, errors.As(err, &exitErr))
	assert.Equal(t, errors.ExitUser, exitErr.Code)
}

func TestValidateGlobalFlags_AcceptsValidConfig(t *testing.T) {
	swapGlobals(t, &config.Config{Version: 1, DefaultScope: "project"}, nil)

	assert.NoError(t, validateGlobalFlags(&cobra.Command{Use: "list"}, nil))
}

func TestValidateGlobalFlags_SkipsHelpAndVersion(t *testing.T) {
	// help and version must work even when the config file is broken.
	swapGlobals(t, nil, errors.New("yaml: parse failure"))

	assert.NoError(t, validateGlobalFlags(&cobra.Command{Use: "help"}, nil))
	assert.NoError(t, validateGlobalFlags(&cobra.Command{Use: "version"}, nil))
}

func TestValidateGlobalFlags_RejectsBadScopeFlag(t *testing.T) {
	swapGlobals(t, &config.Config{Version: 1}, nil)
	scopeFlag = "everywhere"

	err := validateGlobalFlags(&cobra.Command{Use: "list"}, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "everywhere")
}
