package root

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"impractical.co/notheme/internal/config"
)

func TestNewCmdRoot(t *testing.T) {
	t.Parallel()

	cmd := NewCmdRoot()
	assert.Equal(t, "notheme", cmd.Use)

	build, _, err := cmd.Find([]string{"build"})
	require.NoError(t, err)
	assert.Equal(t, "build", build.Name())

	configPath, err := cmd.PersistentFlags().GetString("config")
	require.NoError(t, err)
	assert.Equal(t, config.DefaultPath, configPath)
}

func TestVersion(t *testing.T) {
	t.Parallel()

	cmd := NewCmdRoot()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--version"})

	require.NoError(t, cmd.Execute())
	assert.Equal(t, "notheme version dev (commit: unknown, built: unknown)\n", out.String())
}
