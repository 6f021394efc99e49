package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigCmd_ShowMasksToken(t *testing.T) {
	setupCLITest(t, nil)

	out, err := execute(t, "config", "show", "--token", "ghp_secret1234", "--user", "alice")

	require.NoError(t, err)
	assert.Contains(t, out, "****1234")
	assert.NotContains(t, out, "ghp_secret")
	assert.Contains(t, out, "alice")
	assert.Contains(t, out, "unpaced")
	assert.Contains(t, out, "Taxonomy:            default")
}

func TestConfigCmd_InitWritesDefaults(t *testing.T) {
	setupCLITest(t, nil)
	dir := t.TempDir()

	rootCmd.SetArgs([]string{"--config-dir", dir, "config", "init"})
	require.NoError(t, rootCmd.Execute())

	_, err := os.Stat(filepath.Join(dir, "config.toml"))
	require.NoError(t, err)

	rootCmd.SetArgs([]string{"--config-dir", dir, "config", "init"})
	assert.ErrorContains(t, rootCmd.Execute(), "already exists")
}

func TestConfigCmd_Path(t *testing.T) {
	setupCLITest(t, nil)
	dir := t.TempDir()

	rootCmd.SetArgs([]string{"--config-dir", dir, "config", "path"})
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	require.NoError(t, rootCmd.Execute())

	assert.Contains(t, buf.String(), filepath.Join(dir, "config.toml"))
}

func TestMaskToken(t *testing.T) {
	assert.Equal(t, "(none)", maskToken(""))
	assert.Equal(t, "****", maskToken("abc"))
	assert.Equal(t, "****wxyz", maskToken("abcdwxyz"))
}
