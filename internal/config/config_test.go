package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chdir switches the working directory for the test so config file
// lookup is isolated from the repository tree. Viper keeps global
// state, so it is reset alongside.
func chdir(t *testing.T, dir string) {
	t.Helper()
	viper.Reset()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { os.Chdir(prev) })
}

func TestLoadDefaults(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "out", cfg.OutputDir)
	assert.Equal(t, ".crx", cfg.FileExtension)
	assert.False(t, cfg.OverwriteExisting)
}

func TestLoadEnvOverride(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("CRX_OUTPUT_DIR", "converted")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "converted", cfg.OutputDir)
}

func TestLoadConfigFile(t *testing.T) {
	dir := t.TempDir()
	yaml := "output_dir: archives\noverwrite_existing: true\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "crx-config.yaml"), []byte(yaml), 0o644))
	chdir(t, dir)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "archives", cfg.OutputDir)
	assert.True(t, cfg.OverwriteExisting)
	assert.Equal(t, ".crx", cfg.FileExtension, "unset keys keep their defaults")
}

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, "out", cfg.OutputDir)
	assert.Equal(t, ".crx", cfg.FileExtension)
}
