package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bamsammich/snap/internal/config"
)

func TestLoad_MissingFile(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Nil(t, cfg.Defaults.Workers)
	assert.Nil(t, cfg.Defaults.Digest)
	assert.Empty(t, cfg.Defaults.Verbosity)
}

func TestLoad_FullConfig(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	configDir := filepath.Join(dir, "snap")
	require.NoError(t, os.MkdirAll(configDir, 0o755))

	content := `
[defaults]
workers = 16
block_size = 65536
digest = "blake3"
compress = true
bwlimit = "100M"
ssh_port = 2222
ssh_key = "~/.ssh/backup"
rsh = "ssh -p 2222 backup@vault snap serve --stdio"
verbosity = ["scan", "link"]
`
	require.NoError(t, os.WriteFile(filepath.Join(configDir, "config.toml"), []byte(content), 0o644))

	cfg, err := config.Load()
	require.NoError(t, err)

	require.NotNil(t, cfg.Defaults.Workers)
	assert.Equal(t, 16, *cfg.Defaults.Workers)

	require.NotNil(t, cfg.Defaults.BlockSize)
	assert.Equal(t, 65536, *cfg.Defaults.BlockSize)

	require.NotNil(t, cfg.Defaults.Digest)
	assert.Equal(t, "blake3", *cfg.Defaults.Digest)

	require.NotNil(t, cfg.Defaults.Compress)
	assert.True(t, *cfg.Defaults.Compress)

	require.NotNil(t, cfg.Defaults.BWLimit)
	assert.Equal(t, "100M", *cfg.Defaults.BWLimit)

	require.NotNil(t, cfg.Defaults.SSHPort)
	assert.Equal(t, 2222, *cfg.Defaults.SSHPort)

	require.NotNil(t, cfg.Defaults.RSH)
	assert.Contains(t, *cfg.Defaults.RSH, "snap serve")

	assert.Equal(t, []string{"scan", "link"}, cfg.Defaults.Verbosity)
}

func TestLoad_PartialConfig(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	configDir := filepath.Join(dir, "snap")
	require.NoError(t, os.MkdirAll(configDir, 0o755))
	require.NoError(t, os.WriteFile(
		filepath.Join(configDir, "config.toml"),
		[]byte("[defaults]\nworkers = 4\n"),
		0o644,
	))

	cfg, err := config.Load()
	require.NoError(t, err)
	require.NotNil(t, cfg.Defaults.Workers)
	assert.Equal(t, 4, *cfg.Defaults.Workers)
	assert.Nil(t, cfg.Defaults.Compress)
}

func TestLoad_InvalidTOML(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	configDir := filepath.Join(dir, "snap")
	require.NoError(t, os.MkdirAll(configDir, 0o755))
	require.NoError(t, os.WriteFile(
		filepath.Join(configDir, "config.toml"),
		[]byte("[defaults\nworkers = "),
		0o644,
	))

	_, err := config.Load()
	assert.Error(t, err)
}

func TestPath_XDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/custom/config")
	assert.Equal(t, "/custom/config/snap/config.toml", config.Path())
}
