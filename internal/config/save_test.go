package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/hbjs97/cswap/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSave_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")

	cfg := &config.Config{
		Version:       1,
		StoreDir:      "~/.var/app/org.vinegarhq.Sober/data/sober",
		TrimTxtSuffix: true,
		AppProcess:    "sober",
		HistoryLimit:  20,
	}

	require.NoError(t, config.Save(path, cfg))

	// 파일 권한 0600 확인
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())

	loaded, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestSave_CreatesParentDir(t *testing.T) {
	dir := t.TempDir()
	nested := filepath.Join(dir, "a", "b", "c")
	path := filepath.Join(nested, "config.toml")

	require.NoError(t, config.Save(path, config.Default()))

	info, err := os.Stat(nested)
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	loaded, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, config.DefaultStoreDir, loaded.StoreDir)
}

func TestSave_TightensExistingPermissions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("version = 1\n"), 0644))

	require.NoError(t, config.Save(path, config.Default()))
	assert.NoError(t, config.ValidateFilePermissions(path))
}
