package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/hbjs97/cswap/internal/config"
	"github.com/hbjs97/cswap/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_ValidTOML(t *testing.T) {
	content := `version = 1
store_dir = "/srv/sober"
trim_txt_suffix = true
app_process = "sober-bin"
history_limit = 10`

	path := testutil.TempConfigFile(t, content)
	cfg, err := config.Load(path)

	require.NoError(t, err)
	assert.Equal(t, 1, cfg.Version)
	assert.Equal(t, "/srv/sober", cfg.StoreDir)
	assert.True(t, cfg.TrimTxtSuffix)
	assert.Equal(t, "sober-bin", cfg.AppProcess)
	assert.Equal(t, 10, cfg.HistoryLimit)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := config.Load("/nonexistent/path/config.toml")
	assert.ErrorIs(t, err, config.ErrConfig)
}

func TestLoadConfig_InvalidTOML(t *testing.T) {
	path := testutil.TempConfigFile(t, "invalid toml [[[")
	_, err := config.Load(path)
	assert.ErrorIs(t, err, config.ErrConfig)
}

func TestLoadConfig_InvalidValues(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			name:    "unsupported version",
			content: `version = 2`,
		},
		{
			name: "negative history limit",
			content: `version = 1
history_limit = -1`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := testutil.TempConfigFile(t, tt.content)
			_, err := config.Load(path)
			assert.ErrorIs(t, err, config.ErrConfig)
		})
	}
}

func TestLoadConfig_DefaultValues(t *testing.T) {
	path := testutil.TempConfigFile(t, `version = 1`)
	cfg, err := config.Load(path)

	require.NoError(t, err)
	assert.Equal(t, config.DefaultStoreDir, cfg.StoreDir)
	assert.False(t, cfg.TrimTxtSuffix)
	assert.Equal(t, config.DefaultAppProcess, cfg.AppProcess)
	assert.Equal(t, config.DefaultHistoryLimit, cfg.HistoryLimit)
}

func TestLoadOrDefault_MissingFile(t *testing.T) {
	cfg, err := config.LoadOrDefault(filepath.Join(t.TempDir(), "config.toml"))
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestLoadOrDefault_ExistingFile(t *testing.T) {
	path := testutil.TempConfigFile(t, `store_dir = "/tmp/cookies"`)
	cfg, err := config.LoadOrDefault(path)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/cookies", cfg.StoreDir)
	assert.Equal(t, 1, cfg.Version)
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	tests := []struct {
		in   string
		want string
	}{
		{"~/.var/app/sober", filepath.Join(home, ".var/app/sober")},
		{"~", home},
		{"/abs/path", "/abs/path"},
		{"relative/path", "relative/path"},
		{"~user/path", "~user/path"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := config.ExpandPath(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolvedStoreDir(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg := config.Default()
	got, err := cfg.ResolvedStoreDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".var", "app", "org.vinegarhq.Sober", "data", "sober"), got)

	cfg.StoreDir = "/srv/cookies"
	got, err = cfg.ResolvedStoreDir()
	require.NoError(t, err)
	assert.Equal(t, "/srv/cookies", got)
}

func TestValidateFilePermissions(t *testing.T) {
	path := testutil.TempConfigFile(t, `version = 1`)

	// 0600: no error
	err := config.ValidateFilePermissions(path)
	assert.NoError(t, err)

	// 0644: error
	require.NoError(t, os.Chmod(path, 0644))
	err = config.ValidateFilePermissions(path)
	assert.Error(t, err)
}
