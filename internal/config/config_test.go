package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	def := Defaults()
	assert.Equal(t, def.AppName, cfg.AppName)
	assert.Equal(t, def.DataDir, cfg.DataDir)
	assert.Equal(t, 30*time.Second, cfg.FetchTimeout)
	assert.Equal(t, int64(64<<20), cfg.MaxImageBytes)
	assert.False(t, cfg.Debug)
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("ORBITALVIEW_DATA_DIR", dir)
	t.Setenv("ORBITALVIEW_FETCH_TIMEOUT", "5s")
	t.Setenv("ORBITALVIEW_MAX_IMAGE_BYTES", "1024")
	t.Setenv("ORBITALVIEW_DEBUG", "true")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, dir, cfg.DataDir)
	assert.Equal(t, 5*time.Second, cfg.FetchTimeout)
	assert.Equal(t, int64(1024), cfg.MaxImageBytes)
	assert.True(t, cfg.Debug)
}

func TestLoad_ExpandsHome(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}
	t.Setenv("ORBITALVIEW_DATA_DIR", "~/orbital")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "orbital"), cfg.DataDir)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		env  string
		val  string
	}{
		{name: "zero max bytes", env: "ORBITALVIEW_MAX_IMAGE_BYTES", val: "0"},
		{name: "negative timeout", env: "ORBITALVIEW_FETCH_TIMEOUT", val: "-1s"},
		{name: "bad duration", env: "ORBITALVIEW_FETCH_TIMEOUT", val: "soon"},
		{name: "empty app name", env: "ORBITALVIEW_APP_NAME", val: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.env, tt.val)
			_, err := Load()
			assert.Error(t, err)
		})
	}
}

func TestDerivedPaths(t *testing.T) {
	cfg := &AppConfig{DataDir: filepath.Join("base", "OrbitalViewWallpaper")}

	assert.Equal(t, filepath.Join("base", "OrbitalViewWallpaper", "wallpaper.tmp"), cfg.StagingPath())
	assert.Equal(t, filepath.Join("base", "OrbitalViewWallpaper", "wallpaper.jpg"), cfg.WallpaperPath())
	assert.Equal(t, filepath.Join("base", "OrbitalViewWallpaper", "sources.json"), cfg.SourcesPath())
	assert.Equal(t, filepath.Dir(cfg.StagingPath()), filepath.Dir(cfg.WallpaperPath()))
}

func TestNewAppConfig(t *testing.T) {
	t.Setenv("ORBITALVIEW_DATA_DIR", t.TempDir())
	cfg, err := NewAppConfig(zap.NewNop())
	require.NoError(t, err)
	assert.NotEmpty(t, cfg.WallpaperPath())
}
