package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
	"github.com/orbitalview/wallpaper/internal/sources"
	"go.uber.org/zap"
)

const (
	envPrefix = "ORBITALVIEW_"

	dataDirName       = "OrbitalViewWallpaper"
	stagingFilename   = "wallpaper.tmp"
	wallpaperFilename = "wallpaper.jpg"
)

// AppConfig holds application configuration
type AppConfig struct {
	// AppName keys the autostart entry, e.g. the Run registry value
	AppName string `koanf:"app_name" validate:"required"`
	// AppID is the reverse-DNS identity used by the window toolkit and launchd
	AppID string `koanf:"app_id" validate:"required,hostname_rfc1123"`
	// DataDir is the application-private directory holding the wallpaper files
	DataDir string `koanf:"data_dir" validate:"required"`
	// FetchTimeout bounds a single download, zero disables it
	FetchTimeout time.Duration `koanf:"fetch_timeout" validate:"gte=0"`
	// MaxImageBytes caps the size of a downloaded image
	MaxImageBytes int64 `koanf:"max_image_bytes" validate:"gt=0"`
	UserAgent     string `koanf:"user_agent" validate:"required"`
	Debug         bool   `koanf:"debug"`
}

// Defaults returns the configuration used when no environment overrides are set.
func Defaults() AppConfig {
	dataDir := dataDirName
	if base, err := os.UserConfigDir(); err == nil {
		// %APPDATA% on Windows, XDG_CONFIG_HOME or ~/.config on Linux
		dataDir = filepath.Join(base, dataDirName)
	}
	return AppConfig{
		AppName:       "OrbitalView Wallpaper",
		AppID:         "io.orbitalview.wallpaper",
		DataDir:       dataDir,
		FetchTimeout:  30 * time.Second,
		MaxImageBytes: 64 << 20,
		UserAgent:     "OrbitalViewWallpaper/1.0",
	}
}

// Load merges Defaults with ORBITALVIEW_* environment variables and validates
// the result. ORBITALVIEW_DATA_DIR maps to data_dir, and so on.
func Load() (*AppConfig, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(Defaults(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("load defaults: %w", err)
	}

	if err := k.Load(env.Provider(".", env.Opt{
		Prefix: envPrefix,
		TransformFunc: func(key, value string) (string, any) {
			return strings.ToLower(strings.TrimPrefix(key, envPrefix)), value
		},
	}), nil); err != nil {
		return nil, fmt.Errorf("load environment: %w", err)
	}

	var cfg AppConfig
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("decode configuration: %w", err)
	}

	cfg.DataDir = expandPath(cfg.DataDir)

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

// NewAppConfig loads the configuration and logs the resolved values
func NewAppConfig(logger *zap.Logger) (*AppConfig, error) {
	cfg, err := Load()
	if err != nil {
		return nil, err
	}

	logger.Info("Configuration loaded",
		zap.String("dataDir", cfg.DataDir),
		zap.Duration("fetchTimeout", cfg.FetchTimeout),
		zap.Int64("maxImageBytes", cfg.MaxImageBytes))

	return cfg, nil
}

// expandPath expands environment variables and a leading ~
func expandPath(p string) string {
	p = os.ExpandEnv(p)
	if len(p) > 0 && p[0] == '~' {
		home, err := os.UserHomeDir()
		if err == nil {
			p = filepath.Join(home, p[1:])
		}
	}
	return p
}

// StagingPath is the scratch file the next download is written to
func (c *AppConfig) StagingPath() string {
	return filepath.Join(c.DataDir, stagingFilename)
}

// WallpaperPath is the canonical file the desktop background points at
func (c *AppConfig) WallpaperPath() string {
	return filepath.Join(c.DataDir, wallpaperFilename)
}

// SourcesPath is the user-maintained list of image sources
func (c *AppConfig) SourcesPath() string {
	return filepath.Join(c.DataDir, sources.FileName)
}
