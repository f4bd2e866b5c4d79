// Package commands is the surface the host UI and the CLI call into. Every
// failure is returned as an error whose text is shown to the user as is.
package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/orbitalview/wallpaper/internal/config"
	"github.com/orbitalview/wallpaper/internal/domain"
	"github.com/orbitalview/wallpaper/internal/sources"
	"go.uber.org/zap"
)

// PingReply is returned by Ping
const PingReply = "pong"

// Commands wires UI actions to the pipeline and the startup registrar
type Commands struct {
	logger    *zap.Logger
	cfg       *config.AppConfig
	pipeline  domain.Pipeline
	registrar domain.Registrar
}

// NewCommands creates the command surface
func NewCommands(
	logger *zap.Logger,
	cfg *config.AppConfig,
	pipeline domain.Pipeline,
	registrar domain.Registrar,
) *Commands {
	return &Commands{
		logger:    logger,
		cfg:       cfg,
		pipeline:  pipeline,
		registrar: registrar,
	}
}

// FetchInstall downloads url and makes it the desktop background, returning
// the installed path
func (c *Commands) FetchInstall(ctx context.Context, url string) (string, error) {
	path, err := c.pipeline.DownloadAndInstall(ctx, url)
	if err != nil {
		c.logger.Error("fetch_install failed", zap.String("url", url), zap.Error(err))
		return "", err
	}
	return path, nil
}

// InstallLocal makes an existing image file the desktop background
func (c *Commands) InstallLocal(ctx context.Context, path string) error {
	if err := c.pipeline.InstallLocal(ctx, path); err != nil {
		c.logger.Error("install_local failed", zap.String("path", path), zap.Error(err))
		return err
	}
	return nil
}

// SetStartup adds or removes the "run at login" entry
func (c *Commands) SetStartup(enabled bool) error {
	if err := c.registrar.SetStartup(enabled); err != nil {
		c.logger.Error("set_startup failed", zap.Bool("enabled", enabled), zap.Error(err))
		return err
	}
	return nil
}

// StartupState reports the current "run at login" entry
func (c *Commands) StartupState() (domain.RegistrationState, error) {
	return c.registrar.State()
}

// Ping is a liveness check for the UI
func (c *Commands) Ping() string {
	return PingReply
}

// ReadLocalFile returns the content of a text file
func (c *Commands) ReadLocalFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}
	return string(data), nil
}

// Sources loads sources.json from the data directory
func (c *Commands) Sources() (*sources.Config, error) {
	cfg, err := sources.Load(c.cfg.SourcesPath())
	if err != nil {
		c.logger.Warn("Could not load image sources", zap.Error(err))
		return nil, err
	}
	c.logger.Debug("Image sources loaded",
		zap.Uint32("version", cfg.Version),
		zap.Int("count", len(cfg.Sources)))
	return cfg, nil
}
