package executor

import (
	"context"
	"strings"

	"github.com/orbitalview/wallpaper/internal/domain"
	"go.uber.org/zap"
)

// WallpaperInstaller points the desktop background at a file through the
// backend selected for this OS at startup
type WallpaperInstaller struct {
	logger  *zap.Logger
	backend domain.WallpaperBackend
}

// NewWallpaperInstaller creates an installer for backend
func NewWallpaperInstaller(logger *zap.Logger, backend domain.WallpaperBackend) *WallpaperInstaller {
	return &WallpaperInstaller{logger: logger, backend: backend}
}

// Install sets path as the desktop wallpaper. Backend failures are reported
// as InstallError with the backend's message kept; an unsupported platform
// is reported as such.
func (i *WallpaperInstaller) Install(ctx context.Context, path string) error {
	if strings.TrimSpace(path) == "" {
		return domain.Errorf(domain.KindInvalidInput, "wallpaper path is empty")
	}

	if err := i.backend.SetWallpaper(ctx, path); err != nil {
		if domain.IsKind(err, domain.KindUnsupportedPlatform) {
			return err
		}
		return domain.Errorf(domain.KindInstallError, "failed to set wallpaper %s: %w", path, err)
	}

	i.logger.Info("Wallpaper set successfully",
		zap.String("backend", i.backend.Name()),
		zap.String("path", path))
	return nil
}

// LogCurrent records the wallpaper that was active before this process
// changed anything
func (i *WallpaperInstaller) LogCurrent(ctx context.Context) {
	current, err := i.backend.CurrentWallpaper(ctx)
	if err != nil {
		i.logger.Debug("Could not query current wallpaper",
			zap.String("backend", i.backend.Name()),
			zap.Error(err))
		return
	}
	i.logger.Info("Current wallpaper",
		zap.String("backend", i.backend.Name()),
		zap.String("path", current))
}
