//go:build !linux && !windows && !darwin

package executor

import (
	"runtime"

	"github.com/orbitalview/wallpaper/internal/domain"
	"go.uber.org/zap"
)

// NewBackend returns the unsupported fallback on platforms without a setter
func NewBackend(logger *zap.Logger) domain.WallpaperBackend {
	logger.Warn("Wallpaper setting is not implemented for this platform", zap.String("os", runtime.GOOS))
	return NewUnsupportedBackend(runtime.GOOS)
}
