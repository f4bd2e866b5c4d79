//go:build !linux && !windows && !darwin

package autostart

import (
	"runtime"

	"github.com/orbitalview/wallpaper/internal/domain"
	"go.uber.org/zap"
)

// NewBackend returns the unsupported fallback
func NewBackend(logger *zap.Logger) domain.AutostartBackend {
	logger.Warn("Run at login is not implemented for this platform", zap.String("os", runtime.GOOS))
	return NewUnsupportedBackend(runtime.GOOS)
}
