//go:build linux

package autostart

import (
	"os"
	"path/filepath"
	"runtime"

	"github.com/orbitalview/wallpaper/internal/domain"
	"go.uber.org/zap"
)

// NewBackend stores the entry as an XDG autostart desktop file
func NewBackend(logger *zap.Logger) domain.AutostartBackend {
	base, err := os.UserConfigDir()
	if err != nil {
		logger.Warn("No user config directory, run at login unavailable", zap.Error(err))
		return NewUnsupportedBackend(runtime.GOOS)
	}
	return NewDesktopEntryBackend(filepath.Join(base, "autostart"))
}
