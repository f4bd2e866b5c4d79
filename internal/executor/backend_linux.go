//go:build linux

package executor

import (
	"runtime"

	"github.com/orbitalview/wallpaper/internal/domain"
	"go.uber.org/zap"
)

// NewBackend selects the wallpaper backend for this desktop session.
// KDE Plasma is driven over D-Bus; other desktops through a detected command.
func NewBackend(logger *zap.Logger) domain.WallpaperBackend {
	env := currentDesktopEnv()

	if env.isPlasma() {
		client, err := NewStdDBusClient()
		if err == nil {
			logger.Info("Wallpaper setter detected", zap.String("name", plasmaBackendName))
			return NewPlasmaBackend(logger, client)
		}
		logger.Warn("Plasma session without a usable session bus, trying commands", zap.Error(err))
	}

	cmd := detectCommand(logger, env, commandExists)
	if cmd.Binary == "" {
		logger.Warn("No supported wallpaper command found on this system")
		return NewUnsupportedBackend(runtime.GOOS + " (no wallpaper setter found)")
	}

	logger.Info("Wallpaper setter detected",
		zap.String("name", cmd.Name),
		zap.String("binary", cmd.Binary))

	return NewCommandBackend(logger, cmd)
}
