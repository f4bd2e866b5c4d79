//go:build darwin

package autostart

import (
	"os"
	"path/filepath"
	"runtime"

	"github.com/orbitalview/wallpaper/internal/domain"
	"go.uber.org/zap"
)

// NewBackend stores the entry as a per-user launchd agent
func NewBackend(logger *zap.Logger) domain.AutostartBackend {
	home, err := os.UserHomeDir()
	if err != nil {
		logger.Warn("No home directory, run at login unavailable", zap.Error(err))
		return NewUnsupportedBackend(runtime.GOOS)
	}
	return NewLaunchAgentBackend(filepath.Join(home, "Library", "LaunchAgents"))
}
