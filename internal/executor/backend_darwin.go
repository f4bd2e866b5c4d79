//go:build darwin

package executor

import (
	"github.com/orbitalview/wallpaper/internal/domain"
	"go.uber.org/zap"
)

var osascriptCommand = WallpaperCommand{
	Name:   "osascript",
	Binary: "osascript",
	Style:  PathQuoted,
	Invocations: [][]string{
		{"-e", `tell application "System Events" to tell every desktop to set picture to %s`},
	},
	Query: []string{"-e", `tell application "System Events" to get picture of current desktop`},
}

// NewBackend returns the AppleScript backend on macOS
func NewBackend(logger *zap.Logger) domain.WallpaperBackend {
	logger.Info("Wallpaper setter detected", zap.String("name", osascriptCommand.Name))
	return NewCommandBackend(logger, osascriptCommand)
}
