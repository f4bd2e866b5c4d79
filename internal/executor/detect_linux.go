//go:build linux

package executor

import (
	"os"
	"os/exec"
	"strings"

	"go.uber.org/zap"
)

var (
	// Ordered list of wallpaper commands to try (highest priority first)
	wallpaperCommands = []WallpaperCommand{
		// Hyprland - swww (recommended)
		{Name: "swww", Binary: "swww", Invocations: [][]string{{"img", "%s"}}},
		// Hyprland - hyprpaper
		{Name: "hyprpaper", Binary: "hyprctl", Invocations: [][]string{
			{"hyprpaper", "preload", "%s"},
			{"hyprpaper", "wallpaper", ",%s"},
		}},
		// swaybg (Sway/Wayland) keeps running to hold the image
		{Name: "swaybg", Binary: "swaybg", Detach: true, Invocations: [][]string{{"-i", "%s", "-m", "fill"}}},
		// GNOME sets both the light and dark variants
		{Name: "gnome", Binary: "gsettings", Style: PathURI,
			Invocations: [][]string{
				{"set", "org.gnome.desktop.background", "picture-uri", "%s"},
				{"set", "org.gnome.desktop.background", "picture-uri-dark", "%s"},
			},
			Query: []string{"get", "org.gnome.desktop.background", "picture-uri"},
		},
		// Generic X11 - feh
		{Name: "feh", Binary: "feh", Invocations: [][]string{{"--bg-fill", "%s"}}},
		// Generic X11 - nitrogen
		{Name: "nitrogen", Binary: "nitrogen", Invocations: [][]string{{"--set-zoom-fill", "--save", "%s"}}},
	}
)

// desktopEnv holds the environment hints used to pick a setter
type desktopEnv struct {
	desktop  string
	session  string
	wayland  string
	hyprland string
}

func currentDesktopEnv() desktopEnv {
	return desktopEnv{
		desktop:  os.Getenv("XDG_CURRENT_DESKTOP"),
		session:  os.Getenv("XDG_SESSION_TYPE"),
		wayland:  os.Getenv("WAYLAND_DISPLAY"),
		hyprland: os.Getenv("HYPRLAND_INSTANCE_SIGNATURE"),
	}
}

func (e desktopEnv) isPlasma() bool {
	return strings.Contains(strings.ToLower(e.desktop), "kde")
}

// detectCommand analyzes the environment to choose the best wallpaper command
func detectCommand(logger *zap.Logger, env desktopEnv, exists func(string) bool) WallpaperCommand {
	logger.Debug("Detecting wallpaper command",
		zap.String("desktop", env.desktop),
		zap.String("session", env.session),
		zap.String("wayland", env.wayland),
		zap.String("hyprland", env.hyprland))

	pick := func(names ...string) (WallpaperCommand, bool) {
		for _, cmd := range wallpaperCommands {
			for _, name := range names {
				if cmd.Name == name && exists(cmd.Binary) {
					return cmd, true
				}
			}
		}
		return WallpaperCommand{}, false
	}

	if env.hyprland != "" {
		if cmd, ok := pick("swww", "hyprpaper"); ok {
			return cmd
		}
	}

	if strings.Contains(strings.ToLower(env.desktop), "gnome") {
		if cmd, ok := pick("gnome"); ok {
			return cmd
		}
	}

	if env.wayland != "" || env.session == "wayland" {
		if cmd, ok := pick("swww", "swaybg"); ok {
			return cmd
		}
	}

	// Fallback: try all commands in order
	for _, cmd := range wallpaperCommands {
		if exists(cmd.Binary) {
			logger.Info("Using fallback wallpaper command", zap.String("name", cmd.Name))
			return cmd
		}
	}

	return WallpaperCommand{} // No command found
}

// commandExists checks if a binary exists in PATH
func commandExists(binary string) bool {
	_, err := exec.LookPath(binary)
	return err == nil
}
