package executor

import (
	"context"
	"fmt"
	"strconv"

	"go.uber.org/zap"
)

const (
	plasmaBackendName = "plasma"
	plasmaDest        = "org.kde.plasmashell"
	plasmaPath        = "/PlasmaShell"
	plasmaEvaluate    = "org.kde.PlasmaShell.evaluateScript"
)

// plasmaScript applies an image to every desktop containment
const plasmaScript = `var all = desktops();
for (var i = 0; i < all.length; i++) {
    var d = all[i];
    d.wallpaperPlugin = "org.kde.image";
    d.currentConfigGroup = Array("Wallpaper", "org.kde.image", "General");
    d.writeConfig("Image", %s);
}`

// PlasmaBackend sets the wallpaper on KDE Plasma through plasmashell's
// scripting interface
type PlasmaBackend struct {
	logger *zap.Logger
	conn   DBusClient
}

// NewPlasmaBackend creates a backend using conn
func NewPlasmaBackend(logger *zap.Logger, conn DBusClient) *PlasmaBackend {
	return &PlasmaBackend{logger: logger, conn: conn}
}

func (b *PlasmaBackend) Name() string {
	return plasmaBackendName
}

// SetWallpaper evaluates a desktop script that writes the image URI
func (b *PlasmaBackend) SetWallpaper(ctx context.Context, imagePath string) error {
	script := fmt.Sprintf(plasmaScript, strconv.Quote("file://"+imagePath))

	b.logger.Debug("Setting wallpaper", zap.String("backend", plasmaBackendName), zap.String("path", imagePath))

	if err := b.conn.Call(plasmaDest, plasmaPath, plasmaEvaluate, script); err != nil {
		return fmt.Errorf("plasmashell evaluateScript: %w", err)
	}
	return nil
}

// CurrentWallpaper is not reported by the scripting interface
func (b *PlasmaBackend) CurrentWallpaper(ctx context.Context) (string, error) {
	return "", fmt.Errorf("plasma cannot report the current wallpaper")
}
