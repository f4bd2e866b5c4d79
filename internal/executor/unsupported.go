package executor

import (
	"context"

	"github.com/orbitalview/wallpaper/internal/domain"
)

// UnsupportedBackend is selected where no wallpaper facility is available.
// Every call fails with UnsupportedPlatform instead of silently doing nothing.
type UnsupportedBackend struct {
	platform string
}

// NewUnsupportedBackend creates the fallback backend for platform
func NewUnsupportedBackend(platform string) *UnsupportedBackend {
	return &UnsupportedBackend{platform: platform}
}

func (b *UnsupportedBackend) Name() string {
	return "unsupported"
}

func (b *UnsupportedBackend) SetWallpaper(ctx context.Context, imagePath string) error {
	return domain.Errorf(domain.KindUnsupportedPlatform, "setting the wallpaper is not supported on %s", b.platform)
}

func (b *UnsupportedBackend) CurrentWallpaper(ctx context.Context) (string, error) {
	return "", domain.Errorf(domain.KindUnsupportedPlatform, "querying the wallpaper is not supported on %s", b.platform)
}
