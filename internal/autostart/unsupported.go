package autostart

import "github.com/orbitalview/wallpaper/internal/domain"

// UnsupportedBackend is selected where there is no autostart facility
type UnsupportedBackend struct {
	platform string
}

// NewUnsupportedBackend creates the fallback backend for platform
func NewUnsupportedBackend(platform string) *UnsupportedBackend {
	return &UnsupportedBackend{platform: platform}
}

func (b *UnsupportedBackend) Set(name, command string) error {
	return b.err()
}

func (b *UnsupportedBackend) Get(name string) (string, error) {
	return "", b.err()
}

func (b *UnsupportedBackend) Delete(name string) error {
	return b.err()
}

func (b *UnsupportedBackend) err() error {
	return domain.Errorf(domain.KindUnsupportedPlatform, "run-on-startup is not supported on %s", b.platform)
}
