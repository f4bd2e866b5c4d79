//go:build windows

package executor

import (
	"context"
	"fmt"
	"unsafe"

	"github.com/lxn/win"
	"github.com/orbitalview/wallpaper/internal/domain"
	"go.uber.org/zap"
	"golang.org/x/sys/windows"
)

const (
	spiSetDeskWallpaper = 0x0014
	spiGetDeskWallpaper = 0x0073
	spifUpdateIniFile   = 0x01
	spifSendChange      = 0x02
)

var (
	user32                    = windows.NewLazySystemDLL("user32.dll")
	procSystemParametersInfoW = user32.NewProc("SystemParametersInfoW")
)

// WindowsBackend handles wallpaper setting through SystemParametersInfoW
type WindowsBackend struct {
	logger *zap.Logger
}

// NewBackend returns the Windows wallpaper backend
func NewBackend(logger *zap.Logger) domain.WallpaperBackend {
	logger.Info("Windows wallpaper setter initialized")
	return &WindowsBackend{logger: logger}
}

func (b *WindowsBackend) Name() string {
	return "SystemParametersInfoW"
}

// SetWallpaper stores the path in the user profile and broadcasts the change
func (b *WindowsBackend) SetWallpaper(ctx context.Context, imagePath string) error {
	p, err := windows.UTF16PtrFromString(imagePath)
	if err != nil {
		return fmt.Errorf("invalid wallpaper path %q: %w", imagePath, err)
	}

	// lxn/win discards GetLastError, so the W variant is called directly here
	r, _, callErr := procSystemParametersInfoW.Call(
		spiSetDeskWallpaper,
		0,
		uintptr(unsafe.Pointer(p)),
		spifUpdateIniFile|spifSendChange,
	)
	if r == 0 {
		return fmt.Errorf("SystemParametersInfoW(SPI_SETDESKWALLPAPER): %w", callErr)
	}
	return nil
}

// CurrentWallpaper reads the wallpaper path from SPI_GETDESKWALLPAPER
func (b *WindowsBackend) CurrentWallpaper(ctx context.Context) (string, error) {
	buf := make([]uint16, windows.MAX_PATH)
	if !win.SystemParametersInfo(spiGetDeskWallpaper, uint32(len(buf)), unsafe.Pointer(&buf[0]), 0) {
		return "", fmt.Errorf("SystemParametersInfo(SPI_GETDESKWALLPAPER) failed")
	}
	return windows.UTF16ToString(buf), nil
}
