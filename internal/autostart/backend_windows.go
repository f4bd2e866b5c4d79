//go:build windows

package autostart

import (
	"errors"
	"fmt"

	"github.com/orbitalview/wallpaper/internal/domain"
	"go.uber.org/zap"
	"golang.org/x/sys/windows/registry"
)

const runKeyPath = `Software\Microsoft\Windows\CurrentVersion\Run`

// RegistryBackend stores entries as string values under HKCU\...\Run
type RegistryBackend struct{}

// NewBackend returns the registry backend
func NewBackend(logger *zap.Logger) domain.AutostartBackend {
	return &RegistryBackend{}
}

// Set creates the Run key if needed and overwrites the value
func (b *RegistryBackend) Set(name, command string) error {
	key, _, err := registry.CreateKey(registry.CURRENT_USER, runKeyPath, registry.SET_VALUE)
	if err != nil {
		return fmt.Errorf("failed to open Run key: %w", err)
	}
	defer key.Close()

	return key.SetStringValue(name, command)
}

func (b *RegistryBackend) Get(name string) (string, error) {
	key, err := registry.OpenKey(registry.CURRENT_USER, runKeyPath, registry.QUERY_VALUE)
	if err != nil {
		return "", notFound(err)
	}
	defer key.Close()

	value, _, err := key.GetStringValue(name)
	if err != nil {
		return "", notFound(err)
	}
	return value, nil
}

func (b *RegistryBackend) Delete(name string) error {
	key, err := registry.OpenKey(registry.CURRENT_USER, runKeyPath, registry.SET_VALUE)
	if err != nil {
		return notFound(err)
	}
	defer key.Close()

	return notFound(key.DeleteValue(name))
}

// notFound maps ERROR_FILE_NOT_FOUND to ErrEntryNotFound
func notFound(err error) error {
	if errors.Is(err, registry.ErrNotExist) {
		return domain.ErrEntryNotFound
	}
	return err
}
