// Package autostart manages the per-user "run at login" entry.
//
// The Registrar is idempotent: enabling writes the entry whether or not one
// already exists, and disabling an absent entry succeeds. The storage itself
// is an AutostartBackend selected for the OS at startup.
package autostart

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/orbitalview/wallpaper/internal/config"
	"github.com/orbitalview/wallpaper/internal/domain"
	"go.uber.org/zap"
)

// Registrar toggles the autostart entry for this executable
type Registrar struct {
	logger     *zap.Logger
	backend    domain.AutostartBackend
	name       string
	executable func() (string, error)
}

// NewRegistrar creates a registrar whose entry is keyed by the app name
func NewRegistrar(logger *zap.Logger, cfg *config.AppConfig, backend domain.AutostartBackend) *Registrar {
	return &Registrar{
		logger:     logger,
		backend:    backend,
		name:       cfg.AppName,
		executable: executablePath,
	}
}

// SetStartup adds or removes the entry launching this executable at login
func (r *Registrar) SetStartup(enabled bool) error {
	exe, err := r.executable()
	if err != nil {
		return domain.Errorf(domain.KindPathResolutionError, "failed to get exe path: %w", err)
	}

	if enabled {
		command := quote(exe)
		if err := r.backend.Set(r.name, command); err != nil {
			return backendError(err, "failed to set startup value %q: %w", r.name, err)
		}
		r.logger.Info("Run at login enabled", zap.String("name", r.name), zap.String("command", command))
		return nil
	}

	if err := r.backend.Delete(r.name); err != nil {
		if errors.Is(err, domain.ErrEntryNotFound) {
			r.logger.Debug("Run at login already disabled", zap.String("name", r.name))
			return nil
		}
		return backendError(err, "failed to remove startup value %q: %w", r.name, err)
	}
	r.logger.Info("Run at login disabled", zap.String("name", r.name))
	return nil
}

// State reports whether the entry exists and what it launches
func (r *Registrar) State() (domain.RegistrationState, error) {
	command, err := r.backend.Get(r.name)
	switch {
	case err == nil:
		return domain.RegistrationState{Supported: true, Registered: true, Command: command}, nil
	case errors.Is(err, domain.ErrEntryNotFound):
		return domain.RegistrationState{Supported: true}, nil
	case domain.IsKind(err, domain.KindUnsupportedPlatform):
		return domain.RegistrationState{}, nil
	default:
		return domain.RegistrationState{Supported: true}, backendError(err, "failed to read startup value %q: %w", r.name, err)
	}
}

// backendError keeps UnsupportedPlatform as is and reports anything else as
// a RegistryError
func backendError(err error, format string, args ...any) error {
	if domain.IsKind(err, domain.KindUnsupportedPlatform) {
		return err
	}
	return domain.Errorf(domain.KindRegistryError, format, args...)
}

// executablePath resolves the running binary to an absolute path with
// symlinks evaluated
func executablePath() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", err
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return filepath.Abs(exe)
}

// quote wraps path in double quotes so paths with spaces survive the shell
// or Explorer parsing the stored command
func quote(path string) string {
	return `"` + path + `"`
}
