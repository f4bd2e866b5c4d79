package domain

import "context"

//go:generate mockgen -destination=mocks/domain_mock.go -package=mocks github.com/orbitalview/wallpaper/internal/domain Fetcher,Stager,Installer,WallpaperBackend,AutostartBackend,Pipeline,Registrar

// Fetcher retrieves a remote image
type Fetcher interface {
	// Fetch performs a single GET and returns the body once the server has
	// confirmed success and declared an image/* media type
	Fetch(ctx context.Context, url string) (*FetchResult, error)
}

// Stager owns the private data directory and the canonical wallpaper file
type Stager interface {
	// Commit writes data to the staging file and renames it onto the
	// canonical wallpaper path, returning that path
	Commit(data []byte) (string, error)
}

// WallpaperBackend is the OS facility that changes the desktop background.
type WallpaperBackend interface {
	// Name identifies the backend in logs
	Name() string

	// SetWallpaper points the desktop background at imagePath
	SetWallpaper(ctx context.Context, imagePath string) error

	// CurrentWallpaper returns the path of the current background
	// Returns an error if the operation is not supported or fails
	CurrentWallpaper(ctx context.Context) (string, error)
}

// Installer applies a committed wallpaper file to the desktop
type Installer interface {
	Install(ctx context.Context, path string) error
}

// AutostartBackend stores named "launch at login" commands in the OS.
type AutostartBackend interface {
	// Set creates or overwrites the entry called name
	Set(name, command string) error

	// Get returns the stored command, or ErrEntryNotFound
	Get(name string) (string, error)

	// Delete removes the entry, or returns ErrEntryNotFound if it is absent
	Delete(name string) error
}

// Pipeline downloads and installs wallpapers
type Pipeline interface {
	DownloadAndInstall(ctx context.Context, url string) (string, error)
	InstallLocal(ctx context.Context, path string) error
}

// Registrar toggles the "run at login" entry for this application
type Registrar interface {
	SetStartup(enabled bool) error
	State() (RegistrationState, error)
}
