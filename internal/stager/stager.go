// Package stager owns the application-private data directory and promotes
// downloaded images onto the canonical wallpaper path.
//
// A download is written in full to a staging file next to the canonical file
// and then renamed over it. Because both names live in the same directory the
// rename is a single atomic operation: a reader of the canonical path sees
// either the previous image or the new one, never a partial write. A staging
// file left behind by a crash is overwritten by the next run.
package stager

import (
	"os"
	"path/filepath"
	"unicode/utf8"

	"github.com/orbitalview/wallpaper/internal/config"
	"github.com/orbitalview/wallpaper/internal/domain"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// AtomicStager writes wallpapers through a staging file
type AtomicStager struct {
	logger      *zap.Logger
	dir         string
	stagingPath string
	finalPath   string
}

// NewAtomicStager creates a stager rooted at the configured data directory
func NewAtomicStager(logger *zap.Logger, cfg *config.AppConfig) *AtomicStager {
	return &AtomicStager{
		logger:      logger,
		dir:         cfg.DataDir,
		stagingPath: cfg.StagingPath(),
		finalPath:   cfg.WallpaperPath(),
	}
}

// Commit stores data at the canonical wallpaper path and returns that path
func (s *AtomicStager) Commit(data []byte) (string, error) {
	if err := os.MkdirAll(s.dir, dirPerm); err != nil {
		return "", domain.Errorf(domain.KindDirectoryError, "failed to create app data dir %s: %w", s.dir, err)
	}

	if err := s.writeStaging(data); err != nil {
		return "", err
	}

	if err := os.Rename(s.stagingPath, s.finalPath); err != nil {
		return "", domain.Errorf(domain.KindCommitError, "failed to finalize wallpaper file %s: %w", s.finalPath, err)
	}

	path, err := absolute(s.finalPath)
	if err != nil {
		return "", err
	}

	s.logger.Info("Wallpaper committed",
		zap.String("path", path),
		zap.Int("size", len(data)))

	return path, nil
}

// writeStaging truncates the staging file, writes data and flushes it to disk.
// The file is closed before returning so the rename sees its final content.
func (s *AtomicStager) writeStaging(data []byte) error {
	f, err := os.OpenFile(s.stagingPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, filePerm)
	if err != nil {
		return domain.Errorf(domain.KindWriteError, "failed to create staging file %s: %w", s.stagingPath, err)
	}

	_, werr := f.Write(data)
	if werr == nil {
		werr = f.Sync()
	}
	werr = multierr.Append(werr, f.Close())
	if werr != nil {
		return domain.Errorf(domain.KindWriteError, "failed to write image to staging file %s: %w", s.stagingPath, werr)
	}
	return nil
}

// absolute returns path as an absolute, valid UTF-8 string
func absolute(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}
	if !utf8.ValidString(abs) {
		return "", domain.Errorf(domain.KindEncodingError, "final path is not valid UTF-8: %q", abs)
	}
	return abs, nil
}
