package engine

import (
	"context"

	"github.com/google/uuid"
	"github.com/orbitalview/wallpaper/internal/domain"
	"go.uber.org/zap"
)

// Engine orchestrates the wallpaper pipeline.
// It fetches an image, commits it to the canonical path and installs it.
//
// Engine keeps no state between runs and does not serialize them: two
// overlapping runs each commit atomically and the last rename wins.
type Engine struct {
	logger    *zap.Logger
	fetcher   domain.Fetcher
	stager    domain.Stager
	installer domain.Installer
}

// NewEngine creates a new orchestration engine
func NewEngine(
	logger *zap.Logger,
	fetch domain.Fetcher,
	stage domain.Stager,
	install domain.Installer,
) *Engine {
	return &Engine{
		logger:    logger,
		fetcher:   fetch,
		stager:    stage,
		installer: install,
	}
}

// DownloadAndInstall runs the complete pipeline for url and returns the
// installed path. The failing stage's error is returned unchanged.
func (e *Engine) DownloadAndInstall(ctx context.Context, url string) (string, error) {
	log := e.logger.With(zap.String("run_id", uuid.NewString()), zap.String("url", url))
	log.Info("Processing wallpaper")

	// 1. Fetch image
	result, err := e.fetcher.Fetch(ctx, url)
	if err != nil {
		log.Error("Failed to fetch image", zap.Error(err))
		return "", err
	}

	// 2. Stage and commit to the canonical path
	path, err := e.stager.Commit(result.Bytes)
	if err != nil {
		log.Error("Failed to commit wallpaper", zap.Error(err))
		return "", err
	}

	// 3. Set wallpaper
	if err := e.installer.Install(ctx, path); err != nil {
		log.Error("Failed to set wallpaper", zap.Error(err))
		return "", err
	}

	log.Info("Wallpaper updated successfully",
		zap.String("path", path),
		zap.String("contentType", result.MediaType),
		zap.Int("bytes", len(result.Bytes)))

	return path, nil
}

// InstallLocal installs an existing file without downloading or copying it
func (e *Engine) InstallLocal(ctx context.Context, path string) error {
	if err := e.installer.Install(ctx, path); err != nil {
		e.logger.Error("Failed to set local wallpaper", zap.String("path", path), zap.Error(err))
		return err
	}
	return nil
}
