package stager

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/orbitalview/wallpaper/internal/config"
	"github.com/orbitalview/wallpaper/internal/domain"
	"go.uber.org/zap"
)

func newTestStager(t *testing.T) (*AtomicStager, *config.AppConfig) {
	t.Helper()
	cfg := config.Defaults()
	cfg.DataDir = filepath.Join(t.TempDir(), "OrbitalViewWallpaper")
	return NewAtomicStager(zap.NewNop(), &cfg), &cfg
}

func TestAtomicStager_Commit(t *testing.T) {
	s, cfg := newTestStager(t)
	data := []byte("\xFF\xD8\xFFfake-jpeg")

	path, err := s.Commit(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want, _ := filepath.Abs(cfg.WallpaperPath())
	if path != want {
		t.Errorf("expected path %s, got %s", want, path)
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read committed file: %v", err)
	}
	if !bytes.Equal(got, data) {
		t.Errorf("committed file differs from input")
	}

	if _, err := os.Stat(cfg.StagingPath()); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("staging file should be renamed away, stat err: %v", err)
	}
}

func TestAtomicStager_OverwritesPreviousAndStaleStaging(t *testing.T) {
	s, cfg := newTestStager(t)

	if _, err := s.Commit([]byte("first wallpaper, rather long")); err != nil {
		t.Fatalf("first commit: %v", err)
	}

	// Leftover from an interrupted run
	if err := os.WriteFile(cfg.StagingPath(), []byte("stale staging data that is longer than the next image"), 0o644); err != nil {
		t.Fatal(err)
	}

	path, err := s.Commit([]byte("second"))
	if err != nil {
		t.Fatalf("second commit: %v", err)
	}

	got, _ := os.ReadFile(path)
	if string(got) != "second" {
		t.Errorf("expected %q, got %q", "second", got)
	}
}

func TestAtomicStager_Errors(t *testing.T) {
	tests := []struct {
		name         string
		setup        func(t *testing.T, cfg *config.AppConfig)
		expectedKind domain.Kind
	}{
		{
			name: "Directory Error - Parent Is A File",
			setup: func(t *testing.T, cfg *config.AppConfig) {
				parent := filepath.Dir(cfg.DataDir)
				blocker := filepath.Join(parent, "blocker")
				if err := os.WriteFile(blocker, nil, 0o644); err != nil {
					t.Fatal(err)
				}
				cfg.DataDir = filepath.Join(blocker, "OrbitalViewWallpaper")
			},
			expectedKind: domain.KindDirectoryError,
		},
		{
			name: "Write Error - Staging Path Is A Directory",
			setup: func(t *testing.T, cfg *config.AppConfig) {
				if err := os.MkdirAll(cfg.StagingPath(), 0o755); err != nil {
					t.Fatal(err)
				}
			},
			expectedKind: domain.KindWriteError,
		},
		{
			name: "Commit Error - Canonical Path Is A Non-Empty Directory",
			setup: func(t *testing.T, cfg *config.AppConfig) {
				if err := os.MkdirAll(filepath.Join(cfg.WallpaperPath(), "occupied"), 0o755); err != nil {
					t.Fatal(err)
				}
			},
			expectedKind: domain.KindCommitError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.Defaults()
			cfg.DataDir = filepath.Join(t.TempDir(), "OrbitalViewWallpaper")
			tt.setup(t, &cfg)

			s := NewAtomicStager(zap.NewNop(), &cfg)
			_, err := s.Commit([]byte("image"))

			if got := domain.KindOf(err); got != tt.expectedKind {
				t.Errorf("expected kind %s, got %s (%v)", tt.expectedKind, got, err)
			}
		})
	}
}

func TestAbsolute_RejectsInvalidUTF8(t *testing.T) {
	_, err := absolute(string([]byte{'/', 't', 'm', 'p', '/', 0xff, 0xfe}))
	if !domain.IsKind(err, domain.KindEncodingError) {
		t.Errorf("expected EncodingError, got %v", err)
	}
}

// TestAtomicStager_ReaderNeverSeesPartialFile races a reader against a series
// of commits. Every successful read must match one of the committed images.
func TestAtomicStager_ReaderNeverSeesPartialFile(t *testing.T) {
	s, cfg := newTestStager(t)

	imageA := bytes.Repeat([]byte{'A'}, 256*1024)
	imageB := bytes.Repeat([]byte{'B'}, 512*1024)

	if _, err := s.Commit(imageA); err != nil {
		t.Fatalf("initial commit: %v", err)
	}

	done := make(chan struct{})
	var wg sync.WaitGroup
	var torn int
	wg.Add(1)
	go func() {
		defer wg.Done()
		for {
			select {
			case <-done:
				return
			default:
			}
			got, err := os.ReadFile(cfg.WallpaperPath())
			if err != nil {
				// Windows may briefly refuse to open a file being replaced
				continue
			}
			if !bytes.Equal(got, imageA) && !bytes.Equal(got, imageB) {
				torn++
			}
		}
	}()

	for i := 0; i < 50; i++ {
		img := imageA
		if i%2 == 0 {
			img = imageB
		}
		if _, err := s.Commit(img); err != nil {
			close(done)
			wg.Wait()
			t.Fatalf("commit %d: %v", i, err)
		}
	}
	close(done)
	wg.Wait()

	if torn > 0 {
		t.Errorf("reader observed %d partially written files", torn)
	}
}
