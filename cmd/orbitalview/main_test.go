package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/orbitalview/wallpaper/internal/commands"
	"go.uber.org/fx"
)

// TestAppGraphValidity verifies that the dependency graph is resolvable.
// This test will fail if you forget an fx.Provide for a required interface.
func TestAppGraphValidity(t *testing.T) {
	for name, opts := range map[string]fx.Option{
		"core": CoreOptions,
		"app":  AppOptions,
	} {
		t.Run(name, func(t *testing.T) {
			// fx.ValidateApp checks that there are no missing or cyclic dependencies
			if err := fx.ValidateApp(opts); err != nil {
				t.Errorf("Dependency graph is not valid: %v", err)
			}
		})
	}
}

// TestNewLogger specifically verifies the logger configuration
func TestNewLogger(t *testing.T) {
	for _, debug := range []string{"", "true"} {
		t.Setenv("ORBITALVIEW_DEBUG", debug)
		logger, err := newLogger()
		if err != nil {
			t.Fatalf("Failed to create logger: %v", err)
		}
		if logger == nil {
			t.Fatal("Logger should not be nil")
		}
		logger.Info("Test logger initialization")
	}
}

// TestEndToEndStartup starts and stops the headless graph against a
// temporary data directory
func TestEndToEndStartup(t *testing.T) {
	t.Setenv("ORBITALVIEW_DATA_DIR", t.TempDir())

	app := fx.New(
		CoreOptions,
		fx.NopLogger, // Silence Fx logs during tests
	)

	if err := app.Start(t.Context()); err != nil {
		t.Fatalf("App failed to start: %v", err)
	}
	if err := app.Stop(t.Context()); err != nil {
		t.Fatalf("App failed to stop: %v", err)
	}
}

func TestEndToEndStartup_InvalidConfig(t *testing.T) {
	t.Setenv("ORBITALVIEW_DATA_DIR", t.TempDir())
	t.Setenv("ORBITALVIEW_MAX_IMAGE_BYTES", "0")

	err := withCommands(context.Background(), func(*commands.Commands) error {
		t.Fatal("commands should not run with an invalid configuration")
		return nil
	})
	if !isStartupError(err) {
		t.Errorf("expected a startup error, got %v", err)
	}
}

func TestCLI(t *testing.T) {
	tests := []struct {
		name          string
		args          []string
		expectedOut   string
		expectedError string
	}{
		{name: "Ping", args: []string{"ping"}, expectedOut: "pong\n"},
		{name: "Fetch Blank URL", args: []string{"fetch", "  "}, expectedError: "empty"},
		{name: "Fetch Needs URL", args: []string{"fetch"}, expectedError: "accepts 1 arg(s)"},
		{name: "Startup Rejects Unknown Mode", args: []string{"startup", "maybe"}, expectedError: "invalid argument"},
		{name: "Sources Without File", args: []string{"sources"}, expectedError: "sources.json"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("ORBITALVIEW_DATA_DIR", t.TempDir())

			var out bytes.Buffer
			cmd := newRootCmd()
			cmd.SetOut(&out)
			cmd.SetErr(&out)
			cmd.SetArgs(tt.args)

			err := cmd.ExecuteContext(t.Context())

			if tt.expectedError != "" {
				if err == nil {
					t.Fatalf("expected error containing '%s', got nil", tt.expectedError)
				}
				if !strings.Contains(err.Error(), tt.expectedError) {
					t.Errorf("expected error '%s' to contain '%s'", err.Error(), tt.expectedError)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if out.String() != tt.expectedOut {
				t.Errorf("expected output %q, got %q", tt.expectedOut, out.String())
			}
		})
	}
}

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(t.Context())
	return out.String(), err
}

func TestCLI_Read(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("ORBITALVIEW_DATA_DIR", dir)
	path := filepath.Join(dir, "notes.txt")
	if err := os.WriteFile(path, []byte("hello\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	out, err := runCLI(t, "read", path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "hello\n" {
		t.Errorf("expected file content, got %q", out)
	}

	missing := filepath.Join(dir, "missing.txt")
	if _, err := runCLI(t, "read", missing); err == nil || !strings.Contains(err.Error(), "failed to read "+missing) {
		t.Errorf("expected read failure naming the path, got %v", err)
	}
}

func TestCLI_SourcesByID(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("ORBITALVIEW_DATA_DIR", dir)
	doc := `{"version": 1, "sources": [
		{"id": "goes", "name": "GOES-East", "image_url": "https://example.com/goes.jpg", "default_refresh_minutes": 10, "favorite": true},
		{"id": "himawari", "name": "Himawari"}
	]}`
	if err := os.WriteFile(filepath.Join(dir, "sources.json"), []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}

	out, err := runCLI(t, "sources")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := "* goes\tGOES-East\thttps://example.com/goes.jpg\n  himawari\tHimawari\t\n"; out != want {
		t.Errorf("expected %q, got %q", want, out)
	}

	out, err = runCLI(t, "sources", "goes")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "id\tgoes\nname\tGOES-East\nimage_url\thttps://example.com/goes.jpg\ndefault_refresh_minutes\t10\nfavorite\ttrue\n"
	if out != want {
		t.Errorf("expected %q, got %q", want, out)
	}

	if _, err := runCLI(t, "sources", "unknown"); err == nil || !strings.Contains(err.Error(), `no source with id "unknown"`) {
		t.Errorf("expected unknown id error, got %v", err)
	}
}
