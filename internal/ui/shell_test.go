package ui

import (
	"testing"

	"fyne.io/fyne/v2/test"
	"github.com/orbitalview/wallpaper/internal/commands"
	"github.com/orbitalview/wallpaper/internal/config"
	"github.com/orbitalview/wallpaper/internal/domain"
	"github.com/orbitalview/wallpaper/internal/lifecycle"
	"github.com/orbitalview/wallpaper/internal/preview"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestShell(t *testing.T) *Shell {
	t.Helper()
	cfg := &config.AppConfig{AppName: "OrbitalView Wallpaper", DataDir: t.TempDir()}
	logger := zap.NewNop()
	cmds := commands.NewCommands(logger, cfg, nil, nil)
	ctrl := lifecycle.NewController(logger, func(int) { t.Error("unexpected exit") })
	renderer := preview.NewRenderer(logger, &domain.ScreenResolution{Width: 1920, Height: 1080})
	return NewShell(logger, cfg, cmds, ctrl, renderer, test.NewApp())
}

func TestShell_TrayMenu(t *testing.T) {
	s := newTestShell(t)

	menu := s.trayMenu()
	assert.Equal(t, "OrbitalView Wallpaper", menu.Label)
	require.Len(t, menu.Items, 2)

	show, quit := menu.Items[0], menu.Items[1]
	assert.Equal(t, "Show", show.Label)
	assert.False(t, show.IsQuit)
	assert.Equal(t, "Quit", quit.Label)
	assert.True(t, quit.IsQuit)

	show.Action()
	quit.Action()
	assert.Equal(t, lifecycle.MenuSelected{ID: "show"}, <-s.events)
	assert.Equal(t, lifecycle.MenuSelected{ID: "quit"}, <-s.events)
}

func TestShell_BuildWindow(t *testing.T) {
	s := newTestShell(t)

	w := s.buildWindow()
	defer w.Close()

	assert.Equal(t, "OrbitalView Wallpaper", w.Title())
	require.NotNil(t, s.urlEntry)
	assert.True(t, s.sourceSelect.Disabled())
	assert.True(t, s.startupCheck.Disabled())
	assert.Equal(t, float32(480), s.previewImage.MinSize().Width)
	assert.Equal(t, float32(270), s.previewImage.MinSize().Height)
}

func TestShell_SourceSelectionFillsURL(t *testing.T) {
	s := newTestShell(t)
	w := s.buildWindow()
	defer w.Close()

	s.sourceURLs = map[string]string{"GOES-East": "https://example.com/goes.jpg"}
	s.onSourceSelected("GOES-East")
	assert.Equal(t, "https://example.com/goes.jpg", s.urlEntry.Text)

	s.onSourceSelected("unknown")
	assert.Equal(t, "https://example.com/goes.jpg", s.urlEntry.Text)
}

func TestShell_ApplyStartupState(t *testing.T) {
	tests := []struct {
		name             string
		state            domain.RegistrationState
		expectedChecked  bool
		expectedDisabled bool
	}{
		{"Registered", domain.RegistrationState{Supported: true, Registered: true}, true, false},
		{"Not Registered", domain.RegistrationState{Supported: true}, false, false},
		{"Unsupported Platform", domain.RegistrationState{}, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestShell(t)
			w := s.buildWindow()
			defer w.Close()

			s.applyStartupState(tt.state)

			assert.Equal(t, tt.expectedChecked, s.startupCheck.Checked)
			assert.Equal(t, tt.expectedDisabled, s.startupCheck.Disabled())
		})
	}
}
