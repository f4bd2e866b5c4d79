// Package ui is the fyne front end: one main window and a system tray menu.
//
// Toolkit callbacks never change window visibility themselves. They post
// lifecycle events to a single dispatcher goroutine which owns the window
// state; long running commands run on their own goroutines and report back
// through fyne.Do.
package ui

import (
	"context"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
	"github.com/orbitalview/wallpaper/internal/commands"
	"github.com/orbitalview/wallpaper/internal/config"
	"github.com/orbitalview/wallpaper/internal/domain"
	"github.com/orbitalview/wallpaper/internal/lifecycle"
	"github.com/orbitalview/wallpaper/internal/preview"
	"go.uber.org/zap"
)

const (
	windowWidth  = 560
	windowHeight = 640

	eventBuffer = 16
)

// Shell owns the fyne application, its main window and the tray menu
type Shell struct {
	logger   *zap.Logger
	cfg      *config.AppConfig
	cmds     *commands.Commands
	ctrl     *lifecycle.Controller
	renderer *preview.Renderer
	app      fyne.App

	events chan lifecycle.Event
	window fyne.Window

	urlEntry     *widget.Entry
	sourceSelect *widget.Select
	setButton    *widget.Button
	fileEntry    *widget.Entry
	installBtn   *widget.Button
	startupCheck *widget.Check
	status       *widget.Label
	previewImage *canvas.Image

	// url by source name, filled once sources.json is read
	sourceURLs map[string]string
}

// NewShell creates the shell. The window is built by Run.
func NewShell(
	logger *zap.Logger,
	cfg *config.AppConfig,
	cmds *commands.Commands,
	ctrl *lifecycle.Controller,
	renderer *preview.Renderer,
	app fyne.App,
) *Shell {
	return &Shell{
		logger:     logger,
		cfg:        cfg,
		cmds:       cmds,
		ctrl:       ctrl,
		renderer:   renderer,
		app:        app,
		events:     make(chan lifecycle.Event, eventBuffer),
		sourceURLs: map[string]string{},
	}
}

// Run builds the window and the tray, then blocks in the toolkit loop. It
// must be called from the main goroutine. The process normally ends in the
// Quit handler and never returns from here.
func (s *Shell) Run(ctx context.Context, startHidden bool) {
	// SIGINT or SIGTERM ends the toolkit loop
	stop := context.AfterFunc(ctx, func() { fyne.Do(s.app.Quit) })
	defer stop()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	s.window = s.buildWindow()

	initial := domain.Visible
	if startHidden {
		initial = domain.Hidden
	} else {
		s.window.Show()
	}
	s.ctrl.Attach(toolkitWindow{w: s.window}, initial)

	if desk, ok := s.app.(desktop.App); ok {
		desk.SetSystemTrayMenu(s.trayMenu())
	} else {
		s.logger.Warn("System tray is not available, closing the window will only hide it")
	}

	go s.ctrl.Run(ctx, s.events)
	s.loadInitialState(ctx)

	s.logger.Info("Window ready", zap.Stringer("visibility", initial))
	s.app.Run()
}

func (s *Shell) post(ev lifecycle.Event) {
	s.events <- ev
}

// trayMenu builds the fixed Show / Quit menu
func (s *Shell) trayMenu() *fyne.Menu {
	entries := lifecycle.Menu()
	items := make([]*fyne.MenuItem, 0, len(entries))
	for _, entry := range entries {
		id := entry.ID
		item := fyne.NewMenuItem(entry.Label, func() {
			s.post(lifecycle.MenuSelected{ID: id})
		})
		// fyne adds its own Quit entry unless one is flagged
		item.IsQuit = id == lifecycle.MenuQuit
		items = append(items, item)
	}
	return fyne.NewMenu(s.cfg.AppName, items...)
}

func (s *Shell) buildWindow() fyne.Window {
	w := s.app.NewWindow(s.cfg.AppName)
	w.Resize(fyne.NewSize(windowWidth, windowHeight))
	w.SetCloseIntercept(func() {
		s.post(lifecycle.CloseRequested{})
	})
	w.SetOnClosed(s.ctrl.Detach)
	w.SetContent(s.buildContent(w))
	return w
}

func (s *Shell) buildContent(w fyne.Window) fyne.CanvasObject {
	s.urlEntry = widget.NewEntry()
	s.urlEntry.SetPlaceHolder("https://example.com/image.jpg")

	s.sourceSelect = widget.NewSelect(nil, s.onSourceSelected)
	s.sourceSelect.PlaceHolder = "No sources"
	s.sourceSelect.Disable()

	s.setButton = widget.NewButton("Set wallpaper", s.onSetWallpaper)

	s.fileEntry = widget.NewEntry()
	s.fileEntry.SetPlaceHolder("/path/to/image.jpg")
	browse := widget.NewButton("Browse…", func() { s.onBrowse(w) })
	s.installBtn = widget.NewButton("Install file", s.onInstallFile)

	s.startupCheck = widget.NewCheck("Run at login", nil)
	s.startupCheck.Disable()

	s.status = widget.NewLabel("")
	s.status.Wrapping = fyne.TextWrapWord

	pw, ph := s.renderer.Size()
	s.previewImage = canvas.NewImageFromImage(nil)
	s.previewImage.FillMode = canvas.ImageFillContain
	s.previewImage.SetMinSize(fyne.NewSize(float32(pw), float32(ph)))

	form := widget.NewForm(
		widget.NewFormItem("Source", s.sourceSelect),
		widget.NewFormItem("Image URL", s.urlEntry),
	)
	fileRow := container.NewBorder(nil, nil, nil, browse, s.fileEntry)

	return container.NewVBox(
		form,
		s.setButton,
		widget.NewSeparator(),
		fileRow,
		s.installBtn,
		widget.NewSeparator(),
		s.startupCheck,
		s.previewImage,
		s.status,
	)
}

// loadInitialState reads sources, the startup entry and the current
// wallpaper off the toolkit thread
func (s *Shell) loadInitialState(ctx context.Context) {
	go func() {
		list, err := s.cmds.Sources()
		names := make([]string, 0)
		urls := map[string]string{}
		if err == nil {
			for _, src := range list.Installable() {
				names = append(names, src.Name)
				urls[src.Name] = src.ImageURL
			}
		}
		fyne.Do(func() {
			s.sourceURLs = urls
			s.sourceSelect.SetOptions(names)
			if len(names) > 0 {
				s.sourceSelect.PlaceHolder = "Pick a source"
				s.sourceSelect.Enable()
			}
			s.sourceSelect.Refresh()
		})
	}()

	go func() {
		state, err := s.cmds.StartupState()
		fyne.Do(func() {
			if err != nil {
				s.logger.Warn("Could not read startup entry", zap.Error(err))
			}
			s.applyStartupState(state)
		})
	}()

	go func() {
		path := s.cfg.WallpaperPath()
		if _, err := os.Stat(path); err != nil {
			return
		}
		s.refreshPreview(ctx, path)
	}()
}

func (s *Shell) applyStartupState(state domain.RegistrationState) {
	s.startupCheck.OnChanged = nil
	s.startupCheck.SetChecked(state.Registered)
	if !state.Supported {
		s.startupCheck.Disable()
		return
	}
	s.startupCheck.OnChanged = s.onStartupToggled
	s.startupCheck.Enable()
}

func (s *Shell) onSourceSelected(name string) {
	if url, ok := s.sourceURLs[name]; ok {
		s.urlEntry.SetText(url)
	}
}

func (s *Shell) onSetWallpaper() {
	url := s.urlEntry.Text
	s.setButton.Disable()
	s.status.SetText("Downloading…")

	go func() {
		ctx := context.Background()
		path, err := s.cmds.FetchInstall(ctx, url)
		fyne.Do(func() {
			s.setButton.Enable()
			if err != nil {
				s.status.SetText(err.Error())
				return
			}
			s.status.SetText("Wallpaper set: " + path)
		})
		if err == nil {
			s.refreshPreview(ctx, path)
		}
	}()
}

func (s *Shell) onInstallFile() {
	path := s.fileEntry.Text
	s.installBtn.Disable()
	s.status.SetText("Installing…")

	go func() {
		ctx := context.Background()
		err := s.cmds.InstallLocal(ctx, path)
		fyne.Do(func() {
			s.installBtn.Enable()
			if err != nil {
				s.status.SetText(err.Error())
				return
			}
			s.status.SetText("Wallpaper set: " + path)
		})
		if err == nil {
			s.refreshPreview(ctx, path)
		}
	}()
}

func (s *Shell) onBrowse(w fyne.Window) {
	dialog.ShowFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil {
			s.status.SetText(err.Error())
			return
		}
		if reader == nil {
			return
		}
		defer reader.Close()
		s.fileEntry.SetText(reader.URI().Path())
	}, w)
}

func (s *Shell) onStartupToggled(enabled bool) {
	s.startupCheck.Disable()

	go func() {
		err := s.cmds.SetStartup(enabled)
		state, stateErr := s.cmds.StartupState()
		fyne.Do(func() {
			if err != nil {
				s.status.SetText(err.Error())
			} else if enabled {
				s.status.SetText("Will run at login")
			} else {
				s.status.SetText("Will not run at login")
			}
			if stateErr != nil {
				state = domain.RegistrationState{Supported: true, Registered: enabled && err == nil}
			}
			s.applyStartupState(state)
		})
	}()
}

// refreshPreview renders path and swaps it into the window. Failures only
// leave the previous preview in place.
func (s *Shell) refreshPreview(ctx context.Context, path string) {
	if ctx.Err() != nil {
		return
	}
	img, err := s.renderer.Render(path)
	if err != nil {
		s.logger.Warn("Could not render preview", zap.String("path", path), zap.Error(err))
		return
	}
	fyne.Do(func() {
		s.previewImage.Image = img
		s.previewImage.Refresh()
	})
}
