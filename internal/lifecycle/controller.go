// Package lifecycle implements the tray and window state machine.
//
// The main window is either visible or hidden and is never destroyed by
// this package: closing it hides it, "Show" brings it back, and the process
// only ends through "Quit". Events are handled one at a time on a single
// dispatch goroutine, so the visibility state needs no locking beyond what
// makes it safe to read from tests.
package lifecycle

import (
	"context"
	"sync"

	"github.com/orbitalview/wallpaper/internal/domain"
	"go.uber.org/zap"
)

// ExitCode is the process status used by Quit
const ExitCode = 0

// Window is the toolkit's main window
type Window interface {
	Show()
	Hide()
	RequestFocus()
}

// Controller owns the window handle and applies events to it
type Controller struct {
	logger *zap.Logger
	exit   func(code int)

	mu         sync.Mutex
	window     Window
	visibility domain.Visibility
}

// NewController creates a controller. exit is called with ExitCode on Quit
// and is expected not to return.
func NewController(logger *zap.Logger, exit func(code int)) *Controller {
	return &Controller{
		logger:     logger,
		exit:       exit,
		visibility: domain.Hidden,
	}
}

// Attach hands the main window to the controller
func (c *Controller) Attach(w Window, initial domain.Visibility) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.window = w
	c.visibility = initial
}

// Detach forgets the window, e.g. after the toolkit destroyed it
func (c *Controller) Detach() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.window = nil
	c.visibility = domain.Hidden
}

// Visibility returns the current window state
func (c *Controller) Visibility() domain.Visibility {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.visibility
}

// Handle applies one event
func (c *Controller) Handle(ev Event) {
	switch e := ev.(type) {
	case MenuSelected:
		mapped, ok := EventForMenu(e.ID)
		if !ok {
			c.logger.Debug("Ignoring unknown menu item", zap.String("id", e.ID))
			return
		}
		c.Handle(mapped)

	case ShowRequested:
		c.show()

	case CloseRequested:
		c.hide()

	case QuitRequested:
		c.logger.Info("Quit requested")
		c.exit(ExitCode)
	}
}

func (c *Controller) show() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.window == nil {
		c.logger.Debug("Show requested without a window")
		return
	}

	// Show and focus even when already visible: a minimized or buried
	// window is still tracked as visible
	c.window.Show()
	c.window.RequestFocus()
	if c.visibility != domain.Visible {
		c.visibility = domain.Visible
		c.logger.Debug("Window shown")
	}
}

// hide is the close interception: the toolkit's default close is always
// suppressed, the window is only hidden
func (c *Controller) hide() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.window == nil || c.visibility == domain.Hidden {
		return
	}

	c.window.Hide()
	c.visibility = domain.Hidden
	c.logger.Debug("Window hidden to tray")
}

// Run handles events in arrival order until ctx is done or events is closed
func (c *Controller) Run(ctx context.Context, events <-chan Event) {
	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-events:
			if !ok {
				return
			}
			c.Handle(ev)
		}
	}
}
