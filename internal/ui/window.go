package ui

import (
	"fyne.io/fyne/v2"
	"github.com/orbitalview/wallpaper/internal/lifecycle"
)

// toolkitWindow hands window operations from the dispatcher goroutine to
// the toolkit thread
type toolkitWindow struct {
	w fyne.Window
}

var _ lifecycle.Window = toolkitWindow{}

func (t toolkitWindow) Show()         { fyne.Do(t.w.Show) }
func (t toolkitWindow) Hide()         { fyne.Do(t.w.Hide) }
func (t toolkitWindow) RequestFocus() { fyne.Do(t.w.RequestFocus) }
