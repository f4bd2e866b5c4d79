package lifecycle

// Event is delivered by the tray or the window toolkit. The set of events is
// closed: ShowRequested, QuitRequested, CloseRequested and MenuSelected.
type Event interface {
	isEvent()
}

// ShowRequested asks for the main window to be shown and focused
type ShowRequested struct{}

// QuitRequested terminates the process
type QuitRequested struct{}

// CloseRequested is the window manager asking to close the main window
type CloseRequested struct{}

// MenuSelected carries the identifier of a clicked tray menu item
type MenuSelected struct {
	ID string
}

func (ShowRequested) isEvent()  {}
func (QuitRequested) isEvent()  {}
func (CloseRequested) isEvent() {}
func (MenuSelected) isEvent()   {}

// Tray menu item identifiers
const (
	MenuShow = "show"
	MenuQuit = "quit"
)

// MenuItem is a fixed entry of the tray menu
type MenuItem struct {
	ID    string
	Label string
}

// Menu returns the tray menu in display order
func Menu() []MenuItem {
	return []MenuItem{
		{ID: MenuShow, Label: "Show"},
		{ID: MenuQuit, Label: "Quit"},
	}
}

// EventForMenu maps a menu identifier to its event. Unknown identifiers
// report false and are ignored by the controller.
func EventForMenu(id string) (Event, bool) {
	switch id {
	case MenuShow:
		return ShowRequested{}, true
	case MenuQuit:
		return QuitRequested{}, true
	default:
		return nil, false
	}
}
