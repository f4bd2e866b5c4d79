package domain

// FetchResult is an image downloaded by a Fetcher. It only exists in memory
// for the duration of one pipeline run.
type FetchResult struct {
	// Bytes is the complete response body
	Bytes []byte
	// MediaType is the lower-cased Content-Type declared by the server
	MediaType string
}

// Visibility is the state of the main window.
type Visibility int

const (
	// Visible means the window is shown to the user
	Visible Visibility = iota
	// Hidden means the window still exists but is not shown
	Hidden
)

func (v Visibility) String() string {
	switch v {
	case Visible:
		return "visible"
	case Hidden:
		return "hidden"
	default:
		return "unknown"
	}
}

// RegistrationState describes the "run at login" entry
type RegistrationState struct {
	// Supported is false on platforms without an autostart facility
	Supported bool
	// Registered reports whether the entry currently exists
	Registered bool
	// Command is the stored launch command, empty when not registered
	Command string
}

// ScreenResolution holds the display dimensions
type ScreenResolution struct {
	Width  int
	Height int
}
