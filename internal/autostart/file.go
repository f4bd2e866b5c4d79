package autostart

import (
	"errors"
	"fmt"
	"html"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/orbitalview/wallpaper/internal/domain"
	"go.uber.org/multierr"
)

// entryFormat renders and parses one kind of autostart file
type entryFormat struct {
	ext    string
	render func(name, command string) string
	parse  func(content string) (string, bool)
}

// FileBackend keeps one autostart file per entry in dir
type FileBackend struct {
	dir    string
	format entryFormat
}

// NewDesktopEntryBackend stores XDG autostart .desktop files in dir
func NewDesktopEntryBackend(dir string) *FileBackend {
	return &FileBackend{dir: dir, format: desktopEntry}
}

// NewLaunchAgentBackend stores launchd agent plists in dir
func NewLaunchAgentBackend(dir string) *FileBackend {
	return &FileBackend{dir: dir, format: launchAgent}
}

// Set writes the entry file through a temporary sibling and a rename
func (b *FileBackend) Set(name, command string) error {
	if err := os.MkdirAll(b.dir, 0o755); err != nil {
		return fmt.Errorf("create %s: %w", b.dir, err)
	}

	final := b.path(name)
	tmp := final + ".tmp"

	f, err := os.OpenFile(tmp, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return fmt.Errorf("create %s: %w", tmp, err)
	}
	_, err = f.WriteString(b.format.render(name, command))
	err = multierr.Append(err, f.Close())
	if err != nil {
		return fmt.Errorf("write %s: %w", tmp, multierr.Append(err, os.Remove(tmp)))
	}

	if err := os.Rename(tmp, final); err != nil {
		return fmt.Errorf("rename %s: %w", final, err)
	}
	return nil
}

// Get returns the command stored in the entry file
func (b *FileBackend) Get(name string) (string, error) {
	content, err := os.ReadFile(b.path(name))
	if errors.Is(err, os.ErrNotExist) {
		return "", domain.ErrEntryNotFound
	}
	if err != nil {
		return "", err
	}

	command, ok := b.format.parse(string(content))
	if !ok {
		return "", fmt.Errorf("%s has no launch command", b.path(name))
	}
	return command, nil
}

// Delete removes the entry file
func (b *FileBackend) Delete(name string) error {
	err := os.Remove(b.path(name))
	if errors.Is(err, os.ErrNotExist) {
		return domain.ErrEntryNotFound
	}
	return err
}

func (b *FileBackend) path(name string) string {
	return filepath.Join(b.dir, slug(name)+b.format.ext)
}

var slugInvalid = regexp.MustCompile(`[^a-z0-9._-]+`)

// slug turns "OrbitalView Wallpaper" into "orbitalview-wallpaper"
func slug(name string) string {
	s := slugInvalid.ReplaceAllString(strings.ToLower(name), "-")
	return strings.Trim(s, "-")
}

var desktopEntry = entryFormat{
	ext: ".desktop",
	render: func(name, command string) string {
		return "[Desktop Entry]\n" +
			"Type=Application\n" +
			"Name=" + name + "\n" +
			"Exec=" + command + "\n" +
			"Terminal=false\n" +
			"X-GNOME-Autostart-enabled=true\n"
	},
	parse: func(content string) (string, bool) {
		for _, line := range strings.Split(content, "\n") {
			if v, ok := strings.CutPrefix(strings.TrimSpace(line), "Exec="); ok {
				return v, true
			}
		}
		return "", false
	},
}

var programRE = regexp.MustCompile(`<key>ProgramArguments</key>\s*<array>\s*<string>([^<]*)</string>`)

var launchAgent = entryFormat{
	ext: ".plist",
	render: func(name, command string) string {
		return `<?xml version="1.0" encoding="UTF-8"?>
<!DOCTYPE plist PUBLIC "-//Apple//DTD PLIST 1.0//EN" "http://www.apple.com/DTDs/PropertyList-1.0.dtd">
<plist version="1.0">
<dict>
	<key>Label</key>
	<string>` + html.EscapeString(slug(name)) + `</string>
	<key>ProgramArguments</key>
	<array>
		<string>` + html.EscapeString(unquote(command)) + `</string>
	</array>
	<key>RunAtLoad</key>
	<true/>
</dict>
</plist>
`
	},
	parse: func(content string) (string, bool) {
		m := programRE.FindStringSubmatch(content)
		if m == nil {
			return "", false
		}
		return quote(html.UnescapeString(m[1])), true
	},
}

// unquote strips the quotes added by quote; launchd takes argv directly
func unquote(command string) string {
	if len(command) >= 2 && command[0] == '"' && command[len(command)-1] == '"' {
		return command[1 : len(command)-1]
	}
	return command
}
