package executor

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strconv"
	"strings"
	"sync"

	"go.uber.org/zap"
)

// PathStyle controls how the image path is substituted into a command
type PathStyle int

const (
	// PathRaw substitutes the plain filesystem path
	PathRaw PathStyle = iota
	// PathURI substitutes a file:// URI (GNOME)
	PathURI
	// PathQuoted substitutes a double-quoted string literal (AppleScript)
	PathQuoted
)

// WallpaperCommand represents a detected wallpaper setter command
type WallpaperCommand struct {
	Name   string
	Binary string
	// Invocations are run in order; %s is replaced with the image path
	Invocations [][]string
	Style       PathStyle
	// Query prints the current wallpaper, nil when the tool cannot report it
	Query []string
	// Detach marks a setter that keeps running to hold the wallpaper
	// (swaybg). It is started in the background and replaces the instance
	// started by the previous call.
	Detach bool
}

func (c WallpaperCommand) format(path string) string {
	switch c.Style {
	case PathURI:
		return "file://" + path
	case PathQuoted:
		return strconv.Quote(path)
	default:
		return path
	}
}

// args builds the argument list of one invocation for imagePath
func (c WallpaperCommand) args(invocation []string, imagePath string) []string {
	args := make([]string, len(invocation))
	for i, arg := range invocation {
		args[i] = strings.ReplaceAll(arg, "%s", c.format(imagePath))
	}
	return args
}

// runFunc runs a binary and returns its combined output
type runFunc func(ctx context.Context, binary string, args ...string) ([]byte, error)

func execRun(ctx context.Context, binary string, args ...string) ([]byte, error) {
	return exec.CommandContext(ctx, binary, args...).CombinedOutput()
}

// detachedProcess is a background setter owned by a CommandBackend
type detachedProcess interface {
	Stop() error
}

// startFunc starts binary without waiting for it to exit
type startFunc func(binary string, args ...string) (detachedProcess, error)

type execProcess struct {
	cmd  *exec.Cmd
	done chan struct{}
}

// execStart is not bound to a context: the setter has to outlive the call
func execStart(binary string, args ...string) (detachedProcess, error) {
	cmd := exec.Command(binary, args...)
	if err := cmd.Start(); err != nil {
		return nil, err
	}
	p := &execProcess{cmd: cmd, done: make(chan struct{})}
	go func() {
		_ = cmd.Wait()
		close(p.done)
	}()
	return p, nil
}

// Stop kills the process and waits until it is reaped
func (p *execProcess) Stop() error {
	select {
	case <-p.done:
		return nil
	default:
	}
	if err := p.cmd.Process.Kill(); err != nil && !errors.Is(err, os.ErrProcessDone) {
		return err
	}
	<-p.done
	return nil
}

// CommandBackend sets the wallpaper by running an external tool
type CommandBackend struct {
	logger  *zap.Logger
	command WallpaperCommand
	run     runFunc
	start   startFunc

	mu       sync.Mutex
	detached detachedProcess
}

// NewCommandBackend creates a backend that drives command
func NewCommandBackend(logger *zap.Logger, command WallpaperCommand) *CommandBackend {
	return &CommandBackend{logger: logger, command: command, run: execRun, start: execStart}
}

func (b *CommandBackend) Name() string {
	return b.command.Name
}

// SetWallpaper sets the desktop wallpaper to the specified image
func (b *CommandBackend) SetWallpaper(ctx context.Context, imagePath string) error {
	for _, invocation := range b.command.Invocations {
		args := b.command.args(invocation, imagePath)

		b.logger.Debug("Setting wallpaper",
			zap.String("command", b.command.Binary),
			zap.Strings("args", args),
			zap.String("path", imagePath))

		if b.command.Detach {
			if err := b.replaceDetached(args); err != nil {
				return err
			}
			continue
		}

		output, err := b.run(ctx, b.command.Binary, args...)
		if err != nil {
			return fmt.Errorf("%s: %w (output: %s)",
				b.command.Name, err, strings.TrimSpace(string(output)))
		}
	}
	return nil
}

// replaceDetached starts a new background setter and then stops the one
// this backend started before, so the old wallpaper stays up until the new
// process is running. A failed start leaves the old process alone.
func (b *CommandBackend) replaceDetached(args []string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	proc, err := b.start(b.command.Binary, args...)
	if err != nil {
		return fmt.Errorf("%s: %w", b.command.Name, err)
	}

	previous := b.detached
	b.detached = proc
	if previous != nil {
		if err := previous.Stop(); err != nil {
			b.logger.Warn("Failed to stop previous wallpaper process",
				zap.String("command", b.command.Binary),
				zap.Error(err))
		}
	}
	return nil
}

// CurrentWallpaper asks the tool for the current wallpaper path
func (b *CommandBackend) CurrentWallpaper(ctx context.Context) (string, error) {
	if len(b.command.Query) == 0 {
		return "", fmt.Errorf("%s cannot report the current wallpaper", b.command.Name)
	}

	output, err := b.run(ctx, b.command.Binary, b.command.Query...)
	if err != nil {
		return "", fmt.Errorf("%s: %w (output: %s)", b.command.Name, err, strings.TrimSpace(string(output)))
	}

	// gsettings prints 'file:///path', osascript prints the bare path
	current := strings.Trim(strings.TrimSpace(string(output)), "'\"")
	return strings.TrimPrefix(current, "file://"), nil
}
