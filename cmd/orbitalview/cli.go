package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/orbitalview/wallpaper/internal/commands"
	"github.com/orbitalview/wallpaper/internal/sources"
	"github.com/orbitalview/wallpaper/internal/ui"
	"github.com/spf13/cobra"
	"go.uber.org/fx"
)

// startupError marks a failure to build or start the dependency graph,
// which is almost always a configuration problem
type startupError struct {
	err error
}

func (e *startupError) Error() string { return e.err.Error() }
func (e *startupError) Unwrap() error { return e.err }

func isStartupError(err error) bool {
	var se *startupError
	return errors.As(err, &se)
}

func newRootCmd() *cobra.Command {
	var hidden bool

	root := &cobra.Command{
		Use:   "orbitalview",
		Short: "Keep the desktop background in sync with a remote image",
		Long: `OrbitalView downloads an image and installs it as the desktop background.
Without a subcommand it runs as a tray application with a small control window.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTray(cmd.Context(), hidden)
		},
	}
	root.Flags().BoolVar(&hidden, "hidden", false, "start with the window hidden in the tray")

	// Add subcommands (alphabetical)
	root.AddCommand(newFetchCmd())
	root.AddCommand(newInstallCmd())
	root.AddCommand(newPingCmd())
	root.AddCommand(newReadCmd())
	root.AddCommand(newSourcesCmd())
	root.AddCommand(newStartupCmd())
	return root
}

func newFetchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fetch <url>",
		Short: "Download an image and set it as the wallpaper",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withCommands(cmd.Context(), func(c *commands.Commands) error {
				path, err := c.FetchInstall(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), path)
				return nil
			})
		},
	}
}

func newInstallCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "install <path>",
		Short: "Set a local image file as the wallpaper",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withCommands(cmd.Context(), func(c *commands.Commands) error {
				return c.InstallLocal(cmd.Context(), args[0])
			})
		},
	}
}

func newStartupCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "startup on|off|status",
		Short:     "Manage the run at login entry",
		ValidArgs: []string{"on", "off", "status"},
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withCommands(cmd.Context(), func(c *commands.Commands) error {
				switch args[0] {
				case "on":
					if err := c.SetStartup(true); err != nil {
						return err
					}
				case "off":
					if err := c.SetStartup(false); err != nil {
						return err
					}
				}

				state, err := c.StartupState()
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				switch {
				case !state.Supported:
					fmt.Fprintln(out, "unsupported")
				case state.Registered:
					fmt.Fprintf(out, "on\t%s\n", state.Command)
				default:
					fmt.Fprintln(out, "off")
				}
				return nil
			})
		},
	}
}

func newSourcesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sources [id]",
		Short: "List the image sources from sources.json, or show one by id",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withCommands(cmd.Context(), func(c *commands.Commands) error {
				list, err := c.Sources()
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()

				if len(args) == 1 {
					src, ok := list.Find(args[0])
					if !ok {
						return fmt.Errorf("no source with id %q", args[0])
					}
					printSource(out, src)
					return nil
				}

				for _, src := range list.Sources {
					mark := " "
					if src.Favorite {
						mark = "*"
					}
					fmt.Fprintf(out, "%s %s\t%s\t%s\n", mark, src.ID, src.Name, strings.TrimSpace(src.ImageURL))
				}
				return nil
			})
		},
	}
}

// printSource writes the non-empty fields of src, one per line
func printSource(out io.Writer, src sources.ImageSource) {
	fields := []struct {
		key   string
		value string
	}{
		{"id", src.ID},
		{"name", src.Name},
		{"image_url", src.ImageURL},
		{"base_path", src.BasePath},
		{"satellite", src.Satellite},
		{"sector", src.Sector},
		{"product", src.Product},
		{"region", src.Region},
		{"resolution_hint_high", src.ResolutionHintHigh},
		{"resolution_hint_low", src.ResolutionHintLow},
		{"attribution", src.Attribution},
	}
	for _, f := range fields {
		if f.value != "" {
			fmt.Fprintf(out, "%s\t%s\n", f.key, f.value)
		}
	}
	if src.DefaultRefreshMinutes > 0 {
		fmt.Fprintf(out, "default_refresh_minutes\t%d\n", src.DefaultRefreshMinutes)
	}
	if src.Favorite {
		fmt.Fprintln(out, "favorite\ttrue")
	}
}

func newReadCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "read <path>",
		Short: "Print a local text file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withCommands(cmd.Context(), func(c *commands.Commands) error {
				content, err := c.ReadLocalFile(args[0])
				if err != nil {
					return err
				}
				fmt.Fprint(cmd.OutOrStdout(), content)
				return nil
			})
		},
	}
}

func newPingCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ping",
		Short: "Check that the application starts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withCommands(cmd.Context(), func(c *commands.Commands) error {
				fmt.Fprintln(cmd.OutOrStdout(), c.Ping())
				return nil
			})
		},
	}
}

// withCommands starts the headless graph, runs fn and stops the graph again
func withCommands(ctx context.Context, fn func(*commands.Commands) error) error {
	var cmds *commands.Commands
	app := fx.New(
		CoreOptions,
		fx.WithLogger(fxLogger),
		fx.Populate(&cmds),
	)
	if err := app.Start(ctx); err != nil {
		return &startupError{err: err}
	}

	runErr := fn(cmds)
	if err := app.Stop(context.Background()); err != nil && runErr == nil {
		return err
	}
	return runErr
}

// runTray starts the full application and blocks in the toolkit loop
func runTray(ctx context.Context, hidden bool) error {
	var shell *ui.Shell
	app := fx.New(
		AppOptions,
		fx.WithLogger(fxLogger),
		fx.Populate(&shell),
	)
	if err := app.Start(ctx); err != nil {
		return &startupError{err: err}
	}

	shell.Run(ctx, hidden)

	return app.Stop(context.Background())
}
