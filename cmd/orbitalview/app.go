package main

import (
	"context"
	"os"
	"strconv"

	"fyne.io/fyne/v2"
	fyneapp "fyne.io/fyne/v2/app"
	"github.com/orbitalview/wallpaper/internal/autostart"
	"github.com/orbitalview/wallpaper/internal/commands"
	"github.com/orbitalview/wallpaper/internal/config"
	"github.com/orbitalview/wallpaper/internal/domain"
	"github.com/orbitalview/wallpaper/internal/engine"
	"github.com/orbitalview/wallpaper/internal/executor"
	"github.com/orbitalview/wallpaper/internal/fetcher"
	"github.com/orbitalview/wallpaper/internal/lifecycle"
	"github.com/orbitalview/wallpaper/internal/monitor"
	"github.com/orbitalview/wallpaper/internal/preview"
	"github.com/orbitalview/wallpaper/internal/stager"
	"github.com/orbitalview/wallpaper/internal/ui"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"
)

// CoreOptions is the headless graph: configuration, the wallpaper pipeline
// and the startup registrar
var CoreOptions = fx.Options(
	fx.Provide(
		newLogger,
		config.NewAppConfig,

		// Pipeline stages
		fx.Annotate(fetcher.NewHTTPFetcher, fx.As(new(domain.Fetcher))),
		fx.Annotate(stager.NewAtomicStager, fx.As(new(domain.Stager))),
		executor.NewBackend,
		fx.Annotate(executor.NewWallpaperInstaller, fx.As(fx.Self()), fx.As(new(domain.Installer))),
		fx.Annotate(engine.NewEngine, fx.As(new(domain.Pipeline))),

		// Run at login
		autostart.NewBackend,
		fx.Annotate(autostart.NewRegistrar, fx.As(new(domain.Registrar))),

		commands.NewCommands,
	),
	fx.Invoke(registerHooks),
)

// AppOptions is the full tray application
var AppOptions = fx.Options(
	CoreOptions,
	fx.Provide(
		monitor.NewScreenResolution,
		preview.NewRenderer,
		newController,
		newFyneApp,
		ui.NewShell,
	),
)

func fxLogger(log *zap.Logger) fxevent.Logger {
	return &fxevent.ZapLogger{Logger: log}
}

// newLogger creates a new zap logger instance. ORBITALVIEW_DEBUG switches to
// the development config; it is read here directly because the
// configuration itself logs through this logger.
func newLogger() (*zap.Logger, error) {
	if debug, _ := strconv.ParseBool(os.Getenv("ORBITALVIEW_DEBUG")); debug {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

// newController wires Quit to a flushed logger and a clean exit
func newController(logger *zap.Logger) *lifecycle.Controller {
	return lifecycle.NewController(logger, func(code int) {
		_ = logger.Sync()
		os.Exit(code)
	})
}

func newFyneApp(cfg *config.AppConfig) fyne.App {
	return fyneapp.NewWithID(cfg.AppID)
}

// registerHooks sets up application lifecycle hooks
func registerHooks(lc fx.Lifecycle, logger *zap.Logger, cfg *config.AppConfig, installer *executor.WallpaperInstaller) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			logger.Info("OrbitalView started",
				zap.String("app", cfg.AppName),
				zap.String("wallpaper", cfg.WallpaperPath()))
			installer.LogCurrent(ctx)
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info("Shutting down")
			_ = logger.Sync()
			return nil
		},
	})
}
