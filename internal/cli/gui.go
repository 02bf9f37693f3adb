package cli

import (
	"fmt"
	"log/slog"

	"fyne.io/fyne/v2"
	fyneapp "fyne.io/fyne/v2/app"

	"github.com/ytget/yt-downloader/internal/platform"
	"github.com/ytget/yt-downloader/internal/ui"
)

const (
	AppID   = "com.ytget.yt-downloader"
	AppName = "YouTube Downloader"
)

// runGUI opens the window and blocks until it is closed.
func runGUI(e *env) error {
	dir, err := platform.WorkingDirectory()
	if err != nil {
		return &ExitError{Code: ExitCLIError, Err: err}
	}

	slog.Info("starting", slog.String("version", e.version), slog.String("dir", dir))

	app := fyneapp.NewWithID(AppID)
	app.Settings().SetTheme(ui.NewAppTheme())
	if icon, err := ui.LoadLogoResource(); err == nil {
		app.SetIcon(icon)
	}

	window := app.NewWindow(fmt.Sprintf("%s v%s", AppName, e.version))
	window.Resize(fyne.NewSize(ui.WindowWidth, ui.WindowHeight))

	ui.NewRootUI(window, app, ui.Deps{
		Resolver: e.newResolver(e.opts.ClientConfig()),
		Dir:      dir,
		Options:  e.opts,
	})

	window.ShowAndRun()
	return nil
}
