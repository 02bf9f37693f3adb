package ui

import (
	"log/slog"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/yt-downloader/internal/config"
	"github.com/ytget/yt-downloader/internal/download"
	"github.com/ytget/yt-downloader/internal/model"
	"github.com/ytget/yt-downloader/internal/platform"
	"github.com/ytget/yt-downloader/internal/session"
	"github.com/ytget/yt-downloader/internal/youtube"
)

// Deps are the collaborators the window drives.
type Deps struct {
	Resolver youtube.Resolver
	Dir      string // output directory, the working directory in production
	Options  config.Options
	Reveal   func(path string) error // defaults to platform.RevealDirectory
	Dispatch session.Dispatcher      // defaults to fyne.Do
}

// RootUI represents the main window and presents the session.
type RootUI struct {
	window       fyne.Window
	settings     *config.Settings
	localization *Localization
	reveal       func(path string) error
	dispatch     session.Dispatcher

	ctrl  *session.Controller
	coord download.Downloader

	urlEntry  *widget.Entry
	infoPanel *fyne.Container
	captions  map[string]*widget.Label // localization key -> caption
	title     *widget.Label
	values    map[model.Variant]*widget.Label
	buttons   map[model.Variant]*widget.Button
	progress  *widget.ProgressBar
	feedback  *FeedbackLabel
}

var _ session.Presenter = (*RootUI)(nil)

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, app fyne.App, deps Deps) *RootUI {
	settings := config.NewSettings(app)

	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	if deps.Reveal == nil {
		deps.Reveal = platform.RevealDirectory
	}
	if deps.Dispatch == nil {
		deps.Dispatch = session.DispatcherFunc(fyne.Do)
	}

	ui := &RootUI{
		window:       window,
		settings:     settings,
		localization: localization,
		reveal:       deps.Reveal,
		dispatch:     deps.Dispatch,
	}

	ui.ctrl = session.NewController(session.NewState(), deps.Resolver, ui, deps.Dispatch)
	coord := download.NewCoordinator(deps.Dir, ui.ctrl,
		download.WithReuseMediaFunc(func() bool {
			return deps.Options.ReuseMedia && settings.GetReuseMedia()
		}),
		download.WithReveal(deps.Reveal),
		download.WithAutoReveal(settings.GetAutoRevealOnComplete),
	)
	coord.SetUpdateCallback(ui.onTaskUpdate)
	ui.coord = coord

	slog.Info("window ready", slog.String("dir", coord.Dir()), slog.String("lang", localization.GetCurrentLanguage()))

	window.SetTitle(localization.GetText(KeyAppTitle))
	ui.setupUI()
	return ui
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	ui.createMenu()

	ui.urlEntry = widget.NewEntry()
	ui.urlEntry.SetPlaceHolder(ui.localization.GetText(KeyEnterURL))
	// Fetch details when user presses Enter in the URL field
	ui.urlEntry.OnSubmitted = ui.onSubmit

	settingsBtn := widget.NewButton(IconSettings, ui.onShowSettings)
	settingsBtn.Importance = widget.LowImportance

	var left fyne.CanvasObject = settingsBtn
	if logo, err := LoadLogoResource(); err == nil {
		left = container.NewHBox(newLogo(logo), settingsBtn)
	}
	topPanel := container.NewBorder(nil, nil, left, nil, ui.urlEntry)

	// Info panel, hidden until the first successful fetch
	ui.captions = make(map[string]*widget.Label)
	ui.values = make(map[model.Variant]*widget.Label)
	ui.title = widget.NewLabel("")
	ui.title.Wrapping = fyne.TextWrapWord
	rows := []fyne.CanvasObject{ui.caption(KeyTitle), ui.title}
	for _, row := range []struct {
		key     string
		variant model.Variant
	}{
		{KeyHighestMP4, model.VariantVideoOnly},
		{KeyHighestMP3, model.VariantAudioOnly},
		{KeyLegacyFormat, model.VariantLegacy},
	} {
		ui.values[row.variant] = widget.NewLabel(model.DashPlaceholder)
		rows = append(rows, ui.caption(row.key), ui.values[row.variant])
	}
	ui.infoPanel = container.New(layout.NewFormLayout(), rows...)
	ui.infoPanel.Hide()

	// Download buttons in display order, disabled until media is live
	ui.buttons = make(map[model.Variant]*widget.Button)
	buttonRow := container.NewGridWithColumns(len(model.Variants))
	for _, v := range model.Variants {
		variant := v // Capture for closure
		btn := widget.NewButton(variant.Label(), func() {
			ui.onDownloadClick(variant)
		})
		btn.Importance = widget.HighImportance
		btn.Disable()
		ui.buttons[variant] = btn
		buttonRow.Add(btn)
	}

	ui.progress = widget.NewProgressBar()
	ui.progress.Hide()

	ui.feedback = NewFeedbackLabel(ui.onRevealFile)

	content := container.NewVBox(
		topPanel,
		ui.infoPanel,
		buttonRow,
		ui.progress,
		ui.feedback,
	)
	ui.window.SetContent(container.NewPadded(content))
}

func (ui *RootUI) caption(key string) *widget.Label {
	l := widget.NewLabelWithStyle(ui.localization.GetText(key)+LabelSeparator, fyne.TextAlignTrailing, fyne.TextStyle{Bold: true})
	ui.captions[key] = l
	return l
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	settingsItem := fyne.NewMenuItem(ui.localization.GetText(KeySettings), ui.onShowSettings)

	// Language submenu
	languageMenu := fyne.NewMenu(ui.localization.GetText(KeyLanguage))

	availableLanguages := ui.localization.GetAvailableLanguages()
	for code, name := range availableLanguages {
		langCode := code // Capture for closure
		langItem := fyne.NewMenuItem(name, func() {
			ui.onLanguageChange(langCode)
		})

		// Mark current language
		if ui.localization.GetCurrentLanguage() == code {
			langItem.Checked = true
		}

		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	mainMenu := fyne.NewMainMenu(
		fyne.NewMenu(ui.localization.GetText(KeyFile), settingsItem),
		languageMenu,
	)

	ui.window.SetMainMenu(mainMenu)
}

// onLanguageChange handles language change
func (ui *RootUI) onLanguageChange(langCode string) {
	ui.localization.SetLanguage(langCode)
	ui.settings.SetLanguage(langCode)
	ui.refreshUITexts()

	// Recreate menu to update checkmarks
	ui.createMenu()
}

// refreshUITexts updates all UI texts with current language
func (ui *RootUI) refreshUITexts() {
	ui.window.SetTitle(ui.localization.GetText(KeyAppTitle))
	ui.urlEntry.SetPlaceHolder(ui.localization.GetText(KeyEnterURL))
	for key, label := range ui.captions {
		label.SetText(ui.localization.GetText(key) + LabelSeparator)
	}
}

func (ui *RootUI) onSubmit(text string) {
	ui.ctrl.Submit(text)
}

// onDownloadClick handles a download button click
func (ui *RootUI) onDownloadClick(variant model.Variant) {
	task, err := ui.coord.Download(ui.urlEntry.Text, variant)
	if err != nil {
		// already surfaced on the feedback line
		slog.Debug("download not dispatched", slog.String("variant", variant.String()), slog.Any("err", err))
		return
	}
	slog.Debug("download clicked", slog.String("id", task.ID), slog.String("variant", variant.String()))
}

// onRevealFile opens the folder containing a finished download
func (ui *RootUI) onRevealFile(path string) {
	if err := ui.reveal(path); err != nil {
		slog.Warn("reveal failed", slog.String("path", path), slog.Any("err", err))
		ui.ShowFeedback(model.RevealErrorFeedback(err))
	}
}

// onShowSettings shows the settings dialog
func (ui *RootUI) onShowSettings() {
	NewSettingsDialog(ui.settings, ui.localization, ui.window, func() {
		ui.onLanguageChange(ui.settings.GetLanguage())
		dialog.ShowInformation(ui.localization.GetText(KeySettings), ui.localization.GetText(KeySettingsSaved), ui.window)
	}).Show()
}

// onTaskUpdate mirrors the newest download on the progress bar.
func (ui *RootUI) onTaskUpdate(task *model.DownloadTask) {
	if !ui.ctrl.State().IsLatestDownload(task.Seq) {
		return
	}
	ui.dispatch.Do(func() {
		switch {
		case task.Status == model.TaskStatusDownloading && task.Total > 0:
			ui.progress.SetValue(task.Progress)
			ui.progress.Show()
		case task.Status.IsFinished():
			ui.progress.Hide()
		}
	})
}

// ShowMedia fills the info panel
func (ui *RootUI) ShowMedia(media *model.ResolvedMedia) {
	ui.title.SetText(media.Title)
	for variant, label := range ui.values {
		label.SetText(media.DisplayText(variant))
	}
	ui.infoPanel.Show()
}

// SetActionsEnabled enables or disables all download buttons
func (ui *RootUI) SetActionsEnabled(enabled bool) {
	for _, btn := range ui.buttons {
		if enabled {
			btn.Enable()
		} else {
			btn.Disable()
		}
	}
}

// ShowFeedback replaces the feedback line
func (ui *RootUI) ShowFeedback(fb model.Feedback) {
	ui.feedback.SetFeedback(fb)
}
