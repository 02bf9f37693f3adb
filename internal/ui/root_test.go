package ui

import (
	"errors"
	"path/filepath"
	"testing"

	"fyne.io/fyne/v2/test"

	"github.com/ytget/yt-downloader/internal/config"
	"github.com/ytget/yt-downloader/internal/model"
	"github.com/ytget/yt-downloader/internal/session"
	"github.com/ytget/yt-downloader/internal/session/sessiontest"
)

const testURL = sessiontest.ScenarioURL

type revealRecorder struct {
	paths []string
	err   error
}

func (r *revealRecorder) reveal(path string) error {
	r.paths = append(r.paths, path)
	return r.err
}

func newTestUI(t *testing.T, resolver *sessiontest.Resolver, rec *revealRecorder) *RootUI {
	t.Helper()
	app := test.NewApp()
	t.Cleanup(app.Quit)
	window := app.NewWindow("test")

	return NewRootUI(window, app, Deps{
		Resolver: resolver,
		Dir:      t.TempDir(),
		Options:  config.DefaultOptions(),
		Reveal:   rec.reveal,
		Dispatch: session.Immediate,
	})
}

func (ui *RootUI) submitAndWait(url string) {
	ui.urlEntry.SetText(url)
	ui.urlEntry.OnSubmitted(ui.urlEntry.Text)
	ui.ctrl.Wait()
}

func assertButtons(t *testing.T, ui *RootUI, enabled bool) {
	t.Helper()
	for variant, btn := range ui.buttons {
		if btn.Disabled() == enabled {
			t.Errorf("button %s: expected enabled=%v", variant.Label(), enabled)
		}
	}
}

func TestRootUI_InitialState(t *testing.T) {
	ui := newTestUI(t, sessiontest.NewResolver(), &revealRecorder{})

	assertButtons(t, ui, false)
	if ui.infoPanel.Visible() {
		t.Error("info panel should be hidden before a fetch")
	}
	if len(ui.buttons) != 3 {
		t.Errorf("expected 3 buttons, got %d", len(ui.buttons))
	}
	for _, v := range model.Variants {
		if ui.buttons[v].Text != v.Label() {
			t.Errorf("expected button %q, got %q", v.Label(), ui.buttons[v].Text)
		}
	}
}

func TestRootUI_FetchShowsMedia(t *testing.T) {
	resolver := sessiontest.NewResolver().WithMedia(testURL, sessiontest.Media(testURL))
	ui := newTestUI(t, resolver, &revealRecorder{})

	ui.submitAndWait(testURL)

	if ui.title.Text != "X" {
		t.Errorf("expected title X, got %q", ui.title.Text)
	}
	expected := map[model.Variant]string{
		model.VariantVideoOnly: "1080p",
		model.VariantAudioOnly: "160kbps",
		model.VariantLegacy:    "720p",
	}
	for v, text := range expected {
		if got := ui.values[v].Text; got != text {
			t.Errorf("%s label: expected %q, got %q", v.Label(), text, got)
		}
	}
	if !ui.infoPanel.Visible() {
		t.Error("info panel should be visible")
	}
	assertButtons(t, ui, true)
	if ui.feedback.Text != model.MsgChooseDownload {
		t.Errorf("expected %q, got %q", model.MsgChooseDownload, ui.feedback.Text)
	}
}

func TestRootUI_InvalidURL(t *testing.T) {
	resolver := sessiontest.NewResolver()
	ui := newTestUI(t, resolver, &revealRecorder{})

	ui.submitAndWait("not a url")

	if ui.feedback.Text != model.MsgInvalidURL {
		t.Errorf("expected %q, got %q", model.MsgInvalidURL, ui.feedback.Text)
	}
	if resolver.ResolveCalls() != 0 {
		t.Error("resolver should not be called")
	}
	assertButtons(t, ui, false)
}

func TestRootUI_FetchError(t *testing.T) {
	resolver := sessiontest.NewResolver().WithError(testURL, errors.New("video unavailable"))
	ui := newTestUI(t, resolver, &revealRecorder{})

	ui.submitAndWait(testURL)

	if ui.feedback.Text != "Error: video unavailable" {
		t.Errorf("expected error feedback, got %q", ui.feedback.Text)
	}
	assertButtons(t, ui, false)
}

func TestRootUI_DownloadAndReveal(t *testing.T) {
	resolver := sessiontest.NewResolver().WithMedia(testURL, sessiontest.Media(testURL))
	rec := &revealRecorder{}
	ui := newTestUI(t, resolver, rec)

	ui.submitAndWait(testURL)
	test.Tap(ui.buttons[model.VariantVideoOnly])
	ui.coord.Wait()

	path := ui.feedback.Path()
	if filepath.Base(path) != model.VideoFileName || !filepath.IsAbs(path) {
		t.Fatalf("expected absolute path to %s, got %q", model.VideoFileName, path)
	}
	if ui.feedback.Text != path {
		t.Errorf("expected feedback text to be the path, got %q", ui.feedback.Text)
	}
	assertButtons(t, ui, true)
	if ui.progress.Visible() {
		t.Error("progress bar should be hidden after completion")
	}

	test.Tap(ui.feedback)
	if len(rec.paths) != 1 || rec.paths[0] != path {
		t.Errorf("expected reveal of %q, got %v", path, rec.paths)
	}
}

func TestRootUI_RevealError(t *testing.T) {
	rec := &revealRecorder{err: errors.New("no file manager")}
	ui := newTestUI(t, sessiontest.NewResolver(), rec)

	ui.ShowFeedback(model.PathFeedback("/tmp/audio.mp3"))
	test.Tap(ui.feedback)

	if ui.feedback.Text != "Error opening directory: no file manager" {
		t.Errorf("unexpected feedback %q", ui.feedback.Text)
	}
	if ui.feedback.Path() != "" {
		t.Error("error feedback should not be a link")
	}
}

func TestFeedbackLabel_PlainTextIsNotALink(t *testing.T) {
	test.NewApp()
	var revealed bool
	l := NewFeedbackLabel(func(string) { revealed = true })

	l.SetFeedback(model.InfoFeedback(model.MsgFetching))
	test.Tap(l)

	if revealed {
		t.Error("plain feedback should not reveal anything")
	}
}

func TestRootUI_LanguageChange(t *testing.T) {
	ui := newTestUI(t, sessiontest.NewResolver(), &revealRecorder{})

	ui.onLanguageChange("ru")

	if ui.settings.GetLanguage() != "ru" {
		t.Errorf("expected saved language ru, got %s", ui.settings.GetLanguage())
	}
	if got := ui.captions[KeyTitle].Text; got != "Название"+LabelSeparator {
		t.Errorf("caption not localized: %q", got)
	}
}
