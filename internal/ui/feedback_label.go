package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/yt-downloader/internal/model"
)

// FeedbackLabel is the status line under the download buttons. When it
// holds a file path, tapping it reveals the containing folder.
type FeedbackLabel struct {
	widget.Label

	path     string
	OnReveal func(path string)
}

var (
	_ fyne.Tappable      = (*FeedbackLabel)(nil)
	_ desktop.Cursorable = (*FeedbackLabel)(nil)
)

// NewFeedbackLabel creates an empty feedback line
func NewFeedbackLabel(onReveal func(path string)) *FeedbackLabel {
	l := &FeedbackLabel{OnReveal: onReveal}
	l.Alignment = fyne.TextAlignCenter
	l.Wrapping = fyne.TextWrapWord
	l.ExtendBaseWidget(l)
	return l
}

// SetFeedback replaces the line and its link target.
func (l *FeedbackLabel) SetFeedback(fb model.Feedback) {
	l.path = ""
	switch fb.Kind {
	case model.FeedbackError:
		l.Importance = widget.DangerImportance
	case model.FeedbackPath:
		l.Importance = widget.HighImportance
		if fb.IsLink() {
			l.path = fb.Path
		}
	default:
		l.Importance = widget.MediumImportance
	}
	l.SetText(fb.Message)
}

// Path returns the revealable path, empty when the line is plain text.
func (l *FeedbackLabel) Path() string {
	return l.path
}

// Tapped reveals the folder of the current path
func (l *FeedbackLabel) Tapped(*fyne.PointEvent) {
	if l.path != "" && l.OnReveal != nil {
		l.OnReveal(l.path)
	}
}

// Cursor shows a pointer while the line is a link
func (l *FeedbackLabel) Cursor() desktop.Cursor {
	if l.path != "" {
		return desktop.PointerCursor
	}
	return desktop.DefaultCursor
}
