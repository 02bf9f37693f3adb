package session

import "github.com/ytget/yt-downloader/internal/model"

// Presenter renders session changes. Calls are always made through a
// Dispatcher, so implementations may touch widgets directly.
type Presenter interface {
	ShowMedia(media *model.ResolvedMedia)
	SetActionsEnabled(enabled bool)
	ShowFeedback(fb model.Feedback)
}

// Dispatcher runs fn on the goroutine that owns the presentation state.
type Dispatcher interface {
	Do(fn func())
}

// DispatcherFunc adapts a plain function, e.g. fyne.Do, to Dispatcher.
type DispatcherFunc func(fn func())

// Do calls f(fn).
func (f DispatcherFunc) Do(fn func()) {
	f(fn)
}

// Immediate runs updates on the calling goroutine. Suitable for presenters
// that are safe for concurrent use, such as the console.
var Immediate Dispatcher = DispatcherFunc(func(fn func()) { fn() })
