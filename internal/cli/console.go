package cli

import (
	"fmt"
	"io"
	"log/slog"
	"sync"

	"github.com/ytget/yt-downloader/internal/model"
	"github.com/ytget/yt-downloader/internal/session"
)

// consolePresenter renders the session on a terminal. Media goes to out,
// errors to errOut; informational lines only reach the debug log.
type consolePresenter struct {
	mu     sync.Mutex
	out    io.Writer
	errOut io.Writer
	saved  string
}

var _ session.Presenter = (*consolePresenter)(nil)

func newConsolePresenter(out, errOut io.Writer) *consolePresenter {
	return &consolePresenter{out: out, errOut: errOut}
}

func (p *consolePresenter) ShowMedia(media *model.ResolvedMedia) {
	p.mu.Lock()
	defer p.mu.Unlock()
	fmt.Fprintf(p.out, "Title: %s\n", media.Title)
	if media.Author != "" {
		fmt.Fprintf(p.out, "Author: %s\n", media.Author)
	}
	if media.Duration > 0 {
		fmt.Fprintf(p.out, "Duration: %s\n", media.Duration)
	}
	fmt.Fprintf(p.out, "Highest MP4 Resolution: %s\n", media.DisplayText(model.VariantVideoOnly))
	fmt.Fprintf(p.out, "Highest MP3 Bitrate: %s\n", media.DisplayText(model.VariantAudioOnly))
	fmt.Fprintf(p.out, "Legacy Format (Video & Audio): %s\n", media.DisplayText(model.VariantLegacy))
}

func (p *consolePresenter) SetActionsEnabled(enabled bool) {
	slog.Debug("actions", slog.Bool("enabled", enabled))
}

func (p *consolePresenter) ShowFeedback(fb model.Feedback) {
	p.mu.Lock()
	defer p.mu.Unlock()
	switch fb.Kind {
	case model.FeedbackError:
		fmt.Fprintln(p.errOut, fb.Message)
	case model.FeedbackPath:
		p.saved = fb.Path
		fmt.Fprintf(p.out, "Saved to %s\n", fb.Path)
	default:
		slog.Debug("status", slog.String("msg", fb.Message))
	}
}

// Saved returns the last completed download path
func (p *consolePresenter) Saved() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.saved
}
