package download

import (
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
)

// progressWriter counts bytes and calls report at most once per interval.
type progressWriter struct {
	total    int64
	written  int64
	interval time.Duration
	last     time.Time
	now      func() time.Time
	report   func(written, total int64)
}

func (w *progressWriter) Write(p []byte) (int, error) {
	w.written += int64(len(p))
	if w.report == nil {
		return len(p), nil
	}
	now := w.now()
	if now.Sub(w.last) >= w.interval || (w.total > 0 && w.written >= w.total) {
		w.last = now
		w.report(w.written, w.total)
	}
	return len(p), nil
}

// startMessage is shown when a transfer begins, e.g. "Downloading MP4 @ 1080p...".
func startMessage(variant string, quality string) string {
	return fmt.Sprintf("Downloading %s @ %s...", variant, quality)
}

// progressMessage appends percentage and sizes to the start message.
func progressMessage(prefix string, written, total int64) string {
	if total <= 0 {
		return fmt.Sprintf("%s %s", prefix, humanize.Bytes(uint64(written)))
	}
	percent := written * 100 / total
	if percent > 100 {
		percent = 100
	}
	return fmt.Sprintf("%s %d%% (%s / %s)", prefix, percent,
		humanize.Bytes(uint64(written)), humanize.Bytes(uint64(total)))
}
