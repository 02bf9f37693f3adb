package model

import (
	"path/filepath"
	"strings"
	"time"
)

// DownloadRequest is created on a button click and discarded after dispatch.
type DownloadRequest struct {
	ID        string // uuid, used to correlate log lines
	Seq       uint64 // monotonically increasing, newer requests win
	SourceURL string
	Variant   Variant
	CreatedAt time.Time
}

// DownloadTask is the runtime record of one dispatched transfer
type DownloadTask struct {
	ID         string
	Seq        uint64
	URL        string
	Variant    Variant
	Status     TaskStatus
	Progress   float64    // 0.0 to 1.0
	Percent    int        // 0 to 100
	Written    int64      // bytes written so far
	Total      int64      // expected size in bytes, 0 if unknown
	LastError  string     // last error message if any
	FailedIn   TaskStatus // stage the task was in when it failed
	OutputPath string     // absolute path of the finished file
	StartedAt  time.Time  // when the request was dispatched
	FinishedAt time.Time  // when the worker finished
	Title      string     // video title
	Quality    string     // resolution or bitrate of the chosen stream
}

// NewDownloadTask creates a pending task for a request
func NewDownloadTask(req DownloadRequest) *DownloadTask {
	return &DownloadTask{
		ID:        req.ID,
		Seq:       req.Seq,
		URL:       req.SourceURL,
		Variant:   req.Variant,
		Status:    TaskStatusPending,
		StartedAt: req.CreatedAt,
	}
}

// SetProgress updates byte counters and derived percentage
func (dt *DownloadTask) SetProgress(written, total int64) {
	dt.Written = written
	dt.Total = total
	if total <= 0 {
		return
	}
	progress := float64(written) / float64(total)
	if progress > 1 {
		progress = 1
	}
	dt.Progress = progress
	dt.Percent = int(progress * 100)
}

// Snapshot returns a copy that can be handed to another goroutine
func (dt *DownloadTask) Snapshot() *DownloadTask {
	cp := *dt
	return &cp
}

// GetDisplayTitle returns title, filename, or URL in order of preference
func (dt *DownloadTask) GetDisplayTitle() string {
	if dt.Title != "" && !strings.HasPrefix(dt.Title, "http") {
		return dt.Title
	}

	if dt.OutputPath != "" {
		filename := filepath.Base(dt.OutputPath)
		if idx := strings.LastIndex(filename, "."); idx > 0 {
			filename = filename[:idx]
		}
		return filename
	}

	return dt.URL
}
