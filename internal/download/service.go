package download

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ytget/yt-downloader/internal/model"
	"github.com/ytget/yt-downloader/internal/session"
	"github.com/ytget/yt-downloader/internal/youtube"
)

// Coordinator handles download operations for one session
type Coordinator struct {
	dir  string
	ctrl *session.Controller

	reuseMedia       func() bool
	maxRetries       int
	backoff          time.Duration
	progressInterval time.Duration
	reveal           func(path string) error
	autoReveal       func() bool
	now              func() time.Time

	tasks      map[string]*model.DownloadTask
	tasksMutex sync.RWMutex
	onUpdate   func(*model.DownloadTask) // callback for progress consumers
	wg         sync.WaitGroup
}

var _ Downloader = (*Coordinator)(nil)

// NewCoordinator creates a coordinator that writes files into dir
func NewCoordinator(dir string, ctrl *session.Controller, opts ...Option) *Coordinator {
	if abs, err := filepath.Abs(dir); err == nil {
		dir = abs
	}
	c := &Coordinator{
		dir:              dir,
		ctrl:             ctrl,
		reuseMedia:       func() bool { return true },
		maxRetries:       DefaultMaxRetries,
		backoff:          DefaultRetryBackoff,
		progressInterval: DefaultProgressInterval,
		now:              time.Now,
		tasks:            make(map[string]*model.DownloadTask),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Dir returns the absolute output directory
func (c *Coordinator) Dir() string {
	return c.dir
}

// SetUpdateCallback sets the callback function for task updates
func (c *Coordinator) SetUpdateCallback(callback func(*model.DownloadTask)) {
	c.tasksMutex.Lock()
	defer c.tasksMutex.Unlock()
	c.onUpdate = callback
}

// Download dispatches a transfer of the variant behind rawURL. It returns
// immediately; progress and the outcome are reported through the presenter.
func (c *Coordinator) Download(rawURL string, variant model.Variant) (*model.DownloadTask, error) {
	if !variant.IsValid() {
		return nil, fmt.Errorf("unknown variant: %s", variant)
	}
	url := strings.TrimSpace(rawURL)
	if !youtube.IsValidURL(url) {
		c.ctrl.Notify(model.InvalidURLFeedback())
		return nil, youtube.ErrInvalidURL
	}

	seq := c.ctrl.State().BeginDownload()
	c.ctrl.RefreshActions()

	req := model.DownloadRequest{
		ID:        "req-" + uuid.NewString(),
		Seq:       seq,
		SourceURL: url,
		Variant:   variant,
		CreatedAt: c.now(),
	}
	task := model.NewDownloadTask(req)

	c.tasksMutex.Lock()
	c.tasks[task.ID] = task
	snapshot := task.Snapshot()
	c.tasksMutex.Unlock()

	slog.Info("download dispatched",
		slog.String("id", req.ID),
		slog.Uint64("seq", seq),
		slog.String("variant", variant.String()),
		slog.String("url", url),
	)
	c.notifyUpdate(snapshot)

	c.wg.Add(1)
	go c.run(task)

	return snapshot, nil
}

// Wait blocks until every dispatched download has finished
func (c *Coordinator) Wait() {
	c.wg.Wait()
}

// GetTask returns a copy of a task by ID
func (c *Coordinator) GetTask(id string) (*model.DownloadTask, bool) {
	c.tasksMutex.RLock()
	defer c.tasksMutex.RUnlock()
	task, exists := c.tasks[id]
	if !exists {
		return nil, false
	}
	return task.Snapshot(), true
}

// GetAllTasks returns copies of all tasks, oldest first
func (c *Coordinator) GetAllTasks() []*model.DownloadTask {
	c.tasksMutex.RLock()
	defer c.tasksMutex.RUnlock()

	tasks := make([]*model.DownloadTask, 0, len(c.tasks))
	for _, task := range c.tasks {
		tasks = append(tasks, task.Snapshot())
	}
	sort.Slice(tasks, func(i, j int) bool { return tasks[i].Seq < tasks[j].Seq })
	return tasks
}

func (c *Coordinator) run(task *model.DownloadTask) {
	defer c.wg.Done()
	defer func() {
		c.ctrl.State().EndDownload()
		c.ctrl.RefreshActions()
	}()

	ctx := context.Background()
	c.setStatus(task, model.TaskStatusResolving)

	media, reported, err := c.obtainMedia(ctx, task.URL)
	if errors.Is(err, session.ErrSuperseded) {
		// a fetch of another video replaced the media this click was for
		c.notify(task.Seq, model.InfoFeedback(model.MsgSuperseded))
		reported = true
	}
	if err != nil {
		c.finish(task, "", err, reported)
		return
	}

	stream, err := media.Stream(task.Variant)
	if err == nil && stream.IsZero() {
		err = fmt.Errorf("%w for %s", youtube.ErrNoStream, task.Variant.Label())
	}
	if err != nil {
		c.finish(task, "", err, false)
		return
	}

	quality := media.DisplayText(task.Variant)
	prefix := startMessage(task.Variant.Label(), quality)

	c.tasksMutex.Lock()
	task.Title = media.Title
	task.Quality = quality
	task.Status = model.TaskStatusDownloading
	task.SetProgress(0, stream.ContentLength)
	snapshot := task.Snapshot()
	c.tasksMutex.Unlock()
	c.notifyUpdate(snapshot)
	c.notify(task.Seq, model.InfoFeedback(prefix))

	dest := filepath.Join(c.dir, task.Variant.FileName())
	err = c.transferWithRetry(ctx, task, stream, dest, prefix)
	c.finish(task, dest, err, false)
}

// obtainMedia reuses live media for the same video or resolves it again.
// reported is true when the fetch workflow already surfaced the error.
func (c *Coordinator) obtainMedia(ctx context.Context, url string) (media *model.ResolvedMedia, reported bool, err error) {
	if c.reuseMedia() {
		if m := c.liveMediaFor(url); m != nil {
			slog.Debug("reusing resolved media", slog.String("video", m.VideoID))
			return m, false, nil
		}
	}

	media, err = c.ctrl.Fetch(ctx, url)
	if errors.Is(err, session.ErrSuperseded) {
		// a newer fetch of the same video counts as fresh media
		if m := c.liveMediaFor(url); m != nil {
			return m, false, nil
		}
		return nil, false, err
	}
	if err != nil {
		return nil, true, err
	}
	return media, false, nil
}

func (c *Coordinator) liveMediaFor(url string) *model.ResolvedMedia {
	m := c.ctrl.State().Media()
	if m == nil {
		return nil
	}
	id, ok := youtube.VideoID(url)
	if !ok || id != m.VideoID {
		return nil
	}
	return m
}

// transferWithRetry attempts the transfer with retry logic
func (c *Coordinator) transferWithRetry(ctx context.Context, task *model.DownloadTask, stream model.StreamHandle, dest, prefix string) error {
	var lastErr error

	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-time.After(c.backoff):
			case <-ctx.Done():
				return ctx.Err()
			}
			slog.Info("retrying download", slog.String("id", task.ID), slog.Int("attempt", attempt+1))
		}

		err := c.transfer(ctx, task, stream, dest, prefix)
		if err == nil {
			return nil
		}

		lastErr = err
		slog.Warn("download attempt failed",
			slog.String("id", task.ID),
			slog.Int("attempt", attempt+1),
			slog.Any("err", err),
		)

		if ctx.Err() != nil {
			return ctx.Err()
		}
	}

	return lastErr
}

// transfer streams into dest.part and renames it to dest once complete.
func (c *Coordinator) transfer(ctx context.Context, task *model.DownloadTask, stream model.StreamHandle, dest, prefix string) (err error) {
	body, size, err := c.ctrl.Resolver().Open(ctx, stream)
	if err != nil {
		return err
	}
	defer body.Close()

	part := dest + ".part"
	f, err := os.Create(part)
	if err != nil {
		return fmt.Errorf("create %s: %w", part, err)
	}
	defer func() {
		if err != nil {
			_ = f.Close()
			_ = os.Remove(part)
		}
	}()

	pw := &progressWriter{
		total:    size,
		interval: c.progressInterval,
		now:      c.now,
		report: func(written, total int64) {
			c.updateProgress(task, prefix, written, total)
		},
	}
	if _, err = io.Copy(io.MultiWriter(f, pw), body); err != nil {
		return fmt.Errorf("transfer %s: %w", filepath.Base(dest), err)
	}
	if err = f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", part, err)
	}
	if err = os.Rename(part, dest); err != nil {
		return fmt.Errorf("rename %s: %w", part, err)
	}
	return nil
}

func (c *Coordinator) updateProgress(task *model.DownloadTask, prefix string, written, total int64) {
	c.tasksMutex.Lock()
	task.SetProgress(written, total)
	snapshot := task.Snapshot()
	c.tasksMutex.Unlock()

	c.notifyUpdate(snapshot)
	c.notify(task.Seq, model.InfoFeedback(progressMessage(prefix, written, total)))
}

func (c *Coordinator) setStatus(task *model.DownloadTask, status model.TaskStatus) {
	c.tasksMutex.Lock()
	task.Status = status
	snapshot := task.Snapshot()
	c.tasksMutex.Unlock()
	c.notifyUpdate(snapshot)
}

func (c *Coordinator) finish(task *model.DownloadTask, dest string, err error, reported bool) {
	c.tasksMutex.Lock()
	task.FinishedAt = c.now()
	if err != nil {
		task.FailedIn = task.Status
		task.Status = model.TaskStatusError
		task.LastError = err.Error()
	} else {
		task.Status = model.TaskStatusCompleted
		task.OutputPath = dest
		task.Progress = 1.0
		task.Percent = 100
	}
	snapshot := task.Snapshot()
	c.tasksMutex.Unlock()

	c.notifyUpdate(snapshot)

	if err != nil {
		slog.Warn("download failed", slog.String("id", task.ID), slog.Any("err", err))
		if !reported {
			c.notify(task.Seq, model.ErrorFeedback(err))
		}
		return
	}

	slog.Info("download completed",
		slog.String("id", task.ID),
		slog.String("path", dest),
		slog.Duration("elapsed", snapshot.FinishedAt.Sub(snapshot.StartedAt)),
	)
	if !c.notify(task.Seq, model.PathFeedback(dest)) {
		return
	}
	if c.autoReveal != nil && c.reveal != nil && c.autoReveal() {
		if err := c.reveal(dest); err != nil {
			slog.Warn("reveal failed", slog.String("path", dest), slog.Any("err", err))
			c.ctrl.Notify(model.RevealErrorFeedback(err))
		}
	}
}

// notify shows fb unless a newer download has been dispatched since seq.
func (c *Coordinator) notify(seq uint64, fb model.Feedback) bool {
	if !c.ctrl.State().IsLatestDownload(seq) {
		slog.Debug("stale download feedback dropped", slog.Uint64("seq", seq), slog.String("msg", fb.Message))
		return false
	}
	c.ctrl.Notify(fb)
	return true
}

// notifyUpdate calls the update callback if set
func (c *Coordinator) notifyUpdate(task *model.DownloadTask) {
	c.tasksMutex.RLock()
	cb := c.onUpdate
	c.tasksMutex.RUnlock()
	if cb != nil {
		cb(task)
	}
}
