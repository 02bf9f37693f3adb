package youtube

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	yt "github.com/kkdai/youtube/v2"
	ytclient "github.com/ytget/ytdlp/v2/client"
	"golang.org/x/sync/singleflight"

	"github.com/ytget/yt-downloader/internal/model"
)

// Client defaults
const (
	DefaultTimeout = 30 * time.Second
	DefaultRetries = 3
)

// Config tunes the HTTP client used for resolution and transfers.
type Config struct {
	Timeout   time.Duration // bounds metadata resolution only, 0 disables
	Retries   int           // extra attempts on network errors and 5xx
	UserAgent string        // replaces the library's User-Agent when set
}

// DefaultConfig returns the configuration used when nothing is set
func DefaultConfig() Config {
	return Config{
		Timeout: DefaultTimeout,
		Retries: DefaultRetries,
	}
}

// streamRef is what StreamHandle.Source holds for handles produced here.
type streamRef struct {
	video  *yt.Video
	format *yt.Format
}

// Client resolves videos with github.com/kkdai/youtube/v2.
type Client struct {
	yt      *yt.Client
	rt      *retryTransport
	timeout time.Duration
	group   singleflight.Group
	now     func() time.Time
}

// NewClient creates a resolver backed by a retrying HTTP client.
// The HTTP client itself has no deadline so long transfers are never cut
// off; cfg.Timeout is applied per resolution instead.
func NewClient(cfg Config) *Client {
	hc := ytclient.NewWith(ytclient.Config{
		Timeout:   cfg.Timeout,
		Retries:   cfg.Retries,
		UserAgent: cfg.UserAgent,
	})
	next := hc.HTTPClient.Transport
	if next == nil {
		next = http.DefaultTransport
	}
	rt := newRetryTransport(next, cfg.Retries, cfg.UserAgent)
	return &Client{
		yt:      &yt.Client{HTTPClient: &http.Client{Transport: rt}},
		rt:      rt,
		timeout: cfg.Timeout,
		now:     time.Now,
	}
}

// Resolve fetches video metadata and picks the three variant streams.
// Concurrent calls for the same video share one round trip.
func (c *Client) Resolve(ctx context.Context, rawURL string) (*model.ResolvedMedia, error) {
	id, ok := VideoID(rawURL)
	if !ok {
		return nil, ErrInvalidURL
	}

	v, err, shared := c.group.Do(id, func() (interface{}, error) {
		rctx := ctx
		if c.timeout > 0 {
			var cancel context.CancelFunc
			rctx, cancel = context.WithTimeout(ctx, c.timeout)
			defer cancel()
		}
		return c.yt.GetVideoContext(rctx, id)
	})
	if err != nil {
		slog.Debug("resolve failed", slog.String("video", id), slog.Any("err", err))
		return nil, Classify(err)
	}

	video, ok := v.(*yt.Video)
	if !ok || video == nil {
		return nil, errUnknownVideo
	}

	slog.Debug("resolved",
		slog.String("video", id),
		slog.Int("formats", len(video.Formats)),
		slog.Bool("shared", shared),
	)

	return c.buildMedia(video, rawURL)
}

func (c *Client) buildMedia(video *yt.Video, rawURL string) (*model.ResolvedMedia, error) {
	sel, err := selectFormats(video.Formats)
	if err != nil {
		return nil, err
	}

	return &model.ResolvedMedia{
		VideoID:    video.ID,
		SourceURL:  rawURL,
		Title:      video.Title,
		Author:     video.Author,
		Duration:   video.Duration,
		Full:       handleFor(video, sel.full, false),
		Video:      handleFor(video, sel.video, false),
		Audio:      handleFor(video, sel.audio, true),
		ResolvedAt: c.now(),
	}, nil
}

func handleFor(video *yt.Video, f *yt.Format, audio bool) model.StreamHandle {
	h := model.StreamHandle{
		Itag:          f.ItagNo,
		MimeType:      f.MimeType,
		ContentLength: f.ContentLength,
		Source:        &streamRef{video: video, format: f},
	}
	if audio {
		h.BitrateKbps = audioKbps(f)
	} else {
		h.Resolution = resolutionOf(f)
	}
	return h
}

// Open starts downloading the bytes of a stream returned by Resolve.
func (c *Client) Open(ctx context.Context, stream model.StreamHandle) (io.ReadCloser, int64, error) {
	ref, ok := stream.Source.(*streamRef)
	if !ok || ref == nil {
		return nil, 0, ErrForeignRef
	}

	rc, size, err := c.yt.GetStreamContext(ctx, ref.video, ref.format)
	if err != nil {
		return nil, 0, Classify(fmt.Errorf("open stream %d: %w", ref.format.ItagNo, err))
	}
	if size <= 0 {
		size = stream.ContentLength
	}
	return rc, size, nil
}
