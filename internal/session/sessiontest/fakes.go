// Package sessiontest provides in-memory resolvers and presenters for tests
// of packages built on top of the session.
package sessiontest

import (
	"context"
	"errors"
	"io"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/ytget/yt-downloader/internal/model"
	"github.com/ytget/yt-downloader/internal/youtube"
)

// ScenarioURL is the watch URL used across tests.
const ScenarioURL = "https://www.youtube.com/watch?v=dQw4w9WgXcQ"

// Media returns media titled "X" with 720p progressive, 1080p video-only and
// 160kbps audio-only streams.
func Media(url string) *model.ResolvedMedia {
	id, _ := youtube.VideoID(url)
	return &model.ResolvedMedia{
		VideoID:   id,
		SourceURL: url,
		Title:     "X",
		Full:      model.StreamHandle{Itag: 22, MimeType: "video/mp4", Resolution: "720p", Source: "full"},
		Video:     model.StreamHandle{Itag: 137, MimeType: "video/mp4", Resolution: "1080p", Source: "video"},
		Audio:     model.StreamHandle{Itag: 251, MimeType: "audio/webm", BitrateKbps: 160, Source: "audio"},
	}
}

// Resolver is a scripted youtube.Resolver.
type Resolver struct {
	mu       sync.Mutex
	media    map[string]*model.ResolvedMedia
	errs     map[string]error
	gates    map[string]chan struct{}
	payloads map[string]string
	openErr  error

	resolveCalls atomic.Int32
	openCalls    atomic.Int32
}

// NewResolver creates an empty scripted resolver
func NewResolver() *Resolver {
	return &Resolver{
		media:    make(map[string]*model.ResolvedMedia),
		errs:     make(map[string]error),
		gates:    make(map[string]chan struct{}),
		payloads: make(map[string]string),
	}
}

// WithMedia scripts a successful resolution
func (r *Resolver) WithMedia(url string, media *model.ResolvedMedia) *Resolver {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.media[url] = media
	return r
}

// WithError scripts a failed resolution
func (r *Resolver) WithError(url string, err error) *Resolver {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.errs[url] = err
	return r
}

// WithPayload sets the bytes returned when a stream with the given Source is opened
func (r *Resolver) WithPayload(source, payload string) *Resolver {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.payloads[source] = payload
	return r
}

// WithOpenError makes every Open call fail
func (r *Resolver) WithOpenError(err error) *Resolver {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.openErr = err
	return r
}

// Gate blocks resolutions of url until the returned function is called.
func (r *Resolver) Gate(url string) (release func()) {
	ch := make(chan struct{})
	r.mu.Lock()
	r.gates[url] = ch
	r.mu.Unlock()
	var once sync.Once
	return func() { once.Do(func() { close(ch) }) }
}

// ResolveCalls returns how many times Resolve was called
func (r *Resolver) ResolveCalls() int {
	return int(r.resolveCalls.Load())
}

// OpenCalls returns how many times Open was called
func (r *Resolver) OpenCalls() int {
	return int(r.openCalls.Load())
}

// Resolve implements youtube.Resolver
func (r *Resolver) Resolve(ctx context.Context, rawURL string) (*model.ResolvedMedia, error) {
	r.resolveCalls.Add(1)

	r.mu.Lock()
	gate := r.gates[rawURL]
	r.mu.Unlock()
	if gate != nil {
		select {
		case <-gate:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if err, ok := r.errs[rawURL]; ok {
		return nil, err
	}
	if m, ok := r.media[rawURL]; ok {
		cp := *m
		return &cp, nil
	}
	return nil, errors.New("video unavailable")
}

// Open implements youtube.Resolver
func (r *Resolver) Open(_ context.Context, stream model.StreamHandle) (io.ReadCloser, int64, error) {
	r.openCalls.Add(1)

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.openErr != nil {
		return nil, 0, r.openErr
	}
	key, _ := stream.Source.(string)
	payload, ok := r.payloads[key]
	if !ok {
		payload = "payload:" + key
	}
	return io.NopCloser(strings.NewReader(payload)), int64(len(payload)), nil
}

// Presenter records every call it receives.
type Presenter struct {
	mu       sync.Mutex
	media    []*model.ResolvedMedia
	enabled  []bool
	feedback []model.Feedback
}

// ShowMedia implements session.Presenter
func (p *Presenter) ShowMedia(media *model.ResolvedMedia) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.media = append(p.media, media)
}

// SetActionsEnabled implements session.Presenter
func (p *Presenter) SetActionsEnabled(enabled bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.enabled = append(p.enabled, enabled)
}

// ShowFeedback implements session.Presenter
func (p *Presenter) ShowFeedback(fb model.Feedback) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.feedback = append(p.feedback, fb)
}

// Media returns every media shown so far
func (p *Presenter) Media() []*model.ResolvedMedia {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]*model.ResolvedMedia(nil), p.media...)
}

// Enabled returns every enablement change so far
func (p *Presenter) Enabled() []bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]bool(nil), p.enabled...)
}

// EverEnabled reports whether actions were enabled at any point
func (p *Presenter) EverEnabled() bool {
	for _, e := range p.Enabled() {
		if e {
			return true
		}
	}
	return false
}

// LastEnabled returns the last enablement state, false if never set
func (p *Presenter) LastEnabled() bool {
	e := p.Enabled()
	if len(e) == 0 {
		return false
	}
	return e[len(e)-1]
}

// Feedback returns every feedback line so far
func (p *Presenter) Feedback() []model.Feedback {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]model.Feedback(nil), p.feedback...)
}

// LastFeedback returns the latest feedback line
func (p *Presenter) LastFeedback() model.Feedback {
	fb := p.Feedback()
	if len(fb) == 0 {
		return model.Feedback{}
	}
	return fb[len(fb)-1]
}
