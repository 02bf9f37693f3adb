package session

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync"

	"github.com/ytget/yt-downloader/internal/model"
	"github.com/ytget/yt-downloader/internal/youtube"
)

// ErrSuperseded is returned when a newer request finished first.
var ErrSuperseded = errors.New("superseded by a newer request")

// Controller runs the fetch workflow for one session.
type Controller struct {
	state     *State
	resolver  youtube.Resolver
	presenter Presenter
	dispatch  Dispatcher

	wg sync.WaitGroup
}

// NewController wires the fetch workflow
func NewController(state *State, resolver youtube.Resolver, presenter Presenter, dispatch Dispatcher) *Controller {
	if dispatch == nil {
		dispatch = Immediate
	}
	return &Controller{
		state:     state,
		resolver:  resolver,
		presenter: presenter,
		dispatch:  dispatch,
	}
}

// State returns the session state the controller updates
func (c *Controller) State() *State {
	return c.state
}

// Resolver returns the resolver used for fetches
func (c *Controller) Resolver() youtube.Resolver {
	return c.resolver
}

// Submit runs Fetch on a background goroutine; the UI thread never waits on
// the network. A second Submit starts a second resolution and the newest wins.
func (c *Controller) Submit(rawURL string) {
	c.wg.Add(1)
	go func() {
		defer c.wg.Done()
		_, _ = c.Fetch(context.Background(), rawURL)
	}()
}

// Wait blocks until every submitted fetch has finished
func (c *Controller) Wait() {
	c.wg.Wait()
}

// Fetch validates rawURL, resolves it and publishes the outcome.
// Invalid input never reaches the resolver.
func (c *Controller) Fetch(ctx context.Context, rawURL string) (*model.ResolvedMedia, error) {
	url := strings.TrimSpace(rawURL)
	if !youtube.IsValidURL(url) {
		c.Notify(model.InvalidURLFeedback())
		return nil, youtube.ErrInvalidURL
	}

	id := c.state.NextFetch()
	slog.Info("fetch started", slog.Uint64("fetch", id), slog.String("url", url))
	c.Notify(model.InfoFeedback(model.MsgFetching))

	media, err := c.resolver.Resolve(ctx, url)
	if err != nil {
		if !c.state.FailFetch(id) {
			slog.Debug("stale fetch error dropped", slog.Uint64("fetch", id), slog.Any("err", err))
			return nil, ErrSuperseded
		}
		slog.Warn("fetch failed", slog.Uint64("fetch", id), slog.Any("err", err))
		c.dispatch.Do(func() {
			c.presenter.SetActionsEnabled(false)
			c.presenter.ShowFeedback(model.ErrorFeedback(err))
		})
		return nil, err
	}

	if !c.state.CommitFetch(id, media) {
		slog.Debug("stale fetch result dropped", slog.Uint64("fetch", id), slog.String("video", media.VideoID))
		return nil, ErrSuperseded
	}

	slog.Info("fetch completed",
		slog.Uint64("fetch", id),
		slog.String("video", media.VideoID),
		slog.String("title", media.Title),
	)
	c.Publish(media)
	return media, nil
}

// Publish renders media and refreshes button state. The download coordinator
// uses it after a re-resolution.
func (c *Controller) Publish(media *model.ResolvedMedia) {
	c.dispatch.Do(func() {
		c.presenter.ShowMedia(media)
		c.presenter.SetActionsEnabled(c.state.ActionsEnabled())
		if !c.state.InProgress() {
			c.presenter.ShowFeedback(model.InfoFeedback(model.MsgChooseDownload))
		}
	})
}

// Notify shows a feedback line
func (c *Controller) Notify(fb model.Feedback) {
	c.dispatch.Do(func() {
		c.presenter.ShowFeedback(fb)
	})
}

// RefreshActions re-renders button enablement from the current state.
func (c *Controller) RefreshActions() {
	c.dispatch.Do(func() {
		c.presenter.SetActionsEnabled(c.state.ActionsEnabled())
	})
}
