package youtube

import (
	"io"
	"log/slog"
	"net/http"
	"time"
)

// DefaultRetryBackoff is the delay before the first retry; later retries wait longer.
const DefaultRetryBackoff = 500 * time.Millisecond

// retryTransport repeats requests that failed with a network error or a 5xx
// status and applies the configured User-Agent.
type retryTransport struct {
	next      http.RoundTripper
	retries   int
	backoff   time.Duration
	userAgent string
}

func newRetryTransport(next http.RoundTripper, retries int, userAgent string) *retryTransport {
	if retries < 0 {
		retries = 0
	}
	return &retryTransport{
		next:      next,
		retries:   retries,
		backoff:   DefaultRetryBackoff,
		userAgent: userAgent,
	}
}

// RoundTrip implements http.RoundTripper
func (t *retryTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	ctx := req.Context()
	for attempt := 0; ; attempt++ {
		r, err := t.prepare(req, attempt)
		if err != nil {
			return nil, err
		}

		resp, err := t.next.RoundTrip(r)
		if err == nil && resp.StatusCode < http.StatusInternalServerError {
			return resp, nil
		}
		if attempt >= t.retries || !rewindable(req) || ctx.Err() != nil {
			return resp, err
		}

		if resp != nil {
			_, _ = io.Copy(io.Discard, resp.Body)
			_ = resp.Body.Close()
			slog.Debug("retrying request", slog.String("host", req.URL.Host), slog.Int("status", resp.StatusCode), slog.Int("attempt", attempt+1))
		} else {
			slog.Debug("retrying request", slog.String("host", req.URL.Host), slog.Any("err", err), slog.Int("attempt", attempt+1))
		}

		select {
		case <-time.After(t.backoff * time.Duration(attempt+1)):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
}

// prepare clones req for one attempt, rewinding the body after the first.
func (t *retryTransport) prepare(req *http.Request, attempt int) (*http.Request, error) {
	r := req.Clone(req.Context())
	if attempt > 0 && req.Body != nil && req.Body != http.NoBody {
		body, err := req.GetBody()
		if err != nil {
			return nil, err
		}
		r.Body = body
	}
	if t.userAgent != "" {
		r.Header.Set("User-Agent", t.userAgent)
	}
	return r, nil
}

func rewindable(req *http.Request) bool {
	return req.Body == nil || req.Body == http.NoBody || req.GetBody != nil
}
