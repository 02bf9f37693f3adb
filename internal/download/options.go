package download

import "time"

// Defaults for the transfer retry policy.
const (
	DefaultMaxRetries       = 1
	DefaultRetryBackoff     = 2 * time.Second
	DefaultProgressInterval = 500 * time.Millisecond
)

// Option configures a Coordinator
type Option func(*Coordinator)

// WithReuseMedia controls whether live media resolved from the same URL is
// reused instead of resolving again on every click.
func WithReuseMedia(reuse bool) Option {
	return WithReuseMediaFunc(func() bool { return reuse })
}

// WithReuseMediaFunc is WithReuseMedia with the choice made per download.
func WithReuseMediaFunc(reuse func() bool) Option {
	return func(c *Coordinator) {
		if reuse != nil {
			c.reuseMedia = reuse
		}
	}
}

// WithRetries sets the number of extra transfer attempts and the delay between them.
func WithRetries(retries int, backoff time.Duration) Option {
	return func(c *Coordinator) {
		if retries >= 0 {
			c.maxRetries = retries
		}
		if backoff >= 0 {
			c.backoff = backoff
		}
	}
}

// WithProgressInterval throttles progress feedback.
func WithProgressInterval(d time.Duration) Option {
	return func(c *Coordinator) { c.progressInterval = d }
}

// WithReveal sets the function used to show finished files in the file browser.
func WithReveal(reveal func(path string) error) Option {
	return func(c *Coordinator) { c.reveal = reveal }
}

// WithAutoReveal reports whether finished files should be revealed right away.
// It is consulted per download so settings changes apply immediately.
func WithAutoReveal(enabled func() bool) Option {
	return func(c *Coordinator) { c.autoReveal = enabled }
}
