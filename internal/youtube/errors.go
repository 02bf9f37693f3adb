package youtube

import (
	"context"
	"errors"
	"net"

	yt "github.com/kkdai/youtube/v2"
)

// Error kinds. Check them with errors.Is.
var (
	ErrInvalidURL   = errors.New("invalid video URL")
	ErrNoStream     = errors.New("no matching stream")
	ErrRestricted   = errors.New("restricted content")
	ErrUnavailable  = errors.New("video unavailable")
	ErrNetwork      = errors.New("network failure")
	ErrForeignRef   = errors.New("stream handle was not created by this resolver")
	errUnknownVideo = errors.New("resolver returned no video")
)

// ResolveError keeps the library message verbatim while tagging it with a kind.
type ResolveError struct {
	Kind error
	Err  error
}

func (e *ResolveError) Error() string {
	return e.Err.Error()
}

func (e *ResolveError) Unwrap() []error {
	return []error{e.Kind, e.Err}
}

func newResolveError(kind error, msg string) error {
	return &ResolveError{Kind: kind, Err: errors.New(msg)}
}

// Classify tags a library error with one of the error kinds.
func Classify(err error) error {
	if err == nil {
		return nil
	}
	var re *ResolveError
	if errors.As(err, &re) {
		return err
	}
	return &ResolveError{Kind: kindOf(err), Err: err}
}

func kindOf(err error) error {
	switch {
	case errors.Is(err, yt.ErrLoginRequired),
		errors.Is(err, yt.ErrVideoPrivate),
		errors.Is(err, yt.ErrNotPlayableInEmbed):
		return ErrRestricted
	case errors.Is(err, yt.ErrInvalidCharactersInVideoID),
		errors.Is(err, yt.ErrVideoIDMinLength):
		return ErrInvalidURL
	case errors.Is(err, context.Canceled),
		errors.Is(err, context.DeadlineExceeded):
		return ErrNetwork
	}

	var statusErr *yt.ErrPlayabiltyStatus
	if errors.As(err, &statusErr) {
		return ErrUnavailable
	}

	var codeErr yt.ErrUnexpectedStatusCode
	if errors.As(err, &codeErr) {
		return ErrNetwork
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return ErrNetwork
	}

	return ErrUnavailable
}
