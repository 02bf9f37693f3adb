package youtube

import (
	"context"
	"io"

	"github.com/ytget/yt-downloader/internal/model"
)

// Resolver defines the media resolution contract used by the session and the
// download coordinator.
type Resolver interface {
	// Resolve fetches metadata and picks the full, video-only and audio-only streams.
	Resolve(ctx context.Context, rawURL string) (*model.ResolvedMedia, error)

	// Open starts the transfer of a stream previously returned by Resolve.
	// The returned size is the expected byte count, 0 if unknown.
	Open(ctx context.Context, stream model.StreamHandle) (io.ReadCloser, int64, error)
}
