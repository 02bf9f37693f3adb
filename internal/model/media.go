package model

import (
	"fmt"
	"time"
)

// StreamHandle references one encoded variant of a video. Only the resolver
// that produced it understands Source; everything else reads the display
// attributes and hands the handle back for the transfer.
type StreamHandle struct {
	Itag          int
	MimeType      string
	Resolution    string // e.g. "1080p", empty for audio
	BitrateKbps   int    // audio bitrate, 0 for video
	ContentLength int64  // bytes, 0 if unknown
	Source        any
}

// IsZero reports whether the handle is unset.
func (h StreamHandle) IsZero() bool {
	return h.Itag == 0 && h.Source == nil
}

// Bitrate returns the audio bitrate formatted as "160kbps".
func (h StreamHandle) Bitrate() string {
	if h.BitrateKbps <= 0 {
		return DashPlaceholder
	}
	return fmt.Sprintf("%dkbps", h.BitrateKbps)
}

// DashPlaceholder is shown when a display attribute is unknown.
const DashPlaceholder = "—"

// ResolvedMedia is the outcome of one successful resolution.
type ResolvedMedia struct {
	VideoID    string
	SourceURL  string
	Title      string
	Author     string
	Duration   time.Duration
	Full       StreamHandle // progressive audio+video
	Video      StreamHandle // highest resolution video-only
	Audio      StreamHandle // highest bitrate audio-only
	ResolvedAt time.Time
}

// Stream returns the handle backing the variant.
func (m *ResolvedMedia) Stream(v Variant) (StreamHandle, error) {
	switch v {
	case VariantLegacy:
		return m.Full, nil
	case VariantVideoOnly:
		return m.Video, nil
	case VariantAudioOnly:
		return m.Audio, nil
	}
	return StreamHandle{}, fmt.Errorf("unknown variant: %s", v)
}

// DisplayText returns the resolution for video variants and the bitrate for audio.
func (m *ResolvedMedia) DisplayText(v Variant) string {
	h, err := m.Stream(v)
	if err != nil {
		return DashPlaceholder
	}
	if v == VariantAudioOnly {
		return h.Bitrate()
	}
	if h.Resolution == "" {
		return DashPlaceholder
	}
	return h.Resolution
}
