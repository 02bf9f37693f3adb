package youtube

import (
	"errors"
	"testing"

	yt "github.com/kkdai/youtube/v2"
)

func sampleFormats() yt.FormatList {
	return yt.FormatList{
		{ItagNo: 18, MimeType: `video/mp4; codecs="avc1.42001E, mp4a.40.2"`, Width: 640, Height: 360, AudioChannels: 2, Bitrate: 500000},
		{ItagNo: 22, MimeType: `video/mp4; codecs="avc1.64001F, mp4a.40.2"`, Width: 1280, Height: 720, AudioChannels: 2, Bitrate: 1500000},
		{ItagNo: 137, MimeType: `video/mp4; codecs="avc1.640028"`, Width: 1920, Height: 1080, Bitrate: 4000000},
		{ItagNo: 248, MimeType: `video/webm; codecs="vp9"`, Width: 1920, Height: 1080, Bitrate: 3000000},
		{ItagNo: 136, MimeType: `video/mp4; codecs="avc1.4d401f"`, Width: 1280, Height: 720, Bitrate: 2000000},
		{ItagNo: 140, MimeType: `audio/mp4; codecs="mp4a.40.2"`, AudioChannels: 2, Bitrate: 130000},
		{ItagNo: 251, MimeType: `audio/webm; codecs="opus"`, AudioChannels: 2, Bitrate: 140000},
		{ItagNo: 249, MimeType: `audio/webm; codecs="opus"`, AudioChannels: 2, Bitrate: 60000},
	}
}

func TestSelectFormats(t *testing.T) {
	sel, err := selectFormats(sampleFormats())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if sel.full.ItagNo != 22 {
		t.Errorf("expected progressive itag 22, got %d", sel.full.ItagNo)
	}
	if sel.video.ItagNo != 137 {
		t.Errorf("expected video-only itag 137, got %d", sel.video.ItagNo)
	}
	if sel.audio.ItagNo != 251 {
		t.Errorf("expected audio itag 251, got %d", sel.audio.ItagNo)
	}
}

func TestHighestVideo_FallsBackToNonMP4(t *testing.T) {
	formats := yt.FormatList{
		{ItagNo: 248, MimeType: `video/webm; codecs="vp9"`, Width: 1920, Height: 1080},
		{ItagNo: 247, MimeType: `video/webm; codecs="vp9"`, Width: 1280, Height: 720},
	}

	best := highestVideo(formats, isVideoOnly)
	if best == nil || best.ItagNo != 248 {
		t.Fatalf("expected webm itag 248, got %+v", best)
	}
}

func TestHighestAudio_UnknownItagsUseMeasuredBitrate(t *testing.T) {
	formats := yt.FormatList{
		{ItagNo: 9001, MimeType: "audio/webm", AudioChannels: 2, Bitrate: 96000},
		{ItagNo: 9002, MimeType: "audio/webm", AudioChannels: 2, AverageBitrate: 192000},
	}

	best := highestAudio(formats)
	if best == nil || best.ItagNo != 9002 {
		t.Fatalf("expected itag 9002, got %+v", best)
	}
	if kbps := audioKbps(best); kbps != 192 {
		t.Errorf("expected 192kbps, got %d", kbps)
	}
}

func TestSelectFormats_MissingVariants(t *testing.T) {
	tests := []struct {
		name    string
		formats yt.FormatList
	}{
		{"empty", nil},
		{"no progressive", yt.FormatList{
			{ItagNo: 137, MimeType: "video/mp4", Width: 1920, Height: 1080},
			{ItagNo: 140, MimeType: "audio/mp4", AudioChannels: 2},
		}},
		{"no audio", yt.FormatList{
			{ItagNo: 18, MimeType: "video/mp4", Width: 640, Height: 360, AudioChannels: 2},
			{ItagNo: 137, MimeType: "video/mp4", Width: 1920, Height: 1080},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := selectFormats(tt.formats)
			if !errors.Is(err, ErrNoStream) {
				t.Errorf("expected ErrNoStream, got %v", err)
			}
		})
	}
}

func TestResolutionOf(t *testing.T) {
	tests := []struct {
		name   string
		format yt.Format
		want   string
	}{
		{"label with frame rate", yt.Format{Width: 1920, Height: 1080, QualityLabel: "1080p60"}, "1080p"},
		{"label only", yt.Format{QualityLabel: "720p"}, "720p"},
		{"vertical with label", yt.Format{Width: 1080, Height: 1920, QualityLabel: "1080p"}, "1080p"},
		{"vertical without label", yt.Format{Width: 360, Height: 640}, "360p"},
		{"landscape without label", yt.Format{Width: 1280, Height: 720}, "720p"},
		{"unknown", yt.Format{}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := resolutionOf(&tt.format); got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestSelectFormats_Vertical(t *testing.T) {
	formats := yt.FormatList{
		{ItagNo: 18, MimeType: `video/mp4; codecs="avc1.42001E, mp4a.40.2"`, Width: 360, Height: 640, AudioChannels: 2, QualityLabel: "360p"},
		{ItagNo: 137, MimeType: `video/mp4; codecs="avc1.640028"`, Width: 1080, Height: 1920, QualityLabel: "1080p"},
		{ItagNo: 136, MimeType: `video/mp4; codecs="avc1.4d401f"`, Width: 720, Height: 1280},
		{ItagNo: 140, MimeType: `audio/mp4; codecs="mp4a.40.2"`, AudioChannels: 2, Bitrate: 130000},
	}

	sel, err := selectFormats(formats)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sel.video.ItagNo != 137 {
		t.Errorf("expected video-only itag 137, got %d", sel.video.ItagNo)
	}
	if got := resolutionOf(sel.full); got != "360p" {
		t.Errorf("expected progressive label 360p, got %s", got)
	}
	if got := resolutionOf(sel.video); got != "1080p" {
		t.Errorf("expected video-only label 1080p, got %s", got)
	}
}
