package youtube

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	yt "github.com/kkdai/youtube/v2"

	"github.com/ytget/yt-downloader/internal/model"
)

func TestNewClient(t *testing.T) {
	c := NewClient(DefaultConfig())

	if c.yt == nil {
		t.Fatal("expected library client to be initialized")
	}
	if c.yt.HTTPClient == nil {
		t.Fatal("expected HTTP client to be configured")
	}
	if c.yt.HTTPClient.Timeout != 0 {
		t.Errorf("expected no client-wide timeout, got %s", c.yt.HTTPClient.Timeout)
	}
	if c.timeout != DefaultTimeout {
		t.Errorf("expected resolution timeout %s, got %s", DefaultTimeout, c.timeout)
	}
}

func TestClient_SlowStreamNotCutOff(t *testing.T) {
	const chunks = 6
	chunk := strings.Repeat("x", 1024)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		flusher, _ := w.(http.Flusher)
		for i := 0; i < chunks; i++ {
			_, _ = io.WriteString(w, chunk)
			if flusher != nil {
				flusher.Flush()
			}
			time.Sleep(100 * time.Millisecond)
		}
	}))
	defer srv.Close()

	c := NewClient(Config{Timeout: 300 * time.Millisecond})

	resp, err := c.yt.HTTPClient.Get(srv.URL)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("body read failed after %d bytes: %v", len(data), err)
	}
	if len(data) != chunks*len(chunk) {
		t.Errorf("expected %d bytes, got %d", chunks*len(chunk), len(data))
	}
}

func TestResolve_InvalidURL(t *testing.T) {
	c := NewClient(DefaultConfig())

	_, err := c.Resolve(context.Background(), "not a url")
	if !errors.Is(err, ErrInvalidURL) {
		t.Errorf("expected ErrInvalidURL, got %v", err)
	}
}

func TestBuildMedia(t *testing.T) {
	fixed := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	c := &Client{now: func() time.Time { return fixed }}

	video := &yt.Video{
		ID:       "dQw4w9WgXcQ",
		Title:    "X",
		Author:   "Someone",
		Duration: 212 * time.Second,
		Formats:  sampleFormats(),
	}

	media, err := c.buildMedia(video, "https://www.youtube.com/watch?v=dQw4w9WgXcQ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if media.Title != "X" || media.VideoID != "dQw4w9WgXcQ" {
		t.Errorf("unexpected metadata: %+v", media)
	}
	if !media.ResolvedAt.Equal(fixed) {
		t.Errorf("expected ResolvedAt %v, got %v", fixed, media.ResolvedAt)
	}

	expected := map[model.Variant]string{
		model.VariantLegacy:    "720p",
		model.VariantVideoOnly: "1080p",
		model.VariantAudioOnly: "160kbps",
	}
	for variant, text := range expected {
		if got := media.DisplayText(variant); got != text {
			t.Errorf("DisplayText(%s) = %s, expected %s", variant, got, text)
		}
	}

	ref, ok := media.Video.Source.(*streamRef)
	if !ok || ref.video != video || ref.format.ItagNo != 137 {
		t.Errorf("expected video handle to reference itag 137, got %+v", media.Video.Source)
	}
}

func TestBuildMedia_NoStreams(t *testing.T) {
	c := &Client{now: time.Now}

	_, err := c.buildMedia(&yt.Video{ID: "dQw4w9WgXcQ"}, "https://www.youtube.com/watch?v=dQw4w9WgXcQ")
	if !errors.Is(err, ErrNoStream) {
		t.Errorf("expected ErrNoStream, got %v", err)
	}
}

func TestOpen_ForeignHandle(t *testing.T) {
	c := NewClient(DefaultConfig())

	_, _, err := c.Open(context.Background(), model.StreamHandle{Itag: 18, Source: "not ours"})
	if !errors.Is(err, ErrForeignRef) {
		t.Errorf("expected ErrForeignRef, got %v", err)
	}
}
