package model

import (
	"errors"
	"testing"
)

func TestFeedbackConstructors(t *testing.T) {
	tests := []struct {
		name     string
		feedback Feedback
		kind     FeedbackKind
		message  string
		link     bool
	}{
		{"info", InfoFeedback(MsgChooseDownload), FeedbackInfo, "Choose Download Type", false},
		{"error", ErrorFeedback(errors.New("video unavailable")), FeedbackError, "Error: video unavailable", false},
		{"path", PathFeedback("/home/me/video.mp4"), FeedbackPath, "/home/me/video.mp4", true},
		{"empty path", PathFeedback(""), FeedbackPath, "", false},
		{"reveal", RevealErrorFeedback(errors.New("no file manager")), FeedbackError, "Error opening directory: no file manager", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.feedback.Kind != tt.kind {
				t.Errorf("expected kind %d, got %d", tt.kind, tt.feedback.Kind)
			}
			if tt.feedback.Message != tt.message {
				t.Errorf("expected message %q, got %q", tt.message, tt.feedback.Message)
			}
			if tt.feedback.IsLink() != tt.link {
				t.Errorf("expected IsLink %v, got %v", tt.link, tt.feedback.IsLink())
			}
		})
	}
}
