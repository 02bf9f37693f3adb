package model

import "fmt"

// FeedbackKind tells the presentation layer how to render a feedback line.
type FeedbackKind int

const (
	FeedbackInfo FeedbackKind = iota
	FeedbackError
	// FeedbackPath carries a file path; activating it reveals the containing folder.
	FeedbackPath
)

// User-facing messages.
const (
	MsgInvalidURL     = "Enter a Valid YouTube URL"
	MsgChooseDownload = "Choose Download Type"
	MsgFetching       = "Fetching video details..."
	MsgSuperseded     = "Download cancelled: another video was fetched"
)

// Feedback is a single line shown under the download buttons.
type Feedback struct {
	Kind    FeedbackKind
	Message string
	Path    string
}

// InfoFeedback returns a plain message.
func InfoFeedback(msg string) Feedback {
	return Feedback{Kind: FeedbackInfo, Message: msg}
}

// ErrorFeedback renders err as "Error: {message}".
func ErrorFeedback(err error) Feedback {
	return Feedback{Kind: FeedbackError, Message: fmt.Sprintf("Error: %v", err)}
}

// PathFeedback shows an absolute path that can be revealed.
func PathFeedback(path string) Feedback {
	return Feedback{Kind: FeedbackPath, Message: path, Path: path}
}

// IsLink reports whether the feedback should be clickable.
func (f Feedback) IsLink() bool {
	return f.Kind == FeedbackPath && f.Path != ""
}

// InvalidURLFeedback is shown when the input fails validation.
func InvalidURLFeedback() Feedback {
	return Feedback{Kind: FeedbackError, Message: MsgInvalidURL}
}

// RevealErrorFeedback is shown when the file browser could not be opened.
func RevealErrorFeedback(err error) Feedback {
	return Feedback{Kind: FeedbackError, Message: fmt.Sprintf("Error opening directory: %v", err)}
}
