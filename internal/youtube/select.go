package youtube

import (
	"fmt"
	"regexp"
	"strings"

	yt "github.com/kkdai/youtube/v2"
)

// MIME prefixes used when ranking formats.
const (
	mimeVideoMP4 = "video/mp4"
	mimeAudio    = "audio/"
)

// nominalAudioKbps maps well-known audio itags to their advertised bitrate.
// Measured bitrates fluctuate around these values, the labels should not.
var nominalAudioKbps = map[int]int{
	139: 48,
	140: 128,
	141: 256,
	171: 128,
	172: 192,
	249: 50,
	250: 70,
	251: 160,
	256: 192,
	258: 384,
	599: 30,
	600: 35,
}

func isProgressive(f *yt.Format) bool {
	return f.AudioChannels > 0 && f.Width > 0 && f.Height > 0
}

func isVideoOnly(f *yt.Format) bool {
	return f.AudioChannels == 0 && f.Height > 0 && !strings.HasPrefix(f.MimeType, mimeAudio)
}

func isAudioOnly(f *yt.Format) bool {
	if f.Width != 0 || f.Height != 0 {
		return false
	}
	return f.AudioChannels > 0 || strings.HasPrefix(f.MimeType, mimeAudio)
}

func bitrateForFormat(f *yt.Format) int {
	if f.Bitrate > 0 {
		return f.Bitrate
	}
	if f.AverageBitrate > 0 {
		return f.AverageBitrate
	}
	return 0
}

// audioKbps returns the advertised bitrate for known itags, else the measured one.
func audioKbps(f *yt.Format) int {
	if kbps, ok := nominalAudioKbps[f.ItagNo]; ok {
		return kbps
	}
	return (bitrateForFormat(f) + 500) / 1000
}

func betterVideoFormat(candidate, current *yt.Format) bool {
	if candidate.Height != current.Height {
		return candidate.Height > current.Height
	}
	return bitrateForFormat(candidate) > bitrateForFormat(current)
}

// highestVideo picks the tallest format accepted by keep, preferring mp4.
func highestVideo(formats yt.FormatList, keep func(*yt.Format) bool) *yt.Format {
	var best, bestMP4 *yt.Format
	for i := range formats {
		f := &formats[i]
		if !keep(f) {
			continue
		}
		if best == nil || betterVideoFormat(f, best) {
			best = f
		}
		if strings.HasPrefix(f.MimeType, mimeVideoMP4) && (bestMP4 == nil || betterVideoFormat(f, bestMP4)) {
			bestMP4 = f
		}
	}
	if bestMP4 != nil {
		return bestMP4
	}
	return best
}

// highestAudio picks the audio-only format with the highest bitrate.
func highestAudio(formats yt.FormatList) *yt.Format {
	var best *yt.Format
	for i := range formats {
		f := &formats[i]
		if !isAudioOnly(f) {
			continue
		}
		if best == nil || audioKbps(f) > audioKbps(best) ||
			(audioKbps(f) == audioKbps(best) && bitrateForFormat(f) > bitrateForFormat(best)) {
			best = f
		}
	}
	return best
}

// qualityPrefix matches "1080p" in labels such as "1080p60 HDR".
var qualityPrefix = regexp.MustCompile(`^\d+p`)

// resolutionOf labels a format by its short side, so vertical video reads
// "1080p" rather than "1920p". Height still ranks formats.
func resolutionOf(f *yt.Format) string {
	if label := qualityPrefix.FindString(f.QualityLabel); label != "" {
		return label
	}
	short := f.Height
	if f.Width > 0 && f.Width < short {
		short = f.Width
	}
	if short > 0 {
		return fmt.Sprintf("%dp", short)
	}
	return f.QualityLabel
}

// selection is the outcome of picking one format per variant.
type selection struct {
	full  *yt.Format
	video *yt.Format
	audio *yt.Format
}

func selectFormats(formats yt.FormatList) (selection, error) {
	sel := selection{
		full:  highestVideo(formats, isProgressive),
		video: highestVideo(formats, isVideoOnly),
		audio: highestAudio(formats),
	}
	switch {
	case sel.full == nil:
		return sel, newResolveError(ErrNoStream, "no progressive (audio+video) stream available")
	case sel.video == nil:
		return sel, newResolveError(ErrNoStream, "no video-only stream available")
	case sel.audio == nil:
		return sel, newResolveError(ErrNoStream, "no audio-only stream available")
	}
	return sel, nil
}
