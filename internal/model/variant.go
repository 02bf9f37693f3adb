package model

import (
	"fmt"
	"strings"
)

// Variant is one of the three predefined download flavours.
type Variant int

const (
	// VariantLegacy is the progressive stream carrying audio and video (720p or lower).
	VariantLegacy Variant = iota
	// VariantVideoOnly is the highest resolution adaptive video stream without audio.
	VariantVideoOnly
	// VariantAudioOnly is the highest bitrate adaptive audio stream.
	VariantAudioOnly
)

// Output file names, written to the working directory.
const (
	LegacyFileName = "legacy.mp4"
	VideoFileName  = "video.mp4"
	AudioFileName  = "audio.mp3"
)

// Variants lists every variant in button order.
var Variants = []Variant{VariantVideoOnly, VariantLegacy, VariantAudioOnly}

// FileName returns the fixed output file name for the variant.
func (v Variant) FileName() string {
	switch v {
	case VariantLegacy:
		return LegacyFileName
	case VariantVideoOnly:
		return VideoFileName
	case VariantAudioOnly:
		return AudioFileName
	default:
		return ""
	}
}

// Label returns the short button text for the variant.
func (v Variant) Label() string {
	switch v {
	case VariantLegacy:
		return "Legacy"
	case VariantVideoOnly:
		return "MP4"
	case VariantAudioOnly:
		return "MP3"
	default:
		return "Unknown"
	}
}

// String returns the lower-case key used in logs and on the command line
func (v Variant) String() string {
	switch v {
	case VariantLegacy:
		return "legacy"
	case VariantVideoOnly:
		return "mp4"
	case VariantAudioOnly:
		return "mp3"
	default:
		return fmt.Sprintf("variant(%d)", int(v))
	}
}

// IsValid reports whether v is one of the known variants.
func (v Variant) IsValid() bool {
	return v >= VariantLegacy && v <= VariantAudioOnly
}

// ParseVariant maps a command line key to a Variant.
func ParseVariant(s string) (Variant, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "legacy", "full", "progressive":
		return VariantLegacy, nil
	case "mp4", "video":
		return VariantVideoOnly, nil
	case "mp3", "audio":
		return VariantAudioOnly, nil
	}
	return 0, fmt.Errorf("unknown variant %q (want mp4, legacy or mp3)", s)
}
