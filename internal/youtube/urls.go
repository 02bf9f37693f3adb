package youtube

import (
	"regexp"
	"strings"
)

// VideoIDLength is the length of a video id.
const VideoIDLength = 11

var urlPatterns = []*regexp.Regexp{
	regexp.MustCompile(`^https?://(?:www\.)?youtube\.com/watch\?v=([\w-]{11})$`),
	regexp.MustCompile(`^https?://(?:www\.)?youtube\.com/shorts/([\w-]{11})$`),
}

// IsValidURL reports whether the trimmed input is a watch or shorts URL.
func IsValidURL(rawURL string) bool {
	_, ok := VideoID(rawURL)
	return ok
}

// VideoID extracts the 11 character id from a valid URL.
func VideoID(rawURL string) (string, bool) {
	s := strings.TrimSpace(rawURL)
	for _, re := range urlPatterns {
		if m := re.FindStringSubmatch(s); m != nil {
			return m[1], true
		}
	}
	return "", false
}
