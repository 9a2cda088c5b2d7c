package client

import "regexp"

var youtubePattern = regexp.MustCompile(`^.*(youtu\.be/|v/|u/\w/|embed/|watch\?v=|&v=)([^#&?]*).*`)

// YouTubeEmbedURL derives the embeddable player URL from any of the common
// YouTube link forms (watch, share, embed). The second return is false when
// the URL is not a YouTube link, in which case it should be played as a
// plain video file.
func YouTubeEmbedURL(raw string) (string, bool) {
	if raw == "" {
		return "", false
	}
	m := youtubePattern.FindStringSubmatch(raw)
	if m == nil || len(m[2]) != 11 {
		return "", false
	}
	return "https://www.youtube.com/embed/" + m[2] + "?enablejsapi=1", true
}
