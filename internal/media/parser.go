package media

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
)

// URL parameters
const (
	VideoURLParam    = "v"
	PlaylistURLParam = "list"
)

// URL templates
const (
	WatchURLTemplate    = "https://www.youtube.com/watch?v=%s"
	EmbedURLTemplate    = "https://www.youtube.com/embed/%s"
	PlaylistURLTemplate = "https://www.youtube.com/playlist?list=%s"
)

// videoIDPattern matches the 11-character YouTube video identifier.
var videoIDPattern = regexp.MustCompile(`^[A-Za-z0-9_-]{11}$`)

// youtubeHosts lists the hostnames treated as YouTube.
var youtubeHosts = map[string]bool{
	"youtube.com":              true,
	"www.youtube.com":          true,
	"m.youtube.com":            true,
	"music.youtube.com":        true,
	"youtube-nocookie.com":     true,
	"www.youtube-nocookie.com": true,
	"youtu.be":                 true,
}

// IsYouTubeURL reports whether the URL points at a known YouTube host.
func IsYouTubeURL(rawURL string) bool {
	u, err := parseURL(rawURL)
	if err != nil {
		return false
	}
	return youtubeHosts[strings.ToLower(u.Host)]
}

// parseURL tolerates a missing scheme so pasted "youtube.com/..." works.
func parseURL(rawURL string) (*url.URL, error) {
	rawURL = strings.TrimSpace(rawURL)
	if rawURL == "" {
		return nil, fmt.Errorf("empty URL")
	}
	if !strings.Contains(rawURL, "://") {
		rawURL = "https://" + rawURL
	}
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, err
	}
	if u.Host == "" {
		return nil, fmt.Errorf("URL has no host")
	}
	return u, nil
}

// ExtractVideoID extracts the video identifier from any of the URL shapes
// YouTube serves: watch?v=, youtu.be/, /embed/, /shorts/, /live/ and /v/.
func ExtractVideoID(rawURL string) (string, error) {
	u, err := parseURL(rawURL)
	if err != nil {
		return "", fmt.Errorf("invalid URL %q: %w", rawURL, err)
	}
	host := strings.ToLower(u.Host)
	if !youtubeHosts[host] {
		return "", fmt.Errorf("not a YouTube URL: %s", rawURL)
	}

	var id string
	switch {
	case host == "youtu.be":
		id = firstPathSegment(u.Path)
	case u.Query().Get(VideoURLParam) != "":
		id = u.Query().Get(VideoURLParam)
	default:
		id = pathVideoID(u.Path)
	}

	if !videoIDPattern.MatchString(id) {
		return "", fmt.Errorf("no video ID in URL: %s", rawURL)
	}
	return id, nil
}

// ExtractPlaylistID returns the playlist identifier when the URL carries one.
func ExtractPlaylistID(rawURL string) (string, bool) {
	u, err := parseURL(rawURL)
	if err != nil {
		return "", false
	}
	if !youtubeHosts[strings.ToLower(u.Host)] {
		return "", false
	}
	id := u.Query().Get(PlaylistURLParam)
	return id, id != ""
}

// WatchURL builds the canonical watch URL for a video ID.
func WatchURL(videoID string) string {
	return fmt.Sprintf(WatchURLTemplate, videoID)
}

// EmbedURL builds the embeddable player URL for a video ID.
func EmbedURL(videoID string) string {
	return fmt.Sprintf(EmbedURLTemplate, videoID)
}

// PlaylistURL builds the canonical playlist URL for a playlist ID.
func PlaylistURL(playlistID string) string {
	return fmt.Sprintf(PlaylistURLTemplate, playlistID)
}

func firstPathSegment(path string) string {
	return strings.SplitN(strings.Trim(path, "/"), "/", 2)[0]
}

// pathVideoID handles the path-embedded forms: /embed/<id>, /shorts/<id>,
// /live/<id> and the legacy /v/<id>.
func pathVideoID(path string) string {
	segments := strings.Split(strings.Trim(path, "/"), "/")
	if len(segments) != 2 {
		return ""
	}
	switch segments[0] {
	case "embed", "shorts", "live", "v":
		return segments[1]
	}
	return ""
}
