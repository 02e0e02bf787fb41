package media

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/ytget/ytdlp/v2"
)

// Timeout constants
const (
	DefaultResolveTimeout = 60 * time.Second
)

// Playlist title constants
const (
	DefaultPlaylistName = "Untitled Playlist"
	MinPrefixLength     = 10
	PlaylistSuffix      = " Playlist"
)

// Video is one resolved playlist entry.
type Video struct {
	ID    string
	Title string
	URL   string
}

// Playlist holds resolved playlist metadata.
type Playlist struct {
	ID     string
	Title  string
	Videos []Video
}

// Embed is what a YouTube slide needs to render and open its content.
type Embed struct {
	VideoID  string
	Title    string
	URL      string
	EmbedURL string
}

// Resolver resolves YouTube metadata through the ytdlp library.
type Resolver struct {
	timeout time.Duration
}

// NewResolver creates a new resolver with the default timeout.
func NewResolver() *Resolver {
	return &Resolver{
		timeout: DefaultResolveTimeout,
	}
}

// SetTimeout sets the timeout for resolve operations.
func (r *Resolver) SetTimeout(timeout time.Duration) {
	r.timeout = timeout
}

// Resolve turns a pasted YouTube URL into an embeddable reference. Video
// URLs resolve locally; playlist URLs are expanded through ytdlp and embed
// their first entry.
func (r *Resolver) Resolve(ctx context.Context, rawURL string) (*Embed, error) {
	if videoID, err := ExtractVideoID(rawURL); err == nil {
		return &Embed{
			VideoID:  videoID,
			URL:      WatchURL(videoID),
			EmbedURL: EmbedURL(videoID),
		}, nil
	}

	if playlistID, ok := ExtractPlaylistID(rawURL); ok {
		playlist, err := r.ResolvePlaylist(ctx, playlistID)
		if err != nil {
			return nil, err
		}
		if len(playlist.Videos) == 0 {
			return nil, fmt.Errorf("playlist %s has no videos", playlistID)
		}
		first := playlist.Videos[0]
		return &Embed{
			VideoID:  first.ID,
			Title:    playlist.Title,
			URL:      first.URL,
			EmbedURL: EmbedURL(first.ID),
		}, nil
	}

	return nil, fmt.Errorf("unrecognized YouTube URL: %s", rawURL)
}

// ResolvePlaylist fetches all playlist items and derives a display title.
func (r *Resolver) ResolvePlaylist(ctx context.Context, playlistID string) (*Playlist, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	d := ytdlp.New()
	items, err := d.GetPlaylistItemsAll(ctx, playlistID, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to get playlist items: %v", err)
	}

	videos := make([]Video, 0, len(items))
	for _, it := range items {
		videos = append(videos, Video{
			ID:    it.VideoID,
			Title: it.Title,
			URL:   WatchURL(it.VideoID),
		})
	}

	return &Playlist{
		ID:     playlistID,
		Title:  playlistTitle(videos),
		Videos: videos,
	}, nil
}

// playlistTitle derives a display title from the first entries.
func playlistTitle(videos []Video) string {
	if len(videos) == 0 {
		return DefaultPlaylistName
	}
	if len(videos) > 1 {
		prefix := commonPrefix(videos[0].Title, videos[1].Title)
		if len(prefix) > MinPrefixLength {
			return strings.TrimSpace(prefix) + PlaylistSuffix
		}
	}
	return videos[0].Title + PlaylistSuffix
}

// commonPrefix finds the common prefix between two strings.
func commonPrefix(s1, s2 string) string {
	minLen := min(len(s1), len(s2))
	for i := 0; i < minLen; i++ {
		if s1[i] != s2[i] {
			return s1[:i]
		}
	}
	return s1[:minLen]
}
