package media

import "testing"

func TestExtractVideoID(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		want    string
		wantErr bool
	}{
		{
			name: "watch URL",
			url:  "https://www.youtube.com/watch?v=dQw4w9WgXcQ",
			want: "dQw4w9WgXcQ",
		},
		{
			name: "watch URL with extra parameters",
			url:  "https://www.youtube.com/watch?v=dQw4w9WgXcQ&t=43s&list=PLabc",
			want: "dQw4w9WgXcQ",
		},
		{
			name: "short link",
			url:  "https://youtu.be/dQw4w9WgXcQ",
			want: "dQw4w9WgXcQ",
		},
		{
			name: "short link with timestamp",
			url:  "https://youtu.be/dQw4w9WgXcQ?t=30",
			want: "dQw4w9WgXcQ",
		},
		{
			name: "embed URL",
			url:  "https://www.youtube.com/embed/dQw4w9WgXcQ",
			want: "dQw4w9WgXcQ",
		},
		{
			name: "shorts URL",
			url:  "https://youtube.com/shorts/dQw4w9WgXcQ",
			want: "dQw4w9WgXcQ",
		},
		{
			name: "live URL",
			url:  "https://www.youtube.com/live/dQw4w9WgXcQ",
			want: "dQw4w9WgXcQ",
		},
		{
			name: "legacy v path",
			url:  "https://www.youtube.com/v/dQw4w9WgXcQ",
			want: "dQw4w9WgXcQ",
		},
		{
			name: "scheme omitted",
			url:  "youtube.com/watch?v=dQw4w9WgXcQ",
			want: "dQw4w9WgXcQ",
		},
		{
			name: "music host",
			url:  "https://music.youtube.com/watch?v=dQw4w9WgXcQ",
			want: "dQw4w9WgXcQ",
		},
		{
			name:    "not a YouTube host",
			url:     "https://vimeo.com/123456",
			wantErr: true,
		},
		{
			name:    "playlist URL without video",
			url:     "https://www.youtube.com/playlist?list=PLabc",
			wantErr: true,
		},
		{
			name:    "malformed video ID",
			url:     "https://www.youtube.com/watch?v=short",
			wantErr: true,
		},
		{
			name:    "empty input",
			url:     "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractVideoID(tt.url)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got ID %q", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("expected ID %q, got %q", tt.want, got)
			}
		})
	}
}

func TestExtractPlaylistID(t *testing.T) {
	tests := []struct {
		name   string
		url    string
		want   string
		wantOK bool
	}{
		{
			name:   "playlist URL",
			url:    "https://www.youtube.com/playlist?list=PLrAXtmErZgOeiKm4sgNOknGvNjby9efdf",
			want:   "PLrAXtmErZgOeiKm4sgNOknGvNjby9efdf",
			wantOK: true,
		},
		{
			name:   "watch URL with list parameter",
			url:    "https://www.youtube.com/watch?v=dQw4w9WgXcQ&list=PLabc123&start_radio=1",
			want:   "PLabc123",
			wantOK: true,
		},
		{
			name:   "watch URL without list parameter",
			url:    "https://www.youtube.com/watch?v=dQw4w9WgXcQ",
			wantOK: false,
		},
		{
			name:   "not a YouTube host",
			url:    "https://example.com/?list=PLabc",
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ExtractPlaylistID(tt.url)
			if ok != tt.wantOK {
				t.Fatalf("expected ok=%v, got ok=%v (ID %q)", tt.wantOK, ok, got)
			}
			if ok && got != tt.want {
				t.Errorf("expected ID %q, got %q", tt.want, got)
			}
		})
	}
}

func TestIsYouTubeURL(t *testing.T) {
	tests := []struct {
		name string
		url  string
		want bool
	}{
		{"watch URL", "https://www.youtube.com/watch?v=dQw4w9WgXcQ", true},
		{"short link", "https://youtu.be/dQw4w9WgXcQ", true},
		{"no-cookie host", "https://www.youtube-nocookie.com/embed/dQw4w9WgXcQ", true},
		{"scheme omitted", "youtube.com/watch?v=dQw4w9WgXcQ", true},
		{"other site", "https://example.com/watch?v=dQw4w9WgXcQ", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsYouTubeURL(tt.url); got != tt.want {
				t.Errorf("IsYouTubeURL(%q) = %v, want %v", tt.url, got, tt.want)
			}
		})
	}
}

func TestURLBuilders(t *testing.T) {
	if got := WatchURL("dQw4w9WgXcQ"); got != "https://www.youtube.com/watch?v=dQw4w9WgXcQ" {
		t.Errorf("unexpected watch URL: %q", got)
	}
	if got := EmbedURL("dQw4w9WgXcQ"); got != "https://www.youtube.com/embed/dQw4w9WgXcQ" {
		t.Errorf("unexpected embed URL: %q", got)
	}
	if got := PlaylistURL("PLabc123"); got != "https://www.youtube.com/playlist?list=PLabc123" {
		t.Errorf("unexpected playlist URL: %q", got)
	}
}
