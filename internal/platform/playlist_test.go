package platform

import (
	"context"
	"errors"
	"testing"

	"github.com/ytget/dlshell/internal/model"
)

func TestExtractPlaylistID(t *testing.T) {
	tests := []struct {
		name     string
		url      string
		expected string
	}{
		{"watch with list", "https://www.youtube.com/watch?v=VIDEO_ID&list=PLAYLIST_ID", "PLAYLIST_ID"},
		{"playlist page", "https://www.youtube.com/playlist?list=PL123&index=2", "PL123"},
		{"plain video", "https://www.youtube.com/watch?v=abc", ""},
		{"not a URL", "--format best", ""},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExtractPlaylistID(tt.url); got != tt.expected {
				t.Errorf("ExtractPlaylistID(%q) = %q, expected %q", tt.url, got, tt.expected)
			}
			if IsPlaylistURL(tt.url) != (tt.expected != "") {
				t.Errorf("IsPlaylistURL(%q) disagrees with ExtractPlaylistID", tt.url)
			}
		})
	}
}

func TestPlaylistExpander_Expand(t *testing.T) {
	p := NewPlaylistExpander()
	var gotID string
	p.fetch = func(ctx context.Context, id string) ([]model.PlaylistEntry, error) {
		gotID = id
		return []model.PlaylistEntry{
			{ID: "a", Title: "Concert Recording Part 1", URL: "https://www.youtube.com/watch?v=a"},
			{ID: "b", Title: "Concert Recording Part 2", URL: "https://www.youtube.com/watch?v=b"},
		}, nil
	}

	playlist, err := p.Expand(context.Background(), "https://www.youtube.com/playlist?list=PLx")
	if err != nil {
		t.Fatalf("Expand failed: %v", err)
	}
	if gotID != "PLx" {
		t.Errorf("expected playlist ID PLx, got %s", gotID)
	}
	if playlist.Title != "Concert Recording Part" {
		t.Errorf("unexpected title %q", playlist.Title)
	}
	if urls := playlist.URLs(); len(urls) != 2 {
		t.Errorf("expected 2 URLs, got %v", urls)
	}
}

func TestPlaylistExpander_Errors(t *testing.T) {
	p := NewPlaylistExpander()
	p.fetch = func(ctx context.Context, id string) ([]model.PlaylistEntry, error) {
		return nil, nil
	}

	if _, err := p.Expand(context.Background(), "https://www.youtube.com/watch?v=a"); err == nil {
		t.Error("expected error for a URL without a playlist")
	}
	if _, err := p.Expand(context.Background(), "https://www.youtube.com/playlist?list=PLx"); err == nil {
		t.Error("expected error for an empty playlist")
	}

	boom := errors.New("network down")
	p.fetch = func(ctx context.Context, id string) ([]model.PlaylistEntry, error) {
		return nil, boom
	}
	if _, err := p.Expand(context.Background(), "https://www.youtube.com/playlist?list=PLx"); !errors.Is(err, boom) {
		t.Errorf("expected wrapped fetch error, got %v", err)
	}
}

func TestPlaylistTitle(t *testing.T) {
	tests := []struct {
		entries  []model.PlaylistEntry
		expected string
	}{
		{[]model.PlaylistEntry{{Title: "Only"}}, "Only"},
		{[]model.PlaylistEntry{{Title: "Alpha"}, {Title: "Beta"}}, "Alpha"},
	}

	for _, test := range tests {
		if got := playlistTitle(test.entries); got != test.expected {
			t.Errorf("playlistTitle() = %q, expected %q", got, test.expected)
		}
	}
}
