package model

// PlaylistEntry is a single video resolved from a playlist URL
type PlaylistEntry struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	URL   string `json:"url"`
}

// Playlist represents a resolved playlist
type Playlist struct {
	ID      string          `json:"id"`
	Title   string          `json:"title"`
	URL     string          `json:"url"`
	Entries []PlaylistEntry `json:"entries"`
}

// URLs returns the video URLs in playlist order
func (p *Playlist) URLs() []string {
	urls := make([]string, 0, len(p.Entries))
	for _, e := range p.Entries {
		if e.URL != "" {
			urls = append(urls, e.URL)
		}
	}
	return urls
}
