package download

import "context"

// Downloader defines the interface for fetching a program binary.
type Downloader interface {
	// Download fetches url and installs it as program, returning the final path
	Download(ctx context.Context, url, program string) (string, error)
}
