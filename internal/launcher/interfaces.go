package launcher

import (
	"context"

	"github.com/ytget/dlshell/internal/model"
)

// Finder locates the program on disk
type Finder interface {
	Find(program string) (model.Executable, error)
}

// HelpFetcher captures the program's help text
type HelpFetcher interface {
	Fetch(ctx context.Context, exe string) (model.HelpText, error)
}

// PlaylistExpander turns a playlist URL into its video URLs
type PlaylistExpander interface {
	Expand(ctx context.Context, rawURL string) (*model.Playlist, error)
}
