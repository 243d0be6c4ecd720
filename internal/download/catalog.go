package download

import (
	"github.com/ytget/dlshell/internal/platform"
)

// OfferKind tells the UI which install instruction to render
type OfferKind int

const (
	// OfferDownload means a binary can be downloaded and installed for the user
	OfferDownload OfferKind = iota
	// OfferInstallPage means the user has to follow an install page and recheck
	OfferInstallPage
	// OfferManual means there is nothing to link to
	OfferManual
)

// String returns string representation of the offer kind
func (k OfferKind) String() string {
	switch k {
	case OfferDownload:
		return "download"
	case OfferInstallPage:
		return "install page"
	default:
		return "manual"
	}
}

// Offer is the install instruction for a missing program
type Offer struct {
	Kind    OfferKind
	Program string
	URL     string
}

// downloadURLs lists directly downloadable binaries per OS and program
var downloadURLs = map[string]map[string]string{
	platform.OSWindows: {
		"youtube-dl": "https://yt-dl.org/downloads/latest/youtube-dl.exe",
	},
	platform.OSLinux: {
		"youtube-dl": "https://yt-dl.org/downloads/latest/youtube-dl",
	},
}

// installPages lists manual install pages per program
var installPages = map[string]string{
	"youtube-dl": "https://ytdl-org.github.io/youtube-dl/download.html",
	"ffmpeg":     "https://ffmpeg.zeranoe.com/builds/",
}

// DownloadURL returns the binary URL for program on goos, or "" if there is none
func DownloadURL(program, goos string) string {
	return downloadURLs[goos][program]
}

// InstallPage returns the install page for program, or "" if there is none
func InstallPage(program string) string {
	return installPages[program]
}

// OfferFor picks the install instruction for program on goos. A download
// URL wins over an install page; with neither the offer is manual.
func OfferFor(program, goos string) Offer {
	if url := DownloadURL(program, goos); url != "" {
		return Offer{Kind: OfferDownload, Program: program, URL: url}
	}
	if page := InstallPage(program); page != "" {
		return Offer{Kind: OfferInstallPage, Program: program, URL: page}
	}
	return Offer{Kind: OfferManual, Program: program}
}
