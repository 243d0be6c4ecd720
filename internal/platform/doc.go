package platform

// Package platform contains OS integration and external tooling glue:
// well-known directories, locating the target executable, opening folders
// in the system file manager, and playlist resolution via ytdlp.
