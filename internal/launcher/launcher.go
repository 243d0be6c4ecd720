package launcher

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"strings"
	"sync"
	"time"

	"pkt.systems/pslog"

	"github.com/ytget/dlshell/internal/argv"
	"github.com/ytget/dlshell/internal/download"
	"github.com/ytget/dlshell/internal/help"
	"github.com/ytget/dlshell/internal/model"
	"github.com/ytget/dlshell/internal/platform"
	"github.com/ytget/dlshell/internal/session"
)

// Screen is what the window shows
type Screen int

const (
	ScreenLocating Screen = iota
	ScreenMissing
	ScreenReady
	ScreenFailed
)

// String returns string representation of the screen
func (s Screen) String() string {
	switch s {
	case ScreenLocating:
		return "Locating"
	case ScreenMissing:
		return "Missing"
	case ScreenReady:
		return "Ready"
	case ScreenFailed:
		return "Failed"
	default:
		return "Unknown"
	}
}

// ErrNoDownload is returned when the current offer is not a direct download
var ErrNoDownload = errors.New("no download available for this platform")

// View is an immutable snapshot of the launcher
type View struct {
	Screen     Screen
	Program    string
	Executable model.Executable
	Help       model.HelpText
	Offer      download.Offer
	Err        error
	Session    model.SessionState
	Tokens     []argv.Token
}

// Options configures a launcher
type Options struct {
	Program     string
	HelpFlag    string
	HelpTimeout time.Duration
	DataDir     string
	WorkDir     string
	Logger      pslog.Logger
}

// Launcher is the view model behind the main window
type Launcher struct {
	log     pslog.Logger
	program string
	workDir string
	goos    string

	finder     Finder
	fetcher    HelpFetcher
	downloader download.Downloader
	expander   PlaylistExpander
	controller *session.Controller
	editor     *argv.Editor

	mu         sync.Mutex
	generation uint64
	screen     Screen
	exe        model.Executable
	help       model.HelpText
	offer      download.Offer
	initErr    error
	onChange   func()
}

// New creates a launcher in the Locating screen
func New(opts Options, finder Finder, fetcher HelpFetcher, downloader download.Downloader) *Launcher {
	logger := opts.Logger
	if logger == nil {
		logger = pslog.Ctx(context.Background())
	}
	program := strings.TrimSpace(opts.Program)

	return &Launcher{
		log:        logger.With("program", program),
		program:    program,
		workDir:    opts.WorkDir,
		goos:       runtime.GOOS,
		finder:     finder,
		fetcher:    fetcher,
		downloader: downloader,
		expander:   platform.NewPlaylistExpander(),
		controller: session.NewController(logger),
		editor:     argv.NewEditor(program),
		screen:     ScreenLocating,
	}
}

// SetPlaylistExpander replaces the playlist expander
func (l *Launcher) SetPlaylistExpander(expander PlaylistExpander) {
	l.expander = expander
}

// SetOS overrides the platform used to pick the install offer
func (l *Launcher) SetOS(goos string) {
	l.goos = goos
}

// Controller exposes the session controller
func (l *Launcher) Controller() *session.Controller {
	return l.controller
}

// Editor exposes the argument editor. Its methods are not synchronized and
// belong to the UI goroutine.
func (l *Launcher) Editor() *argv.Editor {
	return l.editor
}

// Program returns the program name
func (l *Launcher) Program() string {
	return l.program
}

// OnChange registers the callback invoked after every state change. It may
// be called from any goroutine.
func (l *Launcher) OnChange(callback func()) {
	l.mu.Lock()
	l.onChange = callback
	l.mu.Unlock()
}

// Snapshot returns the current view
func (l *Launcher) Snapshot() View {
	l.mu.Lock()
	defer l.mu.Unlock()
	return View{
		Screen:     l.screen,
		Program:    l.program,
		Executable: l.exe,
		Help:       l.help,
		Offer:      l.offer,
		Err:        l.initErr,
		Session:    l.controller.State(),
		Tokens:     l.editor.Tokens(),
	}
}

// Initialize locates the program and then fetches its help. The Ready
// screen is shown with pending help as soon as the program is found. A newer
// call supersedes an older one still in flight; the older result is dropped.
func (l *Launcher) Initialize(ctx context.Context) error {
	l.mu.Lock()
	l.generation++
	gen := l.generation
	l.screen = ScreenLocating
	l.exe = model.Executable{}
	l.help = model.HelpText{}
	l.initErr = nil
	l.mu.Unlock()
	l.notify()

	exe, err := l.finder.Find(l.program)
	if err != nil {
		l.log.Error("failed to locate program", "err", err)
		l.apply(gen, func() {
			l.screen = ScreenFailed
			l.initErr = err
		})
		return fmt.Errorf("failed to locate %s: %w", l.program, err)
	}

	if !exe.IsFound() {
		offer := download.OfferFor(l.program, l.goos)
		l.log.Info("program not found", "offer", offer.Kind.String())
		l.apply(gen, func() {
			l.screen = ScreenMissing
			l.exe = exe
			l.offer = offer
		})
		return nil
	}

	l.log.Info("program located", "path", exe.Path)
	if !l.apply(gen, func() {
		l.screen = ScreenReady
		l.exe = exe
		l.help = model.HelpText{State: model.HelpPending}
	}) {
		return nil
	}

	text, err := l.fetcher.Fetch(ctx, exe.Path)
	if err != nil {
		l.log.Warn("failed to fetch help", "path", exe.Path, "err", err)
		text = model.UnavailableHelp()
	}
	l.apply(gen, func() { l.help = text })
	return nil
}

// Recheck runs a fresh initialization
func (l *Launcher) Recheck(ctx context.Context) error {
	return l.Initialize(ctx)
}

// DownloadAndReinitialize downloads the offered binary and initializes
// again. A failed download leaves the Missing screen in place.
func (l *Launcher) DownloadAndReinitialize(ctx context.Context) error {
	offer := l.Snapshot().Offer
	if offer.Kind != download.OfferDownload || offer.URL == "" {
		return ErrNoDownload
	}
	if _, err := l.downloader.Download(ctx, offer.URL, l.program); err != nil {
		return err
	}
	return l.Initialize(ctx)
}

// AddArgument appends text as new tokens. With expandPlaylist set, a
// playlist URL becomes one token per video. Empty text adds an empty token.
func (l *Launcher) AddArgument(ctx context.Context, text string, expandPlaylist bool) error {
	args, err := l.ExpandArgument(ctx, text, expandPlaylist)
	if err != nil {
		return err
	}
	return l.AddArguments(args...)
}

// ExpandArgument resolves prompt text into the arguments to append. It may
// block on the network and does not touch the editor.
func (l *Launcher) ExpandArgument(ctx context.Context, text string, expandPlaylist bool) ([]string, error) {
	if !expandPlaylist || !platform.IsPlaylistURL(text) {
		return []string{text}, nil
	}

	playlist, err := l.expander.Expand(ctx, text)
	if err != nil {
		return nil, fmt.Errorf("failed to expand playlist: %w", err)
	}
	urls := playlist.URLs()
	if len(urls) == 0 {
		return nil, fmt.Errorf("playlist %s has no entries", playlist.ID)
	}
	l.log.Info("playlist expanded", "playlist", playlist.ID, "entries", len(urls))
	return urls, nil
}

// AddArguments appends args to the editor
func (l *Launcher) AddArguments(args ...string) error {
	if len(args) == 0 {
		return nil
	}
	if err := l.editor.AddMany(args...); err != nil {
		return err
	}
	l.notify()
	return nil
}

// Run starts the program with the current arguments attached to term.
// Argument editing stays locked until the exited session is acknowledged.
func (l *Launcher) Run(term session.Terminal) (model.SessionID, error) {
	exe := l.Snapshot().Executable

	id, err := l.controller.Run(session.Request{
		Program:    l.program,
		Executable: exe,
		Args:       l.editor.Args(),
		Dir:        l.workDir,
		Terminal:   term,
		OnExit: func(model.SessionID, model.Outcome) {
			l.notify()
		},
	})
	if err != nil {
		l.log.Error("failed to run program", "err", err)
		return "", err
	}
	if id == "" {
		return "", nil
	}
	l.editor.Lock()
	l.notify()
	return id, nil
}

// Acknowledge discards an exited session and unlocks editing
func (l *Launcher) Acknowledge() bool {
	if !l.controller.Acknowledge() {
		return false
	}
	l.editor.Unlock()
	l.notify()
	return true
}

// Resize forwards terminal geometry to the running session
func (l *Launcher) Resize(rows, cols int) {
	if err := l.controller.Resize(rows, cols); err != nil {
		l.log.Debug("failed to resize terminal", "rows", rows, "cols", cols, "err", err)
	}
}

// Shutdown stops a running session
func (l *Launcher) Shutdown() {
	if err := l.controller.Stop(); err != nil {
		l.log.Warn("failed to stop session", "err", err)
	}
}

// Changed notifies listeners after an edit made through Editor
func (l *Launcher) Changed() {
	l.notify()
}

// apply runs update under the lock if gen is still current and notifies.
// It reports whether the update was applied.
func (l *Launcher) apply(gen uint64, update func()) bool {
	l.mu.Lock()
	if gen != l.generation {
		l.mu.Unlock()
		l.log.Debug("dropping stale initialization", "generation", gen)
		return false
	}
	update()
	l.mu.Unlock()
	l.notify()
	return true
}

func (l *Launcher) notify() {
	l.mu.Lock()
	callback := l.onChange
	l.mu.Unlock()
	if callback != nil {
		callback()
	}
}

// NewDefault wires a launcher with the real locator, help fetcher and downloader
func NewDefault(opts Options) *Launcher {
	fetcher := help.NewFetcher()
	if opts.HelpFlag != "" {
		fetcher.Flag = opts.HelpFlag
	}
	if opts.HelpTimeout > 0 {
		fetcher.Timeout = opts.HelpTimeout
	}
	return New(opts, platform.NewLocator(opts.DataDir), fetcher, download.NewAssistant(opts.DataDir, opts.Logger))
}
