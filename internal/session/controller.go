package session

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"sync"
	"time"

	"github.com/creack/pty"
	"pkt.systems/pslog"

	"github.com/ytget/dlshell/internal/model"
)

// Terminal geometry used when the widget cannot report its own
const (
	DefaultRows = 24
	DefaultCols = 80
)

// Relay constants
const (
	ReadBufferSize = 32 * 1024
	DrainTimeout   = 2 * time.Second
	TermEnv        = "TERM=xterm-256color"
)

var (
	// ErrNotLocated is returned by Run when there is no executable to start
	ErrNotLocated = errors.New("executable not located")

	// ErrAlreadyRunning is returned by Run while a session handle exists
	ErrAlreadyRunning = errors.New("process is already running")
)

// Terminal is the rendering side of a session
type Terminal interface {
	// Write renders child output
	Write(p []byte) (int, error)
	// Geometry reports the current size in character cells
	Geometry() (rows, cols int)
	// OnInput registers the handler receiving typed input
	OnInput(handler func(data []byte))
}

// Request describes a single run
type Request struct {
	Program    string
	Executable model.Executable
	Args       []string
	Dir        string
	Terminal   Terminal
	// OnExit is called once, from a background goroutine, after the child exits
	OnExit func(id model.SessionID, outcome model.Outcome)
}

// StartFunc starts cmd attached to a new pseudo-terminal and returns its master side
type StartFunc func(cmd *exec.Cmd, size *pty.Winsize) (*os.File, error)

// Controller owns at most one session handle
type Controller struct {
	log   pslog.Logger
	start StartFunc

	mu     sync.Mutex
	state  model.SessionState
	handle *handle
}

// handle is the live-process resource of a session
type handle struct {
	id      model.SessionID
	program string
	cmd     *exec.Cmd
	ptmx    *os.File
	term    Terminal
	output  chan struct{}
}

// NewController creates an idle controller
func NewController(logger pslog.Logger) *Controller {
	if logger == nil {
		logger = pslog.Ctx(context.Background())
	}
	return &Controller{
		log:   logger,
		start: pty.StartWithSize,
		state: model.IdleState(),
	}
}

// SetStartFunc replaces the pseudo-terminal starter
func (c *Controller) SetStartFunc(start StartFunc) {
	c.start = start
}

// State returns the current session state
func (c *Controller) State() model.SessionState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Run starts the child process. A nil terminal abandons the attempt with a
// warning and no session is created.
func (c *Controller) Run(req Request) (model.SessionID, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !req.Executable.IsFound() {
		return "", fmt.Errorf("%s: %w", req.Program, ErrNotLocated)
	}
	if c.state.Status.HoldsHandle() {
		return "", ErrAlreadyRunning
	}
	if req.Terminal == nil {
		c.log.Warn("failed to spawn process: terminal unavailable", "program", req.Program)
		return "", nil
	}

	rows, cols := req.Terminal.Geometry()
	if rows <= 0 || cols <= 0 {
		rows, cols = DefaultRows, DefaultCols
	}

	cmd := exec.Command(req.Executable.Path, req.Args...)
	cmd.Dir = req.Dir
	cmd.Env = append(os.Environ(), TermEnv)

	ptmx, err := c.start(cmd, &pty.Winsize{Rows: uint16(rows), Cols: uint16(cols)})
	if err != nil {
		return "", fmt.Errorf("failed to start %s: %w", req.Program, err)
	}

	h := &handle{
		id:      model.NewSessionID(),
		program: req.Program,
		cmd:     cmd,
		ptmx:    ptmx,
		term:    req.Terminal,
		output:  make(chan struct{}),
	}
	c.handle = h
	c.state = model.SessionState{Status: model.SessionRunning, ID: h.id}

	req.Terminal.OnInput(func(data []byte) {
		if _, err := ptmx.Write(data); err != nil {
			c.log.Debug("dropped terminal input", "session", h.id, "err", err)
		}
	})

	go c.relayOutput(h)
	go c.wait(h, req.OnExit)

	c.log.Info("session started",
		"session", h.id,
		"program", req.Program,
		"args", len(req.Args),
		"rows", rows,
		"cols", cols,
		"dir", req.Dir,
	)
	return h.id, nil
}

// Acknowledge discards an exited session handle and returns to Idle.
// It reports false while the child is still running or when idle.
func (c *Controller) Acknowledge() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state.Status != model.SessionExited {
		return false
	}
	c.state = model.IdleState()
	c.handle = nil
	return true
}

// Resize forwards new terminal geometry to the running child
func (c *Controller) Resize(rows, cols int) error {
	c.mu.Lock()
	h := c.handle
	running := c.state.Status == model.SessionRunning
	c.mu.Unlock()

	if !running || h == nil || rows <= 0 || cols <= 0 {
		return nil
	}
	return pty.Setsize(h.ptmx, &pty.Winsize{Rows: uint16(rows), Cols: uint16(cols)})
}

// Stop interrupts the running child; a child that ignores the interrupt is killed
func (c *Controller) Stop() error {
	c.mu.Lock()
	h := c.handle
	running := c.state.Status == model.SessionRunning
	c.mu.Unlock()

	if !running || h == nil || h.cmd.Process == nil {
		return nil
	}
	if err := h.cmd.Process.Signal(os.Interrupt); err != nil {
		return h.cmd.Process.Kill()
	}
	return nil
}

// relayOutput copies child output to the terminal until the pty closes
func (c *Controller) relayOutput(h *handle) {
	defer close(h.output)

	buf := make([]byte, ReadBufferSize)
	for {
		n, err := h.ptmx.Read(buf)
		if n > 0 {
			chunk := make([]byte, n)
			copy(chunk, buf[:n])
			if _, werr := h.term.Write(chunk); werr != nil {
				c.log.Warn("failed to write data to the terminal", "session", h.id, "err", werr)
			}
		}
		if err != nil {
			if !errors.Is(err, io.EOF) && !errors.Is(err, os.ErrClosed) {
				c.log.Debug("pty read finished", "session", h.id, "err", err)
			}
			return
		}
	}
}

// wait reaps the child, drains its output and publishes the outcome
func (c *Controller) wait(h *handle, onExit func(model.SessionID, model.Outcome)) {
	waitErr := h.cmd.Wait()
	outcome := outcomeOf(h.cmd.ProcessState, waitErr)

	select {
	case <-h.output:
	case <-time.After(DrainTimeout):
		c.log.Warn("terminal output still open after exit", "session", h.id)
	}
	_ = h.ptmx.Close()

	c.mu.Lock()
	if c.handle == h {
		c.state = model.SessionState{Status: model.SessionExited, ID: h.id, Outcome: outcome}
	}
	c.mu.Unlock()

	c.log.Info("session exited",
		"session", h.id,
		"program", h.program,
		"exit_code", outcome.ExitCode,
		"signal", outcome.Signal,
	)

	if onExit != nil {
		onExit(h.id, outcome)
	}
}

// outcomeOf converts a reaped process state into an exit outcome
func outcomeOf(state *os.ProcessState, waitErr error) model.Outcome {
	if state == nil {
		if waitErr != nil {
			return model.Outcome{ExitCode: -1}
		}
		return model.Outcome{}
	}
	return model.Outcome{
		ExitCode: state.ExitCode(),
		Signal:   signalName(state),
	}
}
