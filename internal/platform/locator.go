package platform

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/ytget/dlshell/internal/model"
)

// Probe sources
const (
	SourceDownloads  = "downloads"
	SourceSearchPath = "PATH"
)

// Probe records the outcome of checking a single candidate location
type Probe struct {
	Source string
	Path   string
	Found  bool
	Err    error
}

// Locator finds the target program among the downloaded copies and the
// process search path. It only reads the filesystem.
type Locator struct {
	DataDir  string
	LookPath func(file string) (string, error)
}

// NewLocator creates a locator rooted at the application data directory
func NewLocator(dataDir string) *Locator {
	return &Locator{
		DataDir:  dataDir,
		LookPath: exec.LookPath,
	}
}

// Find probes the candidates in order and returns the first usable path.
// Absence is reported as model.MissingExecutable, not as an error; errors are
// reserved for probes that could not be answered (e.g. permission denied).
func (l *Locator) Find(program string) (model.Executable, error) {
	for _, probe := range l.probe(program, true) {
		if probe.Err != nil {
			return model.Executable{}, probe.Err
		}
		if probe.Found {
			return model.FoundExecutable(probe.Path), nil
		}
	}
	return model.MissingExecutable(), nil
}

// Probe reports every candidate without stopping at the first hit
func (l *Locator) Probe(program string) []Probe {
	return l.probe(program, false)
}

func (l *Locator) probe(program string, stopEarly bool) []Probe {
	dir := ExecutableDownloadsDir(l.DataDir)
	candidates := []string{
		filepath.Join(dir, program),
		filepath.Join(dir, program+WindowsExecutableSuffix),
	}

	var probes []Probe
	for _, candidate := range candidates {
		p := Probe{Source: SourceDownloads, Path: candidate}
		p.Found, p.Err = fileExists(candidate)
		probes = append(probes, p)
		if stopEarly && (p.Found || p.Err != nil) {
			return probes
		}
	}

	probes = append(probes, l.lookPath(program))
	return probes
}

func (l *Locator) lookPath(program string) Probe {
	p := Probe{Source: SourceSearchPath, Path: program}

	lookPath := l.LookPath
	if lookPath == nil {
		lookPath = exec.LookPath
	}

	path, err := lookPath(program)
	switch {
	case err == nil:
	case errors.Is(err, exec.ErrNotFound), errors.Is(err, exec.ErrDot), errors.Is(err, fs.ErrNotExist):
		return p
	default:
		p.Err = fmt.Errorf("failed to search PATH for %s: %w", program, err)
		return p
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		p.Err = fmt.Errorf("failed to get absolute path: %w", err)
		return p
	}
	p.Path = abs
	p.Found = true
	return p
}

// fileExists reports whether path names an existing non-directory entry
func fileExists(path string) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) || isNotDir(err) {
			return false, nil
		}
		return false, fmt.Errorf("failed to check %s: %w", path, err)
	}
	return !info.IsDir(), nil
}
