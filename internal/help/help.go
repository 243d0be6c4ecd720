// Package help runs the located program with its help flag and searches
// the captured text.
package help

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"time"

	"github.com/ytget/dlshell/internal/model"
)

// Defaults
const (
	DefaultFlag    = "-h"
	DefaultTimeout = 30 * time.Second

	// WaitDelay bounds how long output pipes may stay open after the
	// process is gone (e.g. held by a grandchild)
	WaitDelay = 2 * time.Second
)

// ErrUnavailable marks a help run that was killed, signaled or never started
var ErrUnavailable = errors.New("help is not available")

// Fetcher invokes an executable non-interactively with a help flag
type Fetcher struct {
	Flag    string
	Timeout time.Duration
}

// NewFetcher creates a fetcher with the default flag and timeout
func NewFetcher() *Fetcher {
	return &Fetcher{Flag: DefaultFlag, Timeout: DefaultTimeout}
}

// Fetch runs exe with the help flag and returns stdout if non-empty, else
// stderr if non-empty, else an unavailable result. A plain non-zero exit is
// not a failure since many tools exit 1 after printing usage.
func (f *Fetcher) Fetch(ctx context.Context, exe string) (model.HelpText, error) {
	flag := f.Flag
	if flag == "" {
		flag = DefaultFlag
	}
	if f.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, f.Timeout)
		defer cancel()
	}

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, exe, flag)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	cmd.WaitDelay = WaitDelay

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) || ctx.Err() != nil || exitErr.ExitCode() < 0 {
			return model.HelpText{}, fmt.Errorf("%w: %s %s: %v", ErrUnavailable, exe, flag, err)
		}
	}

	switch {
	case stdout.Len() > 0:
		return model.AvailableHelp(stdout.String()), nil
	case stderr.Len() > 0:
		return model.AvailableHelp(stderr.String()), nil
	default:
		return model.UnavailableHelp(), nil
	}
}
