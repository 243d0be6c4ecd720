package download

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"runtime"

	"pkt.systems/pslog"

	"github.com/ytget/dlshell/internal/platform"
)

// PartialSuffix marks a file that is still being written
const PartialSuffix = ".part"

// ManualInstallHint is appended to download failures
const ManualInstallHint = "please install the program manually or save the downloaded file to a directory on your PATH"

var (
	// ErrInsecureURL is returned for any URL that is not https
	ErrInsecureURL = errors.New("download URL must use https")

	// ErrUnexpectedStatus is returned for a non-2xx response
	ErrUnexpectedStatus = errors.New("unexpected response status")
)

// Assistant downloads program binaries into the executable downloads directory
type Assistant struct {
	client  *http.Client
	dataDir string
	goos    string
	log     pslog.Logger
}

// NewAssistant creates an assistant placing binaries under dataDir
func NewAssistant(dataDir string, logger pslog.Logger) *Assistant {
	if logger == nil {
		logger = pslog.Ctx(context.Background())
	}
	return &Assistant{
		client:  http.DefaultClient,
		dataDir: dataDir,
		goos:    runtime.GOOS,
		log:     logger,
	}
}

// SetHTTPClient replaces the HTTP client
func (a *Assistant) SetHTTPClient(client *http.Client) {
	if client != nil {
		a.client = client
	}
}

// SetOS overrides the target OS used for the file name and permissions
func (a *Assistant) SetOS(goos string) {
	a.goos = goos
}

// TargetPath returns where program ends up after a download
func (a *Assistant) TargetPath(program string) string {
	return filepath.Join(platform.ExecutableDownloadsDir(a.dataDir), platform.ExecutableFileName(program, a.goos))
}

// Download streams rawURL into the downloads directory as program. The
// body goes to a partial file first and is renamed into place only after
// the write completes, so a failed download never leaves a candidate the
// locator would accept.
func (a *Assistant) Download(ctx context.Context, rawURL, program string) (string, error) {
	path, err := a.download(ctx, rawURL, program)
	if err != nil {
		a.log.Error("download failed", "program", program, "url", rawURL, "err", err)
		return "", &Error{URL: rawURL, Err: err}
	}
	return path, nil
}

func (a *Assistant) download(ctx context.Context, rawURL, program string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", fmt.Errorf("invalid download URL: %w", err)
	}
	if u.Scheme != "https" {
		return "", ErrInsecureURL
	}

	dir := platform.ExecutableDownloadsDir(a.dataDir)
	if err := platform.CreateDirectoryIfNotExists(dir); err != nil {
		return "", fmt.Errorf("failed to create downloads directory: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	a.log.Info("download started", "program", program, "url", rawURL)
	resp, err := a.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("%w: %s", ErrUnexpectedStatus, resp.Status)
	}

	target := a.TargetPath(program)
	partial := target + PartialSuffix

	file, err := os.Create(partial)
	if err != nil {
		return "", fmt.Errorf("failed to create file: %w", err)
	}
	written, copyErr := io.Copy(file, resp.Body)
	closeErr := file.Close()
	if copyErr != nil || closeErr != nil {
		_ = os.Remove(partial)
		if copyErr != nil {
			return "", fmt.Errorf("failed to write file: %w", copyErr)
		}
		return "", fmt.Errorf("failed to close file: %w", closeErr)
	}

	if a.goos != platform.OSWindows {
		if err := os.Chmod(partial, platform.ExecutablePermissions); err != nil {
			_ = os.Remove(partial)
			return "", fmt.Errorf("failed to mark file executable: %w", err)
		}
	}
	if err := os.Rename(partial, target); err != nil {
		_ = os.Remove(partial)
		return "", fmt.Errorf("failed to move file into place: %w", err)
	}

	a.log.Info("download finished", "program", program, "path", target, "bytes", written)
	return target, nil
}

// Error is a failed download; its message carries the URL and the manual install hint
type Error struct {
	URL string
	Err error
}

func (e *Error) Error() string {
	return fmt.Sprintf("download failed: %v; %s\ndownload URL: %s", e.Err, ManualInstallHint, e.URL)
}

func (e *Error) Unwrap() error {
	return e.Err
}
