package download

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ytget/dlshell/internal/platform"
)

const payload = "#!/bin/sh\necho downloaded\n"

func newTestAssistant(t *testing.T, server *httptest.Server, goos string) *Assistant {
	t.Helper()
	a := NewAssistant(t.TempDir(), nil)
	a.SetHTTPClient(server.Client())
	a.SetOS(goos)
	return a
}

func TestDownload_Success(t *testing.T) {
	server := httptest.NewTLSServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Errorf("expected GET, got %s", r.Method)
		}
		_, _ = w.Write([]byte(payload))
	}))
	defer server.Close()

	a := newTestAssistant(t, server, platform.OSLinux)
	path, err := a.Download(context.Background(), server.URL+"/youtube-dl", "youtube-dl")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	want := filepath.Join(a.dataDir, platform.DownloadsSubdirectory, "youtube-dl")
	if path != want {
		t.Errorf("expected %s, got %s", want, path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != payload {
		t.Errorf("unexpected content %q", data)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if info.Mode().Perm()&0100 == 0 {
		t.Errorf("expected executable permissions, got %v", info.Mode().Perm())
	}
	if _, err := os.Stat(path + PartialSuffix); !os.IsNotExist(err) {
		t.Error("partial file should not remain")
	}

	// the locator finds the downloaded file first
	exe, err := platform.NewLocator(a.dataDir).Find("youtube-dl")
	if err != nil || exe.Path != path {
		t.Errorf("locator did not find download: %+v, %v", exe, err)
	}
}

func TestDownload_WindowsName(t *testing.T) {
	server := httptest.NewTLSServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("MZ"))
	}))
	defer server.Close()

	a := newTestAssistant(t, server, platform.OSWindows)
	path, err := a.Download(context.Background(), server.URL, "youtube-dl")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if filepath.Base(path) != "youtube-dl.exe" {
		t.Errorf("expected .exe suffix, got %s", path)
	}
}

func TestDownload_UnexpectedStatus(t *testing.T) {
	server := httptest.NewTLSServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer server.Close()

	a := newTestAssistant(t, server, platform.OSLinux)
	_, err := a.Download(context.Background(), server.URL, "youtube-dl")
	if !errors.Is(err, ErrUnexpectedStatus) {
		t.Fatalf("expected ErrUnexpectedStatus, got %v", err)
	}
	if _, statErr := os.Stat(a.TargetPath("youtube-dl")); !os.IsNotExist(statErr) {
		t.Error("no file should be created for a failed response")
	}
}

func TestDownload_InsecureURL(t *testing.T) {
	a := NewAssistant(t.TempDir(), nil)
	_, err := a.Download(context.Background(), "http://example.com/youtube-dl", "youtube-dl")
	if !errors.Is(err, ErrInsecureURL) {
		t.Fatalf("expected ErrInsecureURL, got %v", err)
	}
}

func TestDownload_TransportError(t *testing.T) {
	server := httptest.NewTLSServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	a := newTestAssistant(t, server, platform.OSLinux)
	url := server.URL
	server.Close()

	_, err := a.Download(context.Background(), url, "youtube-dl")
	if err == nil {
		t.Fatal("expected transport error")
	}
	var dlErr *Error
	if !errors.As(err, &dlErr) {
		t.Fatalf("expected *Error, got %T", err)
	}
	if !strings.Contains(err.Error(), url) || !strings.Contains(err.Error(), ManualInstallHint) {
		t.Errorf("message should carry URL and hint: %q", err.Error())
	}
}

func TestDownload_Cancelled(t *testing.T) {
	server := httptest.NewTLSServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(payload))
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	a := newTestAssistant(t, server, platform.OSLinux)
	if _, err := a.Download(ctx, server.URL, "youtube-dl"); !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}
