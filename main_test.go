package main

import (
	"bytes"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/viper"

	"github.com/ytget/dlshell/internal/platform"
)

func notFound(string) (string, error) {
	return "", &exec.Error{Name: "youtube-dl", Err: exec.ErrNotFound}
}

func TestOverridesFrom_Flags(t *testing.T) {
	v := viper.New()
	root := newRootCmd(v)
	if err := root.PersistentFlags().Parse([]string{"--program", "yt-dlp", "--help-flag=--help", "--workdir", "/tmp/w"}); err != nil {
		t.Fatal(err)
	}

	got := overridesFrom(v)
	if got.Program != "yt-dlp" {
		t.Errorf("Program = %q, want yt-dlp", got.Program)
	}
	if got.HelpFlag != "--help" {
		t.Errorf("HelpFlag = %q, want --help", got.HelpFlag)
	}
	if got.WorkDir != "/tmp/w" {
		t.Errorf("WorkDir = %q, want /tmp/w", got.WorkDir)
	}
	if got.DataDir != "" {
		t.Errorf("DataDir = %q, want empty", got.DataDir)
	}
}

func TestOverridesFrom_Environment(t *testing.T) {
	t.Setenv("DLSHELL_PROGRAM", "ffmpeg")
	t.Setenv("DLSHELL_DATA_DIR", "/tmp/data")

	v := viper.New()
	newRootCmd(v)

	got := overridesFrom(v)
	if got.Program != "ffmpeg" {
		t.Errorf("Program = %q, want ffmpeg", got.Program)
	}
	if got.DataDir != "/tmp/data" {
		t.Errorf("DataDir = %q, want /tmp/data", got.DataDir)
	}
}

func TestVersionCmd(t *testing.T) {
	var out bytes.Buffer
	cmd := newVersionCmd()
	cmd.SetOut(&out)
	cmd.SetArgs(nil)
	if err := cmd.Execute(); err != nil {
		t.Fatal(err)
	}
	if got := out.String(); got != "dlshell "+version+"\n" {
		t.Errorf("version output = %q", got)
	}
}

func TestPrintDoctor(t *testing.T) {
	tests := []struct {
		name     string
		program  string
		goos     string
		install  bool
		contains []string
	}{
		{
			name:     "downloaded executable",
			program:  "youtube-dl",
			goos:     platform.OSLinux,
			install:  true,
			contains: []string{"downloads", "found", "Using:"},
		},
		{
			name:     "missing with download",
			program:  "youtube-dl",
			goos:     platform.OSLinux,
			contains: []string{"missing", "https://yt-dl.org/downloads/latest/youtube-dl"},
		},
		{
			name:     "missing with install page",
			program:  "ffmpeg",
			goos:     platform.OSLinux,
			contains: []string{"see https://ffmpeg.zeranoe.com/builds/"},
		},
		{
			name:     "missing without offer",
			program:  "unknown-tool",
			goos:     platform.OSLinux,
			contains: []string{"install it manually"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dataDir := t.TempDir()
			if tt.install {
				path := filepath.Join(platform.ExecutableDownloadsDir(dataDir), tt.program)
				if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
					t.Fatal(err)
				}
				if err := os.WriteFile(path, []byte("#!/bin/sh\n"), 0755); err != nil {
					t.Fatal(err)
				}
			}
			locator := platform.NewLocator(dataDir)
			locator.LookPath = notFound

			var out bytes.Buffer
			if err := printDoctor(&out, tt.program, locator, tt.goos); err != nil {
				t.Fatal(err)
			}
			for _, want := range tt.contains {
				if !strings.Contains(out.String(), want) {
					t.Errorf("output missing %q:\n%s", want, out.String())
				}
			}
		})
	}
}
