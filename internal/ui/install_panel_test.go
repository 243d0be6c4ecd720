package ui

import (
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/dlshell/internal/download"
	"github.com/ytget/dlshell/internal/platform"
)

// collect flattens a container tree
func collect(obj fyne.CanvasObject) []fyne.CanvasObject {
	out := []fyne.CanvasObject{obj}
	if c, ok := obj.(*fyne.Container); ok {
		for _, child := range c.Objects {
			out = append(out, collect(child)...)
		}
	}
	return out
}

func TestInstallPanel_Download(t *testing.T) {
	newTestApp()
	downloads, rechecks := 0, 0
	panel := newInstallPanel(download.OfferFor("youtube-dl", platform.OSLinux), NewLocalization(),
		func() { downloads++ }, func() { rechecks++ })

	var button *widget.Button
	for _, obj := range collect(panel) {
		if b, ok := obj.(*widget.Button); ok {
			button = b
		}
	}
	if button == nil {
		t.Fatal("expected a download button")
	}
	test.Tap(button)
	if downloads != 1 || rechecks != 0 {
		t.Errorf("expected one download, got %d downloads %d rechecks", downloads, rechecks)
	}
}

func TestInstallPanel_InstallPage(t *testing.T) {
	newTestApp()
	rechecks := 0
	panel := newInstallPanel(download.OfferFor("ffmpeg", platform.OSLinux), NewLocalization(),
		func() {}, func() { rechecks++ })

	var link *widget.Hyperlink
	var recheck *widget.Button
	for _, obj := range collect(panel) {
		switch o := obj.(type) {
		case *widget.Hyperlink:
			link = o
		case *widget.Button:
			recheck = o
		}
	}
	if link == nil || link.URL.String() != "https://ffmpeg.zeranoe.com/builds/" {
		t.Fatalf("expected install page link, got %+v", link)
	}
	if recheck == nil {
		t.Fatal("expected a recheck button")
	}
	test.Tap(recheck)
	if rechecks != 1 {
		t.Errorf("expected one recheck, got %d", rechecks)
	}
}

func TestInstallPanel_Manual(t *testing.T) {
	newTestApp()
	panel := newInstallPanel(download.OfferFor("unknown-tool", platform.OSLinux), NewLocalization(), nil, nil)

	found := false
	for _, obj := range collect(panel) {
		if l, ok := obj.(*widget.Label); ok && l.Text == "Please install unknown-tool manually." {
			found = true
		}
		if _, ok := obj.(*widget.Button); ok {
			t.Error("manual offer should not render buttons")
		}
	}
	if !found {
		t.Error("expected manual install instruction")
	}
}
