package model

import (
	"strings"
	"testing"
)

func TestOutcome_Summary(t *testing.T) {
	tests := []struct {
		outcome  Outcome
		expected string
	}{
		{Outcome{}, "youtube-dl completed"},
		{Outcome{ExitCode: 2}, "youtube-dl failed with code 2"},
		{Outcome{ExitCode: 1, Signal: "interrupt"}, "youtube-dl failed with signal interrupt"},
		{Outcome{Signal: "killed"}, "youtube-dl failed with signal killed"},
	}

	for _, test := range tests {
		result := test.outcome.Summary("youtube-dl")
		if result != test.expected {
			t.Errorf("Summary(%+v) = %s, expected %s", test.outcome, result, test.expected)
		}
	}
}

func TestOutcome_Succeeded(t *testing.T) {
	if !(Outcome{}).Succeeded() {
		t.Error("zero outcome should succeed")
	}
	if (Outcome{ExitCode: 1}).Succeeded() {
		t.Error("non-zero exit should not succeed")
	}
	if (Outcome{Signal: "hangup"}).Succeeded() {
		t.Error("signaled exit should not succeed")
	}
}

func TestSessionStatus_HoldsHandle(t *testing.T) {
	tests := []struct {
		status   SessionStatus
		expected bool
	}{
		{SessionIdle, false},
		{SessionRunning, true},
		{SessionExited, true},
	}

	for _, test := range tests {
		if result := test.status.HoldsHandle(); result != test.expected {
			t.Errorf("SessionStatus(%s).HoldsHandle() = %v, expected %v", test.status, result, test.expected)
		}
	}
}

func TestNewSessionID(t *testing.T) {
	id1 := NewSessionID()
	id2 := NewSessionID()

	if id1 == id2 {
		t.Error("Expected different session IDs")
	}
	if !strings.HasPrefix(string(id1), "session-") {
		t.Errorf("Expected ID to start with 'session-', got: %s", id1)
	}
	if len(id1) != len("session-")+36 {
		t.Errorf("Expected ID length %d, got %d", len("session-")+36, len(id1))
	}
}

func TestExecutable(t *testing.T) {
	if (Executable{}).IsFound() {
		t.Error("zero executable should not be found")
	}
	if MissingExecutable().IsFound() {
		t.Error("missing executable should not be found")
	}
	exe := FoundExecutable("/usr/bin/youtube-dl")
	if !exe.IsFound() || exe.Path != "/usr/bin/youtube-dl" {
		t.Errorf("unexpected executable %+v", exe)
	}
	if exe.State.String() != "Found" {
		t.Errorf("expected Found, got %s", exe.State)
	}
}

func TestPlaylist_URLs(t *testing.T) {
	p := &Playlist{Entries: []PlaylistEntry{
		{ID: "a", URL: "https://www.youtube.com/watch?v=a"},
		{ID: "b"},
		{ID: "c", URL: "https://www.youtube.com/watch?v=c"},
	}}
	urls := p.URLs()
	if len(urls) != 2 || urls[0] != "https://www.youtube.com/watch?v=a" || urls[1] != "https://www.youtube.com/watch?v=c" {
		t.Errorf("unexpected URLs %v", urls)
	}
}
