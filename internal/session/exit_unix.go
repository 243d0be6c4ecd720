//go:build !windows

package session

import (
	"os"
	"syscall"
)

// signalName returns the terminating signal of a reaped process, if any
func signalName(state *os.ProcessState) string {
	ws, ok := state.Sys().(syscall.WaitStatus)
	if !ok || !ws.Signaled() {
		return ""
	}
	return ws.Signal().String()
}
