//go:build windows

package session

import "os"

func signalName(state *os.ProcessState) string {
	return ""
}
