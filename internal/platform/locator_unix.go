//go:build !windows

package platform

import (
	"errors"
	"syscall"
)

// isNotDir treats "a path component is a file" as plain absence
func isNotDir(err error) bool {
	return errors.Is(err, syscall.ENOTDIR)
}
