//go:build windows

package platform

func isNotDir(err error) bool {
	return false
}
