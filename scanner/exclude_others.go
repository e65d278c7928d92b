//go:build !windows

package scanner

func isReparsePoint(string) bool {
	return false
}
