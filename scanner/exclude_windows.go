//go:build windows

package scanner

import "golang.org/x/sys/windows"

// isReparsePoint checks FILE_ATTRIBUTE_REPARSE_POINT directly: hard-link
// style reparse entries don't always surface as fs.ModeSymlink, and their
// bytes must not be double-counted.
func isReparsePoint(path string) bool {
	p, err := windows.UTF16PtrFromString(path)
	if err != nil {
		return false
	}
	attrs, err := windows.GetFileAttributes(p)
	if err != nil {
		return false
	}
	return attrs&windows.FILE_ATTRIBUTE_REPARSE_POINT != 0
}
