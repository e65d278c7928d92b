// Package targets provides platform detection and preset lists for the
// configured target-directory view.
package targets

import (
	"os"
	"path/filepath"
	"runtime"
)

// Platform partitions stored target lists, since the useful cleanup
// locations differ per OS.
type Platform string

const (
	Mac     Platform = "mac"
	Windows Platform = "windows"
	Other   Platform = "other"
)

// Current returns the platform key for this host.
func Current() Platform {
	switch runtime.GOOS {
	case "darwin":
		return Mac
	case "windows":
		return Windows
	default:
		return Other
	}
}

// PresetKind selects one of the built-in target lists.
type PresetKind string

const (
	// PresetRoot lists the children of the filesystem root.
	PresetRoot PresetKind = "root"
	// PresetUser lists the children of the home directory.
	PresetUser PresetKind = "user"
	// PresetCache lists well-known cache and scratch locations.
	PresetCache PresetKind = "cache"
)

// Preset returns the preset list of the given kind for the current
// platform. Unknown kinds and unsupported platforms yield nil.
func Preset(kind PresetKind) []string {
	switch kind {
	case PresetRoot:
		return listChildren(rootDir())
	case PresetUser:
		home, err := os.UserHomeDir()
		if err != nil {
			return nil
		}
		return listChildren(home)
	case PresetCache:
		return cachePreset()
	}
	return nil
}

func rootDir() string {
	if Current() == Windows {
		return `C:\`
	}
	return "/"
}

func listChildren(dir string) []string {
	children, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}
	paths := make([]string, 0, len(children))
	for _, c := range children {
		paths = append(paths, filepath.Join(dir, c.Name()))
	}
	return paths
}

func cachePreset() []string {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil
	}

	switch Current() {
	case Mac:
		return []string{
			filepath.Join(home, "Desktop"),
			filepath.Join(home, "Downloads"),
			filepath.Join(home, "Library", "Application Support"),
			filepath.Join(home, "Library", "Caches"),
			filepath.Join(home, "Library", "Containers"),
			filepath.Join(home, "Library", "Developer"),
			filepath.Join(home, "Library", "Logs"),
		}
	case Windows:
		return []string{
			filepath.Join(home, `AppData\Local\npm-cache`),
			filepath.Join(home, `AppData\Local\Packages`),
			filepath.Join(home, `AppData\Local\pip\Cache`),
			filepath.Join(home, `AppData\Local\Temp`),
			filepath.Join(home, `AppData\Roaming\Code\Backups`),
			filepath.Join(home, `AppData\Roaming\Code\Cache`),
			`C:\cygwin64\var\cache\setup`,
			`C:\ProgramData`,
			`C:\Windows\SoftwareDistribution\Download`,
			`C:\Windows\Temp`,
		}
	default:
		return []string{
			filepath.Join(home, ".cache"),
			filepath.Join(home, "Downloads"),
			filepath.Join(home, ".local", "share", "Trash"),
			"/var/tmp",
			"/tmp",
		}
	}
}
