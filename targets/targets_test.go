package targets

import (
	"runtime"
	"testing"
)

func TestCurrentMatchesGOOS(t *testing.T) {
	got := Current()
	switch runtime.GOOS {
	case "darwin":
		if got != Mac {
			t.Errorf("Current() = %s, want mac", got)
		}
	case "windows":
		if got != Windows {
			t.Errorf("Current() = %s, want windows", got)
		}
	default:
		if got != Other {
			t.Errorf("Current() = %s, want other", got)
		}
	}
}

func TestPresetCacheNonEmpty(t *testing.T) {
	if got := Preset(PresetCache); len(got) == 0 {
		t.Error("cache preset is empty")
	}
}

func TestPresetUnknownKind(t *testing.T) {
	if got := Preset(PresetKind("bogus")); got != nil {
		t.Errorf("Preset(bogus) = %v, want nil", got)
	}
}

func TestPresetUserListsHome(t *testing.T) {
	got := Preset(PresetUser)
	// Home may legitimately be empty, but the call must not error into
	// nil on a real home directory with contents.
	if got == nil {
		t.Skip("no readable home directory")
	}
}
