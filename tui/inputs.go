package tui

import "github.com/gdamore/tcell/v3"

func (a *App) handleInput(event *tcell.EventKey) *tcell.EventKey {
	if a.showConfirm || a.showClear || a.showTheme {
		// vi key bindings for modal button selection
		switch event.Str() {
		case "l":
			return tcell.NewEventKey(tcell.KeyRight, tcell.KeyNames[tcell.KeyRight], tcell.ModNone)
		case "h":
			return tcell.NewEventKey(tcell.KeyLeft, tcell.KeyNames[tcell.KeyLeft], tcell.ModNone)
		}

		return event
	}

	switch event.Key() {
	case tcell.KeyEnter:
		a.enterSelected()
		return nil
	case tcell.KeyLeft:
		a.goUp()
		return nil
	}

	switch event.Str() {
	case "l":
		a.enterSelected()
		return nil
	case "h", "u", "U":
		a.goUp()
		return nil
	case "z", "Z":
		a.toggleSizes()
		return nil
	case "r", "R":
		a.startScan()
		return nil
	case "d", "D":
		a.confirmDelete()
		return nil
	case "c", "C":
		a.showClearCache()
		return nil
	case "t", "T":
		a.showThemeSelector()
		return nil
	case "q", "Q":
		a.Stop()
		a.app.Stop()
		return nil
	}

	return event
}
