// Package tui is the interactive browser: a table of directory entries
// with cached recursive sizes, navigation into subdirectories, a
// size-display toggle and fail-open deletion.
package tui

import (
	"log"
	"os"

	"codeberg.org/tslocum/cview"

	"diskclean/cache"
	"diskclean/scanner"
)

// Options configures the browser.
type Options struct {
	// Cache may be nil; sizes are then recomputed on every visit.
	Cache *cache.Cache

	// StartPath is the directory whose children are shown first. Empty
	// starts on the target-directory list view.
	StartPath string

	// Targets is the configured multi-root list for the top-level view.
	Targets []string

	WantSizes bool
	Theme     string
}

type App struct {
	app   *cview.Application
	store *cache.Cache

	scanner *scanner.Scanner

	header *cview.TextView
	footer *cview.TextView
	table  *cview.Table
	flex   *cview.Flex

	confirmModal *cview.Modal
	clearModal   *cview.Modal
	themeModal   *cview.Modal

	// Empty curPath means the target-list view. navStack remembers the
	// directories entered so far, so "up" retraces the user's steps.
	rootTargets []string
	curPath     string
	navStack    []string
	wantSizes   bool
	entries     []scanner.Entry

	showConfirm bool
	showClear   bool
	showTheme   bool

	pendingDelete string

	uiUpdates chan func()

	userHomeDir  string
	currentTheme Theme
}

func NewApp(opts Options) *App {
	app := cview.NewApplication()

	theme := defaultTheme()
	if th, ok := themes[opts.Theme]; ok {
		theme = th
	}

	header := cview.NewTextView()
	header.SetDynamicColors(true)

	footer := cview.NewTextView()
	footer.SetDynamicColors(true)

	confirmModal := cview.NewModal()
	confirmModal.AddButtons([]string{"Delete", "Cancel"})

	clearModal := cview.NewModal()
	clearModal.SetText("Clear the directory-size cache?")
	clearModal.AddButtons([]string{"Clear", "Cancel"})

	themeModal := cview.NewModal()
	themeNames := getThemeNames()
	themeModal.AddButtons(themeNames)

	table := cview.NewTable()

	a := &App{
		app:          app,
		store:        opts.Cache,
		header:       header,
		footer:       footer,
		table:        table,
		confirmModal: confirmModal,
		clearModal:   clearModal,
		themeModal:   themeModal,
		rootTargets:  opts.Targets,
		curPath:      opts.StartPath,
		wantSizes:    opts.WantSizes,
		uiUpdates:    make(chan func(), 128),
		currentTheme: theme,
	}

	flex := cview.NewFlex()
	flex.SetDirection(cview.FlexRow)
	flex.AddItem(header, 1, 0, false)
	flex.AddItem(table, 0, 1, true)
	flex.AddItem(footer, 1, 0, false)
	a.flex = flex

	app.SetInputCapture(a.handleInput)

	confirmModal.SetDoneFunc(func(_ int, buttonLabel string) {
		a.showConfirm = false
		a.setRoot(flex, true)

		if buttonLabel == "Delete" && a.pendingDelete != "" {
			a.deleteItem(a.pendingDelete)
		}
		a.pendingDelete = ""
	})

	clearModal.SetDoneFunc(func(_ int, buttonLabel string) {
		a.showClear = false
		a.setRoot(flex, true)

		if buttonLabel == "Clear" {
			a.clearCache()
		}
	})

	themeModal.SetDoneFunc(func(buttonIndex int, buttonLabel string) {
		a.showTheme = false
		a.setRoot(flex, true)

		if buttonIndex >= 0 && buttonIndex < len(themeNames) {
			a.switchTheme(buttonLabel)
			a.applyTheme()
		}
	})

	home, err := os.UserHomeDir()
	if err != nil {
		log.Panicln("Error getting home:", err)
	}
	a.userHomeDir = home

	header.SetTextAlign(cview.AlignLeft)
	footer.SetTextAlign(cview.AlignLeft)
	footer.SetText(footerMenu())

	a.setRoot(flex, true)
	a.applyTheme()

	return a
}

func defaultTheme() Theme {
	return themes["nord"]
}

func (a *App) switchTheme(themeName string) {
	if th, ok := themes[themeName]; ok {
		a.currentTheme = th
	}
}

func (a *App) applyTheme() {
	theme := a.currentTheme

	a.header.SetBackgroundColor(theme.headerBg)
	a.header.SetTextColor(theme.headerFg)

	a.footer.SetBackgroundColor(theme.footerBg)
	a.footer.SetTextColor(theme.footerFg)

	for _, m := range []*cview.Modal{a.confirmModal, a.clearModal, a.themeModal} {
		m.SetBackgroundColor(theme.modalBg)
		m.SetTextColor(theme.modalFg)
		m.SetButtonBackgroundColor(theme.buttonBg)
		m.SetButtonTextColor(theme.buttonFg)
	}

	a.table.SetBackgroundColor(theme.bg)

	a.trySendUIUpdate(func() {
		a.updateHeader()
		a.buildTable()
	})
}

// Stop cancels any in-flight scan.
func (a *App) Stop() {
	if a.scanner != nil {
		a.scanner.Stop()
	}
}

func (a *App) Run() error {
	go func() {
		for updateFn := range a.uiUpdates {
			a.app.QueueUpdateDraw(updateFn)
		}
	}()

	a.startScan()

	return a.app.Run()
}
