package cli

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/mattn/go-isatty"

	"diskclean/cache"
	"diskclean/scanner"
	"diskclean/targets"
	"diskclean/tui"
)

func logic(opts options) error {
	store := openStore(opts.DBPath)
	defer store.Close()

	switch {
	case opts.ClearCache:
		if store == nil {
			return errors.New("cache database unavailable")
		}
		if err := store.Clear(); err != nil {
			return fmt.Errorf("clearing cache: %w", err)
		}
		fmt.Println("Cache cleared.")

		return nil

	case opts.ResetTargets != "":
		preset := targets.Preset(targets.PresetKind(opts.ResetTargets))
		if preset == nil {
			return fmt.Errorf("unknown preset %q: must be root, user or cache", opts.ResetTargets)
		}

		return saveTargets(store, preset)

	case len(opts.SaveTargets) > 0:
		return saveTargets(store, opts.SaveTargets)
	}

	var target scanner.Target
	if opts.Path != "" {
		target = scanner.Dir(opts.Path)
	} else {
		target = scanner.Roots(loadTargets(store))
	}

	if opts.List {
		return printListing(target, !opts.NoSizes, store)
	}

	app := tui.NewApp(tui.Options{
		Cache:     store,
		StartPath: opts.Path,
		Targets:   loadTargets(store),
		WantSizes: !opts.NoSizes,
		Theme:     opts.Theme,
	})

	return app.Run()
}

// openStore returns nil when the database cannot be opened: scanning then
// degrades to always-recompute instead of failing.
func openStore(dbPath string) *cache.Cache {
	if dbPath == "" {
		p, err := cache.DefaultPath()
		if err != nil {
			log.Printf("no cache location: %v", err)
			return nil
		}
		dbPath = p
	}

	store, err := cache.Open(dbPath)
	if err != nil {
		log.Printf("cache unavailable, recomputing everything: %v", err)
		return nil
	}
	return store
}

func saveTargets(store *cache.Cache, dirs []string) error {
	if store == nil {
		return errors.New("cache database unavailable")
	}

	normalized := make([]string, 0, len(dirs))
	for _, dir := range dirs {
		abs, err := filepath.Abs(dir)
		if err != nil {
			return fmt.Errorf("resolve target %q: %w", dir, err)
		}
		normalized = append(normalized, abs)
	}

	if err := store.SaveTargets(string(targets.Current()), normalized); err != nil {
		return fmt.Errorf("saving targets: %w", err)
	}
	for _, d := range normalized {
		fmt.Println(d)
	}

	return nil
}

// loadTargets falls back to the working directory's children view when no
// list was configured.
func loadTargets(store *cache.Cache) []string {
	if store != nil {
		dirs, err := store.LoadTargets(string(targets.Current()))
		if err != nil {
			log.Printf("loading targets: %v", err)
		}
		if len(dirs) > 0 {
			return dirs
		}
	}

	cwd, err := os.Getwd()
	if err != nil {
		return nil
	}
	return []string{cwd}
}

// printListing runs one scan to completion, echoing progress to stderr
// when it is a terminal, then prints the result table.
func printListing(target scanner.Target, wantSizes bool, store *cache.Cache) error {
	s := scanner.New(target, wantSizes, store)

	showProgress := isatty.IsTerminal(os.Stderr.Fd())
	if showProgress {
		// Hide cursor for in-place updates; restore on exit.
		fmt.Fprint(os.Stderr, "\033[?25l")
		defer fmt.Fprint(os.Stderr, "\033[?25h")
	}

	s.Start()

	var result scanner.Result
	for {
		select {
		case p := <-s.Progress():
			if showProgress && p.Path != "" {
				fmt.Fprintf(os.Stderr, "\r\033[2KLoading...%s\r", p.Path)
			}
		case r, ok := <-s.Result():
			if ok {
				result = r
			}
		case <-s.Done():
			// The terminal result may still be buffered.
			if r, ok := <-s.Result(); ok {
				result = r
			}
			if showProgress {
				fmt.Fprint(os.Stderr, "\r\033[2K\r")
			}

			return printTable(result.Entries, os.Stdout)
		}
	}
}
