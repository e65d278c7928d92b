// Package cli parses flags and dispatches to the interactive browser or
// the headless listing mode.
package cli

import (
	"fmt"
	"path/filepath"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/pflag"
)

// CLI represents the command-line interface.
type CLI struct {
	version string
}

// New creates a new CLI instance with the given version.
func New(version string) CLI {
	return CLI{version: version}
}

type options struct {
	// Path is the directory to browse. Empty means the configured
	// target-directory list.
	Path string

	DBPath       string
	NoSizes      bool
	List         bool
	ClearCache   bool
	Theme        string
	SaveTargets  []string
	ResetTargets string
	Version      bool
}

func help() {
	fmt.Println(heredoc.Doc(`
		diskclean browses directory trees with cached recursive sizes and
		deletes what you pick.

		Usage:

			diskclean [flags] [path]

		Positional Arguments:
		  path                   Directory to browse. Without it, the configured
		                         target-directory list is shown, one row per target.

		Recursive sizes are cached per directory keyed by its modification time,
		so unchanged trees are never walked twice.

		Flags:
	`))
	pflag.PrintDefaults()
}

// Execute runs the CLI with the provided arguments.
func (c CLI) Execute() error {
	var opts options

	pflag.StringVar(&opts.DBPath, "db", "", "Path to the admin database (default: ~/.cache/diskclean/admin.db)")
	pflag.BoolVarP(&opts.NoSizes, "no-sizes", "n", false, "List entries without computing directory sizes")
	pflag.BoolVarP(&opts.List, "list", "l", false, "Print the listing to stdout instead of starting the browser")
	pflag.BoolVar(&opts.ClearCache, "clear-cache", false, "Empty the directory-size cache and exit")
	pflag.StringVar(&opts.Theme, "theme", "nord", "Browser color theme")
	pflag.StringSliceVar(&opts.SaveTargets, "targets", nil, "Save this list as the configured target directories and exit")
	pflag.StringVar(&opts.ResetTargets, "reset-targets", "", "Reset the target list from a preset: root, user or cache")
	pflag.BoolVarP(&opts.Version, "version", "v", false, "Show version and exit")

	pflag.CommandLine.SortFlags = false
	pflag.Usage = help
	pflag.Parse()

	if opts.Version {
		fmt.Println(c.version)

		return nil
	}

	if pflag.NArg() > 0 {
		abs, err := filepath.Abs(pflag.Args()[0])
		if err != nil {
			return fmt.Errorf("resolving path %q: %w", pflag.Args()[0], err)
		}
		opts.Path = abs
	}

	return logic(opts)
}
