// Package cli is the outer shell of the tool: configuration, help and
// version output, the self-update check, and the top-level run loop
// that hands the argument vector to the planner.
package cli

import (
	"fmt"
	"os"

	"github.com/gomagick/gomagick/pkg/fileargs"
	"github.com/gomagick/gomagick/pkg/magick"
)

// Run executes the whole command-line tool and returns the process
// exit code.
func Run() int {
	cfg := LoadConfig()

	// Help and version short-circuit before any parsing, matching the
	// legacy tool: no arguments at all also prints usage.
	if len(os.Args) < 2 {
		printHelp(binName())
		return 0
	}
	switch os.Args[1] {
	case "-help", "--help":
		printHelp(binName())
		return 0
	case "-version", "--version":
		printVersion()
		return 0
	}

	plan, err := magick.ParseArgs(os.Args[1:], fileargs.OSStat)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	// the environment only fills in a quality the command line left unset
	if plan.Modifiers.Quality == 0 && cfg.Quality > 0 {
		plan.Modifiers.Quality = cfg.Quality
	}

	if err := plan.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	if cfg.CheckUpdate {
		// stderr: stdout may carry encoded image bytes
		if err := CheckForUpdates(os.Stderr); err != nil {
			fmt.Fprintf(os.Stderr, "update check error: %v\n", err)
		}
	}
	return 0
}

func binName() string {
	if len(os.Args) > 0 && os.Args[0] != "" {
		return os.Args[0]
	}
	return "gomagick"
}
