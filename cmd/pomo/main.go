// Package main is the entry point for the pomo application.
// It loads configuration, opens the state store, and starts the TUI.
package main

import (
	"flag"
	"fmt"
	"os"

	"pomo/internal/config"
	"pomo/internal/store"
	"pomo/internal/ui"
)

// Version information - set by GoReleaser during build
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

const helpText = `pomo - A pomodoro-driven task manager for your terminal

USAGE:
    pomo [OPTIONS]
    pomo <command> [ARGS]

COMMANDS:
    backup           Create a backup of all data
    backup --list    List available backups
    restore NAME     Restore from a specific backup
    restore --latest Restore from the most recent backup
    export           Generate a daily report (Markdown)
    export --weekly  Generate a weekly report
    export -f json   Output report as JSON

OPTIONS:
    -h, --help       Show this help message
    -v, --version    Show version information

DESCRIPTION:
    pomo is a terminal-based productivity app that combines tasks, projects,
    routines, and a pomodoro timer in a single, keyboard-driven interface.
    Finished focus cycles are credited to the task you picked, its project's
    daily goal, and your focus streak.

FEATURES:
    • Tasks      - One-off and routine tasks with daily rollover and streaks
    • Timer      - Pomodoro cycles that log focus time to the current task
    • Calendar   - Week view with per-day tasks and project goal progress
    • Stats      - Focus streak, daily goals, and a 7-day sparkline
    • Local Data - Plain JSON files in ~/.pomo/

KEYBINDINGS:
    Global:
        Tab          Switch between panes
        1, 2, 3, 4   Jump to specific pane
        ?            Show help overlay
        q            Quit

    Tasks Pane:
        j/k, ↓/↑     Navigate
        a            Add task (~30 for minutes, @YYYY-MM-DD for a date)
        d/Enter      Toggle done
        p/Space      Pick as current task
        v            Switch today/all view
        x            Delete task
        g/G          Go to top/bottom

    Timer Pane:
        Space        Start/pause the countdown
        m            Switch focus/break mode
        r            Reset the cycle

    Calendar Pane:
        h/l, ←/→     Previous/next day

DATA STORAGE:
    All data is stored in ~/.pomo/ as plain JSON files:
        projects.json  - Projects and their tasks
        routines.json  - Routine time goals
        stats.json     - Daily focus log
        state.json     - Rollover date and timer flag

CONFIGURATION:
    Optional config file: ~/.config/pomo/config.yaml
    See documentation for configuration options.

EXAMPLES:
    # Start the app
    pomo

    # Create a backup
    pomo backup

    # Restore from a backup
    pomo restore --latest

    # Generate today's report
    pomo export

    # Generate weekly report as JSON
    pomo export --weekly --format json
`

func main() {
	// Check for subcommands first (before flag parsing)
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "backup":
			runBackup(os.Args[2:])
			return
		case "restore":
			runRestore(os.Args[2:])
			return
		case "export":
			runExport(os.Args[2:])
			return
		}
	}

	showVersion := flag.Bool("version", false, "show version information")
	flag.BoolVar(showVersion, "v", false, "show version information (shorthand)")

	showHelp := flag.Bool("help", false, "show help message")
	flag.BoolVar(showHelp, "h", false, "show help message (shorthand)")

	flag.Usage = func() {
		fmt.Fprint(os.Stderr, helpText)
	}

	flag.Parse()

	if *showVersion {
		fmt.Printf("pomo version %s\n", version)
		fmt.Printf("  commit: %s\n", commit)
		fmt.Printf("  built:  %s\n", date)
		os.Exit(0)
	}

	if *showHelp {
		fmt.Print(helpText)
		os.Exit(0)
	}

	if flag.NArg() > 0 {
		fmt.Fprintf(os.Stderr, "Error: unknown arguments: %v\n\n", flag.Args())
		flag.Usage()
		os.Exit(1)
	}

	// Load configuration (from ~/.config/pomo/config.yaml or defaults)
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	st, err := store.Open(cfg.GetDataDir())
	if st == nil {
		fmt.Fprintf(os.Stderr, "Error opening data directory: %v\n", err)
		os.Exit(1)
	}
	if err != nil {
		// A corrupt file was quarantined; the store is still usable.
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}

	// Roll the day over before anything renders stale state
	if _, err := st.CheckRollover(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: daily reset failed: %v\n", err)
	}

	styles := ui.NewStylesFromTheme(&cfg.Theme)

	if err := ui.Run(st, styles, cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error running app: %v\n", err)
		os.Exit(1)
	}
}
