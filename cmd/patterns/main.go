package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	json "github.com/goccy/go-json"
	"golang.org/x/term"

	"github.com/vanderheijden86/ariapatterns/pkg/config"
	"github.com/vanderheijden86/ariapatterns/pkg/debug"
	"github.com/vanderheijden86/ariapatterns/pkg/loader"
	"github.com/vanderheijden86/ariapatterns/pkg/metrics"
	"github.com/vanderheijden86/ariapatterns/pkg/model"
	"github.com/vanderheijden86/ariapatterns/pkg/ui"
	"github.com/vanderheijden86/ariapatterns/pkg/version"
	"github.com/vanderheijden86/ariapatterns/pkg/watcher"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run is the whole program; it returns the exit code so that deferred
// cleanup runs before the process exits.
func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("patterns", flag.ContinueOnError)
	fs.SetOutput(stderr)
	help := fs.Bool("help", false, "Show help")
	versionFlag := fs.Bool("version", false, "Show version")
	viewFlag := fs.String("view", "", "Pattern to show: listbox, tree or combobox")
	configFlag := fs.String("config", "", "Config file (default: "+config.ConfigPath()+")")
	dataFlag := fs.String("data", "", "Items file (.json, .jsonl, .yaml); overrides ui.data_file and "+loader.DataFileEnvVar)
	dumpFlag := fs.Bool("dump", false, "Print the initial state of the view as JSON and exit")
	watchFlag := fs.Bool("watch", true, "Reload the config and items files when they change")
	debugLog := fs.String("debug-log", "", "Append pattern event logs to this file")
	metricsFlag := fs.Bool("metrics", false, "Print event timings to stderr on exit")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	if *help {
		fmt.Fprintln(stdout, "Usage: patterns [options]")
		fmt.Fprintln(stdout, "\nInteractive listbox, tree and combobox widgets.")
		fs.SetOutput(stdout)
		fs.PrintDefaults()
		return 0
	}

	if *versionFlag {
		fmt.Fprintf(stdout, "patterns %s\n", version.Version)
		return 0
	}

	if *debugLog != "" {
		f, err := os.OpenFile(*debugLog, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
		if err != nil {
			fmt.Fprintf(stderr, "Could not open debug log: %v\n", err)
			return 1
		}
		debug.SetOutput(f)
		debug.SetEnabled(true)
		defer func() {
			debug.SetEnabled(false)
			debug.SetOutput(stderr)
			f.Close()
		}()
		debug.Log("patterns %s starting", version.Version)
	}

	configPath := *configFlag
	if configPath == "" {
		configPath = config.ConfigPath()
	}
	cfg, err := config.LoadFrom(configPath)
	if err != nil {
		// Non-fatal: continue with defaults
		fmt.Fprintf(stderr, "Warning: %v; using defaults\n", err)
		cfg = config.DefaultConfig()
	}
	if *viewFlag != "" {
		cfg.UI.DefaultView = *viewFlag
	}

	dataPath, roots, err := loadItems(*dataFlag, cfg)
	if err != nil {
		fmt.Fprintf(stderr, "Error loading items: %v\n", err)
		return 1
	}

	m, err := ui.NewModel(roots, cfg)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	if *dumpFlag {
		if err := dumpSnapshot(stdout, m); err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return 1
		}
		return 0
	}

	if out, ok := stdout.(*os.File); !ok || !term.IsTerminal(int(out.Fd())) {
		fmt.Fprintln(stderr, "Error: stdout is not a terminal (use -dump for non-interactive output)")
		return 2
	}

	var dataWatcher *watcher.Watcher
	if *watchFlag && dataPath != "" {
		dataWatcher, err = watcher.NewWatcher(dataPath)
		if err == nil {
			err = dataWatcher.Start()
		}
		if err != nil {
			fmt.Fprintf(stderr, "Warning: not watching %s: %v\n", dataPath, err)
			dataWatcher = nil
		} else {
			defer dataWatcher.Stop()
		}
	}
	m = m.WithDataFile(dataPath, dataWatcher)

	if err := runTUIProgram(m, configPath, *watchFlag); err != nil {
		fmt.Fprintf(stderr, "Error running patterns: %v\n", err)
		return 1
	}
	if *metricsFlag {
		printMetrics(stderr)
	}
	return 0
}

// printMetrics writes the collected event timings as JSON.
func printMetrics(w io.Writer) {
	data, err := json.MarshalIndent(metrics.AllTimingStats(), "", "  ")
	if err != nil {
		return
	}
	fmt.Fprintln(w, string(data))
}

// loadItems resolves the items file from the flag, the config and the
// environment, in that order. With none of them set it falls back to the
// built-in sample and returns an empty path.
func loadItems(flagPath string, cfg config.Config) (string, []*model.Node, error) {
	path := flagPath
	if path == "" {
		path = cfg.UI.DataFile
	}
	path, err := loader.ResolvePath(path)
	if err != nil {
		return "", sampleItems(), nil
	}
	roots, err := loader.LoadFile(path)
	if err != nil {
		return "", nil, err
	}
	return path, roots, nil
}

type snapshotter interface {
	JSON() ([]byte, error)
}

// dumpSnapshot writes the derived state of the model's current view.
func dumpSnapshot(w io.Writer, m ui.Model) error {
	var s snapshotter
	switch m.CurrentView() {
	case ui.ViewListbox:
		s = m.Listbox().Snapshot()
	case ui.ViewTree:
		s = m.Tree().Snapshot()
	case ui.ViewCombobox:
		s = m.Combobox().Snapshot()
	}
	data, err := s.JSON()
	if err != nil {
		return fmt.Errorf("encoding snapshot: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

func runTUIProgram(m ui.Model, configPath string, watch bool) error {
	p := tea.NewProgram(
		m,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithoutSignalHandler(),
	)

	if watch {
		cw, err := watcher.WatchConfig(configPath, func(cfg config.Config, err error) {
			p.Send(ui.ConfigChangedMsg{Config: cfg, Err: err})
		})
		if err != nil {
			debug.Log("config watch disabled: %v", err)
		} else {
			defer cw.Stop()
		}
	}

	runDone := make(chan struct{})
	defer close(runDone)

	// Graceful shutdown on SIGINT/SIGTERM.
	sigCh := make(chan os.Signal, 2)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigCh)
	go func() {
		select {
		case <-runDone:
			return
		case <-sigCh:
		}

		p.Quit()

		select {
		case <-runDone:
			return
		case <-sigCh:
		case <-time.After(5 * time.Second):
		}

		p.Kill()
	}()

	// Optional auto-quit for automated tests: set PATTERNS_TUI_AUTOCLOSE_MS.
	if v := os.Getenv("PATTERNS_TUI_AUTOCLOSE_MS"); v != "" {
		if ms, err := strconv.Atoi(v); err == nil && ms > 0 {
			go func() {
				timer := time.NewTimer(time.Duration(ms) * time.Millisecond)
				defer timer.Stop()

				select {
				case <-runDone:
					return
				case <-timer.C:
				}

				p.Quit()
			}()
		}
	}

	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) || errors.Is(err, tea.ErrInterrupted) {
		return nil
	}
	return err
}
