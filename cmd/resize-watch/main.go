// Command resize-watch watches a terminal layout for size changes.
//
// The terminal window is the viewport and the layout's panes are the
// watched elements: resizing the terminal triggers a debounced re-check,
// and every pane whose dimensions actually changed is reported.
//
// Usage:
//
//	resize-watch [flags]
//
// Flags:
//
//	-layout string      Layout YAML file (built-in demo layout if omitted)
//	-watch string       Comma-separated selectors to watch (default "*")
//	-viewport           Also watch the viewport itself (default true)
//	-debounce duration  Quiet period after the last resize signal (default 16ms)
//	-log string         Write a CBOR observation log to this file
//	-interactive        Start an interactive console instead
//
// Examples:
//
//	# Watch every pane of the built-in layout
//	resize-watch
//
//	# Watch a custom layout, recording an observation log
//	resize-watch -layout layout.yaml -watch ".content,#status" -log session.rlog
//
//	# Manage watches interactively
//	resize-watch -interactive
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/rstone770/resize/pkg/dom"
	"github.com/rstone770/resize/pkg/log"
	"github.com/rstone770/resize/pkg/resize"
	"github.com/rstone770/resize/pkg/term"
)

// defaultLayout is used when no -layout file is given.
const defaultLayout = `
split: row
children:
  - name: sidebar
    weight: 1
    tags: [nav]
  - split: column
    weight: 3
    children:
      - name: editor
        weight: 4
        tags: [content]
      - name: status
        weight: 1
        tags: [chrome]
`

func main() {
	var (
		layoutPath   = flag.String("layout", "", "Layout YAML file (built-in demo layout if omitted)")
		selectors    = flag.String("watch", "*", "Comma-separated selectors to watch")
		withViewport = flag.Bool("viewport", true, "Also watch the viewport itself")
		debounce     = flag.Duration("debounce", resize.DefaultDebounceWindow, "Quiet period after the last resize signal")
		logPath      = flag.String("log", "", "Write a CBOR observation log to this file")
		interactive  = flag.Bool("interactive", false, "Start an interactive console instead")
	)
	flag.Parse()

	if err := run(*layoutPath, *selectors, *withViewport, *debounce, *logPath, *interactive); err != nil {
		fmt.Fprintf(os.Stderr, "resize-watch: %v\n", err)
		os.Exit(1)
	}
}

func run(layoutPath, selectors string, withViewport bool, debounce time.Duration, logPath string, interactive bool) error {
	screen, err := term.NewScreen()
	if err != nil {
		return err
	}

	layoutYAML := []byte(defaultLayout)
	if layoutPath != "" {
		layoutYAML, err = os.ReadFile(layoutPath)
		if err != nil {
			return fmt.Errorf("read layout: %w", err)
		}
	}
	layout, err := term.ParseLayout(layoutYAML, screen)
	if err != nil {
		return err
	}

	config := resize.Config{DebounceWindow: debounce}
	if logPath != "" {
		fileLogger, err := log.NewFileLogger(logPath)
		if err != nil {
			return fmt.Errorf("open observation log: %w", err)
		}
		defer fileLogger.Close()
		config.Logger = fileLogger
	}
	watcher := resize.NewWithConfig(screen, layout, config)

	if interactive {
		return runInteractive(watcher, screen, layout)
	}

	if withViewport {
		if _, err := watcher.WatchViewport(func(target dom.Element) {
			fmt.Printf("resize viewport -> %s\n", target.Size())
		}); err != nil {
			return err
		}
	}
	for _, selector := range splitSelectors(selectors) {
		if _, err := watcher.WatchTargets(selector, func(target dom.Element) {
			fmt.Printf("resize %s -> %s\n", describeTarget(target), target.Size())
		}); err != nil {
			return err
		}
	}

	fmt.Printf("watching %d target(s), viewport %s; resize the terminal (ctrl-c to exit)\n",
		watcher.Count(), screen.Size())
	for _, pane := range layout.Panes() {
		fmt.Printf("  #%-10s %s\n", pane.Name(), pane.Size())
	}

	// Block until interrupted; the engine does the rest.
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop
	return nil
}

// splitSelectors splits the -watch flag value on commas, dropping
// empty entries.
func splitSelectors(value string) []string {
	var out []string
	for _, s := range strings.Split(value, ",") {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// describeTarget renders a watched target for console output.
func describeTarget(target dom.Element) string {
	switch v := target.(type) {
	case *term.Pane:
		return "#" + v.Name()
	case dom.Viewport:
		return "viewport"
	default:
		return fmt.Sprintf("%T", target)
	}
}
