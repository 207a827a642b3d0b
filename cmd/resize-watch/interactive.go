package main

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/chzyer/readline"

	"github.com/rstone770/resize/pkg/dom"
	"github.com/rstone770/resize/pkg/resize"
	"github.com/rstone770/resize/pkg/term"
)

// console is the interactive watch manager. Notifications print through
// the readline instance so they don't clobber the prompt.
type console struct {
	watcher *resize.Watcher
	screen  *term.Screen
	layout  *term.Layout
	rl      *readline.Instance

	mu      sync.Mutex
	watches map[int]*consoleWatch
	nextID  int
}

type consoleWatch struct {
	selector string
	targets  int
	cancel   resize.CancelFunc
}

func runInteractive(watcher *resize.Watcher, screen *term.Screen, layout *term.Layout) error {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "resize> ",
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return fmt.Errorf("failed to create readline: %w", err)
	}
	defer rl.Close()

	c := &console{
		watcher: watcher,
		screen:  screen,
		layout:  layout,
		rl:      rl,
		watches: make(map[int]*consoleWatch),
	}
	c.printHelp()

	for {
		line, err := rl.Readline()
		if err != nil {
			if err == readline.ErrInterrupt {
				continue
			}
			fmt.Fprintln(rl.Stdout(), "Exiting...")
			return nil
		}

		input := strings.TrimSpace(line)
		if input == "" {
			continue
		}

		parts := strings.Fields(input)
		cmd := strings.ToLower(parts[0])
		args := parts[1:]

		switch cmd {
		case "help", "?":
			c.printHelp()

		case "watch", "w":
			c.cmdWatch(args)

		case "unwatch", "u":
			c.cmdUnwatch(args)

		case "list", "l":
			c.cmdList()

		case "panes", "p":
			c.cmdPanes()

		case "size", "s":
			c.cmdSize(args)

		case "quit", "exit", "q":
			fmt.Fprintln(rl.Stdout(), "Exiting...")
			return nil

		default:
			fmt.Fprintf(rl.Stdout(), "Unknown command: %s (type 'help' for commands)\n", cmd)
		}
	}
}

func (c *console) printHelp() {
	fmt.Fprintln(c.rl.Stdout(), `
resize-watch interactive console:
  watch <selector>   - Watch panes ("viewport" watches the terminal itself)
  unwatch <n>        - Cancel watch number n
  list               - List active watches
  panes              - Show every pane with its current size
  size <selector>    - Show current sizes for a selector
  quit               - Exit

Selectors: #name, .tag, bare name, or * for all panes.
Resize the terminal window to trigger notifications.`)
}

func (c *console) cmdWatch(args []string) {
	if len(args) != 1 {
		fmt.Fprintln(c.rl.Stdout(), "Usage: watch <selector>")
		return
	}
	selector := args[0]

	before := c.watcher.Count()
	var cancel resize.CancelFunc
	var err error
	callback := func(target dom.Element) {
		fmt.Fprintf(c.rl.Stdout(), "resize %s -> %s\n", describeTarget(target), target.Size())
	}
	if selector == "viewport" {
		cancel, err = c.watcher.WatchViewport(callback)
	} else {
		cancel, err = c.watcher.WatchTargets(selector, callback)
	}
	if err != nil {
		fmt.Fprintf(c.rl.Stdout(), "watch failed: %v\n", err)
		return
	}
	targets := c.watcher.Count() - before
	if targets == 0 {
		fmt.Fprintf(c.rl.Stdout(), "no panes match %q (watch created nothing)\n", selector)
		cancel()
		return
	}

	c.mu.Lock()
	id := c.nextID
	c.nextID++
	c.watches[id] = &consoleWatch{selector: selector, targets: targets, cancel: cancel}
	c.mu.Unlock()

	fmt.Fprintf(c.rl.Stdout(), "watch %d established (%d target(s))\n", id, targets)
}

func (c *console) cmdUnwatch(args []string) {
	if len(args) != 1 {
		fmt.Fprintln(c.rl.Stdout(), "Usage: unwatch <n>")
		return
	}
	id, err := strconv.Atoi(args[0])
	if err != nil {
		fmt.Fprintf(c.rl.Stdout(), "invalid watch number: %s\n", args[0])
		return
	}

	c.mu.Lock()
	watch, ok := c.watches[id]
	if ok {
		delete(c.watches, id)
	}
	c.mu.Unlock()

	if !ok {
		fmt.Fprintf(c.rl.Stdout(), "no such watch: %d\n", id)
		return
	}
	watch.cancel()
	fmt.Fprintf(c.rl.Stdout(), "watch %d cancelled\n", id)
}

func (c *console) cmdList() {
	c.mu.Lock()
	ids := make([]int, 0, len(c.watches))
	for id := range c.watches {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	lines := make([]string, 0, len(ids))
	for _, id := range ids {
		w := c.watches[id]
		lines = append(lines, fmt.Sprintf("  %d: %s (%d target(s))", id, w.selector, w.targets))
	}
	c.mu.Unlock()

	if len(lines) == 0 {
		fmt.Fprintln(c.rl.Stdout(), "no active watches")
		return
	}
	fmt.Fprintln(c.rl.Stdout(), strings.Join(lines, "\n"))
}

func (c *console) cmdPanes() {
	fmt.Fprintf(c.rl.Stdout(), "viewport %s\n", c.screen.Size())
	for _, pane := range c.layout.Panes() {
		tags := ""
		if len(pane.Tags()) > 0 {
			tags = " ." + strings.Join(pane.Tags(), " .")
		}
		fmt.Fprintf(c.rl.Stdout(), "  #%-10s %s%s\n", pane.Name(), pane.Size(), tags)
	}
}

func (c *console) cmdSize(args []string) {
	if len(args) != 1 {
		fmt.Fprintln(c.rl.Stdout(), "Usage: size <selector>")
		return
	}
	selector := args[0]
	if selector == "viewport" {
		fmt.Fprintf(c.rl.Stdout(), "viewport %s\n", c.screen.Size())
		return
	}

	elements := c.layout.Query(selector)
	if len(elements) == 0 {
		fmt.Fprintf(c.rl.Stdout(), "no panes match %q\n", selector)
		return
	}
	for _, el := range elements {
		fmt.Fprintf(c.rl.Stdout(), "%s %s\n", describeTarget(el), el.Size())
	}
}
