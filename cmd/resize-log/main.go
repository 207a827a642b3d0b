// Command resize-log renders resize observation log files.
//
// Log files are created by passing a FileLogger to a watcher (see the
// resize-watch -log flag) and contain a CBOR stream of engine events:
// watches, cancellations, resize signals, ticks, and notifications.
//
// Usage:
//
//	resize-log [flags] <file.rlog>
//
// Flags:
//
//	-watcher string  Filter by watcher ID (prefix match)
//	-kind string     Filter by event kind: watch, cancel, signal, tick, notify
//	-json            Emit events as JSON lines instead of formatted text
//
// Examples:
//
//	# View all events
//	resize-log session.rlog
//
//	# Only delivered notifications
//	resize-log -kind notify session.rlog
//
//	# Machine-readable output
//	resize-log -json session.rlog
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rstone770/resize/pkg/log"
)

func main() {
	var (
		watcherID = flag.String("watcher", "", "Filter by watcher ID (prefix match)")
		kindName  = flag.String("kind", "", "Filter by event kind: watch, cancel, signal, tick, notify")
		asJSON    = flag.Bool("json", false, "Emit events as JSON lines instead of formatted text")
	)
	flag.Parse()
	args := flag.Args()

	if len(args) != 1 {
		fmt.Fprintln(os.Stderr, "Usage: resize-log [flags] <file.rlog>")
		os.Exit(1)
	}

	filter := log.Filter{}
	if *kindName != "" {
		kind, ok := log.ParseKind(strings.ToUpper(*kindName))
		if !ok {
			fmt.Fprintf(os.Stderr, "resize-log: unknown kind %q\n", *kindName)
			os.Exit(1)
		}
		filter.Kind = &kind
	}

	if err := view(args[0], filter, *watcherID, *asJSON); err != nil {
		fmt.Fprintf(os.Stderr, "resize-log: %v\n", err)
		os.Exit(1)
	}
}

func view(path string, filter log.Filter, watcherPrefix string, asJSON bool) error {
	reader, err := log.NewFilteredReader(path, filter)
	if err != nil {
		return err
	}
	defer reader.Close()

	out := os.Stdout
	encoder := json.NewEncoder(out)
	for {
		event, err := reader.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("decode event: %w", err)
		}
		// Prefix filtering happens here so short IDs from formatted
		// output can be pasted back in.
		if watcherPrefix != "" && !strings.HasPrefix(event.WatcherID, watcherPrefix) {
			continue
		}

		if asJSON {
			if err := encoder.Encode(event); err != nil {
				return err
			}
			continue
		}
		formatEvent(out, event)
	}
}

// formatEvent writes a human-readable representation of the event.
func formatEvent(w io.Writer, event log.Event) {
	ts := event.Timestamp.UTC().Format("2006-01-02T15:04:05.000000Z")
	id := shortenWatcherID(event.WatcherID)

	fmt.Fprintf(w, "%s [watcher:%s] %-6s", ts, id, event.Kind)

	switch {
	case event.Watch != nil && event.Watch.Viewport:
		fmt.Fprintf(w, " handle=%d viewport", event.Watch.Handle)
	case event.Watch != nil:
		fmt.Fprintf(w, " handle=%d target=%q %dx%d",
			event.Watch.Handle, event.Watch.Target, event.Watch.Width, event.Watch.Height)
	case event.Tick != nil:
		fmt.Fprintf(w, " live=%d", event.Tick.Live)
	case event.Notify != nil && event.Notify.Viewport:
		fmt.Fprintf(w, " handle=%d viewport %dx%d",
			event.Notify.Handle, event.Notify.Width, event.Notify.Height)
	case event.Notify != nil:
		fmt.Fprintf(w, " handle=%d %dx%d",
			event.Notify.Handle, event.Notify.Width, event.Notify.Height)
	}
	fmt.Fprintln(w)
}

// shortenWatcherID keeps the first UUID group for compact display.
func shortenWatcherID(id string) string {
	if i := strings.IndexByte(id, '-'); i > 0 {
		return id[:i]
	}
	return id
}
