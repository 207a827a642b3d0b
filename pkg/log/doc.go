// Package log implements structured observation logging for the resize
// engine.
//
// Every significant engine action (watch established, watch cancelled,
// resize signal received, tick executed, notification delivered) can be
// captured as an Event and routed to a Logger. Events carry the owning
// watcher's ID so logs from multiple watchers can be correlated.
//
// # Storage Format
//
// FileLogger appends events to a file as a stream of CBOR maps with
// integer keys, which keeps logs compact and self-describing. Reader
// streams events back out, optionally filtered by watcher, kind, or time
// window. The resize-log command renders these files for humans.
//
// # Adapters
//
// SlogAdapter forwards events to a log/slog logger for console output
// during development. MultiLogger fans events out to several loggers at
// once. NoopLogger discards everything and is the default when logging
// is disabled.
package log
