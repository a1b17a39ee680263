// Package watch tails the newest VRChat log file in a watched directory.
//
// # Overview
//
// VRChat does not rotate logs by renaming: every client start creates a fresh
// output_log_<timestamp>.txt next to the old ones. Tailing therefore means
// two things at once: following appended bytes in the current file, and
// noticing when a newer matching file appears so the tail can switch to it.
//
// # Session
//
// Session owns the mutable tail state - target path, consumed byte offset,
// and the partial-line carry buffer. Each Poll call:
//
//  1. Globs dir/pattern and picks the newest file by modification time
//  2. On a target change, switches to the new file at offset zero
//  3. Reads bytes appended since the stored offset
//  4. Splits into complete lines, carrying a trailing partial line forward
//
// The very first attach seeks to the end of the file instead (unless
// from_start is set), so history written before vrcwatch started is skipped.
// That mirrors how the session is actually used: operators care about events
// from now on, not a replay of the whole session log.
//
// Lines already consumed before a rotation are never re-read, and lines in
// the rotated-in file are read from its beginning, so rotation neither drops
// nor duplicates events.
//
// # Failure model
//
// No matching file, a vanished file, or a vanished directory are all
// non-fatal: Poll returns zero lines and the next tick retries. In-place
// truncation (offset beyond the file size) resets the offset to zero.
//
// # Watcher
//
// Watcher is an fsnotify listener on the log directory that pokes the poll
// loop when a matching file is created or written. It exists purely to cut
// latency; correctness never depends on filesystem events, because the
// ticker-driven Poll performs the same rescan.
package watch
