// Package app provides the orchestration layer for vrcwatch.
//
// # Overview
//
// This package wires together configuration, the tail session, the event
// ruleset, the journal, the Discord notifier, shared state, and the UI. It is
// the composition root: business logic lives in the domain packages.
//
// # Initialization
//
//  1. Load config (config.Load, defaults when missing)
//  2. Build the zap diagnostic logger writing to vrcwatch.log
//  3. Compile the event ruleset and open the journal writer
//  4. Build the Discord client when [discord] is enabled
//  5. Create the tail session and the fsnotify directory watcher
//  6. Launch the poller goroutine
//  7. Preload today's journal tail as UI backlog and start the TUI (blocks)
//
// # The poll cycle
//
// A single goroutine runs the whole pipeline once per tick (or early, when
// the fsnotify watcher reports directory activity):
//
//	session.Poll  -> new complete lines from the newest output_log_*.txt
//	rules.Match   -> first configured keyword found in the line, if any
//	journal.Append-> "<timestamp> - <line>" into parsed_log_<date>.txt
//	store.AddEvent-> visible to the UI on its next snapshot
//	notifier.Send -> colored Discord embed, 5s timeout, no retry
//
// Single-threaded by design: there is exactly one reader of the log file, one
// writer of the journal, and one webhook sender, so no ordering or locking
// questions arise between them. The only cross-goroutine surface is the
// state.Store.
//
// # Error handling
//
// Fatal errors (returned from Run): unparseable config, invalid rules or
// webhook URL, unusable output directory, logger setup.
//
// Recoverable errors (recorded in the store, logged, loop continues): no log
// file yet, poll read failures, journal write failures, webhook failures.
// vrcwatch is expected to outlive VRChat restarts and Discord outages.
package app
