// Package state holds the shared snapshot the poller writes and the UI reads.
//
// The poller goroutine updates the Store after every tail cycle; the UI pulls
// an independent copy via Snapshot on its own tick. The two sides never share
// mutable data: Snapshot clones the event ring, the per-keyword counts, and
// the last error, so a render can't observe a half-applied update.
//
// Poll errors are sticky until the next successful cycle and are counted, so
// the UI can distinguish a single hiccup from a stalled tail (IsStalled).
// Webhook failures are tracked separately - they are cosmetic and never mark
// the tail itself as unhealthy.
package state
