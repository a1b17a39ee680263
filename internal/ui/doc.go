// Package ui implements the vrcwatch terminal interface using Bubble Tea.
//
// # Architecture
//
// The UI follows the Elm architecture via Bubble Tea:
//
//   - Model: application state (snapshot of the event store, viewport,
//     theme, key bindings)
//   - Update: handles messages (key presses, window resizes, timer ticks,
//     store snapshots)
//   - View: renders header, event feed, and footer
//
// The UI never touches the tailer directly. A timer tick triggers a
// snapshot fetch from the state store, and the feed re-renders only when
// the event count changes. Event lines render in the color configured for
// their matching rule; the theme only controls the surrounding chrome.
//
// # Layout
//
//	+----------------------------------------------------+
//	| vrcwatch  ● ON output_log_...txt  joins:3  18:30:01 |  header
//	+----------------------------------------------------+
//	| 18:29:41  OnPlayerJoined alice                     |
//	| 18:30:01  OnPlayerLeft bob                         |  feed viewport
//	|                                                    |
//	+----------------------------------------------------+
//	| FOLLOW  2 events  100%        h help  q quit       |  footer
//	+----------------------------------------------------+
//
// Follow mode keeps the viewport pinned to the newest event. Scrolling up
// pauses following; pressing G or Space resumes it. Theme and follow
// preferences persist across runs via the prefs package.
package ui
