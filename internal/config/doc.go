// Package config handles loading and parsing the vrcwatch configuration file.
//
// # Configuration Discovery
//
// The Load function follows this resolution order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/vrcwatch/config.toml (default)
//  3. If the config file doesn't exist, fall back to built-in defaults
//  4. If the file exists but fields are missing/empty, use defaults per field
//
// Missing config files are NOT an error - defaults are used instead. This
// allows vrcwatch to watch a stock VRChat install without any configuration.
//
// # TOML Format
//
// Example config.toml:
//
//	log_dir = "$LOCALAPPDATA/../LocalLow/VRChat/VRChat"
//	log_pattern = "output_log_*.txt"
//	output_dir = "~/vrcwatch"
//	output_prefix = "parsed_log_"
//	poll_interval_ms = 250
//	from_start = false
//
//	[discord]
//	enabled = true
//	webhook_url = "https://discord.com/api/webhooks/..."
//	username = "vrcwatch"
//
//	[[events]]
//	keyword = "OnPlayerJoined"
//	color = "#2ecc71"
//
//	[[events]]
//	keyword = "OnPlayerLeft"
//	color = "#e74c3c"
//
// # Event Ordering
//
// The [[events]] array order is significant. When a log line contains more
// than one configured keyword, the first rule in file order wins. This is the
// documented tie-break, not an accident of map iteration.
//
// # Path Expansion
//
// log_dir and output_dir accept absolute paths, ~-prefixed paths, and paths
// containing environment variables ($VAR or ${VAR}). Relative paths are made
// absolute against the current directory.
//
// # Error Handling
//
// Load returns errors for unreadable files, TOML parse failures, and a
// [discord] section that is enabled without a webhook_url. Rule validation
// (empty keywords, malformed colors) happens in event.NewRuleset so the same
// checks cover rules from any source.
package config
