package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"

	"vrcwatch/internal/event"
)

// Config captures everything vrcwatch needs to run.
type Config struct {
	LogDir       string
	LogPattern   string
	OutputDir    string
	OutputPrefix string
	PollInterval time.Duration
	FromStart    bool
	Discord      Discord
	Events       []event.Rule
}

// Discord holds webhook settings for the notifier.
type Discord struct {
	Enabled    bool
	WebhookURL string
	Username   string
}

const (
	defaultConfigPath   = "~/.config/vrcwatch/config.toml"
	defaultLogDir       = "~/.local/share/VRChat/VRChat"
	defaultLogPattern   = "output_log_*.txt"
	defaultOutputPrefix = "parsed_log_"
	defaultUsername     = "vrcwatch"
	defaultPollInterval = 250 * time.Millisecond
)

// defaultRules covers the events the stock VRChat client logs for player
// traffic. A config file with its own [[events]] list replaces them entirely.
func defaultRules() []event.Rule {
	return []event.Rule{
		{Keyword: "OnPlayerJoined", Color: "#2ecc71"},
		{Keyword: "OnPlayerLeft", Color: "#e74c3c"},
	}
}

// Load locates and parses the vrcwatch config, falling back to defaults when
// the file is missing.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		LogDir:       mustExpand(defaultLogDir),
		LogPattern:   defaultLogPattern,
		OutputDir:    ".",
		OutputPrefix: defaultOutputPrefix,
		PollInterval: defaultPollInterval,
		Discord:      Discord{Username: defaultUsername},
		Events:       defaultRules(),
	}

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		LogDir         string `toml:"log_dir"`
		LogPattern     string `toml:"log_pattern"`
		OutputDir      string `toml:"output_dir"`
		OutputPrefix   string `toml:"output_prefix"`
		PollIntervalMS int    `toml:"poll_interval_ms"`
		FromStart      bool   `toml:"from_start"`
		Discord        struct {
			Enabled    bool   `toml:"enabled"`
			WebhookURL string `toml:"webhook_url"`
			Username   string `toml:"username"`
		} `toml:"discord"`
		Events []struct {
			Keyword string `toml:"keyword"`
			Color   string `toml:"color"`
		} `toml:"events"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if dir := strings.TrimSpace(raw.LogDir); dir != "" {
		cfg.LogDir = mustExpand(dir)
	}
	if pattern := strings.TrimSpace(raw.LogPattern); pattern != "" {
		cfg.LogPattern = pattern
	}
	if dir := strings.TrimSpace(raw.OutputDir); dir != "" {
		cfg.OutputDir = mustExpand(dir)
	}
	if prefix := strings.TrimSpace(raw.OutputPrefix); prefix != "" {
		cfg.OutputPrefix = prefix
	}
	if raw.PollIntervalMS > 0 {
		cfg.PollInterval = time.Duration(raw.PollIntervalMS) * time.Millisecond
	}
	cfg.FromStart = raw.FromStart

	cfg.Discord.Enabled = raw.Discord.Enabled
	cfg.Discord.WebhookURL = strings.TrimSpace(raw.Discord.WebhookURL)
	if username := strings.TrimSpace(raw.Discord.Username); username != "" {
		cfg.Discord.Username = username
	}
	if cfg.Discord.Enabled && cfg.Discord.WebhookURL == "" {
		return Config{}, fmt.Errorf("discord is enabled but webhook_url is empty")
	}

	// The [[events]] table order is authoritative: when several keywords match
	// the same line, the first configured one wins.
	if len(raw.Events) > 0 {
		rules := make([]event.Rule, 0, len(raw.Events))
		for _, entry := range raw.Events {
			rules = append(rules, event.Rule{Keyword: entry.Keyword, Color: entry.Color})
		}
		cfg.Events = rules
	}

	return cfg, nil
}

// DiagnosticLogPath returns the file zap diagnostics are written to.
func (c Config) DiagnosticLogPath() string {
	dir := strings.TrimSpace(c.OutputDir)
	if dir == "" {
		dir = "."
	}
	return filepath.Join(dir, "vrcwatch.log")
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

// expandPath resolves ~, environment variables, and relative paths. VRChat
// installs live under paths like %LOCALAPPDATA%, so $VAR expansion matters.
func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	trimmed = os.ExpandEnv(trimmed)
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
