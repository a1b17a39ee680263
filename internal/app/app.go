package app

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"vrcwatch/internal/config"
	"vrcwatch/internal/discord"
	"vrcwatch/internal/event"
	"vrcwatch/internal/journal"
	"vrcwatch/internal/prefs"
	"vrcwatch/internal/state"
	"vrcwatch/internal/ui"
	"vrcwatch/internal/watch"
)

// Options configure the vrcwatch application.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/vrcwatch/prefs.toml
	PollMS     int    // milliseconds; zero uses the config value
	NoDiscord  bool   // disable the notifier regardless of config
	Verbose    bool   // debug-level diagnostics
}

const backlogLines = 200

// Run boots the vrcwatch TUI until the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if opts.PollMS > 0 {
		cfg.PollInterval = time.Duration(opts.PollMS) * time.Millisecond
	}

	logger, err := newLogger(cfg.DiagnosticLogPath(), opts.Verbose)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	rules, err := event.NewRuleset(cfg.Events)
	if err != nil {
		return fmt.Errorf("load event rules: %w", err)
	}

	writer, err := journal.NewWriter(cfg.OutputDir, cfg.OutputPrefix)
	if err != nil {
		return fmt.Errorf("init journal: %w", err)
	}
	defer func() { _ = writer.Close() }()

	var notifier discord.Notifier
	if cfg.Discord.Enabled && !opts.NoDiscord {
		client, err := discord.NewClient(cfg.Discord.WebhookURL, cfg.Discord.Username)
		if err != nil {
			return fmt.Errorf("init discord client: %w", err)
		}
		notifier = client
		logger.Info("discord notifications enabled")
	}

	session, err := watch.NewSession(cfg.LogDir, cfg.LogPattern, cfg.FromStart)
	if err != nil {
		return fmt.Errorf("init tail session: %w", err)
	}
	logger.Info("tailing",
		zap.String("dir", cfg.LogDir),
		zap.String("pattern", cfg.LogPattern),
		zap.Duration("poll", cfg.PollInterval))

	store := &state.Store{}
	userPrefs, _ := prefs.Load(opts.PrefsPath)

	// fsnotify cuts rotation latency; losing it degrades to pure polling.
	var wake <-chan struct{}
	if watcher, err := watch.NewWatcher(cfg.LogDir, cfg.LogPattern, logger); err != nil {
		logger.Warn("fsnotify unavailable, polling only", zap.Error(err))
	} else {
		watcher.Start(ctx)
		wake = watcher.Wake()
	}

	poller := NewPoller(session, rules, writer, notifier, store, logger)
	poller.Start(ctx, cfg.PollInterval, wake)

	// Events journaled earlier today are shown as backlog above the live feed.
	backlog, err := journal.Tail(writer.PathForDate(time.Now()), backlogLines)
	if err != nil {
		logger.Warn("journal backlog unavailable", zap.Error(err))
	}

	uiOpts := ui.Options{
		Context:   ctx,
		Store:     store,
		Rules:     rules,
		Config:    &cfg,
		PollTick:  cfg.PollInterval,
		ThemeName: userPrefs.Theme,
		Follow:    userPrefs.Follow,
		PrefsPath: opts.PrefsPath,
		Backlog:   backlog,
	}
	return ui.Run(uiOpts)
}

// newLogger builds the zap diagnostic logger. Diagnostics go to a file, never
// stdout/stderr: the terminal belongs to the TUI.
func newLogger(path string, verbose bool) (*zap.Logger, error) {
	zapCfg := zap.NewProductionConfig()
	zapCfg.OutputPaths = []string{path}
	zapCfg.ErrorOutputPaths = []string{path}
	if verbose {
		zapCfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}
	return zapCfg.Build()
}
