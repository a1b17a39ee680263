package watch

import (
	"context"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// Watcher nudges the poll loop when the log directory changes so rotation and
// fresh writes are picked up ahead of the ticker. The ticker remains the
// fallback drive; losing filesystem events only costs latency.
type Watcher struct {
	dir     string
	pattern string
	fsw     *fsnotify.Watcher
	wake    chan struct{}
	logger  *zap.Logger

	debounce time.Duration
	lastWake time.Time
}

// NewWatcher creates a directory watcher for files matching pattern in dir.
func NewWatcher(dir, pattern string, logger *zap.Logger) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Watcher{
		dir:      dir,
		pattern:  pattern,
		fsw:      fsw,
		wake:     make(chan struct{}, 1),
		logger:   logger,
		debounce: 50 * time.Millisecond,
	}, nil
}

// Wake returns the channel that receives a signal after relevant directory
// activity. The channel has capacity one; signals coalesce.
func (w *Watcher) Wake() <-chan struct{} {
	return w.wake
}

// Start begins watching. It is non-blocking; the watcher stops when ctx is
// cancelled. A missing log directory is tolerated: the ticker still drives
// polling, and Start retries the watch once the directory appears.
func (w *Watcher) Start(ctx context.Context) {
	if err := w.fsw.Add(w.dir); err != nil {
		w.logger.Warn("log dir watch failed, polling only", zap.String("dir", w.dir), zap.Error(err))
	} else {
		w.logger.Info("watching log dir", zap.String("dir", w.dir))
	}
	go w.run(ctx)
}

func (w *Watcher) run(ctx context.Context) {
	defer w.fsw.Close()
	retry := time.NewTicker(5 * time.Second)
	defer retry.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			w.handleEvent(ev)
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			w.logger.Warn("fsnotify error", zap.Error(err))
		case <-retry.C:
			if len(w.fsw.WatchList()) == 0 {
				if err := w.fsw.Add(w.dir); err == nil {
					w.logger.Info("watching log dir", zap.String("dir", w.dir))
				}
			}
		}
	}
}

func (w *Watcher) handleEvent(ev fsnotify.Event) {
	if !ev.Op.Has(fsnotify.Create) && !ev.Op.Has(fsnotify.Write) {
		return
	}
	matched, err := filepath.Match(w.pattern, filepath.Base(ev.Name))
	if err != nil || !matched {
		return
	}
	now := time.Now()
	if now.Sub(w.lastWake) < w.debounce {
		return
	}
	w.lastWake = now
	select {
	case w.wake <- struct{}{}:
	default:
	}
}
